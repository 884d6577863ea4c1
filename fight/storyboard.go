package fight

import (
	"fmt"
	"time"
)

// LinePass is one speed-line sweep over the action section.
type LinePass struct {
	Start    float64
	Duration float64
	Density  int
	AngleDeg float64
	Speed    float64
	Opacity  float64
}

// End returns the time the pass stops rendering.
func (p LinePass) End() float64 { return p.Start + p.Duration }

// Slash is a shaking oversized glyph flashed during the action section.
type Slash struct {
	Start    float64
	Duration float64
	Mirrored bool
}

// Storyboard is the fixed timeline of a clip: when the title card shows,
// when the names slide in, where the impacts land. All times in seconds.
type Storyboard struct {
	Duration float64

	TitleStart float64
	TitleEnd   float64
	TitleFade  float64

	IntroStart    float64 // names start sliding
	IntroDuration float64
	VSStart       float64
	VSDuration    float64

	ActionStart float64
	ActionEnd   float64

	LinePasses  []LinePass
	Slashes     []Slash
	ImpactTimes []float64
	FlashLen    float64

	ShakePixels int
}

// NewStoryboard returns the standard 12 second timeline.
func NewStoryboard() *Storyboard {
	return &Storyboard{
		Duration: 12,

		TitleStart: 0,
		TitleEnd:   1.5,
		TitleFade:  0.2,

		IntroStart:    1.5,
		IntroDuration: 2.5,
		VSStart:       1.6,
		VSDuration:    2.5,

		ActionStart: 3.2,
		ActionEnd:   10.2,

		LinePasses: []LinePass{
			{Start: 3.2, Duration: 2.5, Density: 16, AngleDeg: -20, Speed: 500, Opacity: 0.35},
			{Start: 5.7, Duration: 2.5, Density: 18, AngleDeg: 20, Speed: 600, Opacity: 0.25},
		},
		Slashes: []Slash{
			{Start: 4.9, Duration: 0.25},
			{Start: 7.2, Duration: 0.25, Mirrored: true},
		},
		ImpactTimes: []float64{3.6, 4.2, 5.1, 6.0, 6.9, 7.8, 8.6, 9.2},
		FlashLen:    0.08,

		ShakePixels: 20,
	}
}

// TitleCard renders the dated title text shown on the opening card.
func TitleCard(day time.Time) string {
	return fmt.Sprintf("ANIME FIGHT – %s", day.Format("Jan 02"))
}

// InFlash reports whether t falls inside any impact flash window.
func (s *Storyboard) InFlash(t float64) bool {
	for _, it := range s.ImpactTimes {
		if t >= it && t < it+s.FlashLen {
			return true
		}
	}
	return false
}

// InAction reports whether t falls inside the action section.
func (s *Storyboard) InAction(t float64) bool {
	return t >= s.ActionStart && t < s.ActionEnd
}
