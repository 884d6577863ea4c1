package render

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"fightreel/fight"
)

// Overlay holds everything needed to build the ASS text layer of a clip:
// the storyboard timing, the matchup, and the dated title card.
type Overlay struct {
	Storyboard *fight.Storyboard
	Matchup    fight.Matchup
	Title      string
	Width      int
	Height     int
	FPS        int
}

// Build renders the overlay as an ASS script. Static layers (title card,
// name slide-ins, VS) are single events with \fad and \move; the shaking
// slashes are emitted as one event per frame with a jittered \pos, the
// same way word-level subtitle highlighting emits one event per word.
func (o *Overlay) Build() string {
	var b strings.Builder

	fmt.Fprintln(&b, "[Script Info]")
	fmt.Fprintln(&b, "Title: fightreel overlay")
	fmt.Fprintln(&b, "ScriptType: v4.00+")
	fmt.Fprintf(&b, "PlayResX: %d\n", o.Width)
	fmt.Fprintf(&b, "PlayResY: %d\n", o.Height)
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "[V4+ Styles]")
	fmt.Fprintln(&b, "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding")
	fmt.Fprintln(&b, "Style: Title,DejaVu Sans,60,&H00FFFFFF,&H00FFFFFF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,0,0,5,0,0,0,1")
	fmt.Fprintln(&b, "Style: Name,DejaVu Sans,110,&H00FFFFFF,&H00FFFFFF,&H00000000,&H00000000,0,-1,0,0,100,100,0,0,1,0,0,4,0,0,0,1")
	fmt.Fprintln(&b, "Style: VS,DejaVu Sans,140,&H00FFFFFF,&H00FFFFFF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,0,0,5,0,0,0,1")
	fmt.Fprintln(&b, "Style: Slash,DejaVu Sans,500,&H00FFFFFF,&H00FFFFFF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,0,0,5,0,0,0,1")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "[Events]")
	fmt.Fprintln(&b, "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text")

	o.writeTitle(&b)
	o.writeNames(&b)
	o.writeVS(&b)
	o.writeSlashes(&b)

	return b.String()
}

// WriteFile builds the overlay and writes it to path.
func (o *Overlay) WriteFile(path string) error {
	return os.WriteFile(path, []byte(o.Build()), 0o644)
}

func (o *Overlay) writeTitle(b *strings.Builder) {
	sb := o.Storyboard
	fadeMS := int(sb.TitleFade * 1000)
	fmt.Fprintf(b, "Dialogue: 0,%s,%s,Title,,0,0,0,,{\\fad(%d,%d)\\pos(%d,%d)}%s\n",
		formatASSTimestamp(sb.TitleStart),
		formatASSTimestamp(sb.TitleEnd),
		fadeMS, fadeMS,
		o.Width/2, o.Height/2,
		o.Title)
}

// writeNames slides the fighter names across the screen: the left name
// enters from offscreen left, the right name from offscreen right. The
// linear \move over the event duration reproduces a constant 1.2*W per
// second sweep.
func (o *Overlay) writeNames(b *strings.Builder) {
	sb := o.Storyboard
	start := formatASSTimestamp(sb.IntroStart)
	end := formatASSTimestamp(sb.IntroStart + sb.IntroDuration)
	w := float64(o.Width)
	travel := 1.2 * w * sb.IntroDuration

	leftY := o.Height / 4
	rightY := o.Height * 65 / 100

	fmt.Fprintf(b, "Dialogue: 0,%s,%s,Name,,0,0,0,,{\\move(%d,%d,%d,%d)\\c%s}%s\n",
		start, end,
		-int(w), leftY, int(-w+travel), leftY,
		assColor(o.Matchup.Left.Color),
		o.Matchup.Left.Name)

	fmt.Fprintf(b, "Dialogue: 0,%s,%s,Name,,0,0,0,,{\\move(%d,%d,%d,%d)\\c%s}%s\n",
		start, end,
		int(w), rightY, int(w-travel), rightY,
		assColor(o.Matchup.Right.Color),
		o.Matchup.Right.Name)
}

func (o *Overlay) writeVS(b *strings.Builder) {
	sb := o.Storyboard
	fmt.Fprintf(b, "Dialogue: 1,%s,%s,VS,,0,0,0,,{\\pos(%d,%d)}VS\n",
		formatASSTimestamp(sb.VSStart),
		formatASSTimestamp(sb.VSStart+sb.VSDuration),
		o.Width/2, o.Height/2)
}

// writeSlashes emits the oversized shaking glyphs frame by frame. The
// jitter is seeded from the frame's millisecond timestamp so reruns of
// the same storyboard shake identically.
func (o *Overlay) writeSlashes(b *strings.Builder) {
	sb := o.Storyboard
	frameDur := 1.0 / float64(o.FPS)

	for _, slash := range sb.Slashes {
		mirror := ""
		if slash.Mirrored {
			mirror = "\\fscx-100"
		}
		for t := slash.Start; t < slash.Start+slash.Duration-1e-9; t += frameDur {
			jx, jy := shakeOffset(t, sb.ShakePixels)
			fmt.Fprintf(b, "Dialogue: 2,%s,%s,Slash,,0,0,0,,{\\pos(%d,%d)%s}/\n",
				formatASSTimestamp(t),
				formatASSTimestamp(t+frameDur),
				o.Width/2+jx, o.Height/2+jy,
				mirror)
		}
	}
}

// shakeOffset returns the deterministic jitter for time t, in pixels.
func shakeOffset(t float64, intensity int) (int, int) {
	rng := rand.New(rand.NewSource(int64(t*1000) + 42))
	return rng.Intn(2*intensity+1) - intensity, rng.Intn(2*intensity+1) - intensity
}

// assColor converts "#rrggbb" to the ASS inline form "&HBBGGRR&".
// Unparseable colors fall back to white.
func assColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "&HFFFFFF&"
	}
	var r, g, bb int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &bb); err != nil {
		return "&HFFFFFF&"
	}
	return fmt.Sprintf("&H%02X%02X%02X&", bb, g, r)
}

// formatASSTimestamp converts seconds to ASS timestamp format (h:mm:ss.cc)
func formatASSTimestamp(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int((seconds - float64(hours*3600)) / 60)
	secs := int(seconds) % 60
	centisecs := int((seconds - float64(int(seconds))) * 100)

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centisecs)
}
