package render

import (
	"strings"
	"testing"

	"fightreel/fight"
)

func testOverlay(t *testing.T) *Overlay {
	t.Helper()
	m, err := fight.MatchupFromNames("KAZE", "RYU")
	if err != nil {
		t.Fatalf("MatchupFromNames error: %v", err)
	}
	return &Overlay{
		Storyboard: fight.NewStoryboard(),
		Matchup:    m,
		Title:      "ANIME FIGHT – Mar 07",
		Width:      720,
		Height:     1280,
		FPS:        24,
	}
}

func TestOverlayBuild(t *testing.T) {
	o := testOverlay(t)
	script := o.Build()

	for _, want := range []string{
		"[Script Info]",
		"PlayResX: 720",
		"PlayResY: 1280",
		"[V4+ Styles]",
		"[Events]",
		"ANIME FIGHT – Mar 07",
		"KAZE",
		"RYU",
		"}VS\n",
		"\\fad(200,200)",
		"\\move(",
		"\\fscx-100",
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("overlay missing %q", want)
		}
	}

	// Fighter accent colors arrive as inline ASS color overrides.
	if !strings.Contains(script, "\\c&H3B3BFF&") {
		t.Fatalf("missing KAZE color override")
	}
	if !strings.Contains(script, "\\c&HFFF035&") {
		t.Fatalf("missing RYU color override")
	}
}

func TestOverlaySlashEventsPerFrame(t *testing.T) {
	o := testOverlay(t)
	script := o.Build()

	slashEvents := 0
	for _, line := range strings.Split(script, "\n") {
		if strings.Contains(line, ",Slash,") {
			slashEvents++
		}
	}

	sb := o.Storyboard
	want := 0
	for _, sl := range sb.Slashes {
		want += int(sl.Duration * float64(o.FPS))
	}
	if slashEvents != want {
		t.Fatalf("slash events = %d, want %d", slashEvents, want)
	}
}

func TestShakeOffsetDeterministic(t *testing.T) {
	x1, y1 := shakeOffset(4.9, 20)
	x2, y2 := shakeOffset(4.9, 20)
	if x1 != x2 || y1 != y2 {
		t.Fatalf("shake offset not deterministic: (%d,%d) vs (%d,%d)", x1, y1, x2, y2)
	}
	if x1 < -20 || x1 > 20 || y1 < -20 || y1 > 20 {
		t.Fatalf("shake offset out of range: (%d,%d)", x1, y1)
	}
}

func TestASSColor(t *testing.T) {
	cases := []struct {
		hex  string
		want string
	}{
		{"#ff3b3b", "&H3B3BFF&"},
		{"#35f0ff", "&HFFF035&"},
		{"#ffffff", "&HFFFFFF&"},
		{"nonsense", "&HFFFFFF&"},
		{"#12345", "&HFFFFFF&"},
	}
	for _, c := range cases {
		t.Run(c.hex, func(t *testing.T) {
			if got := assColor(c.hex); got != c.want {
				t.Fatalf("assColor(%q) = %q, want %q", c.hex, got, c.want)
			}
		})
	}
}

func TestFormatASSTimestamp(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0:00:00.00"},
		{1.5, "0:00:01.50"},
		{61.25, "0:01:01.25"},
		{3600.5, "1:00:00.50"},
	}
	for _, c := range cases {
		if got := formatASSTimestamp(c.in); got != c.want {
			t.Fatalf("formatASSTimestamp(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
