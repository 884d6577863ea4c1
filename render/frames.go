package render

import (
	"io"
	"math"

	"fightreel/fight"
)

// Background palettes as RGB.
var (
	introBG  = [3]byte{10, 10, 18}
	actionBG = [3]byte{15, 8, 24}
)

// FrameSource procedurally renders the raw RGB24 frames of a storyboard.
// It implements io.Reader so the encoder can stream it straight into
// ffmpeg's stdin as rawvideo.
type FrameSource struct {
	sb     *fight.Storyboard
	width  int
	height int
	fps    int

	total int // frame count
	next  int // next frame index to render
	buf   []byte
	off   int
}

// NewFrameSource prepares a frame stream for the given dimensions.
func NewFrameSource(sb *fight.Storyboard, width, height, fps int) *FrameSource {
	return &FrameSource{
		sb:     sb,
		width:  width,
		height: height,
		fps:    fps,
		total:  int(sb.Duration * float64(fps)),
	}
}

// FrameCount returns the number of frames the source will emit.
func (s *FrameSource) FrameCount() int { return s.total }

// FrameSize returns the byte length of one RGB24 frame.
func (s *FrameSource) FrameSize() int { return s.width * s.height * 3 }

// Read implements io.Reader over the concatenated frames.
func (s *FrameSource) Read(p []byte) (int, error) {
	if s.off >= len(s.buf) {
		if s.next >= s.total {
			return 0, io.EOF
		}
		t := float64(s.next) / float64(s.fps)
		if s.buf == nil {
			s.buf = make([]byte, s.FrameSize())
		}
		s.RenderFrame(t, s.buf)
		s.next++
		s.off = 0
	}

	n := copy(p, s.buf[s.off:])
	s.off += n
	return n, nil
}

// RenderFrame draws the frame at time t into dst, which must hold
// FrameSize() bytes.
func (s *FrameSource) RenderFrame(t float64, dst []byte) {
	// Impact flashes override everything.
	if s.sb.InFlash(t) {
		for i := range dst {
			dst[i] = 255
		}
		return
	}

	bg := introBG
	if s.sb.InAction(t) {
		bg = actionBG
	}
	for i := 0; i < len(dst); i += 3 {
		dst[i] = bg[0]
		dst[i+1] = bg[1]
		dst[i+2] = bg[2]
	}

	for _, pass := range s.sb.LinePasses {
		if t >= pass.Start && t < pass.End() {
			s.drawSpeedLines(dst, pass, t-pass.Start)
		}
	}
}

// drawSpeedLines overlays the diagonal streak pattern of one pass, shifted
// by speed*t, alpha-blended at the pass opacity.
func (s *FrameSource) drawSpeedLines(dst []byte, pass fight.LinePass, t float64) {
	period := s.width / pass.Density
	if period < 1 {
		period = 1
	}
	thickness := period / 3
	if thickness < 1 {
		thickness = 1
	}

	dx := math.Cos(pass.AngleDeg * math.Pi / 180)
	shift := int(pass.Speed * t)
	alpha := pass.Opacity

	for y := 0; y < s.height; y++ {
		diag := int(dx*float64(y)) + shift
		row := y * s.width * 3
		for x := 0; x < s.width; x++ {
			if mod(x+diag, period) >= thickness {
				continue
			}
			i := row + x*3
			dst[i] = blend(dst[i], alpha)
			dst[i+1] = blend(dst[i+1], alpha)
			dst[i+2] = blend(dst[i+2], alpha)
		}
	}
}

// blend mixes a white streak over the background at the given opacity.
func blend(bg byte, alpha float64) byte {
	return byte(float64(bg)*(1-alpha) + 255*alpha)
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
