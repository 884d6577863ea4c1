package audio

import (
	"math"

	"fightreel/config"
)

// Clip is mono float64 samples at unity gain, 44.1 kHz.
type Clip []float64

func durationToSamples(d float64) int {
	return int(d * float64(config.AudioSampleRate))
}

func sampleTime(i int) float64 {
	return float64(i) / float64(config.AudioSampleRate)
}

// Tone is a plain sine at freq Hz, scaled by vol.
func Tone(freq, dur, vol float64) Clip {
	buf := make(Clip, durationToSamples(dur))
	for i := range buf {
		t := sampleTime(i)
		buf[i] = vol * math.Sin(2*math.Pi*freq*t)
	}
	return buf
}

// Whoosh is a rising sweep: the instantaneous frequency climbs
// quadratically from 80 Hz over the clip.
func Whoosh(dur float64) Clip {
	buf := make(Clip, durationToSamples(dur))
	for i := range buf {
		t := sampleTime(i)
		buf[i] = 0.25 * math.Sin(2*math.Pi*(80+220*t*t)*t)
	}
	return buf
}

// Thump is a percussive hit: a downward pitch bend from 60 Hz with
// exponential decay.
func Thump(dur float64) Clip {
	buf := make(Clip, durationToSamples(dur))
	for i := range buf {
		t := sampleTime(i)
		buf[i] = 0.35 * math.Sin(2*math.Pi*(60*(1-t))*t) * math.Exp(-6*t)
	}
	return buf
}
