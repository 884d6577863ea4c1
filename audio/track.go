package audio

// Track is a fixed-length mono mix buffer clips are placed into.
type Track struct {
	samples []float64
}

// NewTrack allocates a silent track of the given duration in seconds.
func NewTrack(duration float64) *Track {
	return &Track{samples: make([]float64, durationToSamples(duration))}
}

// Place mixes clip additively into the track starting at the given offset
// in seconds. Samples past the end of the track are dropped.
func (tr *Track) Place(clip Clip, at float64) {
	start := durationToSamples(at)
	for i, s := range clip {
		idx := start + i
		if idx < 0 {
			continue
		}
		if idx >= len(tr.samples) {
			break
		}
		tr.samples[idx] += s
	}
}

// Samples returns the raw mix buffer. Values may exceed [-1, 1]; the WAV
// encoder clamps on write.
func (tr *Track) Samples() []float64 {
	return tr.samples
}
