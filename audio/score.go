package audio

import (
	"fightreel/config"
	"fightreel/fight"
)

const (
	whooshLen = 0.35
	thumpLen  = 0.2

	// whooshLag offsets the intro whoosh slightly behind the name slide-in.
	whooshLag = 0.05
)

// BuildScore mixes the full soundtrack for a storyboard: a quiet constant
// tone under everything, a whoosh as the names slide in, and a thump on
// every impact.
func BuildScore(sb *fight.Storyboard) *Track {
	tr := NewTrack(sb.Duration)

	tr.Place(Tone(config.BaseToneFreq, sb.Duration, config.BaseToneVolume), 0)
	tr.Place(Whoosh(whooshLen), sb.IntroStart+whooshLag)

	thump := Thump(thumpLen)
	for _, it := range sb.ImpactTimes {
		tr.Place(thump, it)
	}

	return tr
}
