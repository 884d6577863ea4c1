package fight

import (
	"fmt"
	"math/rand"
	"strings"
)

// Fighter is a roster entry: display name plus accent color as "#rrggbb".
type Fighter struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Matchup pairs the two fighters of a single clip.
type Matchup struct {
	Left  Fighter `json:"left"`
	Right Fighter `json:"right"`
}

// Roster is the fixed cast fighters are drawn from.
var Roster = []Fighter{
	{Name: "KAZE", Color: "#ff3b3b"},
	{Name: "RYU", Color: "#35f0ff"},
	{Name: "AKIRA", Color: "#ffd23b"},
	{Name: "SHIN", Color: "#b05cff"},
	{Name: "YUMI", Color: "#7bff7b"},
	{Name: "REI", Color: "#ff7be7"},
}

// RandomMatchup draws two distinct fighters from the roster.
func RandomMatchup(rng *rand.Rand) Matchup {
	idx := rng.Perm(len(Roster))
	return Matchup{Left: Roster[idx[0]], Right: Roster[idx[1]]}
}

// MatchupFromNames resolves an explicit pairing, e.g. from an API request.
// Names are matched case-insensitively against the roster.
func MatchupFromNames(left, right string) (Matchup, error) {
	l, ok := lookup(left)
	if !ok {
		return Matchup{}, fmt.Errorf("unknown fighter: %s", left)
	}
	r, ok := lookup(right)
	if !ok {
		return Matchup{}, fmt.Errorf("unknown fighter: %s", right)
	}
	if l.Name == r.Name {
		return Matchup{}, fmt.Errorf("fighters must be distinct: %s", l.Name)
	}
	return Matchup{Left: l, Right: r}, nil
}

func lookup(name string) (Fighter, bool) {
	for _, f := range Roster {
		if strings.EqualFold(f.Name, strings.TrimSpace(name)) {
			return f, true
		}
	}
	return Fighter{}, false
}

// VersusLabel is the "KAZE vs RYU" form used in logs and descriptions.
func (m Matchup) VersusLabel() string {
	return m.Left.Name + " vs " + m.Right.Name
}
