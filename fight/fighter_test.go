package fight

import (
	"math/rand"
	"testing"
)

func TestRandomMatchupDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		m := RandomMatchup(rng)
		if m.Left.Name == m.Right.Name {
			t.Fatalf("draw %d returned the same fighter twice: %s", i, m.Left.Name)
		}
		if _, ok := lookup(m.Left.Name); !ok {
			t.Fatalf("left fighter %q not in roster", m.Left.Name)
		}
		if _, ok := lookup(m.Right.Name); !ok {
			t.Fatalf("right fighter %q not in roster", m.Right.Name)
		}
	}
}

func TestRandomMatchupCoversRoster(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		m := RandomMatchup(rng)
		seen[m.Left.Name] = true
		seen[m.Right.Name] = true
	}
	if len(seen) != len(Roster) {
		t.Fatalf("expected all %d fighters drawn eventually, got %d", len(Roster), len(seen))
	}
}

func TestMatchupFromNames(t *testing.T) {
	cases := []struct {
		name    string
		left    string
		right   string
		wantErr bool
	}{
		{"exact", "KAZE", "RYU", false},
		{"case insensitive", "kaze", "ryu", false},
		{"trims whitespace", " AKIRA ", "SHIN", false},
		{"unknown left", "GOKU", "RYU", true},
		{"unknown right", "KAZE", "GOKU", true},
		{"same fighter", "REI", "rei", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := MatchupFromNames(c.left, c.right)
			if c.wantErr {
				if err == nil {
					t.Fatalf("MatchupFromNames(%q, %q) expected error, got %+v", c.left, c.right, m)
				}
				return
			}
			if err != nil {
				t.Fatalf("MatchupFromNames(%q, %q) error: %v", c.left, c.right, err)
			}
			if m.Left.Color == "" || m.Right.Color == "" {
				t.Fatalf("resolved fighters missing colors: %+v", m)
			}
		})
	}
}

func TestVersusLabel(t *testing.T) {
	m, err := MatchupFromNames("KAZE", "RYU")
	if err != nil {
		t.Fatalf("MatchupFromNames error: %v", err)
	}
	if got := m.VersusLabel(); got != "KAZE vs RYU" {
		t.Fatalf("VersusLabel() = %q", got)
	}
}
