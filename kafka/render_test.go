package kafka

import (
	"context"
	"math/rand"
	"testing"
)

func TestResolveMatchup(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	t.Run("random when unnamed", func(t *testing.T) {
		m, err := resolveMatchup(&RenderRequest{UUID: "u"}, rng)
		if err != nil {
			t.Fatalf("resolveMatchup error: %v", err)
		}
		if m.Left.Name == m.Right.Name {
			t.Fatalf("random matchup not distinct: %+v", m)
		}
	})

	t.Run("explicit names", func(t *testing.T) {
		m, err := resolveMatchup(&RenderRequest{UUID: "u", Left: "shin", Right: "yumi"}, rng)
		if err != nil {
			t.Fatalf("resolveMatchup error: %v", err)
		}
		if m.Left.Name != "SHIN" || m.Right.Name != "YUMI" {
			t.Fatalf("wrong matchup: %+v", m)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, err := resolveMatchup(&RenderRequest{UUID: "u", Left: "GOKU", Right: "RYU"}, rng); err == nil {
			t.Fatalf("expected error for unknown fighter")
		}
	})
}

func TestTypedMessageHandler(t *testing.T) {
	processed := 0
	handler := &TypedMessageHandler[RenderRequest]{
		Validate: func(msg *RenderRequest) bool { return msg.UUID != "" },
		Process: func(ctx context.Context, msg *RenderRequest) error {
			processed++
			return nil
		},
		AlwaysMark: true,
	}

	cases := []struct {
		name     string
		payload  string
		wantMark bool
		wantRun  int
	}{
		{"valid", `{"uuid":"abc"}`, true, 1},
		{"invalid json marks", `{nope`, true, 1},
		{"validation failure marks", `{"left":"KAZE"}`, true, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mark, err := handler.HandleMessage(context.Background(), []byte(c.payload))
			if err != nil {
				t.Fatalf("HandleMessage error: %v", err)
			}
			if mark != c.wantMark {
				t.Fatalf("mark = %v, want %v", mark, c.wantMark)
			}
			if processed != c.wantRun {
				t.Fatalf("processed = %d, want %d", processed, c.wantRun)
			}
		})
	}
}
