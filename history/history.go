package history

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"fightreel/fight"
)

// Config configures the Redis-backed render history.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RenderHistory remembers which matchups were already published, so a
// rerun on the same day does not upload the same fight twice. Best
// effort: callers treat errors as "not seen".
type RenderHistory struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFromEnv builds a RenderHistory from REDIS_ADDR, REDIS_PASS and
// HISTORY_TTL_SECONDS (default 48h).
func NewFromEnv() (*RenderHistory, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ttl := 48 * time.Hour
	if t := os.Getenv("HISTORY_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	return New(Config{Addr: addr, Password: os.Getenv("REDIS_PASS"), TTL: ttl})
}

// New creates a RenderHistory and verifies connectivity.
func New(cfg Config) (*RenderHistory, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RenderHistory{client: client, ttl: cfg.TTL}, nil
}

// Close closes the underlying Redis client.
func (h *RenderHistory) Close() error {
	return h.client.Close()
}

// MarkPublished records key and reports whether this was its first
// publication (SET NX semantics).
func (h *RenderHistory) MarkPublished(ctx context.Context, key string) (bool, error) {
	first, err := h.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), h.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("history SETNX failed: %w", err)
	}
	return first, nil
}

// Key derives the history key for a matchup on a given day.
func Key(day time.Time, m fight.Matchup) string {
	return fmt.Sprintf("fightreel:published:%s:%s-%s",
		day.Format("2006-01-02"), m.Left.Name, m.Right.Name)
}
