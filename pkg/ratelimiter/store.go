package ratelimiter

import (
	"context"
	"time"
)

// Store persists bucket state.
type Store interface {
	// Take refills the bucket for key and removes tokens if at least that many
	// are available. A zero token count only reports the current state.
	Take(ctx context.Context, key string, tokens int, config Config) (allowed bool, remaining int, resetAt time.Time, err error)

	// Reset forgets the bucket for key.
	Reset(ctx context.Context, key string) error
}
