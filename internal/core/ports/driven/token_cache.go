package driven

import (
	"context"
	"time"
)

// TokenCache holds the single cached Mediaflow access token. It is the only
// cross-request shared state in the core: Set must replace the slot
// atomically so a concurrent Get never observes a half-written entry.
type TokenCache interface {
	// Get returns the cached token. domain.ErrNotFound is returned when the
	// slot is empty or the entry has passed its TTL.
	Get(ctx context.Context) (string, error)

	// Set stores a token for the given TTL, replacing any existing entry.
	Set(ctx context.Context, token string, ttl time.Duration) error

	// Invalidate clears the slot. Called whenever credentials change.
	Invalidate(ctx context.Context) error
}
