package memory

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TokenCache = (*TokenCache)(nil)

// TokenCache implements driven.TokenCache with an in-process slot. Used when
// no Redis is configured. The mutex makes Set an atomic replace; expiry is
// checked lazily on Get.
type TokenCache struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewTokenCache creates an in-memory TokenCache
func NewTokenCache() *TokenCache {
	return &TokenCache{now: time.Now}
}

// NewTokenCacheWithClock creates a TokenCache with an injectable clock.
func NewTokenCacheWithClock(now func() time.Time) *TokenCache {
	return &TokenCache{now: now}
}

// Get returns the cached token, or domain.ErrNotFound when the slot is
// empty or expired.
func (c *TokenCache) Get(ctx context.Context) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == "" || c.now().After(c.expiresAt) {
		return "", domain.ErrNotFound
	}
	return c.token, nil
}

// Set stores the token with the given TTL, replacing any existing entry.
func (c *TokenCache) Set(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.expiresAt = c.now().Add(ttl)
	return nil
}

// Invalidate clears the slot.
func (c *TokenCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiresAt = time.Time{}
	return nil
}
