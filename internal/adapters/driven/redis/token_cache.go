package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TokenCache = (*TokenCache)(nil)

// tokenKey is the single cache slot for the Mediaflow access token.
const tokenKey = "mediaflow:access_token"

// TokenCache implements driven.TokenCache using Redis. A single SET with
// expiry gives the atomic-replace guarantee; Redis handles TTL expiry.
type TokenCache struct {
	client *redis.Client
}

// NewTokenCache creates a Redis-backed TokenCache
func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

// Get returns the cached token, or domain.ErrNotFound when the slot is
// empty or expired.
func (c *TokenCache) Get(ctx context.Context) (string, error) {
	token, err := c.client.Get(ctx, tokenKey).Result()
	if err == redis.Nil {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Set stores the token with the given TTL, replacing any existing entry.
func (c *TokenCache) Set(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// A token without lifetime is useless; don't cache it.
		return nil
	}
	return c.client.Set(ctx, tokenKey, token, ttl).Err()
}

// Invalidate clears the slot.
func (c *TokenCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, tokenKey).Err()
}
