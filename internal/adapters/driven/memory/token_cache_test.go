package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// fakeClock is a manually advanced clock for expiry tests
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTokenCache_GetEmpty(t *testing.T) {
	cache := NewTokenCache()

	_, err := cache.Get(context.Background())
	if err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound for empty slot, got %v", err)
	}
}

func TestTokenCache_SetAndGet(t *testing.T) {
	cache := NewTokenCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "token-1", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "token-1" {
		t.Errorf("expected token-1, got %q", token)
	}
}

func TestTokenCache_SetReplacesExisting(t *testing.T) {
	cache := NewTokenCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "token-1", time.Hour)
	_ = cache.Set(ctx, "token-2", time.Hour)

	token, _ := cache.Get(ctx)
	if token != "token-2" {
		t.Errorf("expected the newer token, got %q", token)
	}
}

func TestTokenCache_Expiry(t *testing.T) {
	clock := newFakeClock()
	cache := NewTokenCacheWithClock(clock.Now)
	ctx := context.Background()

	_ = cache.Set(ctx, "token-1", 30*time.Second)

	if _, err := cache.Get(ctx); err != nil {
		t.Fatalf("expected token before expiry, got %v", err)
	}

	clock.Advance(31 * time.Second)

	if _, err := cache.Get(ctx); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestTokenCache_ZeroTTLNotCached(t *testing.T) {
	cache := NewTokenCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "token-1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cache.Get(ctx); err != domain.ErrNotFound {
		t.Errorf("expected zero TTL token not cached, got %v", err)
	}
}

func TestTokenCache_Invalidate(t *testing.T) {
	cache := NewTokenCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "token-1", time.Hour)

	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cache.Get(ctx); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound after invalidation, got %v", err)
	}
}

func TestTokenCache_ConcurrentAccess(t *testing.T) {
	cache := NewTokenCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = cache.Set(ctx, "token", time.Hour)
		}()
		go func() {
			defer wg.Done()
			_, _ = cache.Get(ctx)
		}()
	}
	wg.Wait()

	token, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "token" {
		t.Errorf("expected token, got %q", token)
	}
}
