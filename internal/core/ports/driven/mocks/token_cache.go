package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// MockTokenCache is a mock implementation of TokenCache for testing.
// It records calls and ignores TTL expiry.
type MockTokenCache struct {
	mu    sync.Mutex
	token string

	SetCalls        int
	InvalidateCalls int
	LastTTL         time.Duration

	// GetErr, when set, is returned by Get
	GetErr error
	// SetErr, when set, is returned by Set
	SetErr error
}

// NewMockTokenCache creates a new MockTokenCache
func NewMockTokenCache() *MockTokenCache {
	return &MockTokenCache{}
}

func (m *MockTokenCache) Get(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", m.GetErr
	}
	if m.token == "" {
		return "", domain.ErrNotFound
	}
	return m.token, nil
}

func (m *MockTokenCache) Set(ctx context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	m.LastTTL = ttl
	if m.SetErr != nil {
		return m.SetErr
	}
	m.token = token
	return nil
}

func (m *MockTokenCache) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvalidateCalls++
	m.token = ""
	return nil
}
