package mocks

import (
	"context"
	"sync"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// MockSettingsStore is a mock implementation of SettingsStore for testing
type MockSettingsStore struct {
	mu       sync.RWMutex
	settings domain.Settings

	// SaveErr, when set, is returned by SaveSettings
	SaveErr error
}

// NewMockSettingsStore creates a new MockSettingsStore
func NewMockSettingsStore() *MockSettingsStore {
	return &MockSettingsStore{}
}

func (m *MockSettingsStore) GetSettings(ctx context.Context) (*domain.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.settings
	return &s, nil
}

func (m *MockSettingsStore) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = *settings
	return nil
}
