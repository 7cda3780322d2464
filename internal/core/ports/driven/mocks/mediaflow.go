package mocks

import (
	"context"
	"sync"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// Ensure MockMediaflowAPI implements MediaflowAPI
var _ driven.MediaflowAPI = (*MockMediaflowAPI)(nil)

// MockMediaflowAPI is a mock implementation of MediaflowAPI for testing.
// Behaviour is overridden through the function fields; calls are counted
// and the last payload recorded.
type MockMediaflowAPI struct {
	mu sync.Mutex

	ExchangeTokenFunc func(ctx context.Context, creds domain.Credentials) (*driven.TokenResponse, error)
	ReportUsageFunc   func(ctx context.Context, token string, fileID int64, payload driven.UsagePayload) (*driven.UpstreamResponse, error)

	ExchangeCalls int
	UsageCalls    int
	LastToken     string
	LastFileID    int64
	LastPayload   driven.UsagePayload
}

// NewMockMediaflowAPI creates a new MockMediaflowAPI
func NewMockMediaflowAPI() *MockMediaflowAPI {
	return &MockMediaflowAPI{}
}

func (m *MockMediaflowAPI) ExchangeToken(ctx context.Context, creds domain.Credentials) (*driven.TokenResponse, error) {
	m.mu.Lock()
	m.ExchangeCalls++
	m.mu.Unlock()
	if m.ExchangeTokenFunc != nil {
		return m.ExchangeTokenFunc(ctx, creds)
	}
	return &driven.TokenResponse{AccessToken: "mock-token", ExpiresIn: 3600}, nil
}

func (m *MockMediaflowAPI) ReportUsage(ctx context.Context, token string, fileID int64, payload driven.UsagePayload) (*driven.UpstreamResponse, error) {
	m.mu.Lock()
	m.UsageCalls++
	m.LastToken = token
	m.LastFileID = fileID
	m.LastPayload = payload
	m.mu.Unlock()
	if m.ReportUsageFunc != nil {
		return m.ReportUsageFunc(ctx, token, fileID, payload)
	}
	return &driven.UpstreamResponse{Status: 200, Body: []byte(`{"status":1}`)}, nil
}
