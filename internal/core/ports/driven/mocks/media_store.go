package mocks

import (
	"context"
	"sync"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// MockDownloader is a mock implementation of Downloader for testing
type MockDownloader struct {
	mu    sync.Mutex
	Calls int

	// DownloadFunc, when set, overrides the default behaviour
	DownloadFunc func(ctx context.Context, url string) (string, error)
}

// NewMockDownloader creates a new MockDownloader
func NewMockDownloader() *MockDownloader {
	return &MockDownloader{}
}

func (m *MockDownloader) Download(ctx context.Context, url string) (string, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, url)
	}
	return "/tmp/mock-download", nil
}

// MockMediaStore is a mock implementation of MediaStore for testing
type MockMediaStore struct {
	mu            sync.Mutex
	SideloadCalls int

	// SideloadFunc, when set, overrides the default behaviour
	SideloadFunc func(ctx context.Context, tmpPath, filename string) (*driven.StoredFile, error)
	// MetadataErr, when set, is returned by GenerateMetadata
	MetadataErr error
}

// NewMockMediaStore creates a new MockMediaStore
func NewMockMediaStore() *MockMediaStore {
	return &MockMediaStore{}
}

func (m *MockMediaStore) Sideload(ctx context.Context, tmpPath, filename string) (*driven.StoredFile, error) {
	m.mu.Lock()
	m.SideloadCalls++
	m.mu.Unlock()
	if m.SideloadFunc != nil {
		return m.SideloadFunc(ctx, tmpPath, filename)
	}
	return &driven.StoredFile{
		Path: "/uploads/2026/08/" + filename,
		URL:  "http://localhost/uploads/2026/08/" + filename,
		Type: "image/jpeg",
		Size: 1024,
	}, nil
}

func (m *MockMediaStore) GenerateMetadata(ctx context.Context, stored *driven.StoredFile) (map[string]any, error) {
	if m.MetadataErr != nil {
		return nil, m.MetadataErr
	}
	return map[string]any{
		"file":      stored.Path,
		"filesize":  stored.Size,
		"mime_type": stored.Type,
	}, nil
}
