package mocks

import (
	"context"
	"sync"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// MockAttachmentStore is a mock implementation of AttachmentStore for testing
type MockAttachmentStore struct {
	mu          sync.Mutex
	nextID      int64
	attachments map[int64]*domain.Attachment

	// InsertErr, when set, is returned by Insert
	InsertErr error
	// MetadataErr, when set, is returned by UpdateMetadata
	MetadataErr error
	// AltTextErr, when set, is returned by SetAltText
	AltTextErr error
}

// NewMockAttachmentStore creates a new MockAttachmentStore
func NewMockAttachmentStore() *MockAttachmentStore {
	return &MockAttachmentStore{
		nextID:      1,
		attachments: make(map[int64]*domain.Attachment),
	}
}

func (m *MockAttachmentStore) Insert(ctx context.Context, attachment *domain.Attachment) (int64, error) {
	if m.InsertErr != nil {
		return 0, m.InsertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	copied := *attachment
	copied.ID = id
	m.attachments[id] = &copied
	return id, nil
}

func (m *MockAttachmentStore) Get(ctx context.Context, id int64) (*domain.Attachment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attachments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (m *MockAttachmentStore) UpdateMetadata(ctx context.Context, id int64, metadata map[string]any) error {
	if m.MetadataErr != nil {
		return m.MetadataErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attachments[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Metadata = metadata
	return nil
}

func (m *MockAttachmentStore) SetAltText(ctx context.Context, id int64, altText string) error {
	if m.AltTextErr != nil {
		return m.AltTextErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attachments[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.AltText = altText
	return nil
}

// MockContentStore is a mock implementation of ContentStore for testing
type MockContentStore struct {
	mu    sync.RWMutex
	posts map[int64]*domain.Post
}

// NewMockContentStore creates a new MockContentStore
func NewMockContentStore() *MockContentStore {
	return &MockContentStore{
		posts: make(map[int64]*domain.Post),
	}
}

// AddPost seeds a post
func (m *MockContentStore) AddPost(post *domain.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[post.ID] = post
}

func (m *MockContentStore) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	post, ok := m.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return post, nil
}
