package driven

import (
	"context"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// AttachmentStore handles media library attachment persistence (PostgreSQL).
type AttachmentStore interface {
	// Insert creates an attachment record and returns its ID.
	Insert(ctx context.Context, attachment *domain.Attachment) (int64, error)

	// Get retrieves an attachment by ID.
	Get(ctx context.Context, id int64) (*domain.Attachment, error)

	// UpdateMetadata replaces the attachment's metadata document.
	UpdateMetadata(ctx context.Context, id int64, metadata map[string]any) error

	// SetAltText sets the attachment's accessible alt text.
	SetAltText(ctx context.Context, id int64, altText string) error
}

// ContentStore resolves content entries referenced by usage reports.
type ContentStore interface {
	// GetPost retrieves a post by ID. domain.ErrNotFound when it
	// does not exist.
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
}
