package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.AttachmentStore = (*AttachmentStore)(nil)

// AttachmentStore implements driven.AttachmentStore using PostgreSQL
type AttachmentStore struct {
	db *DB
}

// NewAttachmentStore creates a new AttachmentStore
func NewAttachmentStore(db *DB) *AttachmentStore {
	return &AttachmentStore{db: db}
}

// Insert creates an attachment record and returns its ID
func (s *AttachmentStore) Insert(ctx context.Context, attachment *domain.Attachment) (int64, error) {
	query := `
		INSERT INTO attachments (guid, file_path, mime_type, title, content, status, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	now := time.Now()

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		attachment.GUID,
		attachment.FilePath,
		attachment.MimeType,
		attachment.Title,
		attachment.Content,
		attachment.Status,
		attachment.ParentID,
		now,
		now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert attachment: %w", err)
	}

	return id, nil
}

// Get retrieves an attachment by ID
func (s *AttachmentStore) Get(ctx context.Context, id int64) (*domain.Attachment, error) {
	query := `
		SELECT id, guid, file_path, mime_type, title, content, status, parent_id, metadata, alt_text, created_at, updated_at
		FROM attachments
		WHERE id = $1
	`

	var attachment domain.Attachment
	var metadata []byte
	var altText sql.NullString

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&attachment.ID,
		&attachment.GUID,
		&attachment.FilePath,
		&attachment.MimeType,
		&attachment.Title,
		&attachment.Content,
		&attachment.Status,
		&attachment.ParentID,
		&metadata,
		&altText,
		&attachment.CreatedAt,
		&attachment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &attachment.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attachment metadata: %w", err)
		}
	}
	attachment.AltText = altText.String

	return &attachment, nil
}

// UpdateMetadata replaces the attachment's metadata document
func (s *AttachmentStore) UpdateMetadata(ctx context.Context, id int64, metadata map[string]any) error {
	data, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal attachment metadata: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE attachments SET metadata = $1, updated_at = $2 WHERE id = $3`,
		data, time.Now(), id,
	)
	if err != nil {
		return err
	}

	return checkAffected(result)
}

// SetAltText sets the attachment's accessible alt text
func (s *AttachmentStore) SetAltText(ctx context.Context, id int64, altText string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE attachments SET alt_text = $1, updated_at = $2 WHERE id = $3`,
		altText, time.Now(), id,
	)
	if err != nil {
		return err
	}

	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
