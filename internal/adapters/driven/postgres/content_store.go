package postgres

import (
	"context"
	"database/sql"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ContentStore = (*ContentStore)(nil)

// ContentStore implements driven.ContentStore using PostgreSQL
type ContentStore struct {
	db *DB
}

// NewContentStore creates a new ContentStore
func NewContentStore(db *DB) *ContentStore {
	return &ContentStore{db: db}
}

// GetPost retrieves a post by ID
func (s *ContentStore) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	query := `SELECT id, title, permalink FROM posts WHERE id = $1`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Permalink,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}
