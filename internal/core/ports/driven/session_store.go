package driven

import (
	"context"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// SessionStore handles session persistence (Redis when configured,
// PostgreSQL otherwise).
type SessionStore interface {
	// Save stores a session with TTL based on ExpiresAt
	Save(ctx context.Context, session *domain.Session) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Delete deletes a session
	Delete(ctx context.Context, id string) error

	// DeleteByUser deletes all sessions for a user (logout everywhere)
	DeleteByUser(ctx context.Context, userID string) error
}
