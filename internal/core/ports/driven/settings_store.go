package driven

import (
	"context"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// SettingsStore persists the Mediaflow integration settings (PostgreSQL).
// Secret fields are encrypted at rest by the adapter.
type SettingsStore interface {
	// GetSettings retrieves the current settings. An empty Settings value is
	// returned when nothing has been saved yet.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// SaveSettings persists the settings.
	SaveSettings(ctx context.Context, settings *domain.Settings) error
}
