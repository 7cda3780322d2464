package driving

import (
	"context"
	"time"
)

// UpdateSettingsRequest updates the persisted Mediaflow settings. Nil fields
// are left unchanged.
type UpdateSettingsRequest struct {
	ClientID     *string `json:"client_id,omitempty"`
	ClientSecret *string `json:"client_secret,omitempty"`
	RefreshToken *string `json:"refresh_token,omitempty"`
	ForceAltText *bool   `json:"force_alt_text,omitempty"`
}

// SettingsView is the masked representation returned by the API: the client
// ID is shown in clear, secrets are reduced to presence flags. EnvManaged
// signals the settings form must render read-only because at least one
// MEDIAFLOW_* environment variable is set.
type SettingsView struct {
	ClientID        string    `json:"client_id"`
	HasClientSecret bool      `json:"has_client_secret"`
	HasRefreshToken bool      `json:"has_refresh_token"`
	ForceAltText    bool      `json:"force_alt_text"`
	EnvManaged      bool      `json:"env_managed"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}

// SettingsService manages the Mediaflow integration settings (admin only).
type SettingsService interface {
	// Get retrieves the current settings, masked for display.
	Get(ctx context.Context) (*SettingsView, error)

	// Update persists changed fields and invalidates the token cache.
	// domain.ErrEnvManaged when environment variables control the settings.
	Update(ctx context.Context, updaterID string, req UpdateSettingsRequest) (*SettingsView, error)
}
