package driving

import (
	"context"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// PickerConfig is the bootstrap payload for the Mediaflow file selector
// widget. An empty AccessToken tells the client to render its configuration
// notice instead of the selector.
type PickerConfig struct {
	AccessToken  string `json:"access_token"`
	ForceAltText bool   `json:"force_alt_text"`
	Locale       string `json:"locale"`
	RestAPIURL   string `json:"rest_api_url"`
	SettingsURL  string `json:"settings_url"`
	User         string `json:"user"`
	Nonce        string `json:"nonce"`
}

// PickerService assembles the picker bootstrap configuration.
type PickerService interface {
	Config(ctx context.Context, authCtx *domain.AuthContext) (*PickerConfig, error)
}
