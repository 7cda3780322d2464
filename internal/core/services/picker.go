package services

import (
	"context"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driving"
)

// Ensure pickerService implements PickerService
var _ driving.PickerService = (*pickerService)(nil)

// PickerConfigOptions carries the deployment-level values baked into the
// picker bootstrap payload.
type PickerConfigOptions struct {
	Locale      string
	RestAPIURL  string
	SettingsURL string
}

// pickerService assembles the bootstrap payload for the file selector
// widget: access token, feature flags and the session's anti-forgery nonce.
type pickerService struct {
	tokens   driving.TokenProvider
	resolver *ConfigResolver
	opts     PickerConfigOptions
}

// NewPickerService creates a PickerService.
func NewPickerService(tokens driving.TokenProvider, resolver *ConfigResolver, opts PickerConfigOptions) driving.PickerService {
	return &pickerService{
		tokens:   tokens,
		resolver: resolver,
		opts:     opts,
	}
}

// Config returns the picker bootstrap configuration. A missing token is not
// an error here: the widget renders its configuration notice client-side.
func (s *pickerService) Config(ctx context.Context, authCtx *domain.AuthContext) (*driving.PickerConfig, error) {
	token, err := s.tokens.AccessToken(ctx)
	if err != nil && err != domain.ErrNoAccessToken {
		return nil, err
	}

	forceAlt, err := s.resolver.ForceAltText(ctx)
	if err != nil {
		return nil, err
	}

	return &driving.PickerConfig{
		AccessToken:  token,
		ForceAltText: forceAlt,
		Locale:       normalizeLocale(s.opts.Locale),
		RestAPIURL:   s.opts.RestAPIURL,
		SettingsURL:  s.opts.SettingsURL,
		User:         authCtx.Name,
		Nonce:        authCtx.Nonce,
	}, nil
}

// normalizeLocale passes Swedish through and falls back to US English,
// the two locales the selector widget ships.
func normalizeLocale(locale string) string {
	if locale == "sv_SE" {
		return "sv_SE"
	}
	return "en_US"
}
