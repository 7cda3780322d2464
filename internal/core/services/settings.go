package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driving"
)

// Ensure settingsService implements SettingsService
var _ driving.SettingsService = (*settingsService)(nil)

// settingsService manages the persisted Mediaflow settings. Every
// successful write invalidates the token cache so the next request performs
// a fresh exchange with the new credentials.
type settingsService struct {
	store    driven.SettingsStore
	resolver *ConfigResolver
	cache    driven.TokenCache
	logger   *slog.Logger
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(
	store driven.SettingsStore,
	resolver *ConfigResolver,
	cache driven.TokenCache,
	logger *slog.Logger,
) driving.SettingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &settingsService{
		store:    store,
		resolver: resolver,
		cache:    cache,
		logger:   logger,
	}
}

// Get retrieves the current settings, masked for display.
func (s *settingsService) Get(ctx context.Context) (*driving.SettingsView, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return s.view(settings), nil
}

// Update persists changed fields and invalidates the token cache.
func (s *settingsService) Update(ctx context.Context, updaterID string, req driving.UpdateSettingsRequest) (*driving.SettingsView, error) {
	if s.resolver.EnvManaged() {
		return nil, domain.ErrEnvManaged
	}

	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.ClientID != nil {
		settings.ClientID = *req.ClientID
	}
	if req.ClientSecret != nil {
		settings.ClientSecret = *req.ClientSecret
	}
	if req.RefreshToken != nil {
		settings.RefreshToken = *req.RefreshToken
	}
	if req.ForceAltText != nil {
		settings.ForceAltText = *req.ForceAltText
	}

	settings.UpdatedAt = time.Now()
	settings.UpdatedBy = updaterID

	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	// Credentials changed; drop the cached token.
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("token cache invalidation failed", "error", err)
	}

	return s.view(settings), nil
}

func (s *settingsService) view(settings *domain.Settings) *driving.SettingsView {
	return &driving.SettingsView{
		ClientID:        settings.ClientID,
		HasClientSecret: settings.ClientSecret != "",
		HasRefreshToken: settings.RefreshToken != "",
		ForceAltText:    settings.ForceAltText,
		EnvManaged:      s.resolver.EnvManaged(),
		UpdatedAt:       settings.UpdatedAt,
	}
}
