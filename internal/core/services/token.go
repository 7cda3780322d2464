package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driving"
)

// Ensure tokenService implements TokenProvider
var _ driving.TokenProvider = (*tokenService)(nil)

// tokenService obtains Mediaflow access tokens: cache first, then a
// refresh-token exchange. No retries - a failed exchange means the
// integration is unusable for this request and callers report unauthorized.
type tokenService struct {
	cache    driven.TokenCache
	resolver *ConfigResolver
	api      driven.MediaflowAPI
	logger   *slog.Logger
}

// NewTokenService creates a TokenProvider.
func NewTokenService(
	cache driven.TokenCache,
	resolver *ConfigResolver,
	api driven.MediaflowAPI,
	logger *slog.Logger,
) driving.TokenProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &tokenService{
		cache:    cache,
		resolver: resolver,
		api:      api,
		logger:   logger,
	}
}

// AccessToken returns a valid access token, exchanging the refresh token on
// cache miss. Two concurrent misses may both exchange; both tokens are valid
// and the last write wins.
func (s *tokenService) AccessToken(ctx context.Context) (string, error) {
	token, err := s.cache.Get(ctx)
	if err == nil && token != "" {
		return token, nil
	}
	if err != nil && err != domain.ErrNotFound {
		// Cache trouble is not fatal; fall through to a fresh exchange.
		s.logger.Warn("token cache read failed", "error", err)
	}

	creds, err := s.resolver.Credentials(ctx)
	if err != nil {
		return "", err
	}
	if !creds.Complete() {
		return "", domain.ErrNoAccessToken
	}

	resp, err := s.api.ExchangeToken(ctx, creds)
	if err != nil {
		s.logger.Warn("token exchange failed", "error", err)
		return "", domain.ErrNoAccessToken
	}
	if resp.AccessToken == "" {
		return "", domain.ErrNoAccessToken
	}

	ttl := time.Duration(resp.ExpiresIn) * time.Second
	if err := s.cache.Set(ctx, resp.AccessToken, ttl); err != nil {
		s.logger.Warn("token cache write failed", "error", err)
	}

	return resp.AccessToken, nil
}
