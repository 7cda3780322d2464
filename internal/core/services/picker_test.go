package services

import (
	"context"
	"errors"
	"testing"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven/mocks"
)

func testAuthContext() *domain.AuthContext {
	return &domain.AuthContext{
		UserID:    "user-1",
		Email:     "editor@example.com",
		Name:      "Editor Name",
		Role:      domain.RoleEditor,
		SessionID: "session-1",
		Nonce:     "nonce-abc",
	}
}

func TestPickerService_Config(t *testing.T) {
	resolver := newTestResolver(mocks.NewMockSettingsStore(), map[string]string{
		"MEDIAFLOW_FORCE_ALT_TEXT": "1",
	})
	svc := NewPickerService(&staticTokens{token: "tok-123"}, resolver, PickerConfigOptions{
		Locale:      "sv_SE",
		RestAPIURL:  "http://localhost:8080/api/v1",
		SettingsURL: "/settings",
	})

	cfg, err := svc.Config(context.Background(), testAuthContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AccessToken != "tok-123" {
		t.Errorf("expected access token, got %q", cfg.AccessToken)
	}
	if !cfg.ForceAltText {
		t.Error("expected force alt text flag")
	}
	if cfg.Locale != "sv_SE" {
		t.Errorf("expected sv_SE locale, got %q", cfg.Locale)
	}
	if cfg.User != "Editor Name" {
		t.Errorf("expected user display name, got %q", cfg.User)
	}
	if cfg.Nonce != "nonce-abc" {
		t.Errorf("expected session nonce, got %q", cfg.Nonce)
	}
	if cfg.RestAPIURL != "http://localhost:8080/api/v1" {
		t.Errorf("unexpected rest api url: %q", cfg.RestAPIURL)
	}
}

func TestPickerService_NoTokenYieldsEmptyToken(t *testing.T) {
	resolver := newTestResolver(mocks.NewMockSettingsStore(), map[string]string{})
	svc := NewPickerService(&staticTokens{err: domain.ErrNoAccessToken}, resolver, PickerConfigOptions{})

	cfg, err := svc.Config(context.Background(), testAuthContext())
	if err != nil {
		t.Fatalf("expected missing token to be tolerated, got %v", err)
	}
	if cfg.AccessToken != "" {
		t.Errorf("expected empty access token, got %q", cfg.AccessToken)
	}
}

func TestPickerService_OtherTokenErrorsPropagate(t *testing.T) {
	resolver := newTestResolver(mocks.NewMockSettingsStore(), map[string]string{})
	boom := errors.New("store down")
	svc := NewPickerService(&staticTokens{err: boom}, resolver, PickerConfigOptions{})

	_, err := svc.Config(context.Background(), testAuthContext())
	if !errors.Is(err, boom) {
		t.Errorf("expected underlying error, got %v", err)
	}
}

func TestPickerService_LocaleFallback(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"sv_SE", "sv_SE"},
		{"en_US", "en_US"},
		{"de_DE", "en_US"},
		{"", "en_US"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			resolver := newTestResolver(mocks.NewMockSettingsStore(), map[string]string{})
			svc := NewPickerService(&staticTokens{token: "t"}, resolver, PickerConfigOptions{Locale: tt.locale})

			cfg, err := svc.Config(context.Background(), testAuthContext())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Locale != tt.want {
				t.Errorf("locale %q: expected %q, got %q", tt.locale, tt.want, cfg.Locale)
			}
		})
	}
}
