package services

import (
	"context"
	"testing"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven/mocks"
)

// fakeEnv builds a lookupEnv func backed by a map
func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func newTestResolver(store *mocks.MockSettingsStore, env map[string]string) *ConfigResolver {
	r := NewConfigResolver(store)
	r.lookupEnv = fakeEnv(env)
	return r
}

func TestConfigResolver_Resolve(t *testing.T) {
	store := mocks.NewMockSettingsStore()
	_ = store.SaveSettings(context.Background(), &domain.Settings{
		ClientID:     "stored-id",
		ClientSecret: "stored-secret",
		RefreshToken: "stored-refresh",
		ForceAltText: true,
	})

	tests := []struct {
		name string
		env  map[string]string
		key  string
		want string
	}{
		{
			name: "stored value when no override",
			env:  map[string]string{},
			key:  domain.SettingClientID,
			want: "stored-id",
		},
		{
			name: "environment override wins",
			env:  map[string]string{"MEDIAFLOW_CLIENT_ID": "env-id"},
			key:  domain.SettingClientID,
			want: "env-id",
		},
		{
			name: "empty override still wins",
			env:  map[string]string{"MEDIAFLOW_CLIENT_ID": ""},
			key:  domain.SettingClientID,
			want: "",
		},
		{
			name: "boolean encodes as 1",
			env:  map[string]string{},
			key:  domain.SettingForceAltText,
			want: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(store, tt.env)
			got, err := r.Resolve(context.Background(), tt.key)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConfigResolver_ResolutionIsPerKey(t *testing.T) {
	store := mocks.NewMockSettingsStore()
	_ = store.SaveSettings(context.Background(), &domain.Settings{
		ClientID:     "stored-id",
		ClientSecret: "stored-secret",
		RefreshToken: "stored-refresh",
	})

	// Only the secret is overridden; the other keys still come from the store
	r := newTestResolver(store, map[string]string{
		"MEDIAFLOW_CLIENT_SECRET": "env-secret",
	})

	creds, err := r.Credentials(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.ClientID != "stored-id" {
		t.Errorf("expected stored client ID, got %q", creds.ClientID)
	}
	if creds.ClientSecret != "env-secret" {
		t.Errorf("expected env client secret, got %q", creds.ClientSecret)
	}
	if creds.RefreshToken != "stored-refresh" {
		t.Errorf("expected stored refresh token, got %q", creds.RefreshToken)
	}
}

func TestConfigResolver_EnvManaged(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"no overrides", map[string]string{}, false},
		{"client id set", map[string]string{"MEDIAFLOW_CLIENT_ID": "x"}, true},
		{"force alt text set", map[string]string{"MEDIAFLOW_FORCE_ALT_TEXT": "1"}, true},
		{"empty value still counts", map[string]string{"MEDIAFLOW_REFRESH_TOKEN": ""}, true},
		{"unrecognised key ignored", map[string]string{"MEDIAFLOW_OTHER": "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(mocks.NewMockSettingsStore(), tt.env)
			if got := r.EnvManaged(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestConfigResolver_ForceAltText(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"option encoding", "1", true},
		{"true", "true", true},
		{"yes", "yes", true},
		{"on", "on", true},
		{"uppercase", "TRUE", true},
		{"empty", "", false},
		{"zero", "0", false},
		{"garbage", "banana", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(mocks.NewMockSettingsStore(), map[string]string{
				"MEDIAFLOW_FORCE_ALT_TEXT": tt.value,
			})
			got, err := r.ForceAltText(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("value %q: expected %v, got %v", tt.value, tt.want, got)
			}
		})
	}
}
