package services

import (
	"context"
	"os"
	"strings"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// envPrefix prefixes settings keys to form their environment override names,
// e.g. client_id -> MEDIAFLOW_CLIENT_ID.
const envPrefix = "MEDIAFLOW_"

// ConfigResolver resolves Mediaflow configuration values. Environment
// overrides win unconditionally over persisted settings; resolution is
// per-key, but the presence of any recognised environment variable marks the
// whole settings form read-only for display.
type ConfigResolver struct {
	settingsStore driven.SettingsStore

	// lookupEnv is swappable for tests; defaults to os.LookupEnv.
	lookupEnv func(string) (string, bool)
}

// NewConfigResolver creates a ConfigResolver backed by the settings store.
func NewConfigResolver(settingsStore driven.SettingsStore) *ConfigResolver {
	return &ConfigResolver{
		settingsStore: settingsStore,
		lookupEnv:     os.LookupEnv,
	}
}

// Resolve returns the value for a settings key, or "" when absent.
func (r *ConfigResolver) Resolve(ctx context.Context, key string) (string, error) {
	if value, ok := r.lookupEnv(envKey(key)); ok {
		return value, nil
	}

	settings, err := r.settingsStore.GetSettings(ctx)
	if err != nil {
		return "", err
	}

	return settings.Value(key), nil
}

// EnvManaged reports whether any recognised environment override is set.
func (r *ConfigResolver) EnvManaged() bool {
	for _, key := range domain.SettingKeys {
		if _, ok := r.lookupEnv(envKey(key)); ok {
			return true
		}
	}
	return false
}

// Credentials resolves the full credential set key by key.
func (r *ConfigResolver) Credentials(ctx context.Context) (domain.Credentials, error) {
	var creds domain.Credentials
	var err error

	if creds.ClientID, err = r.Resolve(ctx, domain.SettingClientID); err != nil {
		return domain.Credentials{}, err
	}
	if creds.ClientSecret, err = r.Resolve(ctx, domain.SettingClientSecret); err != nil {
		return domain.Credentials{}, err
	}
	if creds.RefreshToken, err = r.Resolve(ctx, domain.SettingRefreshToken); err != nil {
		return domain.Credentials{}, err
	}

	forceAlt, err := r.Resolve(ctx, domain.SettingForceAltText)
	if err != nil {
		return domain.Credentials{}, err
	}
	creds.ForceAltText = parseFlag(forceAlt)

	return creds, nil
}

// ForceAltText resolves the force_alt_text flag.
func (r *ConfigResolver) ForceAltText(ctx context.Context) (bool, error) {
	value, err := r.Resolve(ctx, domain.SettingForceAltText)
	if err != nil {
		return false, err
	}
	return parseFlag(value), nil
}

func envKey(key string) string {
	return envPrefix + strings.ToUpper(key)
}

// parseFlag accepts the option encoding "1" plus common env spellings.
func parseFlag(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
