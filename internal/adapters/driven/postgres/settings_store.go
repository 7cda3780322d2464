package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore implements driven.SettingsStore using PostgreSQL. The
// settings live in a single row; client_secret and refresh_token are stored
// as encrypted blobs when an encryptor is configured, plaintext otherwise.
type SettingsStore struct {
	db        *DB
	encryptor *SecretEncryptor // may be nil
}

// NewSettingsStore creates a new SettingsStore. encryptor may be nil to
// store secrets unencrypted.
func NewSettingsStore(db *DB, encryptor *SecretEncryptor) *SettingsStore {
	return &SettingsStore{db: db, encryptor: encryptor}
}

// GetSettings retrieves the current settings. Returns empty settings when
// nothing has been saved yet.
func (s *SettingsStore) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT client_id, client_secret, refresh_token, force_alt_text, updated_at, updated_by
		FROM mediaflow_settings
		WHERE id = 1
	`

	var settings domain.Settings
	var clientSecret, refreshToken []byte
	var updatedBy sql.NullString

	err := s.db.QueryRowContext(ctx, query).Scan(
		&settings.ClientID,
		&clientSecret,
		&refreshToken,
		&settings.ForceAltText,
		&settings.UpdatedAt,
		&updatedBy,
	)
	if err == sql.ErrNoRows {
		return &domain.Settings{}, nil
	}
	if err != nil {
		return nil, err
	}

	settings.UpdatedBy = updatedBy.String

	if settings.ClientSecret, err = s.decodeSecret(clientSecret); err != nil {
		return nil, fmt.Errorf("decode client secret: %w", err)
	}
	if settings.RefreshToken, err = s.decodeSecret(refreshToken); err != nil {
		return nil, fmt.Errorf("decode refresh token: %w", err)
	}

	return &settings, nil
}

// SaveSettings persists the settings.
func (s *SettingsStore) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	clientSecret, err := s.encodeSecret(settings.ClientSecret)
	if err != nil {
		return fmt.Errorf("encode client secret: %w", err)
	}
	refreshToken, err := s.encodeSecret(settings.RefreshToken)
	if err != nil {
		return fmt.Errorf("encode refresh token: %w", err)
	}

	query := `
		INSERT INTO mediaflow_settings (id, client_id, client_secret, refresh_token, force_alt_text, updated_at, updated_by)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			client_id = EXCLUDED.client_id,
			client_secret = EXCLUDED.client_secret,
			refresh_token = EXCLUDED.refresh_token,
			force_alt_text = EXCLUDED.force_alt_text,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by
	`

	_, err = s.db.ExecContext(ctx, query,
		settings.ClientID,
		clientSecret,
		refreshToken,
		settings.ForceAltText,
		settings.UpdatedAt,
		settings.UpdatedBy,
	)
	return err
}

func (s *SettingsStore) encodeSecret(value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	if s.encryptor == nil {
		return []byte(value), nil
	}
	return s.encryptor.EncryptString(value)
}

func (s *SettingsStore) decodeSecret(blob []byte) (string, error) {
	if len(blob) == 0 {
		return "", nil
	}
	if s.encryptor == nil {
		return string(blob), nil
	}
	return s.encryptor.DecryptString(blob)
}
