package domain

import "time"

// Settings keys recognised by the configuration resolver. Each key can be
// overridden by a same-named environment variable prefixed with MEDIAFLOW_.
const (
	SettingClientID     = "client_id"
	SettingClientSecret = "client_secret"
	SettingRefreshToken = "refresh_token"
	SettingForceAltText = "force_alt_text"
)

// SettingKeys lists every recognised settings key.
var SettingKeys = []string{
	SettingClientID,
	SettingClientSecret,
	SettingRefreshToken,
	SettingForceAltText,
}

// Settings holds the persisted Mediaflow integration configuration.
// ClientSecret and RefreshToken are stored encrypted at rest.
type Settings struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"-"` // Never serialize
	RefreshToken string `json:"-"` // Never serialize
	ForceAltText bool   `json:"force_alt_text"`

	// Metadata
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"` // User ID
}

// Value returns the raw value for a settings key. Booleans follow the
// original option encoding: "1" when set, "" when not.
func (s *Settings) Value(key string) string {
	switch key {
	case SettingClientID:
		return s.ClientID
	case SettingClientSecret:
		return s.ClientSecret
	case SettingRefreshToken:
		return s.RefreshToken
	case SettingForceAltText:
		if s.ForceAltText {
			return "1"
		}
		return ""
	}
	return ""
}

// Credentials builds Credentials from the persisted settings.
func (s *Settings) Credentials() Credentials {
	return Credentials{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		RefreshToken: s.RefreshToken,
		ForceAltText: s.ForceAltText,
	}
}
