package domain

// Credentials holds the Mediaflow API credentials resolved from the
// environment or the persisted settings.
type Credentials struct {
	ClientID     string `json:"-"` // Never serialize
	ClientSecret string `json:"-"` // Never serialize
	RefreshToken string `json:"-"` // Never serialize
	ForceAltText bool   `json:"force_alt_text"`
}

// Complete reports whether all fields required for a token exchange are set.
func (c Credentials) Complete() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}
