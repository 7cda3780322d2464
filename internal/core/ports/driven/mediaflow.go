package driven

import (
	"context"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// TokenResponse is the body of a successful OAuth2 refresh-token exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// WebUsage locates a usage on a public page.
type WebUsage struct {
	Page     string `json:"page"`
	PageName string `json:"pageName"`
}

// UsagePayload is the body posted to Mediaflow's per-file usage endpoint.
// Field encoding follows the vendor API: amount and removed are strings.
// https://static.mediaflowpro.com/doc/#hdr25
type UsagePayload struct {
	Amount  string   `json:"amount"`
	Date    string   `json:"date"`
	Project string   `json:"project"`
	Contact string   `json:"contact"`
	Removed string   `json:"removed"`
	Types   []string `json:"types"`
	Web     WebUsage `json:"web"`
}

// UpstreamResponse is a raw vendor response relayed verbatim to the caller.
type UpstreamResponse struct {
	Status int
	Body   []byte
}

// MediaflowAPI is the outbound client for the Mediaflow REST API.
type MediaflowAPI interface {
	// ExchangeToken trades a refresh token for a short-lived access token.
	ExchangeToken(ctx context.Context, creds domain.Credentials) (*TokenResponse, error)

	// ReportUsage registers one usage of a file. Non-2xx vendor responses
	// are not errors: status and body are returned for pass-through relay.
	ReportUsage(ctx context.Context, token string, fileID int64, payload UsagePayload) (*UpstreamResponse, error)
}
