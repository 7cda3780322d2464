package mediaflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// DefaultBaseURL is the production Mediaflow API root.
const DefaultBaseURL = "https://api.mediaflow.com/1"

// Ensure Client implements the interface.
var _ driven.MediaflowAPI = (*Client)(nil)

// Client is the outbound HTTP client for the Mediaflow REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Mediaflow API client. baseURL may be empty to use the
// production endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ExchangeToken trades a refresh token for an access token. The vendor's
// token endpoint takes the OAuth2 parameters as a form-encoded query string
// on a GET request.
func (c *Client) ExchangeToken(ctx context.Context, creds domain.Credentials) (*driven.TokenResponse, error) {
	params := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {creds.ClientID},
		"client_secret": {creds.ClientSecret},
		"refresh_token": {creds.RefreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, "GET",
		c.baseURL+"/oauth2/token?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token exchange failed: %s", string(body))
	}

	var tokenResp driven.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token exchange response missing access_token")
	}

	return &tokenResp, nil
}

// ReportUsage registers one usage of a file. The vendor's status code and
// raw body are returned even for non-2xx responses so the caller can relay
// them verbatim.
func (c *Client) ReportUsage(ctx context.Context, token string, fileID int64, payload driven.UsagePayload) (*driven.UpstreamResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		fmt.Sprintf("%s/file/%d/usage", c.baseURL, fileID),
		bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{
			Code:    "http_request_failed",
			Status:  http.StatusBadGateway,
			Message: err.Error(),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &driven.UpstreamResponse{
		Status: resp.StatusCode,
		Body:   respBody,
	}, nil
}
