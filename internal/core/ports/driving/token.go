package driving

import "context"

// TokenProvider obtains a Mediaflow access token, consulting the token cache
// before performing a refresh-token exchange. domain.ErrNoAccessToken is
// returned when the integration is not configured or the exchange failed -
// an expected outcome, not an internal error.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}
