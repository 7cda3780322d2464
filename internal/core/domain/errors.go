package domain

import (
	"errors"
	"fmt"
)

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the user lacks permission for this action
	ErrForbidden = errors.New("forbidden")

	// ErrTokenExpired indicates the auth token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrSessionNotFound indicates the session does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidCredentials indicates wrong email/password combination
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoAccessToken indicates no usable Mediaflow access token could be
	// obtained - either the integration is not configured or the token
	// exchange failed
	ErrNoAccessToken = errors.New("no access token available")

	// ErrEnvManaged indicates settings are managed by environment variables
	// and cannot be edited through the API
	ErrEnvManaged = errors.New("settings managed by environment")
)

// UpstreamError carries an error produced by an upstream system (the
// Mediaflow API, a remote file host, or local media storage) that must be
// relayed to the caller without reinterpretation.
type UpstreamError struct {
	Code    string
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsUpstreamError unwraps err into an UpstreamError if it is one.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
