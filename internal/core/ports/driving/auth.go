package driving

import (
	"context"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// SetupRequest creates the initial admin user
type SetupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SetupResponse is returned after successful setup
type SetupResponse struct {
	User *domain.UserSummary `json:"user"`
}

// AuthService handles user authentication
type AuthService interface {
	// Setup creates the initial admin user. Only allowed while no users
	// exist.
	Setup(ctx context.Context, req SetupRequest) (*SetupResponse, error)

	// Authenticate validates credentials and creates a session
	Authenticate(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)

	// ValidateToken validates a JWT token and returns the auth context
	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)

	// Logout invalidates a session
	Logout(ctx context.Context, token string) error
}
