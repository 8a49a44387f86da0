package driving

import (
	"context"

	"github.com/custodia-labs/userd-core/internal/core/domain"
)

// AuthService handles user authentication
type AuthService interface {
	// ValidateCredentials checks an email/password pair against the user
	// store and returns the matching user, or ErrInvalidCredentials
	ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error)

	// Login validates credentials and issues a signed session token
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)

	// ValidateToken verifies a session token and returns the auth context
	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)
}
