package services

import (
	"context"
	"time"

	"github.com/custodia-labs/userd-core/internal/core/domain"
	"github.com/custodia-labs/userd-core/internal/core/ports/driven"
	"github.com/custodia-labs/userd-core/internal/core/ports/driving"
)

// dummyHash is a bcrypt hash of a random throwaway password. It is compared
// against when the email does not resolve to a user, so both failure paths
// cost one hash verification.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface. It keeps no state of its
// own; a login is a pure function of the credentials, the user store and the
// signing secret.
type authService struct {
	userStore   driven.UserStore
	authAdapter driven.AuthAdapter
	tokenTTL    time.Duration
}

// NewAuthService creates a new AuthService issuing tokens with the given TTL
func NewAuthService(
	userStore driven.UserStore,
	authAdapter driven.AuthAdapter,
	tokenTTL time.Duration,
) driving.AuthService {
	return &authService{
		userStore:   userStore,
		authAdapter: authAdapter,
		tokenTTL:    tokenTTL,
	}
}

// ValidateCredentials checks an email/password pair against the user store.
// The returned error is ErrInvalidCredentials whether the email was unknown
// or the password was wrong.
func (s *authService) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userStore.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		s.authAdapter.VerifyPassword(password, dummyHash)
		return nil, domain.ErrInvalidCredentials
	}

	if !s.authAdapter.VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Login validates credentials and issues a signed session token
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.ValidateCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	claims := &domain.TokenClaims{
		UserID:    user.ID,
		Email:     user.Email,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.tokenTTL).Unix(),
	}

	token, err := s.authAdapter.GenerateToken(claims)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{AccessToken: token}, nil
}

// ValidateToken verifies a session token and returns the auth context
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if claims.ExpiresAt != 0 && time.Now().Unix() > claims.ExpiresAt {
		return nil, domain.ErrTokenExpired
	}

	return &domain.AuthContext{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
