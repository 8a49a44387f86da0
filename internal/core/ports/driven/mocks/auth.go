package mocks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/userd-core/internal/core/domain"
)

// MockAuthAdapter is a fake AuthAdapter for testing. Hashes are the
// plaintext with a marker prefix and tokens encode the claims directly, so
// tests can assert on both without real crypto.
type MockAuthAdapter struct{}

// NewMockAuthAdapter creates a new MockAuthAdapter
func NewMockAuthAdapter() *MockAuthAdapter {
	return &MockAuthAdapter{}
}

func (m *MockAuthAdapter) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *MockAuthAdapter) VerifyPassword(password, hash string) bool {
	return hash == "hashed:"+password
}

func (m *MockAuthAdapter) GenerateToken(claims *domain.TokenClaims) (string, error) {
	return fmt.Sprintf("token|%d|%s", claims.UserID, claims.Email), nil
}

func (m *MockAuthAdapter) ParseToken(token string) (*domain.TokenClaims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 3 || parts[0] != "token" {
		return nil, domain.ErrTokenInvalid
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.TokenClaims{UserID: id, Email: parts[2]}, nil
}
