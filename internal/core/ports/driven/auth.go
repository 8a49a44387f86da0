package driven

import "github.com/custodia-labs/userd-core/internal/core/domain"

// AuthAdapter handles password hashing and token operations
type AuthAdapter interface {
	// HashPassword generates a salted one-way hash from a plaintext password
	HashPassword(password string) (string, error)

	// VerifyPassword checks if a password matches a stored hash
	VerifyPassword(password, hash string) bool

	// GenerateToken creates a signed token from claims
	GenerateToken(claims *domain.TokenClaims) (string, error)

	// ParseToken validates a token and extracts claims
	ParseToken(token string) (*domain.TokenClaims, error)
}
