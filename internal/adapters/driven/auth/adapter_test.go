package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/custodia-labs/userd-core/internal/core/domain"
)

func testAdapter() *Adapter {
	// MinCost keeps the hashing tests fast
	return NewAdapterWithCost("test-secret", bcrypt.MinCost)
}

func TestAdapter_HashAndVerifyPassword(t *testing.T) {
	a := testAdapter()

	hash, err := a.HashPassword("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "password123" {
		t.Fatal("expected hash to differ from plaintext")
	}

	if !a.VerifyPassword("password123", hash) {
		t.Error("expected password to verify against its hash")
	}
	if a.VerifyPassword("wrong", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestAdapter_HashPassword_Salted(t *testing.T) {
	a := testAdapter()

	first, err := a.HashPassword("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.HashPassword("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestAdapter_TokenRoundTrip(t *testing.T) {
	a := testAdapter()

	now := time.Now()
	claims := &domain.TokenClaims{
		UserID:    42,
		Email:     "ann@example.com",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}

	token, err := a.GenerateToken(claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	parsed, err := a.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != claims.UserID {
		t.Errorf("expected user ID %d, got %d", claims.UserID, parsed.UserID)
	}
	if parsed.Email != claims.Email {
		t.Errorf("expected email %s, got %s", claims.Email, parsed.Email)
	}
	if parsed.ExpiresAt != claims.ExpiresAt {
		t.Errorf("expected expiry %d, got %d", claims.ExpiresAt, parsed.ExpiresAt)
	}
}

func TestAdapter_ParseToken_WrongSecret(t *testing.T) {
	a := testAdapter()
	other := NewAdapterWithCost("other-secret", bcrypt.MinCost)

	now := time.Now()
	token, err := a.GenerateToken(&domain.TokenClaims{
		UserID:    1,
		Email:     "ann@example.com",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := other.ParseToken(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestAdapter_ParseToken_Expired(t *testing.T) {
	a := testAdapter()

	past := time.Now().Add(-2 * time.Hour)
	token, err := a.GenerateToken(&domain.TokenClaims{
		UserID:    1,
		Email:     "ann@example.com",
		IssuedAt:  past.Unix(),
		ExpiresAt: past.Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := a.ParseToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestAdapter_ParseToken_Garbage(t *testing.T) {
	a := testAdapter()

	if _, err := a.ParseToken("not.a.token"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}
