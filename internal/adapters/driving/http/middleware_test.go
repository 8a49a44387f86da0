package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/custodia-labs/userd-core/internal/core/domain"
	"github.com/custodia-labs/userd-core/internal/core/ports/driven/mocks"
	"github.com/custodia-labs/userd-core/internal/core/services"
)

func newTestAuthMiddleware() *AuthMiddleware {
	userStore := mocks.NewMockUserStore()
	authAdapter := mocks.NewMockAuthAdapter()
	authSvc := services.NewAuthService(userStore, authAdapter, 24*time.Hour)
	return NewAuthMiddleware(authSvc)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", ""},
		{"valid bearer", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"wrong scheme", "Basic abc123", ""},
		{"no token", "Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if got := extractBearerToken(req); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	m := newTestAuthMiddleware()

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	m := newTestAuthMiddleware()

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m := newTestAuthMiddleware()

	// Mint a token the mock adapter will accept
	adapter := mocks.NewMockAuthAdapter()
	token, err := adapter.GenerateToken(&domain.TokenClaims{UserID: 7, Email: "ann@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	called := false
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		authCtx := GetAuthContext(r.Context())
		if authCtx == nil {
			t.Fatal("expected auth context in request")
		}
		if authCtx.UserID != 7 {
			t.Errorf("expected user ID 7, got %d", authCtx.UserID)
		}
		if authCtx.Email != "ann@example.com" {
			t.Errorf("expected email ann@example.com, got %s", authCtx.Email)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("expected handler to run")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestGetAuthContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetAuthContext(req.Context()) != nil {
		t.Error("expected nil auth context for plain request")
	}
}
