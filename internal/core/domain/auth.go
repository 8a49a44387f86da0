package domain

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful authentication
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// TokenClaims represents the session token payload
type TokenClaims struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// AuthContext contains authenticated user info for request context
type AuthContext struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}
