package driving

import (
	"context"

	"github.com/custodia-labs/userd-core/internal/core/domain"
)

// CreateUserRequest represents a request to create a new user
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
}

// UpdateUserRequest represents a partial update; nil fields are left unchanged
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// UserService manages user accounts
type UserService interface {
	// Create validates the request, assigns the next numeric ID and
	// persists the user with a hashed password
	Create(ctx context.Context, req CreateUserRequest) (*domain.User, error)

	// Get retrieves a user by public numeric ID
	Get(ctx context.Context, id int64) (*domain.User, error)

	// List retrieves all users
	List(ctx context.Context) ([]*domain.User, error)

	// Update applies a partial update; the password is not reachable
	// through this path
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error)

	// Delete removes a user and reports how many records were removed
	Delete(ctx context.Context, id int64) (int64, error)
}
