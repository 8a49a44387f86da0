package driven

import (
	"context"

	"github.com/custodia-labs/userd-core/internal/core/domain"
)

// UserStore handles user persistence (PostgreSQL)
type UserStore interface {
	// Save creates or updates a user
	Save(ctx context.Context, user *domain.User) error

	// Get retrieves a user by public numeric ID
	Get(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List retrieves all users in ascending ID order
	List(ctx context.Context) ([]*domain.User, error)

	// Delete removes the user with the given ID and reports how many
	// records were removed (0 or 1)
	Delete(ctx context.Context, id int64) (int64, error)
}
