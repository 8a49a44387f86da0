package services

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/userd-core/internal/core/domain"
	"github.com/custodia-labs/userd-core/internal/core/ports/driven"
	"github.com/custodia-labs/userd-core/internal/core/ports/driving"
)

// Ensure userService implements UserService
var _ driving.UserService = (*userService)(nil)

// userService implements the UserService interface
type userService struct {
	userStore    driven.UserStore
	counterStore driven.CounterStore
	authAdapter  driven.AuthAdapter
}

// NewUserService creates a new UserService
func NewUserService(
	userStore driven.UserStore,
	counterStore driven.CounterStore,
	authAdapter driven.AuthAdapter,
) driving.UserService {
	return &userService{
		userStore:    userStore,
		counterStore: counterStore,
		authAdapter:  authAdapter,
	}
}

// Create validates the request, assigns the next numeric ID and persists the
// user with a hashed password
func (s *userService) Create(ctx context.Context, req driving.CreateUserRequest) (*domain.User, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	// The unique index on email is the authoritative guard; this check just
	// gives a clean error for the common case.
	existing, _ := s.userStore.GetByEmail(ctx, email)
	if existing != nil {
		return nil, domain.ErrAlreadyExists
	}

	passwordHash, err := s.authAdapter.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.counterStore.Next(ctx, domain.UserIDCounter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		Key:          uuid.NewString(),
		ID:           id,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userStore.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves a user by public numeric ID
func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.userStore.Get(ctx, id)
}

// List retrieves all users
func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userStore.List(ctx)
}

// Update applies a partial update. Nil fields are left unchanged and the
// password is not reachable through this path.
func (s *userService) Update(ctx context.Context, id int64, req driving.UpdateUserRequest) (*domain.User, error) {
	if err := validateUpdateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.userStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = normalizeEmail(*req.Email)
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	user.UpdatedAt = time.Now()

	if err := s.userStore.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user and reports how many records were removed
func (s *userService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.userStore.Delete(ctx, id)
}

// validateCreateRequest validates the create user request
func validateCreateRequest(req driving.CreateUserRequest) error {
	if !validEmail(req.Email) {
		return domain.NewValidationError("email", "must be a valid email address")
	}
	if req.Password == "" {
		return domain.NewValidationError("password", "must not be empty")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return domain.NewValidationError("first_name", "must not be empty")
	}
	if req.LastName != "" && strings.TrimSpace(req.LastName) == "" {
		return domain.NewValidationError("last_name", "must not be blank when provided")
	}
	return nil
}

// validateUpdateRequest validates the fields present in a partial update
func validateUpdateRequest(req driving.UpdateUserRequest) error {
	if req.Email != nil && !validEmail(*req.Email) {
		return domain.NewValidationError("email", "must be a valid email address")
	}
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		return domain.NewValidationError("first_name", "must not be empty")
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		return domain.NewValidationError("last_name", "must not be blank when provided")
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil && addr.Address == strings.TrimSpace(email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
