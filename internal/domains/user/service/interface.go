package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/shared/query"
)

// Service defines business logic for the user domain.
type Service interface {
	// Register creates a user with the default role and returns tokens.
	// Errors: ErrUsernameTaken, ErrEmailTaken.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error)

	// Login verifies credentials and issues tokens.
	// Errors: ErrInvalidCredentials, ErrUserInactive.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPairResponse, error)

	// GetByID retrieves a user. Errors: ErrUserNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// List returns a page of users for discovery.
	List(ctx context.Context, params query.Params) ([]model.User, int64, error)

	// UpdateProfile applies partial email/bio changes to the caller's
	// own record.
	UpdateProfile(ctx context.Context, id uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error)

	// UpdateRole assigns a role (admin surface).
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
}
