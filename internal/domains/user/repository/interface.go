package repository

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/shared/query"
)

// Repository defines data access for the user domain.
type Repository interface {
	// Create inserts a new user.
	// Errors: ErrUsernameTaken / ErrEmailTaken on unique violations.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// GetByID returns ErrUserNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByUsername returns ErrUserNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// List returns a page of users plus the total count.
	List(ctx context.Context, params query.Params) ([]model.User, int64, error)

	// Update persists email/bio changes.
	Update(ctx context.Context, u *model.User) (*model.User, error)

	// UpdateRole sets a user's role.
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
