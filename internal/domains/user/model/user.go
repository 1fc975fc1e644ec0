package model

import (
	"time"

	"github.com/google/uuid"

	"bookclub-backend/internal/shared/authz"
)

// User is the flat identity record. Roles reference the static grant
// table in the authz package.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Bio          *string    `json:"bio,omitempty"`
	Role         authz.Role `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// OwnerID satisfies authz.Resource: a user owns their own record.
func (u *User) OwnerID() uuid.UUID {
	return u.ID
}

// Identity converts the user to its authz representation.
func (u *User) Identity() authz.Identity {
	return authz.Identity{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
