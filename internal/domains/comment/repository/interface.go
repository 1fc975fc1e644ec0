package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookclub-backend/internal/domains/comment/model"
)

// Repository defines data access for comments.
type Repository interface {
	// CreateTx inserts a comment inside the caller's transaction so
	// the notification side effect commits with it.
	CreateTx(ctx context.Context, tx pgx.Tx, c *model.Comment) (*model.Comment, error)

	// GetByID returns ErrCommentNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListByPost returns a post's comments, oldest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)

	// Update rewrites a comment's content.
	Update(ctx context.Context, c *model.Comment) (*model.Comment, error)

	// Delete removes a comment. Errors: ErrCommentNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
