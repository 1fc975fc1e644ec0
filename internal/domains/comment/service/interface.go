package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookclub-backend/internal/domains/comment/model"
	"bookclub-backend/internal/shared/authz"
)

// PostGetter resolves the owning user of a post. Satisfied by the post
// repository.
type PostGetter interface {
	GetOwner(ctx context.Context, postID uuid.UUID) (uuid.UUID, error)
}

// Notifier records an activity notification inside the caller's
// transaction. Satisfied by the notification service.
type Notifier interface {
	NotifyTx(ctx context.Context, tx pgx.Tx, recipientID, actorID uuid.UUID, verb, targetType string, targetID uuid.UUID) error
}

// Service defines business logic for comments.
type Service interface {
	// Create adds a comment to a post and notifies the post owner in
	// the same transaction. Commenting on your own post stays silent.
	// Errors: ErrPostNotFound.
	Create(ctx context.Context, postID uuid.UUID, author authz.Identity, req *model.CreateCommentRequest) (*model.Comment, error)

	// GetByID retrieves a comment. Errors: ErrCommentNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListByPost returns a post's comments, oldest first.
	// Errors: ErrPostNotFound.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)

	// Update rewrites a comment's content.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateCommentRequest) (*model.Comment, error)

	// Delete removes a comment. Errors: ErrCommentNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
