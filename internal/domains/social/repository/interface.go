package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookclub-backend/internal/domains/social/model"
)

// Repository defines data access for the follow and like graph.
// Duplicate edges are arbitrated by storage-level uniqueness, not
// application checks.
type Repository interface {
	// GetUser returns a user summary. Errors: ErrUserNotFound.
	GetUser(ctx context.Context, id uuid.UUID) (*model.UserSummary, error)

	// CreateFollowTx inserts a follow edge inside the caller's
	// transaction. Errors: ErrAlreadyFollowing, ErrUserNotFound.
	CreateFollowTx(ctx context.Context, tx pgx.Tx, followerID, followeeID uuid.UUID) error

	// DeleteFollow removes a follow edge. Errors: ErrNotFollowing.
	DeleteFollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// ListFollowers returns the users following userID.
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error)

	// ListFollowing returns the users userID follows.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error)

	// ListFolloweeIDs returns just the ids userID follows, for the feed.
	ListFolloweeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// CreateLikeTx inserts a like inside the caller's transaction.
	// Errors: ErrAlreadyLiked, ErrPostNotFound.
	CreateLikeTx(ctx context.Context, tx pgx.Tx, userID, postID uuid.UUID) error

	// DeleteLike removes a like. Errors: ErrNotLiked.
	DeleteLike(ctx context.Context, userID, postID uuid.UUID) error
}
