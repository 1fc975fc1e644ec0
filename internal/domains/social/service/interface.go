package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postmodel "bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/domains/social/model"
	"bookclub-backend/internal/shared/query"
)

// FeedSource pages through posts by a set of authors. Satisfied by the
// post repository.
type FeedSource interface {
	ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, page, pageSize int) ([]postmodel.Post, int64, error)
}

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

// Service defines business logic for the social graph.
type Service interface {
	// Follow creates a follow edge and notifies the followee in the
	// same transaction. Returns the followee for the confirmation
	// message. Errors: ErrSelfFollow, ErrAlreadyFollowing,
	// ErrUserNotFound.
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) (*model.UserSummary, error)

	// Unfollow removes a follow edge and returns the former followee.
	// Errors: ErrSelfUnfollow, ErrNotFollowing, ErrUserNotFound.
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) (*model.UserSummary, error)

	// Followers lists the users following userID.
	Followers(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error)

	// Following lists the users userID follows.
	Following(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error)

	// Feed pages through posts by followed users, newest first. A user
	// following nobody gets an empty feed.
	Feed(ctx context.Context, userID uuid.UUID, params query.Params) ([]postmodel.Post, int64, error)

	// Like marks a post as liked and notifies its owner in the same
	// transaction. Errors: ErrAlreadyLiked, ErrPostNotFound.
	Like(ctx context.Context, userID, postID uuid.UUID) error

	// Unlike withdraws a like. Errors: ErrNotLiked.
	Unlike(ctx context.Context, userID, postID uuid.UUID) error
}
