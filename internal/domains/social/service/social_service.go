package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	notifmodel "bookclub-backend/internal/domains/notification/model"
	postmodel "bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/domains/social/model"
	"bookclub-backend/internal/domains/social/repository"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/pkg/database"
)

type socialService struct {
	repo     repository.Repository
	pool     *pgxpool.Pool
	feed     FeedSource
	posts    PostGetter
	notifier Notifier
}

func NewSocialService(repo repository.Repository, pool *pgxpool.Pool, feed FeedSource, posts PostGetter, notifier Notifier) Service {
	return &socialService{
		repo:     repo,
		pool:     pool,
		feed:     feed,
		posts:    posts,
		notifier: notifier,
	}
}

func (s *socialService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) (*model.UserSummary, error) {
	if followerID == followeeID {
		return nil, model.ErrSelfFollow
	}

	followee, err := s.repo.GetUser(ctx, followeeID)
	if err != nil {
		return nil, err
	}

	err = database.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		if err := s.repo.CreateFollowTx(ctx, tx, followerID, followeeID); err != nil {
			return err
		}
		return s.notifier.NotifyTx(ctx, tx, followeeID, followerID,
			notifmodel.VerbFollowed, notifmodel.TargetTypeUser, followerID)
	})
	if err != nil {
		return nil, err
	}

	return followee, nil
}

func (s *socialService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) (*model.UserSummary, error) {
	if followerID == followeeID {
		return nil, model.ErrSelfUnfollow
	}

	followee, err := s.repo.GetUser(ctx, followeeID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteFollow(ctx, followerID, followeeID); err != nil {
		return nil, err
	}

	return followee, nil
}

func (s *socialService) Followers(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListFollowers(ctx, userID)
}

func (s *socialService) Following(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListFollowing(ctx, userID)
}

func (s *socialService) Feed(ctx context.Context, userID uuid.UUID, params query.Params) ([]postmodel.Post, int64, error) {
	followeeIDs, err := s.repo.ListFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if len(followeeIDs) == 0 {
		return []postmodel.Post{}, 0, nil
	}

	return s.feed.ListByAuthors(ctx, followeeIDs, params.Page, params.PageSize)
}

func (s *socialService) Like(ctx context.Context, userID, postID uuid.UUID) error {
	ownerID, err := s.posts.GetOwner(ctx, postID)
	if err != nil {
		if errors.Is(err, postmodel.ErrPostNotFound) {
			return model.ErrPostNotFound
		}
		return err
	}

	// Like and notification commit together or not at all.
	return database.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		if err := s.repo.CreateLikeTx(ctx, tx, userID, postID); err != nil {
			return err
		}
		if ownerID == userID {
			return nil
		}
		return s.notifier.NotifyTx(ctx, tx, ownerID, userID,
			notifmodel.VerbLiked, notifmodel.TargetTypePost, postID)
	})
}

func (s *socialService) Unlike(ctx context.Context, userID, postID uuid.UUID) error {
	return s.repo.DeleteLike(ctx, userID, postID)
}
