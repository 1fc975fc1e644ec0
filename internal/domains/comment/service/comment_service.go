package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookclub-backend/internal/domains/comment/model"
	"bookclub-backend/internal/domains/comment/repository"
	notifmodel "bookclub-backend/internal/domains/notification/model"
	postmodel "bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared/authz"
	"bookclub-backend/pkg/database"
)

type commentService struct {
	repo     repository.Repository
	pool     *pgxpool.Pool
	posts    PostGetter
	notifier Notifier
}

func NewCommentService(repo repository.Repository, pool *pgxpool.Pool, posts PostGetter, notifier Notifier) Service {
	return &commentService{
		repo:     repo,
		pool:     pool,
		posts:    posts,
		notifier: notifier,
	}
}

func (s *commentService) Create(ctx context.Context, postID uuid.UUID, author authz.Identity, req *model.CreateCommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := s.posts.GetOwner(ctx, postID)
	if err != nil {
		if errors.Is(err, postmodel.ErrPostNotFound) {
			return nil, model.ErrPostNotFound
		}
		return nil, err
	}

	newComment := &model.Comment{
		PostID:         postID,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		Content:        strings.TrimSpace(req.Content),
	}

	// Comment and notification commit together or not at all.
	return database.WithTransactionResult(ctx, s.pool, func(tx pgx.Tx) (*model.Comment, error) {
		created, err := s.repo.CreateTx(ctx, tx, newComment)
		if err != nil {
			return nil, err
		}

		if ownerID != author.ID {
			err = s.notifier.NotifyTx(ctx, tx, ownerID, author.ID,
				notifmodel.VerbCommented, notifmodel.TargetTypePost, postID)
			if err != nil {
				return nil, err
			}
		}

		return created, nil
	})
}

func (s *commentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	if id == uuid.Nil {
		return nil, model.ErrCommentNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	if _, err := s.posts.GetOwner(ctx, postID); err != nil {
		if errors.Is(err, postmodel.ErrPostNotFound) {
			return nil, model.ErrPostNotFound
		}
		return nil, err
	}
	return s.repo.ListByPost(ctx, postID)
}

func (s *commentService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Content = strings.TrimSpace(req.Content)

	return s.repo.Update(ctx, current)
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
