package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared/query"
)

// Service defines business logic for posts and tags.
type Service interface {
	// Create publishes a post for the given author. Tag names are
	// lowercased and created on demand.
	Create(ctx context.Context, authorID uuid.UUID, authorUsername string, req *model.CreatePostRequest) (*model.Post, error)

	// GetByID retrieves a post. Errors: ErrPostNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)

	// List returns a page of posts. The tag filter matches the
	// lowercased name.
	List(ctx context.Context, params query.Params) ([]model.Post, int64, error)

	// Update applies the non-nil fields of req. A non-nil tag slice
	// replaces the attached set.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdatePostRequest) (*model.Post, error)

	// Delete removes a post and returns the deleted record for the
	// confirmation message.
	Delete(ctx context.Context, id uuid.UUID) (*model.Post, error)

	// ListTags returns every tag, alphabetically.
	ListTags(ctx context.Context) ([]model.Tag, error)

	// CreateTag registers a tag name. Errors: ErrDuplicateTag.
	CreateTag(ctx context.Context, req *model.CreateTagRequest) (*model.Tag, error)
}
