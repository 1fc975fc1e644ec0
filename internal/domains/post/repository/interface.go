package repository

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared/query"
)

// Repository defines data access for posts and tags.
type Repository interface {
	// Create inserts a post and attaches its tags in one transaction.
	// Unknown tag names are created on the fly.
	Create(ctx context.Context, p *model.Post, tags []string) (*model.Post, error)

	// GetByID returns the post with its author username and tags.
	// Errors: ErrPostNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)

	// GetOwner returns the posting user's id without loading the row.
	// Errors: ErrPostNotFound.
	GetOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	// List returns a page of posts plus the total count. Filterable by
	// author_id and tag, searchable on title and content.
	List(ctx context.Context, params query.Params) ([]model.Post, int64, error)

	// ListByAuthors returns a page of posts by any of the given
	// authors, newest first, plus the total count. An empty author set
	// yields an empty page.
	ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, page, pageSize int) ([]model.Post, int64, error)

	// Update rewrites title and content; a non-nil tags slice replaces
	// the attached set.
	Update(ctx context.Context, p *model.Post, tags *[]string) (*model.Post, error)

	// Delete removes a post; comments and likes cascade at the storage
	// layer. Errors: ErrPostNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListTags returns every tag, alphabetically.
	ListTags(ctx context.Context) ([]model.Tag, error)

	// CreateTag inserts a tag. Errors: ErrDuplicateTag.
	CreateTag(ctx context.Context, name string) (*model.Tag, error)
}
