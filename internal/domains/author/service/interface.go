package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/author/model"
	"bookclub-backend/internal/shared/query"
)

// Service defines business logic for the author catalog.
type Service interface {
	// Create adds an author with a generated slug.
	// Errors: ErrDuplicateName.
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)

	// GetByID retrieves an author. Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetBySlug retrieves an author by URL slug.
	GetBySlug(ctx context.Context, slug string) (*model.Author, error)

	// GetDetail retrieves an author with their books nested.
	GetDetail(ctx context.Context, id uuid.UUID) (*model.Author, []model.BookSummary, error)

	// List returns a page of authors (searchable by name).
	List(ctx context.Context, params query.Params) ([]model.Author, int64, error)

	// Update renames an author, regenerating the slug.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error)

	// Delete removes an author and returns the deleted record so the
	// endpoint can name it in the confirmation message.
	Delete(ctx context.Context, id uuid.UUID) (*model.Author, error)
}
