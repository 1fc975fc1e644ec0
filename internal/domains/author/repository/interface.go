package repository

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/author/model"
	"bookclub-backend/internal/shared/query"
)

// Repository defines data access for the author catalog.
type Repository interface {
	// Create inserts a new author.
	// Errors: ErrDuplicateName if the slug is taken.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByID returns ErrAuthorNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetBySlug returns ErrAuthorNotFound if absent.
	GetBySlug(ctx context.Context, slug string) (*model.Author, error)

	// List returns a page of authors plus the total count.
	List(ctx context.Context, params query.Params) ([]model.Author, int64, error)

	// GetBooks returns the author's books, newest publication first.
	GetBooks(ctx context.Context, authorID uuid.UUID) ([]model.BookSummary, error)

	// Update renames an author.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// Delete removes an author; their books cascade at the storage
	// layer. Errors: ErrAuthorNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
