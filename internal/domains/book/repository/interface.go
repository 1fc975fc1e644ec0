package repository

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/book/model"
	"bookclub-backend/internal/shared/query"
)

// Repository defines data access for the book catalog.
type Repository interface {
	// Create inserts a new book.
	// Errors: ErrAuthorNotFound if the author reference is dangling.
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetByID returns the book with its author named.
	// Errors: ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// List returns a page of books plus the total count. Search matches
	// the title or the author's name.
	List(ctx context.Context, params query.Params) ([]model.Book, int64, error)

	// Update rewrites a book's mutable columns.
	Update(ctx context.Context, b *model.Book) (*model.Book, error)

	// Delete removes a book. Errors: ErrBookNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
