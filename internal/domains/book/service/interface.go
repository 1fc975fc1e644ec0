package service

import (
	"context"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/book/model"
	"bookclub-backend/internal/shared/query"
)

// Service defines business logic for the book catalog.
type Service interface {
	// Create adds a book under an existing author.
	// Errors: ErrAuthorNotFound.
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)

	// GetByID retrieves a book with its author named.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// List returns a page of books. Search matches title or author name.
	List(ctx context.Context, params query.Params) ([]model.Book, int64, error)

	// Update applies the non-nil fields of req.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error)

	// Delete removes a book and returns the deleted record for the
	// confirmation message.
	Delete(ctx context.Context, id uuid.UUID) (*model.Book, error)
}
