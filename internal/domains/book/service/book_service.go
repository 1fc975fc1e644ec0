package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/book/model"
	"bookclub-backend/internal/domains/book/repository"
	"bookclub-backend/internal/shared/query"
)

type bookService struct {
	repo repository.Repository
}

func NewBookService(repo repository.Repository) Service {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newBook := &model.Book{
		Title:           strings.TrimSpace(req.Title),
		PublicationYear: req.PublicationYear,
		AuthorID:        req.AuthorID,
		Price:           req.Price,
	}

	return s.repo.Create(ctx, newBook)
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, params query.Params) ([]model.Book, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		current.Title = strings.TrimSpace(*req.Title)
	}
	if req.PublicationYear != nil {
		current.PublicationYear = *req.PublicationYear
	}
	if req.AuthorID != nil {
		current.AuthorID = *req.AuthorID
	}
	if req.Price != nil {
		current.Price = *req.Price
	}

	return s.repo.Update(ctx, current)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return current, nil
}
