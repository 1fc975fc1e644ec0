package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/author/model"
	"bookclub-backend/internal/domains/author/repository"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/internal/shared/utils"
)

type authorService struct {
	repo repository.Repository
}

func NewAuthorService(repo repository.Repository) Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)

	newAuthor := &model.Author{
		Name: name,
		Slug: utils.GenerateSlug(name),
	}

	return s.repo.Create(ctx, newAuthor)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetBySlug(ctx context.Context, slug string) (*model.Author, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *authorService) GetDetail(ctx context.Context, id uuid.UUID) (*model.Author, []model.BookSummary, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	books, err := s.repo.GetBooks(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return a, books, nil
}

func (s *authorService) List(ctx context.Context, params query.Params) ([]model.Author, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		current.Name = name
		current.Slug = utils.GenerateSlug(name)
	}

	return s.repo.Update(ctx, current)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return current, nil
}
