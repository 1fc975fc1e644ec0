package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/domains/post/repository"
	"bookclub-backend/internal/shared/query"
)

type postService struct {
	repo repository.Repository
}

func NewPostService(repo repository.Repository) Service {
	return &postService{repo: repo}
}

// normalizeTags lowercases, trims and de-duplicates tag names while
// keeping the order the caller sent them in.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		name := strings.ToLower(strings.TrimSpace(tag))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
	}
	return normalized
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, authorUsername string, req *model.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newPost := &model.Post{
		Title:          strings.TrimSpace(req.Title),
		Content:        req.Content,
		AuthorID:       authorID,
		AuthorUsername: authorUsername,
	}

	return s.repo.Create(ctx, newPost, normalizeTags(req.Tags))
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	if id == uuid.Nil {
		return nil, model.ErrPostNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *postService) List(ctx context.Context, params query.Params) ([]model.Post, int64, error) {
	if tag, ok := params.Filters["tag"]; ok {
		params.Filters["tag"] = strings.ToLower(strings.TrimSpace(tag))
	}
	return s.repo.List(ctx, params)
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePostRequest) (*model.Post, error) {
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
	if req.Content != nil {
		current.Content = *req.Content
	}

	var tags *[]string
	if req.Tags != nil {
		normalized := normalizeTags(*req.Tags)
		tags = &normalized
	}

	return s.repo.Update(ctx, current, tags)
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return current, nil
}

func (s *postService) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.repo.ListTags(ctx)
}

func (s *postService) CreateTag(ctx context.Context, req *model.CreateTagRequest) (*model.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.CreateTag(ctx, strings.ToLower(strings.TrimSpace(req.Name)))
}
