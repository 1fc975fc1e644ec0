package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub-backend/internal/domains/comment/model"
	postmodel "bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared/authz"
)

type fakeCommentRepo struct {
	comments map[uuid.UUID]*model.Comment
	updated  *model.Comment
}

func (f *fakeCommentRepo) CreateTx(context.Context, pgx.Tx, *model.Comment) (*model.Comment, error) {
	return nil, nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Comment, error) {
	if c, ok := f.comments[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, model.ErrCommentNotFound
}

func (f *fakeCommentRepo) ListByPost(context.Context, uuid.UUID) ([]model.Comment, error) {
	return nil, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, c *model.Comment) (*model.Comment, error) {
	f.updated = c
	return c, nil
}

func (f *fakeCommentRepo) Delete(context.Context, uuid.UUID) error {
	return nil
}

type fakePostGetter struct {
	owners map[uuid.UUID]uuid.UUID
}

func (f *fakePostGetter) GetOwner(_ context.Context, postID uuid.UUID) (uuid.UUID, error) {
	if owner, ok := f.owners[postID]; ok {
		return owner, nil
	}
	return uuid.Nil, postmodel.ErrPostNotFound
}

func TestCreateRejectsInvalidContent(t *testing.T) {
	svc := NewCommentService(&fakeCommentRepo{}, nil, &fakePostGetter{}, nil)

	_, err := svc.Create(context.Background(), uuid.New(),
		authz.Identity{ID: uuid.New()}, &model.CreateCommentRequest{Content: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Comment must be at least 10 characters long.")
}

func TestCreateOnMissingPost(t *testing.T) {
	svc := NewCommentService(&fakeCommentRepo{}, nil, &fakePostGetter{}, nil)

	_, err := svc.Create(context.Background(), uuid.New(),
		authz.Identity{ID: uuid.New()},
		&model.CreateCommentRequest{Content: "A perfectly reasonable comment."})
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestListByPostOnMissingPost(t *testing.T) {
	svc := NewCommentService(&fakeCommentRepo{}, nil, &fakePostGetter{}, nil)

	_, err := svc.ListByPost(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestUpdateTrimsContent(t *testing.T) {
	id := uuid.New()
	repo := &fakeCommentRepo{comments: map[uuid.UUID]*model.Comment{
		id: {ID: id, Content: "The original take on chapter three."},
	}}
	svc := NewCommentService(repo, nil, &fakePostGetter{}, nil)

	updated, err := svc.Update(context.Background(), id,
		&model.UpdateCommentRequest{Content: "  A revised take on chapter three.  "})
	require.NoError(t, err)
	assert.Equal(t, "A revised take on chapter three.", updated.Content)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "A revised take on chapter three.", repo.updated.Content)
}

func TestUpdateMissingComment(t *testing.T) {
	svc := NewCommentService(&fakeCommentRepo{}, nil, &fakePostGetter{}, nil)

	_, err := svc.Update(context.Background(), uuid.New(),
		&model.UpdateCommentRequest{Content: "A revised take on chapter three."})
	assert.ErrorIs(t, err, model.ErrCommentNotFound)
}
