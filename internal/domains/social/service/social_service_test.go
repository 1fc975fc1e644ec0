package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postmodel "bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/domains/social/model"
	"bookclub-backend/internal/shared/query"
)

type fakeSocialRepo struct {
	users       map[uuid.UUID]*model.UserSummary
	followeeIDs []uuid.UUID
	unfollowed  [][2]uuid.UUID
}

func (f *fakeSocialRepo) GetUser(_ context.Context, id uuid.UUID) (*model.UserSummary, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeSocialRepo) CreateFollowTx(context.Context, pgx.Tx, uuid.UUID, uuid.UUID) error {
	return nil
}

func (f *fakeSocialRepo) DeleteFollow(_ context.Context, followerID, followeeID uuid.UUID) error {
	f.unfollowed = append(f.unfollowed, [2]uuid.UUID{followerID, followeeID})
	return nil
}

func (f *fakeSocialRepo) ListFollowers(context.Context, uuid.UUID) ([]model.UserSummary, error) {
	return nil, nil
}

func (f *fakeSocialRepo) ListFollowing(context.Context, uuid.UUID) ([]model.UserSummary, error) {
	return nil, nil
}

func (f *fakeSocialRepo) ListFolloweeIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return f.followeeIDs, nil
}

func (f *fakeSocialRepo) CreateLikeTx(context.Context, pgx.Tx, uuid.UUID, uuid.UUID) error {
	return nil
}

func (f *fakeSocialRepo) DeleteLike(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type fakeFeedSource struct {
	gotAuthors []uuid.UUID
	posts      []postmodel.Post
}

func (f *fakeFeedSource) ListByAuthors(_ context.Context, authorIDs []uuid.UUID, page, pageSize int) ([]postmodel.Post, int64, error) {
	f.gotAuthors = authorIDs
	return f.posts, int64(len(f.posts)), nil
}

func TestFollowYourself(t *testing.T) {
	svc := NewSocialService(&fakeSocialRepo{}, nil, nil, nil, nil)
	me := uuid.New()

	_, err := svc.Follow(context.Background(), me, me)
	assert.ErrorIs(t, err, model.ErrSelfFollow)
}

func TestUnfollowYourself(t *testing.T) {
	me := uuid.New()
	repo := &fakeSocialRepo{users: map[uuid.UUID]*model.UserSummary{
		me: {ID: me, Username: "gopher"},
	}}
	svc := NewSocialService(repo, nil, nil, nil, nil)

	_, err := svc.Unfollow(context.Background(), me, me)
	assert.ErrorIs(t, err, model.ErrSelfUnfollow)
	assert.Empty(t, repo.unfollowed)
}

func TestFollowUnknownUser(t *testing.T) {
	repo := &fakeSocialRepo{users: map[uuid.UUID]*model.UserSummary{}}
	svc := NewSocialService(repo, nil, nil, nil, nil)

	_, err := svc.Follow(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUnfollow(t *testing.T) {
	follower := uuid.New()
	followee := uuid.New()
	repo := &fakeSocialRepo{
		users: map[uuid.UUID]*model.UserSummary{
			followee: {ID: followee, Username: "gopher"},
		},
	}
	svc := NewSocialService(repo, nil, nil, nil, nil)

	u, err := svc.Unfollow(context.Background(), follower, followee)
	require.NoError(t, err)
	assert.Equal(t, "gopher", u.Username)
	require.Len(t, repo.unfollowed, 1)
	assert.Equal(t, [2]uuid.UUID{follower, followee}, repo.unfollowed[0])
}

func TestFeedEmptyWhenFollowingNobody(t *testing.T) {
	repo := &fakeSocialRepo{}
	feed := &fakeFeedSource{}
	svc := NewSocialService(repo, nil, feed, nil, nil)

	posts, total, err := svc.Feed(context.Background(), uuid.New(), query.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Zero(t, total)
	// The feed source is never consulted for an empty follow set.
	assert.Nil(t, feed.gotAuthors)
}

func TestFeedQueriesFollowedAuthors(t *testing.T) {
	followees := []uuid.UUID{uuid.New(), uuid.New()}
	repo := &fakeSocialRepo{followeeIDs: followees}
	feed := &fakeFeedSource{posts: []postmodel.Post{{Title: "first"}, {Title: "second"}}}
	svc := NewSocialService(repo, nil, feed, nil, nil)

	posts, total, err := svc.Feed(context.Background(), uuid.New(), query.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, followees, feed.gotAuthors)
	assert.Len(t, posts, 2)
	assert.EqualValues(t, 2, total)
}
