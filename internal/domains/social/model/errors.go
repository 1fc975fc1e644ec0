package model

import (
	"errors"
	"net/http"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrSelfFollow       = errors.New("You cannot follow yourself")
	ErrSelfUnfollow     = errors.New("You cannot unfollow yourself")
	ErrAlreadyFollowing = errors.New("You are already following this user")
	ErrNotFollowing     = errors.New("You are not following this user")
	ErrAlreadyLiked     = errors.New("You have already liked this post")
	ErrNotLiked         = errors.New("You have not liked this post")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSelfFollow),
		errors.Is(err, ErrSelfUnfollow),
		errors.Is(err, ErrAlreadyFollowing),
		errors.Is(err, ErrNotFollowing),
		errors.Is(err, ErrAlreadyLiked),
		errors.Is(err, ErrNotLiked):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
