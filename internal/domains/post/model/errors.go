package model

import (
	"errors"
	"net/http"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrTagNotFound  = errors.New("tag not found")
	ErrDuplicateTag = errors.New("tag already exists")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrTagNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateTag):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
