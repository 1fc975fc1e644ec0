package model

import (
	"errors"
	"net/http"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrPostNotFound    = errors.New("post not found")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCommentNotFound), errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
