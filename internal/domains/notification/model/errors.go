package model

import (
	"errors"
	"net/http"
)

var ErrNotificationNotFound = errors.New("notification not found")

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotificationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
