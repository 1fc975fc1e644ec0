package response

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Write envelope: {message, data} on success, {message, errors} on
// validation failure. List envelope: {results, count, next, previous}.

type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type ListEnvelope struct {
	Results  interface{} `json:"results"`
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
}

// Success writes {message, data}
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Message: message,
		Data:    data,
	})
}

// Message writes {message} with no data payload
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Message: message})
}

// ValidationFailed writes 400 {message, errors} with field-level detail
func ValidationFailed(c *gin.Context, errs interface{}) {
	c.JSON(http.StatusBadRequest, Envelope{
		Message: "Validation failed",
		Errors:  errs,
	})
}

// List writes the paginated envelope with next/previous links derived
// from the request URL.
func List(c *gin.Context, results interface{}, count int64, page, pageSize int) {
	next, previous := pageLinks(c, count, page, pageSize)
	c.JSON(http.StatusOK, ListEnvelope{
		Results:  results,
		Count:    count,
		Next:     next,
		Previous: previous,
	})
}

// ListWithExtra writes the paginated envelope plus endpoint-specific
// top-level fields, such as an unread count.
func ListWithExtra(c *gin.Context, results interface{}, count int64, page, pageSize int, extra gin.H) {
	next, previous := pageLinks(c, count, page, pageSize)
	body := gin.H{
		"results":  results,
		"count":    count,
		"next":     next,
		"previous": previous,
	}
	for key, value := range extra {
		body[key] = value
	}
	c.JSON(http.StatusOK, body)
}

func pageLinks(c *gin.Context, count int64, page, pageSize int) (next, previous *string) {
	buildLink := func(p int) *string {
		q := c.Request.URL.Query()
		q.Set("page", strconv.Itoa(p))
		link := fmt.Sprintf("%s?%s", c.Request.URL.Path, q.Encode())
		return &link
	}

	if int64(page*pageSize) < count {
		next = buildLink(page + 1)
	}
	if page > 1 {
		previous = buildLink(page - 1)
	}
	return next, previous
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

// Conflict is a domain-rule duplicate (already liked, already
// following). The API surfaces it as 400 with a specific message.
func Conflict(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func Forbidden(c *gin.Context, message string) {
	Message(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Internal server error")
}
