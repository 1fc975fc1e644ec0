package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// contentDenylist rejects throwaway comments outright, whatever their
// length.
var contentDenylist = map[string]bool{
	"spam":  true,
	"test":  true,
	"hello": true,
	"hi":    true,
}

// meaningfulContent applies the comment content rules to the trimmed
// value: 10-1000 characters and not a denylisted throwaway word.
func meaningfulContent(value interface{}) error {
	content, _ := value.(string)
	trimmed := strings.TrimSpace(content)

	if contentDenylist[strings.ToLower(trimmed)] {
		return validation.NewError("validation_content", "Please write a meaningful comment.")
	}
	if len(trimmed) < 10 {
		return validation.NewError("validation_length", "Comment must be at least 10 characters long.")
	}
	if len(trimmed) > 1000 {
		return validation.NewError("validation_length", "Comment cannot exceed 1000 characters.")
	}
	return nil
}

// CreateCommentRequest - POST /posts/:id/comments/create/
type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.By(meaningfulContent),
		),
	)
}

// UpdateCommentRequest - PUT /comments/:id/update/
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.By(meaningfulContent),
		),
	)
}

// CommentResponse - comment representation
type CommentResponse struct {
	ID             uuid.UUID `json:"id"`
	PostID         uuid.UUID `json:"post_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c *Comment) ToResponse() *CommentResponse {
	return &CommentResponse{
		ID:             c.ID,
		PostID:         c.PostID,
		AuthorID:       c.AuthorID,
		AuthorUsername: c.AuthorUsername,
		Content:        c.Content,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
