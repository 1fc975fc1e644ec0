package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const maxTagsPerPost = 10

// CreatePostRequest - POST /posts/create/
type CreatePostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255).Error("title must be 1-255 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Tags,
			validation.Length(0, maxTagsPerPost).Error("a post can carry at most 10 tags"),
			validation.Each(validation.Length(1, 50).Error("tag names must be 1-50 characters")),
		),
	)
}

// UpdatePostRequest - PUT /posts/:id/update/
type UpdatePostRequest struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	var tags []string
	if r.Tags != nil {
		tags = *r.Tags
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.Required.Error("title cannot be empty"),
				validation.Length(1, 255).Error("title must be 1-255 characters"),
			),
		),
		validation.Field(&r.Content,
			validation.When(r.Content != nil,
				validation.Required.Error("content cannot be empty"),
			),
		),
		validation.Field(&r.Tags,
			validation.When(r.Tags != nil,
				validation.By(func(interface{}) error {
					return validation.Validate(tags,
						validation.Length(0, maxTagsPerPost).Error("a post can carry at most 10 tags"),
						validation.Each(validation.Length(1, 50).Error("tag names must be 1-50 characters")),
					)
				}),
			),
		),
	)
}

// CreateTagRequest - POST /tags/create/
type CreateTagRequest struct {
	Name string `json:"name"`
}

func (r CreateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 50).Error("name must be 1-50 characters"),
		),
	)
}

// PostResponse - list and write representation
type PostResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Post) ToResponse() *PostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &PostResponse{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		AuthorID:       p.AuthorID,
		AuthorUsername: p.AuthorUsername,
		Tags:           tags,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
