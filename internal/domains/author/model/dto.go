package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateAuthorRequest - POST /authors/create/
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be 1-255 characters"),
		),
	)
}

// UpdateAuthorRequest - PUT /authors/:id/update/
type UpdateAuthorRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Required.Error("name cannot be empty"),
				validation.Length(1, 255).Error("name must be 1-255 characters"),
			),
		),
	)
}

// AuthorResponse - basic author representation
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorDetailResponse - author with nested books
type AuthorDetailResponse struct {
	AuthorResponse
	Books []BookSummary `json:"books"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Slug:      a.Slug,
		CreatedAt: a.CreatedAt,
	}
}

func (a *Author) ToDetailResponse(books []BookSummary) *AuthorDetailResponse {
	if books == nil {
		books = []BookSummary{}
	}
	return &AuthorDetailResponse{
		AuthorResponse: *a.ToResponse(),
		Books:          books,
	}
}
