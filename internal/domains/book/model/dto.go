package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookRequest - POST /books/create/
type CreateBookRequest struct {
	Title           string          `json:"title"`
	PublicationYear int             `json:"publication_year"`
	AuthorID        uuid.UUID       `json:"author_id"`
	Price           decimal.Decimal `json:"price"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255).Error("title must be 1-255 characters"),
		),
		validation.Field(&r.PublicationYear,
			validation.Required.Error("publication_year is required"),
			validation.Min(1).Error("publication_year must be positive"),
			validation.Max(time.Now().Year()).Error("Publication year cannot be in the future."),
		),
		validation.Field(&r.AuthorID,
			validation.By(requireUUID("author_id is required")),
		),
		validation.Field(&r.Price,
			validation.By(nonNegativePrice),
		),
	)
}

// UpdateBookRequest - PUT /books/:id/update/
type UpdateBookRequest struct {
	Title           *string          `json:"title,omitempty"`
	PublicationYear *int             `json:"publication_year,omitempty"`
	AuthorID        *uuid.UUID       `json:"author_id,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.Required.Error("title cannot be empty"),
				validation.Length(1, 255).Error("title must be 1-255 characters"),
			),
		),
		validation.Field(&r.PublicationYear,
			validation.When(r.PublicationYear != nil,
				validation.Min(1).Error("publication_year must be positive"),
				validation.Max(time.Now().Year()).Error("Publication year cannot be in the future."),
			),
		),
		validation.Field(&r.Price,
			validation.When(r.Price != nil,
				validation.By(nonNegativePrice),
			),
		),
	)
}

func requireUUID(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		id, _ := value.(uuid.UUID)
		if id == uuid.Nil {
			return validation.NewError("validation_required", msg)
		}
		return nil
	}
}

func nonNegativePrice(value interface{}) error {
	var price decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		price = v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		price = *v
	default:
		return nil
	}
	if price.IsNegative() {
		return validation.NewError("validation_min", "price cannot be negative")
	}
	return nil
}

// BookResponse - list representation, base columns only
type BookResponse struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	PublicationYear int             `json:"publication_year"`
	AuthorID        uuid.UUID       `json:"author_id"`
	Price           decimal.Decimal `json:"price"`
	CreatedAt       time.Time       `json:"created_at"`
}

// BookDetailResponse - detail representation with the author named
type BookDetailResponse struct {
	BookResponse
	AuthorName string    `json:"author_name"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		AuthorID:        b.AuthorID,
		Price:           b.Price,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *Book) ToDetailResponse() *BookDetailResponse {
	return &BookDetailResponse{
		BookResponse: *b.ToResponse(),
		AuthorName:   b.AuthorName,
		UpdatedAt:    b.UpdatedAt,
	}
}
