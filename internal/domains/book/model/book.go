package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is a catalog entity tied to an author. Rows cascade away when
// the author is deleted.
type Book struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	PublicationYear int             `json:"publication_year"`
	AuthorID        uuid.UUID       `json:"author_id"`
	AuthorName      string          `json:"author_name,omitempty"` // populated on detail lookups only
	Price           decimal.Decimal `json:"price"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OwnerID reports no owner. Catalog rows are gated on role grants, the
// same way authors are.
func (b *Book) OwnerID() uuid.UUID {
	return uuid.Nil
}
