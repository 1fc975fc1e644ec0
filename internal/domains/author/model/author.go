package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is a catalog entity: it has no owning identity, so edits are
// gated purely on role grants.
type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID reports no owner; nobody can claim a catalog row through
// ownership, so edit and delete fall through to role grants.
func (a *Author) OwnerID() uuid.UUID {
	return uuid.Nil
}

// BookSummary is the nested book representation on the author detail
// endpoint. Kept here so the author domain does not import book.
type BookSummary struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	PublicationYear int       `json:"publication_year"`
}
