package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to a post and cascades away with it.
type Comment struct {
	ID             uuid.UUID `json:"id"`
	PostID         uuid.UUID `json:"post_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// OwnerID reports the commenting user for ownership checks.
func (c *Comment) OwnerID() uuid.UUID {
	return c.AuthorID
}
