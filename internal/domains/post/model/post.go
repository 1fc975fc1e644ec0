package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is user-generated content. The author is set at creation and
// never changes afterwards.
type Post struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// OwnerID reports the posting user for ownership checks.
func (p *Post) OwnerID() uuid.UUID {
	return p.AuthorID
}

// Tag is a lowercase label attached to posts. Tags are created on
// demand when a post references an unknown name.
type Tag struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
