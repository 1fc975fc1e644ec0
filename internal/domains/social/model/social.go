package model

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge in the social graph. The pair is unique
// and self-edges are rejected before they reach storage.
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Like marks a user's appreciation of a post, once per pair.
type Like struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PostID    uuid.UUID `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummary is the compact user shape used in follower and
// following lists.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Bio      string    `json:"bio"`
}
