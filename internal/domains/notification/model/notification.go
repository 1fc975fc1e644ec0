package model

import (
	"time"

	"github.com/google/uuid"
)

// Verbs describe what the actor did to the target.
const (
	VerbCommented = "commented"
	VerbLiked     = "liked"
	VerbFollowed  = "followed"
)

// Target types name the entity the verb applies to.
const (
	TargetTypePost = "post"
	TargetTypeUser = "user"
)

// Notification is an append-only activity record. Only is_read ever
// changes after creation; rows are written exclusively as side effects
// of comment, like and follow operations.
type Notification struct {
	ID            uuid.UUID `json:"id"`
	RecipientID   uuid.UUID `json:"recipient_id"`
	ActorID       uuid.UUID `json:"actor_id"`
	ActorUsername string    `json:"actor_username"`
	Verb          string    `json:"verb"`
	TargetType    string    `json:"target_type"`
	TargetID      uuid.UUID `json:"target_id"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}
