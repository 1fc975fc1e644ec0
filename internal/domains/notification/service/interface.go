package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookclub-backend/internal/domains/notification/model"
)

// Service defines business logic for the notification log. NotifyTx is
// the write side used by the comment and social services; everything
// else serves the recipient-facing endpoints.
type Service interface {
	// NotifyTx appends a notification inside the caller's transaction
	// so it commits with the action it describes.
	NotifyTx(ctx context.Context, tx pgx.Tx, recipientID, actorID uuid.UUID, verb, targetType string, targetID uuid.UUID) error

	// List returns a page of the recipient's notifications, newest
	// first, with the total and unread counts.
	List(ctx context.Context, recipientID uuid.UUID, page, pageSize int) ([]model.Notification, int64, int64, error)

	// MarkRead marks one notification read. Marking twice is a no-op
	// success. Errors: ErrNotificationNotFound outside the recipient's
	// scope.
	MarkRead(ctx context.Context, recipientID, id uuid.UUID) (*model.Notification, error)

	// MarkAllRead marks every unread notification read and reports how
	// many changed.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
