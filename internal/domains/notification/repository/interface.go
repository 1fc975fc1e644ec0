package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookclub-backend/internal/domains/notification/model"
)

// Repository defines data access for the notification log.
type Repository interface {
	// CreateTx appends a notification inside the caller's transaction.
	CreateTx(ctx context.Context, tx pgx.Tx, n *model.Notification) error

	// ListByRecipient returns a page of the recipient's notifications,
	// newest first, plus the total count.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, page, pageSize int) ([]model.Notification, int64, error)

	// CountUnread returns the recipient's unread notification count.
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkRead flips is_read on one of the recipient's notifications.
	// Already-read rows succeed unchanged. Errors:
	// ErrNotificationNotFound for rows outside the recipient's scope.
	MarkRead(ctx context.Context, recipientID, id uuid.UUID) (*model.Notification, error)

	// MarkAllRead flips is_read on every unread notification of the
	// recipient, returning how many changed.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
