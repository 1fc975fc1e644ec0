package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookclub-backend/internal/domains/notification/model"
	"bookclub-backend/internal/shared/query"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const notificationColumns = `n.id, n.recipient_id, n.actor_id, u.username, n.verb, n.target_type, n.target_id, n.is_read, n.created_at`

func scanNotification(row pgx.Row) (*model.Notification, error) {
	var n model.Notification
	err := row.Scan(
		&n.ID, &n.RecipientID, &n.ActorID, &n.ActorUsername,
		&n.Verb, &n.TargetType, &n.TargetID, &n.IsRead, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *postgresRepository) CreateTx(ctx context.Context, tx pgx.Tx, n *model.Notification) error {
	q := `
        INSERT INTO notifications (recipient_id, actor_id, verb, target_type, target_id)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := tx.Exec(ctx, q, n.RecipientID, n.ActorID, n.Verb, n.TargetType, n.TargetID)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, page, pageSize int) ([]model.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = query.DefaultPageSize
	}
	if pageSize > query.MaxPageSize {
		pageSize = query.MaxPageSize
	}

	q := `
        SELECT ` + notificationColumns + `
        FROM notifications n
        JOIN users u ON u.id = n.actor_id
        WHERE n.recipient_id = $1
        ORDER BY n.created_at DESC
        LIMIT $2 OFFSET $3
    `

	rows, err := r.pool.Query(ctx, q, recipientID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating notifications: %w", err)
	}

	var total int64
	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1`, recipientID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return notifications, total, nil
}

func (r *postgresRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`,
		recipientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) MarkRead(ctx context.Context, recipientID, id uuid.UUID) (*model.Notification, error) {
	// Scoping by recipient makes other users' notifications look
	// nonexistent rather than forbidden.
	q := `
        UPDATE notifications n
        SET is_read = TRUE
        FROM users u
        WHERE n.id = $1 AND n.recipient_id = $2 AND u.id = n.actor_id
        RETURNING ` + notificationColumns

	n, err := scanNotification(r.pool.QueryRow(ctx, q, id, recipientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return n, nil
}

func (r *postgresRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE`,
		recipientID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
