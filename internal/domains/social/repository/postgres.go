package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookclub-backend/internal/domains/social/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetUser(ctx context.Context, id uuid.UUID) (*model.UserSummary, error) {
	var u model.UserSummary
	err := r.pool.QueryRow(ctx, `SELECT id, username, COALESCE(bio, '') FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) CreateFollowTx(ctx context.Context, tx pgx.Tx, followerID, followeeID uuid.UUID) error {
	q := `INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, q, followerID, followeeID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return model.ErrAlreadyFollowing
			case "23503": // foreign_key_violation
				return model.ErrUserNotFound
			}
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

func (r *postgresRepository) DeleteFollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	q := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`

	cmdTag, err := r.pool.Exec(ctx, q, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrNotFollowing
	}

	return nil
}

func (r *postgresRepository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	q := `
        SELECT u.id, u.username, COALESCE(u.bio, '')
        FROM follows f
        JOIN users u ON u.id = f.follower_id
        WHERE f.followee_id = $1
        ORDER BY f.created_at DESC
    `
	return r.queryUserSummaries(ctx, q, userID)
}

func (r *postgresRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	q := `
        SELECT u.id, u.username, COALESCE(u.bio, '')
        FROM follows f
        JOIN users u ON u.id = f.followee_id
        WHERE f.follower_id = $1
        ORDER BY f.created_at DESC
    `
	return r.queryUserSummaries(ctx, q, userID)
}

func (r *postgresRepository) queryUserSummaries(ctx context.Context, q string, userID uuid.UUID) ([]model.UserSummary, error) {
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query follow edges: %w", err)
	}
	defer rows.Close()

	var users []model.UserSummary
	for rows.Next() {
		var u model.UserSummary
		if err := rows.Scan(&u.ID, &u.Username, &u.Bio); err != nil {
			return nil, fmt.Errorf("failed to scan follow edge: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follow edges: %w", err)
	}

	return users, nil
}

func (r *postgresRepository) ListFolloweeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT followee_id FROM follows WHERE follower_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query followee ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan followee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating followee ids: %w", err)
	}

	return ids, nil
}

func (r *postgresRepository) CreateLikeTx(ctx context.Context, tx pgx.Tx, userID, postID uuid.UUID) error {
	q := `INSERT INTO likes (user_id, post_id) VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, q, userID, postID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return model.ErrAlreadyLiked
			case "23503":
				if strings.Contains(pgErr.ConstraintName, "post") {
					return model.ErrPostNotFound
				}
				return model.ErrUserNotFound
			}
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

func (r *postgresRepository) DeleteLike(ctx context.Context, userID, postID uuid.UUID) error {
	q := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	cmdTag, err := r.pool.Exec(ctx, q, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrNotLiked
	}

	return nil
}
