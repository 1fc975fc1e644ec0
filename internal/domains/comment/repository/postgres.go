package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookclub-backend/internal/domains/comment/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const commentColumns = `c.id, c.post_id, c.author_id, u.username, c.content, c.created_at, c.updated_at`

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorUsername, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) CreateTx(ctx context.Context, tx pgx.Tx, c *model.Comment) (*model.Comment, error) {
	q := `
        INSERT INTO comments (post_id, author_id, content)
        VALUES ($1, $2, $3)
        RETURNING id, post_id, author_id, content, created_at, updated_at
    `

	var created model.Comment
	err := tx.QueryRow(ctx, q, c.PostID, c.AuthorID, c.Content).Scan(
		&created.ID, &created.PostID, &created.AuthorID, &created.Content,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	created.AuthorUsername = c.AuthorUsername

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	q := `
        SELECT ` + commentColumns + `
        FROM comments c
        JOIN users u ON u.id = c.author_id
        WHERE c.id = $1
    `

	c, err := scanComment(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	q := `
        SELECT ` + commentColumns + `
        FROM comments c
        JOIN users u ON u.id = c.author_id
        WHERE c.post_id = $1
        ORDER BY c.created_at ASC
    `

	rows, err := r.pool.Query(ctx, q, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	q := `
        UPDATE comments
        SET content = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING id, post_id, author_id, content, created_at, updated_at
    `

	var updated model.Comment
	err := r.pool.QueryRow(ctx, q, c.Content, c.ID).Scan(
		&updated.ID, &updated.PostID, &updated.AuthorID, &updated.Content,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	updated.AuthorUsername = c.AuthorUsername

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}
