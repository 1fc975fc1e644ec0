package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookclub-backend/internal/domains/author/model"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/pkg/cache"
)

// postgresRepository implements Repository with a Redis read-through
// cache on the detail lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	authorSlugKeyPrefix  = "author:slug:"
	cacheTTL             = 15 * time.Minute
)

const authorColumns = `id, name, slug, created_at, updated_at`

var listSpec = query.Spec{
	FilterColumns: map[string]string{},
	SearchColumns: []string{"name"},
	OrderColumns: map[string]string{
		"name":       "name",
		"created_at": "created_at",
	},
	DefaultOrder: "name",
}

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	if err := row.Scan(&a.ID, &a.Name, &a.Slug, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	q := `
        INSERT INTO authors (name, slug)
        VALUES ($1, $2)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, q, a.Name, a.Slug))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var cached model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	q := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return a, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Author, error) {
	cacheKey := authorSlugKeyPrefix + slug

	var cached model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	q := `SELECT ` + authorColumns + ` FROM authors WHERE slug = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, q, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by slug: %w", err)
	}

	// Cache by slug and id so either lookup path hits.
	r.cache.Set(ctx, cacheKey, a, cacheTTL)
	r.cache.Set(ctx, authorCacheKeyPrefix+a.ID.String(), a, cacheTTL)

	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, params query.Params) ([]model.Author, int64, error) {
	clauses, err := listSpec.Build(params)
	if err != nil {
		return nil, 0, err
	}

	q := fmt.Sprintf(
		`SELECT %s FROM authors %s %s LIMIT $%d OFFSET $%d`,
		authorColumns, clauses.Where, clauses.OrderBy, len(clauses.Args)+1, len(clauses.Args)+2,
	)
	args := append(clauses.Args, clauses.Limit, clauses.Offset)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM authors %s`, clauses.Where)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, clauses.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}

func (r *postgresRepository) GetBooks(ctx context.Context, authorID uuid.UUID) ([]model.BookSummary, error) {
	q := `
        SELECT id, title, publication_year
        FROM books
        WHERE author_id = $1
        ORDER BY publication_year DESC, title ASC
    `

	rows, err := r.pool.Query(ctx, q, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author books: %w", err)
	}
	defer rows.Close()

	var books []model.BookSummary
	for rows.Next() {
		var b model.BookSummary
		if err := rows.Scan(&b.ID, &b.Title, &b.PublicationYear); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	q := `
        UPDATE authors
        SET name = $1, slug = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.pool.QueryRow(ctx, q, a.Name, a.Slug, a.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.invalidate(ctx, a.ID, a.Slug, updated.Slug)

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Fetch the slug first so the slug cache entry can be dropped too.
	var slug string
	err := r.pool.QueryRow(ctx, `SELECT slug FROM authors WHERE id = $1`, id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAuthorNotFound
		}
		return fmt.Errorf("failed to load author for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	r.invalidate(ctx, id, slug, "")

	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID, slugs ...string) {
	keys := []string{authorCacheKeyPrefix + id.String()}
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, authorSlugKeyPrefix+slug)
		}
	}
	r.cache.Delete(ctx, keys...)
}
