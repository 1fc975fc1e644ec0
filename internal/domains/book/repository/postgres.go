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

	"bookclub-backend/internal/domains/book/model"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/pkg/cache"
)

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
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute
)

const bookColumns = `b.id, b.title, b.publication_year, b.author_id, b.price, b.created_at, b.updated_at`

// The authors join exists only while searching, so author name is a
// search target without taxing the plain list.
var listSpec = query.Spec{
	FilterColumns: map[string]string{
		"author_id":        "b.author_id",
		"publication_year": "b.publication_year",
		"title":            "b.title",
	},
	SearchColumns: []string{"b.title", "authors.name"},
	SearchJoin:    "JOIN authors ON authors.id = b.author_id",
	OrderColumns: map[string]string{
		"title":            "b.title",
		"publication_year": "b.publication_year",
		"price":            "b.price",
		"created_at":       "b.created_at",
	},
	DefaultOrder: "title",
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	if err := row.Scan(&b.ID, &b.Title, &b.PublicationYear, &b.AuthorID, &b.Price, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	q := `
        INSERT INTO books AS b (title, publication_year, author_id, price)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + bookColumns

	created, err := scanBook(r.pool.QueryRow(ctx, q, b.Title, b.PublicationYear, b.AuthorID, b.Price))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var cached model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	q := `
        SELECT ` + bookColumns + `, authors.name
        FROM books b
        JOIN authors ON authors.id = b.author_id
        WHERE b.id = $1
    `

	var b model.Book
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.Title, &b.PublicationYear, &b.AuthorID, &b.Price,
		&b.CreatedAt, &b.UpdatedAt, &b.AuthorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &b, cacheTTL)

	return &b, nil
}

func (r *postgresRepository) List(ctx context.Context, params query.Params) ([]model.Book, int64, error) {
	clauses, err := listSpec.Build(params)
	if err != nil {
		return nil, 0, err
	}

	q := fmt.Sprintf(
		`SELECT %s FROM books b %s %s %s LIMIT $%d OFFSET $%d`,
		bookColumns, clauses.Join, clauses.Where, clauses.OrderBy, len(clauses.Args)+1, len(clauses.Args)+2,
	)
	args := append(clauses.Args, clauses.Limit, clauses.Offset)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM books b %s %s`, clauses.Join, clauses.Where)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, clauses.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	q := `
        UPDATE books AS b
        SET title = $1, publication_year = $2, author_id = $3, price = $4, updated_at = NOW()
        WHERE b.id = $5
        RETURNING ` + bookColumns

	updated, err := scanBook(r.pool.QueryRow(ctx, q, b.Title, b.PublicationYear, b.AuthorID, b.Price, b.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	r.cache.Delete(ctx, bookCacheKeyPrefix+b.ID.String())

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())

	return nil
}
