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

	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/pkg/cache"
	"bookclub-backend/pkg/database"
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
	postCacheKeyPrefix = "post:"
	tagListCacheKey    = "tags:all"
	cacheTTL           = 15 * time.Minute
)

const postColumns = `p.id, p.title, p.content, p.author_id, u.username, p.created_at, p.updated_at`

var listSpec = query.Spec{
	FilterColumns: map[string]string{
		"author_id": "p.author_id",
		"tag":       "t.name",
	},
	FilterJoins: map[string]string{
		"tag": "JOIN post_tags pt ON pt.post_id = p.id JOIN tags t ON t.id = pt.tag_id",
	},
	SearchColumns: []string{"p.title", "p.content"},
	OrderColumns: map[string]string{
		"created_at": "p.created_at",
		"updated_at": "p.updated_at",
	},
	DefaultOrder: "-created_at",
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.AuthorUsername, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Post, tags []string) (*model.Post, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Post, error) {
		q := `
            INSERT INTO posts (title, content, author_id)
            VALUES ($1, $2, $3)
            RETURNING id, title, content, author_id, created_at, updated_at
        `

		var inserted model.Post
		err := tx.QueryRow(ctx, q, p.Title, p.Content, p.AuthorID).Scan(
			&inserted.ID, &inserted.Title, &inserted.Content, &inserted.AuthorID,
			&inserted.CreatedAt, &inserted.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}

		if err := replaceTags(ctx, tx, inserted.ID, tags); err != nil {
			return nil, err
		}
		inserted.Tags = tags
		inserted.AuthorUsername = p.AuthorUsername

		return &inserted, nil
	})
	if err != nil {
		return nil, err
	}

	if len(tags) > 0 {
		r.cache.DeletePattern(ctx, "tags:*")
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	cacheKey := postCacheKeyPrefix + id.String()

	var cached model.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	q := `
        SELECT ` + postColumns + `
        FROM posts p
        JOIN users u ON u.id = p.author_id
        WHERE p.id = $1
    `

	p, err := scanPost(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	tagsByPost, err := r.loadTags(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return nil, err
	}
	p.Tags = tagsByPost[p.ID]

	r.cache.Set(ctx, cacheKey, p, cacheTTL)

	return p, nil
}

func (r *postgresRepository) GetOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT author_id FROM posts WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, model.ErrPostNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get post owner: %w", err)
	}
	return ownerID, nil
}

func (r *postgresRepository) List(ctx context.Context, params query.Params) ([]model.Post, int64, error) {
	clauses, err := listSpec.Build(params)
	if err != nil {
		return nil, 0, err
	}

	q := fmt.Sprintf(
		`SELECT %s FROM posts p JOIN users u ON u.id = p.author_id %s %s %s LIMIT $%d OFFSET $%d`,
		postColumns, clauses.Join, clauses.Where, clauses.OrderBy, len(clauses.Args)+1, len(clauses.Args)+2,
	)
	args := append(clauses.Args, clauses.Limit, clauses.Offset)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	var ids []uuid.UUID
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	tagsByPost, err := r.loadTags(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range posts {
		posts[i].Tags = tagsByPost[posts[i].ID]
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts p %s %s`, clauses.Join, clauses.Where)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, clauses.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresRepository) ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, page, pageSize int) ([]model.Post, int64, error) {
	if len(authorIDs) == 0 {
		return []model.Post{}, 0, nil
	}

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
        SELECT ` + postColumns + `
        FROM posts p
        JOIN users u ON u.id = p.author_id
        WHERE p.author_id = ANY($1)
        ORDER BY p.created_at DESC
        LIMIT $2 OFFSET $3
    `

	rows, err := r.pool.Query(ctx, q, authorIDs, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query feed posts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	var ids []uuid.UUID
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan feed post: %w", err)
		}
		posts = append(posts, *p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating feed posts: %w", err)
	}

	tagsByPost, err := r.loadTags(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range posts {
		posts[i].Tags = tagsByPost[posts[i].ID]
	}

	var total int64
	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = ANY($1)`, authorIDs).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count feed posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Post, tags *[]string) (*model.Post, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Post, error) {
		q := `
            UPDATE posts
            SET title = $1, content = $2, updated_at = NOW()
            WHERE id = $3
            RETURNING id, title, content, author_id, created_at, updated_at
        `

		var row model.Post
		err := tx.QueryRow(ctx, q, p.Title, p.Content, p.ID).Scan(
			&row.ID, &row.Title, &row.Content, &row.AuthorID,
			&row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrPostNotFound
			}
			return nil, fmt.Errorf("failed to update post: %w", err)
		}
		row.AuthorUsername = p.AuthorUsername

		if tags != nil {
			if err := replaceTags(ctx, tx, row.ID, *tags); err != nil {
				return nil, err
			}
			row.Tags = *tags
		} else {
			row.Tags = p.Tags
		}

		return &row, nil
	})
	if err != nil {
		return nil, err
	}

	r.cache.Delete(ctx, postCacheKeyPrefix+p.ID.String())
	if tags != nil {
		r.cache.DeletePattern(ctx, "tags:*")
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	r.cache.Delete(ctx, postCacheKeyPrefix+id.String())

	return nil
}

// replaceTags swaps a post's attached tag set inside tx, creating
// unknown names as it goes.
func replaceTags(ctx context.Context, tx pgx.Tx, postID uuid.UUID, tags []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to detach tags: %w", err)
	}

	for _, name := range tags {
		var tagID uuid.UUID
		// The no-op DO UPDATE makes RETURNING yield the id on conflict.
		err := tx.QueryRow(ctx, `
            INSERT INTO tags (name) VALUES ($1)
            ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
            RETURNING id
        `, name).Scan(&tagID)
		if err != nil {
			return fmt.Errorf("failed to upsert tag %q: %w", name, err)
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)
            ON CONFLICT DO NOTHING
        `, postID, tagID)
		if err != nil {
			return fmt.Errorf("failed to attach tag %q: %w", name, err)
		}
	}

	return nil
}

// loadTags fetches tag names for a batch of posts in one query.
func (r *postgresRepository) loadTags(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	result := make(map[uuid.UUID][]string, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	q := `
        SELECT pt.post_id, t.name
        FROM post_tags pt
        JOIN tags t ON t.id = pt.tag_id
        WHERE pt.post_id = ANY($1)
        ORDER BY t.name
    `

	rows, err := r.pool.Query(ctx, q, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query post tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID uuid.UUID
		var name string
		if err := rows.Scan(&postID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan post tag: %w", err)
		}
		result[postID] = append(result[postID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post tags: %w", err)
	}

	return result, nil
}

func (r *postgresRepository) ListTags(ctx context.Context) ([]model.Tag, error) {
	var cached []model.Tag
	if found, err := r.cache.Get(ctx, tagListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, name FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	r.cache.Set(ctx, tagListCacheKey, tags, cacheTTL)

	return tags, nil
}

func (r *postgresRepository) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	var t model.Tag
	err := r.pool.QueryRow(ctx, `INSERT INTO tags (name) VALUES ($1) RETURNING id, name`, name).Scan(&t.ID, &t.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrDuplicateTag
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	r.cache.DeletePattern(ctx, "tags:*")

	return &t, nil
}
