package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutoriafacil-backend/internal/domains/blog"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

const postColumns = `id, title, slug, excerpt, content, image_url, tags, created_at, updated_at`

func scanPost(row pgx.Row) (*blog.Post, error) {
	p := &blog.Post{}
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.ImageURL, &p.Tags, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context, limit int) ([]*blog.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts ORDER BY created_at DESC LIMIT $1`, postColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*blog.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts WHERE slug = $1`, postColumns)

	p, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog post by slug: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *blog.Post) (*blog.Post, error) {
	query := fmt.Sprintf(`
		INSERT INTO blog_posts (id, title, slug, excerpt, content, image_url, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, postColumns)

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Title, entity.Slug, entity.Excerpt, entity.Content,
		entity.ImageURL, entity.Tags, entity.CreatedAt, entity.UpdatedAt)

	created, err := scanPost(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "idx_blog_posts_slug" {
			return nil, blog.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrNotFound
	}
	return nil
}
