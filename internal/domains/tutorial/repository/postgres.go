package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutoriafacil-backend/internal/domains/tutorial"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) tutorial.Repository {
	return &postgresRepository{pool: pool}
}

const tutorialColumns = `id, title, slug, description, content, category_id, tags,
	image_url, video_url, affiliate_links, views, rating_sum, rating_count,
	is_featured, created_at, updated_at`

func scanTutorial(row pgx.Row) (*tutorial.Tutorial, error) {
	t := &tutorial.Tutorial{}
	var links []byte
	err := row.Scan(
		&t.ID, &t.Title, &t.Slug, &t.Description, &t.Content, &t.CategoryID,
		&t.Tags, &t.ImageURL, &t.VideoURL, &links, &t.Views, &t.RatingSum,
		&t.RatingCount, &t.IsFeatured, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(links, &t.AffiliateLinks); err != nil {
		return nil, fmt.Errorf("failed to decode affiliate links: %w", err)
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t, nil
}

func (r *postgresRepository) List(ctx context.Context, filter tutorial.ListFilter) ([]*tutorial.Tutorial, error) {
	query, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutorials: %w", err)
	}
	defer rows.Close()

	tutorials := make([]*tutorial.Tutorial, 0)
	for rows.Next() {
		t, err := scanTutorial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tutorial: %w", err)
		}
		tutorials = append(tutorials, t)
	}
	return tutorials, rows.Err()
}

// GetBySlugAndCountView bumps the view counter and reads the record in one
// statement, so concurrent reads of the same slug never lose an increment.
func (r *postgresRepository) GetBySlugAndCountView(ctx context.Context, slug string) (*tutorial.Tutorial, error) {
	query := fmt.Sprintf(`
		UPDATE tutorials SET views = views + 1 WHERE slug = $1
		RETURNING %s`, tutorialColumns)

	t, err := scanTutorial(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tutorial.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tutorial by slug: %w", err)
	}
	return t, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*tutorial.Tutorial, error) {
	query := fmt.Sprintf(`SELECT %s FROM tutorials WHERE id = $1`, tutorialColumns)

	t, err := scanTutorial(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tutorial.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tutorial: %w", err)
	}
	return t, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *tutorial.Tutorial) (*tutorial.Tutorial, error) {
	links, err := json.Marshal(entity.AffiliateLinks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode affiliate links: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO tutorials (
			id, title, slug, description, content, category_id, tags,
			image_url, video_url, affiliate_links, views, rating_sum,
			rating_count, is_featured, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, 0, 0, $11, $12, $13)
		RETURNING %s`, tutorialColumns)

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Title, entity.Slug, entity.Description, entity.Content,
		entity.CategoryID, entity.Tags, entity.ImageURL, entity.VideoURL, links,
		entity.IsFeatured, entity.CreatedAt, entity.UpdatedAt)

	created, err := scanTutorial(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "idx_tutorials_slug" {
			return nil, tutorial.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create tutorial: %w", err)
	}
	return created, nil
}

// Update builds the SET clause from the fields present in the request;
// absent fields are left untouched. updated_at always refreshes.
func (r *postgresRepository) Update(ctx context.Context, id string, req *tutorial.UpdateRequest) (*tutorial.Tutorial, error) {
	var set []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Content != nil {
		add("content", *req.Content)
	}
	if req.CategoryID != nil {
		add("category_id", *req.CategoryID)
	}
	if req.Tags != nil {
		add("tags", *req.Tags)
	}
	if req.ImageURL != nil {
		add("image_url", *req.ImageURL)
	}
	if req.VideoURL != nil {
		add("video_url", *req.VideoURL)
	}
	if req.AffiliateLinks != nil {
		links, err := json.Marshal(*req.AffiliateLinks)
		if err != nil {
			return nil, fmt.Errorf("failed to encode affiliate links: %w", err)
		}
		add("affiliate_links", links)
	}
	if req.IsFeatured != nil {
		add("is_featured", *req.IsFeatured)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE tutorials SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), tutorialColumns)

	updated, err := scanTutorial(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tutorial.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update tutorial: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tutorials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tutorial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tutorial.ErrNotFound
	}
	return nil
}

// Rate moves both rating counters together in a single atomic statement.
func (r *postgresRepository) Rate(ctx context.Context, slug string, rating int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tutorials SET rating_sum = rating_sum + $1, rating_count = rating_count + 1 WHERE slug = $2`,
		rating, slug)
	if err != nil {
		return fmt.Errorf("failed to rate tutorial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tutorial.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) ListSummaries(ctx context.Context, limit int) ([]tutorial.Summary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT title, description, slug FROM tutorials ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutorial summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]tutorial.Summary, 0, limit)
	for rows.Next() {
		var s tutorial.Summary
		if err := rows.Scan(&s.Title, &s.Description, &s.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan tutorial summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tutorials`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tutorials: %w", err)
	}
	return count, nil
}
