package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutoriafacil-backend/internal/domains/faq"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) faq.Repository {
	return &postgresRepository{pool: pool}
}

const faqColumns = `id, question, answer, category, display_order, created_at`

func scanFAQ(row pgx.Row) (*faq.FAQ, error) {
	f := &faq.FAQ{}
	err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.Order, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *postgresRepository) List(ctx context.Context, category string, limit int) ([]*faq.FAQ, error) {
	var rows pgx.Rows
	var err error

	if category != "" {
		rows, err = r.pool.Query(ctx, fmt.Sprintf(
			`SELECT %s FROM faqs WHERE category = $1 ORDER BY display_order ASC LIMIT $2`, faqColumns),
			category, limit)
	} else {
		rows, err = r.pool.Query(ctx, fmt.Sprintf(
			`SELECT %s FROM faqs ORDER BY display_order ASC LIMIT $1`, faqColumns),
			limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	faqs := make([]*faq.FAQ, 0)
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

func (r *postgresRepository) GetByQuestion(ctx context.Context, question string) (*faq.FAQ, error) {
	query := fmt.Sprintf(`SELECT %s FROM faqs WHERE question = $1`, faqColumns)

	f, err := scanFAQ(r.pool.QueryRow(ctx, query, question))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, faq.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get faq by question: %w", err)
	}
	return f, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *faq.FAQ) (*faq.FAQ, error) {
	query := fmt.Sprintf(`
		INSERT INTO faqs (id, question, answer, category, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, faqColumns)

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Question, entity.Answer, entity.Category, entity.Order, entity.CreatedAt)

	created, err := scanFAQ(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "idx_faqs_question" {
			return nil, faq.ErrDuplicateQuestion
		}
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return faq.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count faqs: %w", err)
	}
	return count, nil
}
