package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tutoriafacil-backend/internal/domains/comment"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListByTutorial(ctx context.Context, tutorialID string, limit int) ([]*comment.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tutorial_id, name, email, content, created_at
		FROM comments WHERE tutorial_id = $1
		ORDER BY created_at DESC LIMIT $2`, tutorialID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*comment.Comment, 0)
	for rows.Next() {
		cm := &comment.Comment{}
		if err := rows.Scan(&cm.ID, &cm.TutorialID, &cm.Name, &cm.Email, &cm.Content, &cm.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, cm)
	}
	return comments, rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, entity *comment.Comment) (*comment.Comment, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, tutorial_id, name, email, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entity.ID, entity.TutorialID, entity.Name, entity.Email, entity.Content, entity.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
