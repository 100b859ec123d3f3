package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutoriafacil-backend/internal/domains/contact"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

const contactColumns = `id, name, email, subject, message, created_at`

func scanContact(row pgx.Row) (*contact.Contact, error) {
	m := &contact.Contact{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *postgresRepository) List(ctx context.Context, limit int) ([]*contact.Contact, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM contacts ORDER BY created_at DESC LIMIT $1`, contactColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	messages := make([]*contact.Contact, 0)
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, entity *contact.Contact) (*contact.Contact, error) {
	query := fmt.Sprintf(`
		INSERT INTO contacts (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, contactColumns)

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Name, entity.Email, entity.Subject, entity.Message, entity.CreatedAt)

	created, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return created, nil
}
