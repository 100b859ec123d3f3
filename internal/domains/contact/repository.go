package contact

import "context"

type Repository interface {
	// List returns contact messages newest first.
	List(ctx context.Context, limit int) ([]*Contact, error)
	Create(ctx context.Context, entity *Contact) (*Contact, error)
}
