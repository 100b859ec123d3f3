package contact

import "context"

type Service interface {
	List(ctx context.Context) ([]*Contact, error)
	Create(ctx context.Context, req *CreateRequest) (*Contact, error)
}
