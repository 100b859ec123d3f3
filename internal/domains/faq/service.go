package faq

import "context"

type Service interface {
	List(ctx context.Context, category string) ([]*FAQ, error)
	Create(ctx context.Context, req *CreateRequest) (*FAQ, error)
	Delete(ctx context.Context, id string) error
}
