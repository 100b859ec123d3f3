package chat

import "context"

type Service interface {
	Chat(ctx context.Context, req *Request) (*Response, error)
}
