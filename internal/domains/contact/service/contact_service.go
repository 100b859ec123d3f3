package service

import (
	"context"
	"strings"

	"tutoriafacil-backend/internal/domains/contact"
)

const listLimit = 100

type contactService struct {
	repo contact.Repository
}

func NewContactService(repo contact.Repository) contact.Service {
	return &contactService{repo: repo}
}

func (s *contactService) List(ctx context.Context) ([]*contact.Contact, error) {
	return s.repo.List(ctx, listLimit)
}

func (s *contactService) Create(ctx context.Context, req *contact.CreateRequest) (*contact.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Email = strings.ToLower(req.Email)
	return s.repo.Create(ctx, contact.NewContact(req))
}
