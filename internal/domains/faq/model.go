package faq

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// FAQ is a question/answer pair. Order controls display sorting within a
// category; it is not unique.
type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Question, validation.Required.Error("question is required")),
		validation.Field(&r.Answer, validation.Required.Error("answer is required")),
	)
}

func NewFAQ(req *CreateRequest) *FAQ {
	category := req.Category
	if category == "" {
		category = "geral"
	}
	return &FAQ{
		ID:        uuid.New().String(),
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  category,
		Order:     req.Order,
		CreatedAt: time.Now().UTC(),
	}
}
