package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Comment is a public reader comment attached to a tutorial.
type Comment struct {
	ID         string    `json:"id"`
	TutorialID string    `json:"tutorial_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateRequest struct {
	TutorialID string `json:"tutorial_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Content    string `json:"content"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TutorialID, validation.Required.Error("tutorial_id is required")),
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}

func NewComment(req *CreateRequest) *Comment {
	return &Comment{
		ID:         uuid.New().String(),
		TutorialID: req.TutorialID,
		Name:       req.Name,
		Email:      req.Email,
		Content:    req.Content,
		CreatedAt:  time.Now().UTC(),
	}
}
