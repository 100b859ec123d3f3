package category

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Category is a top-level grouping for tutorials. The slug is what public
// URLs reference; the id is internal.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateRequest is the client-supplied shape. Unknown JSON fields are
// dropped by the decoder; id and created_at are always server-generated.
type CreateRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&r.Slug, validation.Required.Error("slug is required"), validation.Length(1, 255)),
	)
}

// NewCategory stamps identity and creation time for a create request.
func NewCategory(req *CreateRequest) *Category {
	icon := req.Icon
	if icon == "" {
		icon = "folder"
	}
	return &Category{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Slug:        req.Slug,
		Icon:        icon,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
}
