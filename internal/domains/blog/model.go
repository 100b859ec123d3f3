package blog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Post is a blog article, independent of the tutorial catalogue.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 500)),
		validation.Field(&r.Slug, validation.Required.Error("slug is required"), validation.Length(1, 255)),
		validation.Field(&r.Excerpt, validation.Required.Error("excerpt is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}

func NewPost(req *CreateRequest) *Post {
	now := time.Now().UTC()
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Post{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
