package tutorial

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tutorial is the stored shape. The views and rating counters only move
// through the atomic repository operations, never through updates.
type Tutorial struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Slug           string              `json:"slug"`
	Description    string              `json:"description"`
	Content        string              `json:"content"`
	CategoryID     string              `json:"category_id"`
	Tags           []string            `json:"tags"`
	ImageURL       string              `json:"image_url"`
	VideoURL       string              `json:"video_url"`
	AffiliateLinks []map[string]string `json:"affiliate_links"`
	Views          int64               `json:"views"`
	RatingSum      int64               `json:"rating_sum"`
	RatingCount    int64               `json:"rating_count"`
	IsFeatured     bool                `json:"is_featured"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// Response is the outbound shape: the stored fields plus the derived
// average rating, which is never persisted.
type Response struct {
	Tutorial
	AverageRating float64 `json:"average_rating"`
}

// ToResponse derives the average rating (sum/count, 2dp) at read time.
func ToResponse(t *Tutorial) *Response {
	avg := 0.0
	if t.RatingCount > 0 {
		avg = decimal.NewFromInt(t.RatingSum).
			Div(decimal.NewFromInt(t.RatingCount)).
			Round(2).
			InexactFloat64()
	}
	return &Response{Tutorial: *t, AverageRating: avg}
}

// CreateRequest is the client-supplied create shape.
type CreateRequest struct {
	Title          string              `json:"title"`
	Slug           string              `json:"slug"`
	Description    string              `json:"description"`
	Content        string              `json:"content"`
	CategoryID     string              `json:"category_id"`
	Tags           []string            `json:"tags"`
	ImageURL       string              `json:"image_url"`
	VideoURL       string              `json:"video_url"`
	AffiliateLinks []map[string]string `json:"affiliate_links"`
	IsFeatured     bool                `json:"is_featured"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 500)),
		validation.Field(&r.Slug, validation.Required.Error("slug is required"), validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.CategoryID, validation.Required.Error("category_id is required")),
	)
}

// UpdateRequest carries partial-update semantics: a nil field was absent
// from the request and must leave the stored value unchanged. Pointers are
// what lets us tell "omitted" apart from "explicitly set to empty".
type UpdateRequest struct {
	Title          *string              `json:"title"`
	Description    *string              `json:"description"`
	Content        *string              `json:"content"`
	CategoryID     *string              `json:"category_id"`
	Tags           *[]string            `json:"tags"`
	ImageURL       *string              `json:"image_url"`
	VideoURL       *string              `json:"video_url"`
	AffiliateLinks *[]map[string]string `json:"affiliate_links"`
	IsFeatured     *bool                `json:"is_featured"`
}

// RatingRequest is the transient rate-tutorial input.
type RatingRequest struct {
	Rating int `json:"rating"`
}

func (r RatingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(1).Error("rating must be between 1 and 5"),
			validation.Max(5).Error("rating must be between 1 and 5"),
		),
	)
}

// ListFilter holds the optional list parameters. All present filters
// combine with AND; Search matches case-insensitive substrings of the
// title, description or any tag.
type ListFilter struct {
	CategoryID string
	Featured   *bool
	Search     string
	Limit      int
}

// Summary is the bounded projection used for the chat grounding context.
type Summary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// NewTutorial stamps identity, timestamps and counter zeroes on creation.
func NewTutorial(req *CreateRequest) *Tutorial {
	now := time.Now().UTC()
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	links := req.AffiliateLinks
	if links == nil {
		links = []map[string]string{}
	}
	return &Tutorial{
		ID:             uuid.New().String(),
		Title:          req.Title,
		Slug:           req.Slug,
		Description:    req.Description,
		Content:        req.Content,
		CategoryID:     req.CategoryID,
		Tags:           tags,
		ImageURL:       req.ImageURL,
		VideoURL:       req.VideoURL,
		AffiliateLinks: links,
		IsFeatured:     req.IsFeatured,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
