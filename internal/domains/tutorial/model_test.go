package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToResponseAverageRating(t *testing.T) {
	tests := []struct {
		name  string
		sum   int64
		count int64
		want  float64
	}{
		{"no ratings", 0, 0, 0},
		{"whole average", 8, 2, 4.0},
		{"rounded to two decimals", 10, 3, 3.33},
		{"single rating", 5, 1, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ToResponse(&Tutorial{RatingSum: tt.sum, RatingCount: tt.count})
			assert.Equal(t, tt.want, resp.AverageRating)
		})
	}
}

func TestRatingRequestValidate(t *testing.T) {
	for _, rating := range []int{1, 2, 3, 4, 5} {
		assert.NoError(t, RatingRequest{Rating: rating}.Validate(), "rating %d", rating)
	}
	for _, rating := range []int{0, -1, 6, 42} {
		assert.Error(t, RatingRequest{Rating: rating}.Validate(), "rating %d", rating)
	}
}

func TestNewTutorialDefaults(t *testing.T) {
	created := NewTutorial(&CreateRequest{
		Title:       "t",
		Slug:        "t",
		Description: "d",
		Content:     "c",
		CategoryID:  "cat",
	})

	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Tags)
	assert.NotNil(t, created.AffiliateLinks)
	assert.Zero(t, created.Views)
	assert.Zero(t, created.RatingSum)
	assert.Zero(t, created.RatingCount)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}
