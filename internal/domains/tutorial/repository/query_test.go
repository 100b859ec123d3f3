package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutoriafacil-backend/internal/domains/tutorial"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name         string
		filter       tutorial.ListFilter
		wantContains []string
		wantArgs     []any
	}{
		{
			name:         "no filters",
			filter:       tutorial.ListFilter{},
			wantContains: []string{"FROM tutorials", "ORDER BY created_at DESC", "LIMIT $1"},
			wantArgs:     []any{defaultListLimit},
		},
		{
			name:         "category only",
			filter:       tutorial.ListFilter{CategoryID: "cat-1"},
			wantContains: []string{"category_id = $1", "LIMIT $2"},
			wantArgs:     []any{"cat-1", defaultListLimit},
		},
		{
			name:   "all filters combine with AND",
			filter: tutorial.ListFilter{CategoryID: "cat-1", Featured: boolPtr(true), Search: "wif", Limit: 10},
			wantContains: []string{
				"category_id = $1",
				"AND is_featured = $2",
				"title ILIKE $3",
				"description ILIKE $3",
				"unnest(tags) AS tag WHERE tag ILIKE $3",
				"LIMIT $4",
			},
			wantArgs: []any{"cat-1", true, "%wif%", 10},
		},
		{
			name:         "search wraps wildcards",
			filter:       tutorial.ListFilter{Search: "wifi"},
			wantContains: []string{"ILIKE $1"},
			wantArgs:     []any{"%wifi%", defaultListLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(tt.filter)
			for _, fragment := range tt.wantContains {
				assert.Contains(t, query, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildListQueryEscapesSearchMetacharacters(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		wantArg string
	}{
		{"percent", "50%", `%50\%%`},
		{"underscore", "wi_fi", `%wi\_fi%`},
		{"backslash", `a\b`, `%a\\b%`},
		{"plain term untouched", "wifi", "%wifi%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, args := buildListQuery(tutorial.ListFilter{Search: tt.search})
			assert.Equal(t, tt.wantArg, args[0])
		})
	}
}

func TestBuildListQueryNoFilterHasNoWhere(t *testing.T) {
	query, _ := buildListQuery(tutorial.ListFilter{})
	assert.NotContains(t, query, "WHERE")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultListLimit, clampLimit(0))
	assert.Equal(t, defaultListLimit, clampLimit(-5))
	assert.Equal(t, 1, clampLimit(1))
	assert.Equal(t, maxListLimit, clampLimit(10000))
}
