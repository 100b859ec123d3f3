package repository

import (
	"fmt"
	"strings"

	"tutoriafacil-backend/internal/domains/tutorial"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ilikeEscaper neutralizes LIKE metacharacters in user-supplied search
// terms so "50%" matches the literal text instead of everything.
var ilikeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery translates the optional list filters into a SQL predicate.
// Present filters combine with AND; the search term ORs a case-insensitive
// substring match over title, description and every tag.
func buildListQuery(filter tutorial.ListFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+ilikeEscaper.Replace(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $%d))",
			n, n, n))
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(tutorialColumns)
	sb.WriteString(" FROM tutorials")
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	args = append(args, clampLimit(filter.Limit))
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))

	return sb.String(), args
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
