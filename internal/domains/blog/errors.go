package blog

import "errors"

var (
	ErrNotFound      = errors.New("blog post not found")
	ErrDuplicateSlug = errors.New("blog post slug already exists")
)
