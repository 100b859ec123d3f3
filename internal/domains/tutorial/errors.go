package tutorial

import "errors"

var (
	ErrNotFound      = errors.New("tutorial not found")
	ErrDuplicateSlug = errors.New("tutorial slug already exists")
)
