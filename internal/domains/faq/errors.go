package faq

import "errors"

var (
	ErrNotFound          = errors.New("faq not found")
	ErrDuplicateQuestion = errors.New("faq question already exists")
)
