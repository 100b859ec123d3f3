package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFAQDefaultsCategory(t *testing.T) {
	f := NewFAQ(&CreateRequest{Question: "P?", Answer: "R."})
	assert.Equal(t, "geral", f.Category)
	assert.Zero(t, f.Order)

	f = NewFAQ(&CreateRequest{Question: "P?", Answer: "R.", Category: "celular", Order: 3})
	assert.Equal(t, "celular", f.Category)
	assert.Equal(t, 3, f.Order)
}

func TestCreateRequestValidate(t *testing.T) {
	assert.NoError(t, CreateRequest{Question: "P?", Answer: "R."}.Validate())
	assert.Error(t, CreateRequest{Answer: "R."}.Validate())
	assert.Error(t, CreateRequest{Question: "P?"}.Validate())
}
