package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequestValidate(t *testing.T) {
	valid := CreateRequest{
		Name:    "João",
		Email:   "joao@example.com",
		Subject: "Dúvida",
		Message: "Como recupero minha senha?",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateRequest)
	}{
		{"missing name", func(r *CreateRequest) { r.Name = "" }},
		{"malformed email", func(r *CreateRequest) { r.Email = "joao@" }},
		{"missing subject", func(r *CreateRequest) { r.Subject = "" }},
		{"missing message", func(r *CreateRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestNewContactStampsIdentity(t *testing.T) {
	c := NewContact(&CreateRequest{Name: "João", Email: "joao@example.com", Subject: "s", Message: "m"})
	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
}
