package chat

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Request struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message, validation.Required, validation.Length(1, 4000)),
	)
}

type Response struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}
