package chat

import (
	"context"

	"tutoriafacil-backend/pkg/ai"
)

// SessionStore persists conversation turns so follow-up messages in the
// same session are replayed to the model.
type SessionStore interface {
	History(ctx context.Context, sessionID string) ([]ai.Message, error)
	Append(ctx context.Context, sessionID string, turns ...ai.Message) error
}
