package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tutoriafacil-backend/internal/domains/chat"
	"tutoriafacil-backend/internal/domains/faq"
	"tutoriafacil-backend/internal/domains/tutorial"
	"tutoriafacil-backend/pkg/ai"
	"tutoriafacil-backend/pkg/logger"
)

type chatService struct {
	generator ai.TextGenerator
	sessions  chat.SessionStore
	tutorials tutorial.Repository
	faqs      faq.Repository
	timeout   time.Duration
}

// NewChatService wires the chat flow. generator may be nil when no AI
// credential is configured; the endpoint then reports a configuration
// error instead of failing at startup.
func NewChatService(
	generator ai.TextGenerator,
	sessions chat.SessionStore,
	tutorials tutorial.Repository,
	faqs faq.Repository,
	timeout time.Duration,
) chat.Service {
	return &chatService{
		generator: generator,
		sessions:  sessions,
		tutorials: tutorials,
		faqs:      faqs,
		timeout:   timeout,
	}
}

func (s *chatService) Chat(ctx context.Context, req *chat.Request) (*chat.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.generator == nil {
		return nil, chat.ErrNotConfigured
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	summaries, err := s.tutorials.ListSummaries(ctx, chat.ContextLimit)
	if err != nil {
		return nil, err
	}
	faqs, err := s.faqs.List(ctx, "", chat.ContextLimit)
	if err != nil {
		return nil, err
	}
	systemPrompt := chat.BuildSystemPrompt(summaries, faqs)

	// Session continuity is best effort either way: a store that cannot
	// be read degrades to a single-turn reply, matching the tolerated
	// Append failure below.
	history, err := s.sessions.History(ctx, sessionID)
	if err != nil {
		logger.Error("failed to load chat history", err)
		history = nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.generator.GenerateText(callCtx, systemPrompt, history, req.Message)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, chat.ErrUpstreamTimeout
		}
		return nil, fmt.Errorf("%w: %v", chat.ErrUpstream, err)
	}

	// History write failure must not fail the reply; the session just
	// loses continuity.
	if err := s.sessions.Append(ctx, sessionID,
		ai.Message{Role: "user", Text: req.Message},
		ai.Message{Role: "model", Text: answer},
	); err != nil {
		logger.Error("failed to persist chat history", err)
	}

	return &chat.Response{Response: answer, SessionID: sessionID}, nil
}
