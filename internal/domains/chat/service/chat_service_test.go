package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoriafacil-backend/internal/domains/chat"
	"tutoriafacil-backend/internal/domains/faq"
	"tutoriafacil-backend/internal/domains/tutorial"
	"tutoriafacil-backend/pkg/ai"
)

type fakeGenerator struct {
	lastSystemPrompt string
	lastHistory      []ai.Message
	lastUserPrompt   string
	reply            string
	err              error
}

func (f *fakeGenerator) GenerateText(_ context.Context, systemPrompt string, history []ai.Message, userPrompt string) (string, error) {
	f.lastSystemPrompt = systemPrompt
	f.lastHistory = history
	f.lastUserPrompt = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type memorySessionStore struct {
	histories map[string][]ai.Message
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{histories: make(map[string][]ai.Message)}
}

func (m *memorySessionStore) History(_ context.Context, sessionID string) ([]ai.Message, error) {
	return m.histories[sessionID], nil
}

func (m *memorySessionStore) Append(_ context.Context, sessionID string, turns ...ai.Message) error {
	m.histories[sessionID] = append(m.histories[sessionID], turns...)
	return nil
}

type stubTutorialRepo struct {
	tutorial.Repository
	summaries []tutorial.Summary
}

func (s *stubTutorialRepo) ListSummaries(_ context.Context, _ int) ([]tutorial.Summary, error) {
	return s.summaries, nil
}

type stubFAQRepo struct {
	faq.Repository
	faqs []*faq.FAQ
}

func (s *stubFAQRepo) List(_ context.Context, _ string, _ int) ([]*faq.FAQ, error) {
	return s.faqs, nil
}

func newTestService(gen ai.TextGenerator, sessions chat.SessionStore) chat.Service {
	return NewChatService(
		gen,
		sessions,
		&stubTutorialRepo{summaries: []tutorial.Summary{
			{Title: "Configurar Wi-Fi", Description: "Internet mais rápida", Slug: "configurar-wifi"},
		}},
		&stubFAQRepo{faqs: []*faq.FAQ{
			{Question: "Como resetar o celular?", Answer: "Configurações > Redefinir"},
		}},
		time.Second,
	)
}

func TestChatNotConfigured(t *testing.T) {
	svc := newTestService(nil, newMemorySessionStore())

	_, err := svc.Chat(context.Background(), &chat.Request{Message: "oi"})
	assert.ErrorIs(t, err, chat.ErrNotConfigured)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := newTestService(&fakeGenerator{reply: "olá"}, newMemorySessionStore())

	_, err := svc.Chat(context.Background(), &chat.Request{Message: ""})
	assert.Error(t, err)
}

func TestChatGeneratesSessionID(t *testing.T) {
	gen := &fakeGenerator{reply: "olá"}
	svc := newTestService(gen, newMemorySessionStore())

	resp, err := svc.Chat(context.Background(), &chat.Request{Message: "oi"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "olá", resp.Response)
}

func TestChatKeepsClientSessionID(t *testing.T) {
	gen := &fakeGenerator{reply: "olá"}
	svc := newTestService(gen, newMemorySessionStore())

	resp, err := svc.Chat(context.Background(), &chat.Request{Message: "oi", SessionID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.SessionID)
}

func TestChatGroundsPromptInContent(t *testing.T) {
	gen := &fakeGenerator{reply: "olá"}
	svc := newTestService(gen, newMemorySessionStore())

	_, err := svc.Chat(context.Background(), &chat.Request{Message: "oi"})
	require.NoError(t, err)

	assert.Contains(t, gen.lastSystemPrompt, "- Configurar Wi-Fi: Internet mais rápida")
	assert.Contains(t, gen.lastSystemPrompt, "P: Como resetar o celular?")
	assert.Equal(t, "oi", gen.lastUserPrompt)
}

func TestChatReplaysSessionHistory(t *testing.T) {
	gen := &fakeGenerator{reply: "segunda resposta"}
	sessions := newMemorySessionStore()
	svc := newTestService(gen, sessions)

	first, err := svc.Chat(context.Background(), &chat.Request{Message: "primeira pergunta"})
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), &chat.Request{Message: "segunda pergunta", SessionID: first.SessionID})
	require.NoError(t, err)

	require.Len(t, gen.lastHistory, 2)
	assert.Equal(t, ai.Message{Role: "user", Text: "primeira pergunta"}, gen.lastHistory[0])
	assert.Equal(t, ai.Message{Role: "model", Text: "segunda resposta"}, gen.lastHistory[1])

	// Both turns of both exchanges are now stored.
	assert.Len(t, sessions.histories[first.SessionID], 4)
}

func TestChatUpstreamErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		genErr  error
		wantErr error
	}{
		{"timeout", context.DeadlineExceeded, chat.ErrUpstreamTimeout},
		{"other failure", errors.New("boom"), chat.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeGenerator{err: tt.genErr}, newMemorySessionStore())

			_, err := svc.Chat(context.Background(), &chat.Request{Message: "oi"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// failingSessionStore simulates an unreachable Redis.
type failingSessionStore struct{}

func (failingSessionStore) History(_ context.Context, _ string) ([]ai.Message, error) {
	return nil, errors.New("redis: connection refused")
}

func (failingSessionStore) Append(_ context.Context, _ string, _ ...ai.Message) error {
	return errors.New("redis: connection refused")
}

func TestChatDegradesToSingleTurnWhenSessionStoreDown(t *testing.T) {
	gen := &fakeGenerator{reply: "olá"}
	svc := newTestService(gen, failingSessionStore{})

	resp, err := svc.Chat(context.Background(), &chat.Request{Message: "oi", SessionID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "olá", resp.Response)
	assert.Equal(t, "abc", resp.SessionID)
	assert.Empty(t, gen.lastHistory)
}

func TestChatFailureStoresNothing(t *testing.T) {
	sessions := newMemorySessionStore()
	svc := newTestService(&fakeGenerator{err: errors.New("boom")}, sessions)

	_, err := svc.Chat(context.Background(), &chat.Request{Message: "oi", SessionID: "abc"})
	require.Error(t, err)
	assert.Empty(t, sessions.histories["abc"])
}
