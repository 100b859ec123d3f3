package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoriafacil-backend/pkg/ai"
)

func newTestStore(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Hour).(*RedisStore)
	return mr, store
}

func TestHistoryEmptySession(t *testing.T) {
	_, store := newTestStore(t)

	history, err := store.History(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAppendAndHistory(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1",
		ai.Message{Role: "user", Text: "oi"},
		ai.Message{Role: "model", Text: "olá"},
	))
	require.NoError(t, store.Append(ctx, "s1",
		ai.Message{Role: "user", Text: "tudo bem?"},
	))

	history, err := store.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, ai.Message{Role: "user", Text: "oi"}, history[0])
	assert.Equal(t, ai.Message{Role: "model", Text: "olá"}, history[1])
	assert.Equal(t, ai.Message{Role: "user", Text: "tudo bem?"}, history[2])
}

func TestSessionsAreIsolated(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", ai.Message{Role: "user", Text: "oi"}))

	history, err := store.History(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAppendSetsTTL(t *testing.T) {
	mr, store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", ai.Message{Role: "user", Text: "oi"}))
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"s1"))
}

func TestHistoryExpiresWithTTL(t *testing.T) {
	mr, store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", ai.Message{Role: "user", Text: "oi"}))
	mr.FastForward(2 * time.Hour)

	history, err := store.History(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)
}
