package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tutoriafacil-backend/internal/domains/chat"
	"tutoriafacil-backend/pkg/ai"
)

const keyPrefix = "chat:session:"

// RedisStore keeps per-session conversation history in Redis with a
// sliding TTL. Each append refreshes the expiry.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) chat.SessionStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) History(ctx context.Context, sessionID string) ([]ai.Message, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chat session: %w", err)
	}

	var history []ai.Message
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("failed to decode chat session: %w", err)
	}
	return history, nil
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, turns ...ai.Message) error {
	history, err := s.History(ctx, sessionID)
	if err != nil {
		return err
	}
	history = append(history, turns...)

	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode chat session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store chat session: %w", err)
	}
	return nil
}
