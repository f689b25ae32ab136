package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SessionStorage implements the session key-value port on Redis. Sessions
// are stored without expiry; logout is the only thing that removes them.
type SessionStorage struct {
	client *redis.Client
}

// NewSessionStorage wraps the given Redis client.
func NewSessionStorage(client *redis.Client) *SessionStorage {
	return &SessionStorage{client: client}
}

// Get returns (nil, nil) when the key does not exist.
func (s *SessionStorage) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("session get: %w", err)
	}
	return raw, nil
}

func (s *SessionStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *SessionStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
