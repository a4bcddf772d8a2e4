package credential

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhishek622/interviewPrep/pkg"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps tokens in Redis, sealed with AES-GCM, expiring with the
// login session.
type RedisStore struct {
	client *redis.Client
	crypto *pkg.Crypto
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, crypto *pkg.Crypto, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, crypto: crypto, ttl: ttl}
}

func (s *RedisStore) Set(ctx context.Context, sessionID, token string) error {
	if token == "" {
		return s.Clear(ctx, sessionID)
	}
	sealed, err := s.crypto.Encrypt(token)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}
	if err := s.client.Set(ctx, keyFor(sessionID), sealed, s.ttl).Err(); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (string, error) {
	sealed, err := s.client.Get(ctx, keyFor(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	token, err := s.crypto.Decrypt(sealed)
	if err != nil {
		return "", fmt.Errorf("open token: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyFor(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
