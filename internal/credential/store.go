package credential

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// TokenKey is the fixed key the grading token is stored under.
const TokenKey = "gpt-token"

var ErrNotFound = errors.New("grading token not set")

// Store keeps one grading token per login session. Setting an empty token
// clears it.
type Store interface {
	Set(ctx context.Context, sessionID, token string) error
	Get(ctx context.Context, sessionID string) (string, error)
	Clear(ctx context.Context, sessionID string) error
}

func keyFor(sessionID string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, TokenKey)
}

type memEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryStore is the in-process Store used when Redis is not configured.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]memEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memEntry),
	}
}

func (s *MemoryStore) Set(ctx context.Context, sessionID, token string) error {
	if token == "" {
		return s.Clear(ctx, sessionID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[keyFor(sessionID)] = memEntry{token: token, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyFor(sessionID)
	e, ok := s.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	if s.ttl > 0 && !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return "", ErrNotFound
	}
	return e.token, nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, keyFor(sessionID))
	s.mu.Unlock()
	return nil
}
