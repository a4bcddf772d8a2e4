package credential

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	if _, err := s.Get(ctx, "login-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Set(ctx, "login-1", "sk-abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, err := s.Get(ctx, "login-1"); err != nil || got != "sk-abc" {
		t.Fatalf("get = %q, %v", got, err)
	}
	if _, err := s.Get(ctx, "login-2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("tokens must be scoped per session, got %v", err)
	}

	if err := s.Set(ctx, "login-1", ""); err != nil {
		t.Fatalf("set empty: %v", err)
	}
	if _, err := s.Get(ctx, "login-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty token should clear, got %v", err)
	}
}

func TestMemoryStoreExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	if err := s.Set(ctx, "login", "sk"); err != nil {
		t.Fatalf("set: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := s.Get(ctx, "login"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestKeyFor(t *testing.T) {
	if got := keyFor("abc"); got != "session:abc:gpt-token" {
		t.Fatalf("keyFor() = %q", got)
	}
}
