package credential

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/abhishek622/interviewPrep/internal/cache"
	"github.com/abhishek622/interviewPrep/pkg"
	"github.com/google/uuid"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *pkg.Crypto) {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client, err := cache.Connect(context.Background(), addr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	crypto, err := pkg.NewCrypto("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatal(err)
	}
	return NewRedisStore(client, crypto, ttl), crypto
}

func TestRedisStoreLifecycle(t *testing.T) {
	s, crypto := newTestRedisStore(t, time.Minute)
	ctx := context.Background()
	login := "test-" + uuid.NewString()
	t.Cleanup(func() { s.Clear(ctx, login) })

	tests := []struct {
		name    string
		set     *string
		want    string
		wantErr error
	}{
		{name: "missing", wantErr: ErrNotFound},
		{name: "stored", set: ptr("sk-abc"), want: "sk-abc"},
		{name: "replaced", set: ptr("sk-def"), want: "sk-def"},
		{name: "empty clears", set: ptr(""), wantErr: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set != nil {
				if err := s.Set(ctx, login, *tt.set); err != nil {
					t.Fatalf("set: %v", err)
				}
			}
			got, err := s.Get(ctx, login)
			if !errors.Is(err, tt.wantErr) || got != tt.want {
				t.Fatalf("get = %q, %v; want %q, %v", got, err, tt.want, tt.wantErr)
			}
		})
	}

	if err := s.Set(ctx, login, "sk-sealed"); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, err := s.client.Get(ctx, keyFor(login)).Result()
	if err != nil {
		t.Fatalf("raw get: %v", err)
	}
	if raw == "sk-sealed" {
		t.Fatal("token stored in plain text")
	}
	if opened, err := crypto.Decrypt(raw); err != nil || opened != "sk-sealed" {
		t.Fatalf("decrypt = %q, %v", opened, err)
	}
	if ttl := s.client.TTL(ctx, keyFor(login)).Val(); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("ttl = %s, want within (0, 1m]", ttl)
	}

	if err := s.Clear(ctx, login); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := s.Get(ctx, login); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
}

func ptr(s string) *string { return &s }
