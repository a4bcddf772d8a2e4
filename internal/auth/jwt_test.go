package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGateLoginAndVerify(t *testing.T) {
	g, err := NewGate("interview2024", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}

	if _, _, err := g.Login("nope"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}

	token, claims, err := g.Login("interview2024")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if claims.SessionID == "" {
		t.Fatal("session id must be set")
	}

	got, err := g.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.SessionID != claims.SessionID {
		t.Fatalf("session id = %q, want %q", got.SessionID, claims.SessionID)
	}

	_, second, _ := g.Login("interview2024")
	if second.SessionID == claims.SessionID {
		t.Fatal("each login must open a new session")
	}
}

func TestGateRejectsBadTokens(t *testing.T) {
	g, _ := NewGate("pw", testSecret, time.Hour)
	other, _ := NewGate("pw", "another-secret-another-secret-xx", time.Hour)

	foreign, _, err := other.Login("pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	expiredClaims, _ := NewClaims(time.Now().Add(-2*time.Hour), time.Hour)
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte(testSecret))

	for name, tok := range map[string]string{
		"garbage": "not-a-jwt",
		"foreign": foreign,
		"expired": expired,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := g.Verify(tok); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
