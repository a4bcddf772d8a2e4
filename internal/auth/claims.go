package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims identify one login session. SessionID keys the mock interview
// controller and the grading token of that browser session.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func NewClaims(now time.Time, duration time.Duration) (*Claims, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("error generating token id: %w", err)
	}
	sessionID, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("error generating session id: %w", err)
	}

	return &Claims{
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Subject:   sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}, nil
}
