package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhishek622/interviewPrep/pkg"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidPassword = errors.New("incorrect password")
	ErrInvalidToken    = errors.New("invalid token")
)

// Gate is the single password login. It is a gate, not a user system.
type Gate struct {
	passwordHash string
	secret       []byte
	ttl          time.Duration
}

func NewGate(password, secret string, ttl time.Duration) (*Gate, error) {
	hash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &Gate{passwordHash: hash, secret: []byte(secret), ttl: ttl}, nil
}

func (g *Gate) TTL() time.Duration {
	return g.ttl
}

// Login checks password and issues a signed token for a new session.
func (g *Gate) Login(password string) (string, *Claims, error) {
	if err := pkg.ComparePassword(g.passwordHash, password); err != nil {
		return "", nil, ErrInvalidPassword
	}

	claims, err := NewClaims(time.Now(), g.ttl)
	if err != nil {
		return "", nil, err
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, claims, nil
}

func (g *Gate) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
