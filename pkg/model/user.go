package model

import "time"

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	SessionID   string    `json:"session_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type SetTokenRequest struct {
	Token string `json:"token"`
}

type TokenStatusRes struct {
	HasToken bool `json:"has_token"`
}
