package handler

import (
	"errors"

	"github.com/abhishek622/interviewPrep/internal/auth"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Login checks the shared password and returns a session token
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "password is required")
		return
	}

	token, claims, err := h.Gate.Login(req.Password)
	if errors.Is(err, auth.ErrInvalidPassword) {
		h.Logger.Warn("login: password mismatch", zap.String("ip", c.ClientIP()))
		response.Unauthorized(c, "Incorrect password")
		return
	}
	if err != nil {
		h.Logger.Error("login: could not issue token", zap.Error(err))
		response.InternalError(c, "could not generate token")
		return
	}

	h.Logger.Info("login: session opened", zap.String("session_id", claims.SessionID))

	response.OK(c, model.TokenResponse{
		AccessToken: token,
		SessionID:   claims.SessionID,
		ExpiresAt:   claims.ExpiresAt.Time,
	})
}

// Logout drops the caller's mock interview and grading token
func (h *Handler) Logout(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	h.Sessions.Remove(claims.SessionID)
	if err := h.Tokens.Clear(c.Request.Context(), claims.SessionID); err != nil {
		h.Logger.Error("logout: clear token failed",
			zap.String("session_id", claims.SessionID),
			zap.Error(err),
		)
	}
	response.Message(c, "logged out")
}
