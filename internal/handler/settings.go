package handler

import (
	"errors"

	"github.com/abhishek622/interviewPrep/internal/credential"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetToken reports whether a grading token is stored; the token itself is
// never returned
func (h *Handler) GetToken(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	_, err := h.Tokens.Get(c.Request.Context(), claims.SessionID)
	switch {
	case errors.Is(err, credential.ErrNotFound):
		response.OK(c, model.TokenStatusRes{HasToken: false})
	case err != nil:
		h.Logger.Error("get_token: failed", zap.String("session_id", claims.SessionID), zap.Error(err))
		response.InternalError(c, "failed to read token")
	default:
		response.OK(c, model.TokenStatusRes{HasToken: true})
	}
}

// SetToken stores the grading token; an empty token clears it
func (h *Handler) SetToken(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.SetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.Tokens.Set(c.Request.Context(), claims.SessionID, req.Token); err != nil {
		h.Logger.Error("set_token: failed", zap.String("session_id", claims.SessionID), zap.Error(err))
		response.InternalError(c, "failed to store token")
		return
	}
	response.OK(c, model.TokenStatusRes{HasToken: req.Token != ""})
}

// ClearToken removes the grading token
func (h *Handler) ClearToken(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	if err := h.Tokens.Clear(c.Request.Context(), claims.SessionID); err != nil {
		h.Logger.Error("clear_token: failed", zap.String("session_id", claims.SessionID), zap.Error(err))
		response.InternalError(c, "failed to clear token")
		return
	}
	response.OK(c, model.TokenStatusRes{HasToken: false})
}
