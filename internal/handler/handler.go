package handler

import (
	"context"
	"time"

	"github.com/abhishek622/interviewPrep/internal/auth"
	"github.com/abhishek622/interviewPrep/internal/catalog"
	"github.com/abhishek622/interviewPrep/internal/credential"
	"github.com/abhishek622/interviewPrep/internal/grading"
	"github.com/abhishek622/interviewPrep/internal/session"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ClaimsKey = "claims"

// maxAudioBytes matches the transcription upload limit of the provider.
const maxAudioBytes = 25 << 20

type Evaluator interface {
	Grade(ctx context.Context, req grading.Request) (grading.Result, error)
}

type Solver interface {
	Solve(ctx context.Context, req model.SolveProblemReq) (*model.SolveProblemRes, error)
}

type Handler struct {
	Logger    *zap.Logger
	Gate      *auth.Gate
	Catalog   *catalog.Catalog
	Sessions  *session.Registry
	Tokens    credential.Store
	Evaluator Evaluator
	Agent     Solver
}

// GetClaimsFromContext retrieves the login claims set by the auth middleware
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.Claims {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// controller returns the mock interview controller of the caller's login.
func (h *Handler) controller(c *gin.Context) (*session.Controller, *auth.Claims) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		return nil, nil
	}
	expiresAt := time.Now().Add(h.Gate.TTL())
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return h.Sessions.Get(claims.SessionID, expiresAt), claims
}
