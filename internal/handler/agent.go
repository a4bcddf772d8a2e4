package handler

import (
	"errors"

	"github.com/abhishek622/interviewPrep/internal/agent"
	"github.com/abhishek622/interviewPrep/internal/fetcher"
	"github.com/abhishek622/interviewPrep/internal/openai"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SolveProblem scrapes a coding problem and asks the model for a solution
func (h *Handler) SolveProblem(c *gin.Context) {
	var req model.SolveProblemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.Agent.Solve(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrUnsupportedMessage),
			errors.Is(err, agent.ErrNoProblem),
			errors.Is(err, fetcher.ErrUnsupportedHost):
			response.BadRequest(c, err.Error())
		case errors.Is(err, fetcher.ErrProblemNotFound):
			response.NotFound(c, "problem statement not found on page")
		case errors.Is(err, openai.ErrMissingAPIKey):
			response.ServiceUnavailable(c, "completion provider is not configured")
		default:
			h.Logger.Error("solve_problem: failed", zap.String("url", req.URL), zap.Error(err))
			response.BadGateway(c, "failed to generate solution")
		}
		return
	}

	response.OK(c, res)
}
