package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/abhishek622/interviewPrep/internal/grading"
	"github.com/abhishek622/interviewPrep/internal/openai"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EvaluateQuestion is the grading endpoint used by remote graders. It answers
// with a bare {score, explanation} object instead of the envelope.
func (h *Handler) EvaluateQuestion(c *gin.Context) {
	if h.Evaluator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "grading is not configured"})
		return
	}

	audio, err := readAudio(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := grading.Request{
		Question:      c.PostForm("question"),
		CorrectAnswer: c.PostForm("correctAnswer"),
		Token:         strings.TrimSpace(c.PostForm("token")),
		Audio:         audio,
	}
	if req.Question == "" || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question and token are required"})
		return
	}

	res, err := h.Evaluator.Grade(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("evaluate_question: grading failed", zap.Error(err))
		var apiErr *openai.APIError
		switch {
		case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid OpenAI token"})
		case errors.Is(err, grading.ErrMalformedResponse):
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not parse grading response"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to evaluate answer"})
		}
		return
	}

	c.JSON(http.StatusOK, model.EvaluationRes{Score: res.Score, Explanation: res.Explanation})
}
