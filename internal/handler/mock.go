package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/abhishek622/interviewPrep/internal/credential"
	"github.com/abhishek622/interviewPrep/internal/selection"
	"github.com/abhishek622/interviewPrep/internal/session"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgAddToken     = "Please add your OpenAI token in settings before submitting answers."
	msgSubmitFailed = "Error submitting audio. Please try again."
)

// StartMock opens a mock interview over explicit question ids or over the
// questions of the given tags
func (h *Handler) StartMock(c *gin.Context) {
	ctrl, claims := h.controller(c)
	if ctrl == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.StartMockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	ids := req.QuestionIDs
	if len(ids) == 0 && len(req.Tags) > 0 {
		ids = selection.IDsByTags(h.Catalog.Questions(), req.Tags, req.TopOnly)
	}

	state, err := ctrl.Start(req.Duration, ids)
	if err != nil {
		h.sessionError(c, "start_mock", err)
		return
	}

	h.Logger.Info("start_mock: session started",
		zap.String("login_id", claims.SessionID),
		zap.String("session_id", state.SessionID),
		zap.Int("questions", len(state.Settings.SelectedQuestions)),
		zap.Int("duration", req.Duration),
	)
	response.Created(c, state)
}

// GetMock returns the settings, scores and countdown
func (h *Handler) GetMock(c *gin.Context) {
	ctrl, _ := h.controller(c)
	if ctrl == nil {
		response.Unauthorized(c, "")
		return
	}
	response.OK(c, ctrl.Snapshot())
}

// UpdateScore sets the manual score of one question
func (h *Handler) UpdateScore(c *gin.Context) {
	ctrl, _ := h.controller(c)
	if ctrl == nil {
		response.Unauthorized(c, "")
		return
	}

	qID, err := strconv.ParseInt(c.Param("question_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid question id")
		return
	}

	var req model.UpdateScoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	score, err := ctrl.UpdateScore(qID, *req.Score)
	if err != nil {
		h.sessionError(c, "update_score", err)
		return
	}
	response.OK(c, score)
}

// SubmitAudio grades a recorded answer with the caller's stored token
func (h *Handler) SubmitAudio(c *gin.Context) {
	ctrl, claims := h.controller(c)
	if ctrl == nil {
		response.Unauthorized(c, "")
		return
	}

	qID, err := strconv.ParseInt(c.Param("question_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid question id")
		return
	}

	audio, err := readAudio(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.Tokens.Get(c.Request.Context(), claims.SessionID)
	if errors.Is(err, credential.ErrNotFound) {
		response.BadRequest(c, msgAddToken)
		return
	}
	if err != nil {
		h.Logger.Error("submit_audio: read token failed", zap.String("login_id", claims.SessionID), zap.Error(err))
		response.InternalError(c, msgSubmitFailed)
		return
	}

	score, err := ctrl.SubmitAudio(c.Request.Context(), qID, audio, token)
	if err != nil {
		h.sessionError(c, "submit_audio", err)
		return
	}
	response.OK(c, score)
}

// EndMock finishes the active mock interview and returns its results
func (h *Handler) EndMock(c *gin.Context) {
	ctrl, claims := h.controller(c)
	if ctrl == nil {
		response.Unauthorized(c, "")
		return
	}

	results, err := ctrl.End()
	if err != nil {
		h.sessionError(c, "end_mock", err)
		return
	}

	h.Logger.Info("end_mock: session ended",
		zap.String("login_id", claims.SessionID),
		zap.Int("total_score", results.TotalScore),
		zap.Int("max_score", results.MaxPossibleScore),
	)
	response.OK(c, results)
}

// GetResults returns the results of the last finished mock interview
func (h *Handler) GetResults(c *gin.Context) {
	ctrl, _ := h.controller(c)
	if ctrl == nil {
		response.Unauthorized(c, "")
		return
	}

	results, err := ctrl.Results()
	if err != nil {
		h.sessionError(c, "get_results", err)
		return
	}
	response.OK(c, results)
}

// DismissResults discards the last results
func (h *Handler) DismissResults(c *gin.Context) {
	ctrl, _ := h.controller(c)
	if ctrl == nil {
		response.Unauthorized(c, "")
		return
	}
	ctrl.DismissResults()
	response.Message(c, "results dismissed")
}

func readAudio(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile("audio")
	if err != nil {
		return nil, errors.New("audio file is required")
	}
	if fh.Size > maxAudioBytes {
		return nil, errors.New("audio file is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.New("could not read audio file")
	}
	defer f.Close()

	audio, err := io.ReadAll(io.LimitReader(f, maxAudioBytes))
	if err != nil {
		return nil, errors.New("could not read audio file")
	}
	if len(audio) == 0 {
		return nil, errors.New("audio file is empty")
	}
	return audio, nil
}

// sessionError maps controller errors onto the response envelope.
func (h *Handler) sessionError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, session.ErrSessionActive),
		errors.Is(err, session.ErrSubmissionInProgress),
		errors.Is(err, session.ErrSessionEnded):
		response.Conflict(c, err.Error())
	case errors.Is(err, session.ErrInvalidDuration),
		errors.Is(err, session.ErrEmptySelection),
		errors.Is(err, session.ErrUnknownQuestion),
		errors.Is(err, session.ErrInvalidScore):
		response.ValidationError(c, err.Error())
	case errors.Is(err, session.ErrNoActiveSession),
		errors.Is(err, session.ErrQuestionNotInSession),
		errors.Is(err, session.ErrNoResults):
		response.NotFound(c, err.Error())
	case errors.Is(err, session.ErrGradingUnavailable):
		response.ServiceUnavailable(c, err.Error())
	case errors.Is(err, session.ErrGradingFailed):
		response.BadGateway(c, msgSubmitFailed)
	default:
		h.Logger.Error(op+": unexpected error", zap.Error(err))
		response.InternalError(c, "something went wrong")
	}
}
