package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhishek622/interviewPrep/internal/grading"
	"github.com/abhishek622/interviewPrep/internal/selection"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuestionSource is the loaded catalog.
type QuestionSource interface {
	Questions() []model.Question
	Question(id int64) (model.Question, bool)
}

// Grader scores a recorded answer.
type Grader interface {
	Grade(ctx context.Context, req grading.Request) (grading.Result, error)
}

// Controller owns one mock interview at a time. All state changes go
// through its methods.
type Controller struct {
	catalog      QuestionSource
	grader       Grader
	clock        Clock
	logger       *zap.Logger
	tickInterval time.Duration

	mu        sync.Mutex
	sessionID string
	settings  model.MockInterviewSettings
	scores    []model.QuestionScore
	timer     *Timer
	results   *model.MockInterviewResults
}

func NewController(catalog QuestionSource, grader Grader, clock Clock, logger *zap.Logger) *Controller {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Controller{
		catalog:      catalog,
		grader:       grader,
		clock:        clock,
		logger:       logger,
		tickInterval: TickInterval,
		settings:     idleSettings(),
	}
}

func idleSettings() model.MockInterviewSettings {
	return model.MockInterviewSettings{
		Duration:          model.DefaultMockDuration,
		SelectedQuestions: []int64{},
	}
}

// Start shuffles the selection and opens a new session.
func (c *Controller) Start(durationMinutes int, questionIDs []int64) (model.MockStateRes, error) {
	if durationMinutes < 1 {
		return model.MockStateRes{}, ErrInvalidDuration
	}
	ids := dedupe(questionIDs)
	if len(ids) == 0 {
		return model.MockStateRes{}, ErrEmptySelection
	}
	for _, id := range ids {
		if _, ok := c.catalog.Question(id); !ok {
			return model.MockStateRes{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.settings.IsActive {
		return model.MockStateRes{}, ErrSessionActive
	}

	shuffled := selection.Shuffle(ids)
	scores := make([]model.QuestionScore, len(shuffled))
	for i, id := range shuffled {
		scores[i] = model.QuestionScore{QuestionID: id}
	}

	now := c.clock.Now()
	sid := uuid.NewString()
	c.sessionID = sid
	c.scores = scores
	c.settings = model.MockInterviewSettings{
		Duration:          durationMinutes,
		SelectedQuestions: shuffled,
		IsActive:          true,
		StartTime:         &now,
	}
	c.timer = NewTimer(durationMinutes, now, c.clock, c.tickInterval, func() { c.expire(sid) })
	c.timer.Start()

	c.logger.Info("mock_start: session started",
		zap.String("session_id", sid),
		zap.Int("duration", durationMinutes),
		zap.Int("questions", len(shuffled)),
	)

	return c.snapshotLocked(), nil
}

// UpdateScore sets the manual score of a question in the active session.
func (c *Controller) UpdateScore(questionID int64, score int) (model.QuestionScore, error) {
	if score < model.MinScore || score > model.MaxScore {
		return model.QuestionScore{}, ErrInvalidScore
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.settings.IsActive {
		return model.QuestionScore{}, ErrNoActiveSession
	}
	idx := c.indexLocked(questionID)
	if idx < 0 {
		return model.QuestionScore{}, ErrQuestionNotInSession
	}
	c.scores[idx].Score = score
	return c.scores[idx], nil
}

// SubmitAudio grades a recorded answer. The grader runs without the lock
// held; its result is dropped if the session ended in the meantime.
func (c *Controller) SubmitAudio(ctx context.Context, questionID int64, audio []byte, token string) (model.QuestionScore, error) {
	if c.grader == nil {
		return model.QuestionScore{}, ErrGradingUnavailable
	}

	c.mu.Lock()
	if !c.settings.IsActive {
		c.mu.Unlock()
		return model.QuestionScore{}, ErrNoActiveSession
	}
	idx := c.indexLocked(questionID)
	if idx < 0 {
		c.mu.Unlock()
		return model.QuestionScore{}, ErrQuestionNotInSession
	}
	if c.scores[idx].IsSubmitting {
		c.mu.Unlock()
		return model.QuestionScore{}, ErrSubmissionInProgress
	}
	c.scores[idx].IsSubmitting = true
	c.scores[idx].UserAudio = audio
	c.scores[idx].HasAudio = len(audio) > 0
	sid := c.sessionID
	c.mu.Unlock()

	q, _ := c.catalog.Question(questionID)
	res, gradeErr := c.grader.Grade(ctx, grading.Request{
		QuestionID:    questionID,
		Question:      q.Question,
		CorrectAnswer: q.Answer,
		Audio:         audio,
		Token:         token,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.settings.IsActive || c.sessionID != sid {
		c.logger.Info("submit_audio: dropping grade for ended session",
			zap.String("session_id", sid),
			zap.Int64("question_id", questionID),
		)
		return model.QuestionScore{}, ErrSessionEnded
	}
	idx = c.indexLocked(questionID)
	// audio is only needed for the grading call
	c.scores[idx].UserAudio = nil

	if gradeErr != nil {
		c.scores[idx].IsSubmitting = false
		c.logger.Error("submit_audio: grading failed",
			zap.String("session_id", sid),
			zap.Int64("question_id", questionID),
			zap.Error(gradeErr),
		)
		return c.scores[idx], fmt.Errorf("%w: %w", ErrGradingFailed, gradeErr)
	}

	score, explanation := res.Score, res.Explanation
	c.scores[idx].IsSubmitting = false
	c.scores[idx].AIScore = &score
	c.scores[idx].AIExplanation = &explanation
	c.scores[idx].Score = score

	c.logger.Info("submit_audio: answer graded",
		zap.String("session_id", sid),
		zap.Int64("question_id", questionID),
		zap.Int("score", score),
	)
	return c.scores[idx], nil
}

// End closes the active session and returns its results.
func (c *Controller) End() (model.MockInterviewResults, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.settings.IsActive {
		return model.MockInterviewResults{}, ErrNoActiveSession
	}
	return c.endLocked("manual"), nil
}

func (c *Controller) expire(sid string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.settings.IsActive || c.sessionID != sid {
		return
	}
	c.endLocked("timeout")
}

func (c *Controller) endLocked(reason string) model.MockInterviewResults {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	total := 0
	for _, s := range c.scores {
		total += s.Score
	}
	res := model.MockInterviewResults{
		Scores:           c.copyScoresLocked(),
		TotalScore:       total,
		MaxPossibleScore: model.MaxScore * len(c.scores),
		CompletedAt:      c.clock.Now(),
	}

	c.logger.Info("mock_end: session ended",
		zap.String("session_id", c.sessionID),
		zap.String("reason", reason),
		zap.Int("total_score", res.TotalScore),
		zap.Int("max_score", res.MaxPossibleScore),
	)

	c.results = &res
	c.sessionID = ""
	c.scores = nil
	c.settings = idleSettings()
	return res
}

// Snapshot returns the current settings, scores and countdown.
func (c *Controller) Snapshot() model.MockStateRes {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() model.MockStateRes {
	settings := c.settings
	settings.SelectedQuestions = append([]int64{}, c.settings.SelectedQuestions...)

	st := model.MockStateRes{
		SessionID: c.sessionID,
		Settings:  settings,
		Scores:    c.copyScoresLocked(),
	}
	if c.timer != nil {
		ts := c.timer.Status()
		st.Timer = &ts
	}
	return st
}

// Questions returns the questions of the active session in catalog order,
// or the keyword filtered catalog when idle.
func (c *Controller) Questions(keyword string) ([]model.Question, bool) {
	all := c.catalog.Questions()

	c.mu.Lock()
	active := c.settings.IsActive
	selected := make(map[int64]struct{}, len(c.settings.SelectedQuestions))
	for _, id := range c.settings.SelectedQuestions {
		selected[id] = struct{}{}
	}
	c.mu.Unlock()

	if !active {
		return selection.Filter(all, keyword), false
	}
	out := make([]model.Question, 0, len(selected))
	for _, q := range all {
		if _, ok := selected[q.ID]; ok {
			out = append(out, q)
		}
	}
	return out, true
}

// Results returns the results of the last finished session.
func (c *Controller) Results() (model.MockInterviewResults, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.results == nil {
		return model.MockInterviewResults{}, ErrNoResults
	}
	return *c.results, nil
}

// DismissResults discards the last results.
func (c *Controller) DismissResults() {
	c.mu.Lock()
	c.results = nil
	c.mu.Unlock()
}

// Close stops the timer without producing results.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) indexLocked(questionID int64) int {
	for i, s := range c.scores {
		if s.QuestionID == questionID {
			return i
		}
	}
	return -1
}

func (c *Controller) copyScoresLocked() []model.QuestionScore {
	out := make([]model.QuestionScore, len(c.scores))
	copy(out, c.scores)
	for i := range out {
		out[i].UserAudio = nil
	}
	return out
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
