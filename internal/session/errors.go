package session

import "errors"

var (
	ErrSessionActive        = errors.New("a mock interview is already active")
	ErrNoActiveSession      = errors.New("no active mock interview")
	ErrSessionEnded         = errors.New("mock interview ended before grading completed")
	ErrInvalidDuration      = errors.New("duration must be at least one minute")
	ErrEmptySelection       = errors.New("at least one question must be selected")
	ErrUnknownQuestion      = errors.New("question not found in catalog")
	ErrQuestionNotInSession = errors.New("question is not part of the active mock interview")
	ErrInvalidScore         = errors.New("score must be between 0 and 5")
	ErrSubmissionInProgress = errors.New("an answer for this question is already being graded")
	ErrGradingUnavailable   = errors.New("answer grading is not configured")
	ErrGradingFailed        = errors.New("answer grading failed")
	ErrNoResults            = errors.New("no mock interview results")
)
