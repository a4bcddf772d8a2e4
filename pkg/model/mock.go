package model

import "time"

const (
	MinScore = 0
	MaxScore = 5

	DefaultMockDuration = 30 // minutes
)

// QuestionScore tracks one question of an active mock interview.
type QuestionScore struct {
	QuestionID    int64   `json:"questionId"`
	Score         int     `json:"score"`
	IsSubmitted   bool    `json:"isSubmitted"`
	IsSubmitting  bool    `json:"isSubmitting,omitempty"`
	HasAudio      bool    `json:"hasAudio,omitempty"`
	AIScore       *int    `json:"aiScore,omitempty"`
	AIExplanation *string `json:"aiExplanation,omitempty"`

	UserAudio []byte `json:"-"`
}

type MockInterviewSettings struct {
	Duration          int        `json:"duration"`
	SelectedQuestions []int64    `json:"selectedQuestions"`
	IsActive          bool       `json:"isActive"`
	StartTime         *time.Time `json:"startTime,omitempty"`
}

type MockInterviewResults struct {
	Scores           []QuestionScore `json:"scores"`
	TotalScore       int             `json:"totalScore"`
	MaxPossibleScore int             `json:"maxPossibleScore"`
	CompletedAt      time.Time       `json:"completedAt"`
}

// TimerStatus is the countdown as seen by a client, in seconds.
type TimerStatus struct {
	Remaining int  `json:"remaining"`
	Warning   bool `json:"warning"`
	Expired   bool `json:"expired"`
}

type MockStateRes struct {
	SessionID string                `json:"session_id,omitempty"`
	Settings  MockInterviewSettings `json:"settings"`
	Scores    []QuestionScore       `json:"scores"`
	Timer     *TimerStatus          `json:"timer,omitempty"`
}

type StartMockReq struct {
	Duration    int      `json:"duration" binding:"required,min=1"`
	QuestionIDs []int64  `json:"question_ids"`
	Tags        []string `json:"tags"`
	TopOnly     bool     `json:"top_only"`
}

type UpdateScoreReq struct {
	Score *int `json:"score" binding:"required"`
}
