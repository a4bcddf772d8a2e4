package grading

import (
	"errors"
	"fmt"

	"github.com/abhishek622/interviewPrep/pkg/model"
)

var (
	ErrMalformedResponse = errors.New("grading: malformed response")
	ErrEmptyAudio        = errors.New("grading: empty audio")
)

// Request is one spoken answer to be graded against the reference answer.
type Request struct {
	QuestionID    int64
	Question      string
	CorrectAnswer string
	Audio         []byte
	Token         string
}

func (r Request) filename() string {
	return fmt.Sprintf("question_%d.wav", r.QuestionID)
}

type Result struct {
	Score       int
	Explanation string
}

func validScore(score int) bool {
	return score >= model.MinScore && score <= model.MaxScore
}
