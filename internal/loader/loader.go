package loader

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/abhishek622/interviewPrep/pkg/model"
	"go.uber.org/zap"
)

// Loader fetches the catalog collections. Failures never propagate as
// panics: the caller gets an empty collection together with the error.
type Loader struct {
	source  Source
	encoded bool
	logger  *zap.Logger
}

// New returns a Loader over source. When encoded is set the question and
// answer fields arrive base64 encoded.
func New(source Source, encoded bool, logger *zap.Logger) *Loader {
	return &Loader{source: source, encoded: encoded, logger: logger}
}

func (l *Loader) LoadQuestions(ctx context.Context) ([]model.Question, error) {
	qs, err := l.source.Questions(ctx)
	if err != nil {
		l.logger.Error("load_questions: failed", zap.Error(err))
		return []model.Question{}, err
	}
	if l.encoded {
		if qs, err = DecodeQuestions(qs); err != nil {
			l.logger.Error("load_questions: decode failed", zap.Error(err))
			return []model.Question{}, err
		}
	}
	l.logger.Info("load_questions: loaded", zap.Int("count", len(qs)))
	return qs, nil
}

func (l *Loader) LoadInterviews(ctx context.Context) ([]model.Interview, error) {
	ivs, err := l.source.Interviews(ctx)
	if err != nil {
		l.logger.Error("load_interviews: failed", zap.Error(err))
		return []model.Interview{}, err
	}
	l.logger.Info("load_interviews: loaded", zap.Int("count", len(ivs)))
	return ivs, nil
}

// DecodeQuestions returns copies of qs with question and answer base64
// decoded.
func DecodeQuestions(qs []model.Question) ([]model.Question, error) {
	out := make([]model.Question, len(qs))
	for i, q := range qs {
		question, err := base64.StdEncoding.DecodeString(q.Question)
		if err != nil {
			return nil, fmt.Errorf("question %d: decode question: %w", q.ID, err)
		}
		answer, err := base64.StdEncoding.DecodeString(q.Answer)
		if err != nil {
			return nil, fmt.Errorf("question %d: decode answer: %w", q.ID, err)
		}
		q.Question = string(question)
		q.Answer = string(answer)
		out[i] = q
	}
	return out, nil
}
