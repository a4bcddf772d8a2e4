package grading

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhishek622/interviewPrep/internal/openai"
	"go.uber.org/zap"
)

const (
	TranscribeModel = "gpt-4o-transcribe"
	ScoreModel      = "gpt-4o-mini-2024-07-18"

	recordingName = "recording.webm"
)

var (
	scorePattern       = regexp.MustCompile(`Score:\s*(\d+)`)
	explanationPattern = regexp.MustCompile(`(?s)Explanation:\s*(.*)`)
)

// Evaluator grades answers in process: transcribe, then ask the chat model
// for a score against the reference answer. The caller's token is used as
// the provider api key.
type Evaluator struct {
	llm    *openai.Client
	logger *zap.Logger
}

func NewEvaluator(llm *openai.Client, logger *zap.Logger) *Evaluator {
	return &Evaluator{llm: llm, logger: logger}
}

func (e *Evaluator) Grade(ctx context.Context, req Request) (Result, error) {
	if len(req.Audio) == 0 {
		return Result{}, ErrEmptyAudio
	}
	llm := e.llm.WithAPIKey(req.Token)

	transcript, err := llm.Transcribe(ctx, TranscribeModel, recordingName, req.Audio)
	if err != nil {
		return Result{}, fmt.Errorf("transcribe: %w", err)
	}

	content, err := llm.Chat(ctx, openai.ChatRequest{
		Model:    ScoreModel,
		Messages: []openai.Message{{Role: "user", Content: scorePrompt(req.Question, req.CorrectAnswer, transcript)}},
	})
	if err != nil {
		return Result{}, fmt.Errorf("score: %w", err)
	}

	res, err := ParseScore(strings.TrimSpace(content))
	if err != nil {
		e.logger.Warn("evaluate: unparseable score response",
			zap.Int64("question_id", req.QuestionID),
			zap.String("content", content),
		)
		return Result{}, err
	}

	e.logger.Info("evaluate: answer graded",
		zap.Int64("question_id", req.QuestionID),
		zap.Int("score", res.Score),
	)
	return res, nil
}

// ParseScore reads the "Score: <n>" and "Explanation: ..." lines.
func ParseScore(content string) (Result, error) {
	m := scorePattern.FindStringSubmatch(content)
	if m == nil {
		return Result{}, fmt.Errorf("%w: no score in %q", ErrMalformedResponse, content)
	}
	score, err := strconv.Atoi(m[1])
	if err != nil || !validScore(score) {
		return Result{}, fmt.Errorf("%w: invalid score %q", ErrMalformedResponse, m[1])
	}

	res := Result{Score: score}
	if em := explanationPattern.FindStringSubmatch(content); em != nil {
		res.Explanation = strings.TrimSpace(em[1])
	}
	return res, nil
}

func scorePrompt(question, reference, transcript string) string {
	return fmt.Sprintf(`
You are an experienced interview coach.

Here is a mock interview question:
Question: %s

Here is the correct/reference answer:
%s

Here is the candidate's answer:
%s

Based **only on the reference answer** (its content, scope, and detail), please give a score from 0 to 5 and explain briefly why. Do not penalize the candidate for things not mentioned in the reference.

Give a score from **0 to 5**, where:
- 5 = Excellent alignment with the reference
- 0 = No meaningful alignment

Respond in this format:
Score: <0-5>
Explanation: <your very short evaluation>
`, question, reference, transcript)
}
