package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhishek622/interviewPrep/internal/fetcher"
	"github.com/abhishek622/interviewPrep/internal/openai"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"go.uber.org/zap"
)

const (
	DefaultModel = "gpt-4o-mini"

	systemPrompt = "You are a Java coding assistant for LeetCode."
	temperature  = 0.5
)

var (
	ErrUnsupportedMessage = errors.New("unsupported agent message")
	ErrNoProblem          = errors.New("either url or html is required")
)

// ProblemFetcher downloads a problem page.
type ProblemFetcher interface {
	FetchProblem(ctx context.Context, rawURL string) (*fetcher.FetchResult, error)
}

// Agent turns a coding problem page into a Java solution.
type Agent struct {
	llm     *openai.Client
	fetcher ProblemFetcher
	model   string
	logger  *zap.Logger
}

func New(llm *openai.Client, f ProblemFetcher, model string, logger *zap.Logger) *Agent {
	if model == "" {
		model = DefaultModel
	}
	return &Agent{llm: llm, fetcher: f, model: model, logger: logger}
}

func (a *Agent) Solve(ctx context.Context, req model.SolveProblemReq) (*model.SolveProblemRes, error) {
	if req.Type != model.AgentMessageStart {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMessage, req.Type)
	}

	var (
		problem *fetcher.FetchResult
		err     error
	)
	switch {
	case req.HTML != "":
		problem, err = fetcher.ParseProblem(strings.NewReader(req.HTML))
	case req.URL != "":
		problem, err = a.fetcher.FetchProblem(ctx, req.URL)
	default:
		return nil, ErrNoProblem
	}
	if err != nil {
		return nil, fmt.Errorf("scrape problem: %w", err)
	}

	solution, err := a.llm.Respond(ctx, openai.ResponsesRequest{
		Model: a.model,
		Input: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Solve this LeetCode problem in Java:\n\n%s\n\nOnly output Java code.", problem.Content)},
		},
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("completion: %w", err)
	}

	a.logger.Info("agent_solve: solution generated",
		zap.String("url", req.URL),
		zap.Int("problem_len", len(problem.Content)),
		zap.Int("solution_len", len(solution)),
	)

	return &model.SolveProblemRes{Problem: problem.Content, Solution: solution}, nil
}
