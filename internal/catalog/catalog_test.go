package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/abhishek622/interviewPrep/pkg/model"
)

type stubLoader struct {
	questions     []model.Question
	interviews    []model.Interview
	questionsErr  error
	interviewsErr error
}

func (s stubLoader) LoadQuestions(context.Context) ([]model.Question, error) {
	if s.questionsErr != nil {
		return []model.Question{}, s.questionsErr
	}
	return s.questions, nil
}

func (s stubLoader) LoadInterviews(context.Context) ([]model.Interview, error) {
	if s.interviewsErr != nil {
		return []model.Interview{}, s.interviewsErr
	}
	return s.interviews, nil
}

func TestRefreshSortsAndIndexes(t *testing.T) {
	c := New(stubLoader{
		questions: []model.Question{
			{ID: 2, Keyword: "go", Top: true},
			{ID: 3, Keyword: "sql"},
			{ID: 1, Keyword: "go"},
		},
		interviews: []model.Interview{{ID: 9, Client: "acme"}},
	})

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	qs := c.Questions()
	if len(qs) != 3 || qs[0].ID != 1 || qs[1].ID != 3 || qs[2].ID != 2 {
		t.Fatalf("unexpected order %+v", qs)
	}
	if q, ok := c.Question(3); !ok || q.Keyword != "sql" {
		t.Fatalf("lookup failed: %+v %v", q, ok)
	}
	if _, ok := c.Question(42); ok {
		t.Fatal("unexpected hit for unknown id")
	}
	if len(c.Interviews()) != 1 || c.LoadError() != "" {
		t.Fatalf("unexpected state: %v %q", c.Interviews(), c.LoadError())
	}
}

func TestRefreshFailureSetsBanner(t *testing.T) {
	c := New(stubLoader{
		questionsErr: errors.New("boom"),
		interviews:   []model.Interview{{ID: 1}},
	})

	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if c.LoadError() != ErrFetchingQuestions {
		t.Fatalf("banner = %q", c.LoadError())
	}
	if len(c.Questions()) != 0 {
		t.Fatalf("expected empty questions, got %v", c.Questions())
	}
	if len(c.Interviews()) != 1 {
		t.Fatalf("interviews should still load, got %v", c.Interviews())
	}
}
