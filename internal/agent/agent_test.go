package agent

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abhishek622/interviewPrep/internal/fetcher"
	"github.com/abhishek622/interviewPrep/internal/openai"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"go.uber.org/zap"
)

const page = `<div data-layout-path="/ts0/t0"><p>Reverse a linked list</p></div>`

type stubFetcher struct {
	calls int
}

func (s *stubFetcher) FetchProblem(ctx context.Context, rawURL string) (*fetcher.FetchResult, error) {
	s.calls++
	return fetcher.ParseProblem(strings.NewReader(page))
}

func newCompletionServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/responses" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req openai.ResponsesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Model != DefaultModel || len(req.Input) != 2 || req.Input[0].Content != systemPrompt {
			t.Errorf("unexpected request %+v", req)
		}
		if !strings.Contains(req.Input[1].Content, "Reversealinkedlist") {
			t.Errorf("problem text missing from prompt: %q", req.Input[1].Content)
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSolveFromHTML(t *testing.T) {
	srv := newCompletionServer(t, `{"output":[{"content":[{"type":"output_text","text":"class Solution {}"}]}]}`)
	f := &stubFetcher{}
	a := New(openai.NewClient(srv.URL, "sk", time.Second), f, "", zap.NewNop())

	res, err := a.Solve(context.Background(), model.SolveProblemReq{Type: model.AgentMessageStart, HTML: page})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Solution != "class Solution {}" || res.Problem != "Reversealinkedlist" {
		t.Fatalf("unexpected result %+v", res)
	}
	if f.calls != 0 {
		t.Fatal("html input must not trigger a fetch")
	}
}

func TestSolveFromURL(t *testing.T) {
	srv := newCompletionServer(t, `{"output":[{"content":[{"text":"ok"}]}]}`)
	f := &stubFetcher{}
	a := New(openai.NewClient(srv.URL, "sk", time.Second), f, "", zap.NewNop())

	if _, err := a.Solve(context.Background(), model.SolveProblemReq{Type: model.AgentMessageStart, URL: "https://leetcode.com/problems/x"}); err != nil {
		t.Fatalf("solve: %v", err)
	}
	if f.calls != 1 {
		t.Fatalf("fetch calls = %d", f.calls)
	}
}

func TestSolveErrors(t *testing.T) {
	srv := newCompletionServer(t, `{"output":[]}`)
	a := New(openai.NewClient(srv.URL, "sk", time.Second), &stubFetcher{}, "", zap.NewNop())
	ctx := context.Background()

	if _, err := a.Solve(ctx, model.SolveProblemReq{Type: "PING"}); !errors.Is(err, ErrUnsupportedMessage) {
		t.Errorf("expected ErrUnsupportedMessage, got %v", err)
	}
	if _, err := a.Solve(ctx, model.SolveProblemReq{Type: model.AgentMessageStart}); !errors.Is(err, ErrNoProblem) {
		t.Errorf("expected ErrNoProblem, got %v", err)
	}
	if _, err := a.Solve(ctx, model.SolveProblemReq{Type: model.AgentMessageStart, HTML: "<p>x</p>"}); !errors.Is(err, fetcher.ErrProblemNotFound) {
		t.Errorf("expected ErrProblemNotFound, got %v", err)
	}
	if _, err := a.Solve(ctx, model.SolveProblemReq{Type: model.AgentMessageStart, HTML: page}); !errors.Is(err, openai.ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}
