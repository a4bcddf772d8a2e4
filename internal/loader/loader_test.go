package loader

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLoadQuestionsDecodesBase64(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":1,"question":"aGVsbG8=","answer":"PGI+d29ybGQ8L2I+","keyword":"go","frequency":3,"top":true}]`)
	}))
	defer srv.Close()

	l := New(NewHTTPSource(srv.URL, srv.URL, time.Second), true, zap.NewNop())
	qs, err := l.LoadQuestions(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	q := qs[0]
	if q.Question != "hello" || q.Answer != "<b>world</b>" {
		t.Fatalf("not decoded: %+v", q)
	}
	if q.ID != 1 || q.Keyword != "go" || q.Frequency != 3 || !q.Top {
		t.Fatalf("metadata lost: %+v", q)
	}
}

func TestLoadQuestionsPlain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":2,"question":"aGVsbG8=","answer":"x","keyword":"k"}]`)
	}))
	defer srv.Close()

	qs, err := New(NewHTTPSource(srv.URL, srv.URL, time.Second), false, zap.NewNop()).LoadQuestions(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if qs[0].Question != "aGVsbG8=" {
		t.Fatalf("plain loader must not decode, got %q", qs[0].Question)
	}
}

func TestLoadFailuresReturnEmpty(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		encoded bool
	}{
		{name: "not found", status: http.StatusNotFound, body: "missing"},
		{name: "server error", status: http.StatusInternalServerError, body: "{}"},
		{name: "bad json", status: http.StatusOK, body: "not json"},
		{name: "bad base64", status: http.StatusOK, body: `[{"id":1,"question":"%%%","answer":""}]`, encoded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			l := New(NewHTTPSource(srv.URL, srv.URL, time.Second), tt.encoded, zap.NewNop())
			qs, err := l.LoadQuestions(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if qs == nil || len(qs) != 0 {
				t.Fatalf("expected empty non-nil slice, got %#v", qs)
			}
			ivs, err := l.LoadInterviews(context.Background())
			if tt.encoded {
				return
			}
			if err == nil || ivs == nil || len(ivs) != 0 {
				t.Fatalf("interviews: expected empty slice and error, got %#v %v", ivs, err)
			}
		})
	}
}

func TestLoadFromNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	qs, err := New(NewHTTPSource(url, url, time.Second), false, zap.NewNop()).LoadQuestions(context.Background())
	if err == nil || len(qs) != 0 {
		t.Fatalf("expected empty result and error, got %v %v", qs, err)
	}
}

func TestFileSourceLoadsInterviews(t *testing.T) {
	dir := t.TempDir()
	qPath := filepath.Join(dir, "InterviewQuestionList.json")
	iPath := filepath.Join(dir, "mian-jing.json")
	if err := os.WriteFile(qPath, []byte(`[{"id":1,"question":"q","answer":"a","keyword":"go","frequency":1,"top":false}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(iPath, []byte(`[{"id":7,"date":"2024-05-01","client":"acme","vendor":"v","interviewer":"i","candidate":"c","position":"backend","questions":[{"id":1,"text":"Tell me about yourself"}]}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	l := New(NewFileSource(qPath, iPath), false, zap.NewNop())
	ivs, err := l.LoadInterviews(context.Background())
	if err != nil {
		t.Fatalf("load interviews: %v", err)
	}
	if len(ivs) != 1 || ivs[0].Client != "acme" || len(ivs[0].Questions) != 1 || ivs[0].Questions[0].Text != "Tell me about yourself" {
		t.Fatalf("unexpected interviews %+v", ivs)
	}
	qs, err := l.LoadQuestions(context.Background())
	if err != nil || len(qs) != 1 {
		t.Fatalf("load questions: %v %v", qs, err)
	}
}
