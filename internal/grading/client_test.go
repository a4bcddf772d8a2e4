package grading

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientGradePostsMultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != EvaluatePath {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		for field, want := range map[string]string{
			"question":      "What is a goroutine?",
			"correctAnswer": "A lightweight thread.",
			"token":         "sk-user",
		} {
			if got := r.FormValue(field); got != want {
				t.Errorf("field %s = %q, want %q", field, got, want)
			}
		}
		f, hdr, err := r.FormFile("audio")
		if err != nil {
			t.Errorf("audio field: %v", err)
			return
		}
		defer f.Close()
		if hdr.Filename != "question_7.wav" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		_, _ = io.WriteString(w, `{"score":4,"explanation":"close enough"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	res, err := c.Grade(context.Background(), Request{
		QuestionID:    7,
		Question:      "What is a goroutine?",
		CorrectAnswer: "A lightweight thread.",
		Audio:         []byte("wav"),
		Token:         "sk-user",
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.Score != 4 || res.Explanation != "close enough" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestClientGradeFailures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		malformed bool
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "missing score", status: http.StatusOK, body: `{"explanation":"x"}`, malformed: true},
		{name: "null score", status: http.StatusOK, body: `{"score":null,"explanation":null}`, malformed: true},
		{name: "score out of range", status: http.StatusOK, body: `{"score":9}`, malformed: true},
		{name: "not json", status: http.StatusOK, body: `<html>`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second).Grade(context.Background(), Request{Audio: []byte("a")})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrMalformedResponse); got != tt.malformed {
				t.Fatalf("errors.Is(ErrMalformedResponse) = %v, want %v (err=%v)", got, tt.malformed, err)
			}
		})
	}
}

func TestClientGradeRejectsEmptyAudio(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:0", time.Second).Grade(context.Background(), Request{})
	if !errors.Is(err, ErrEmptyAudio) {
		t.Fatalf("expected ErrEmptyAudio, got %v", err)
	}
}
