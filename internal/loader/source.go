package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/abhishek622/interviewPrep/pkg/model"
)

// Source yields the raw question and interview collections.
type Source interface {
	Questions(ctx context.Context) ([]model.Question, error)
	Interviews(ctx context.Context) ([]model.Interview, error)
}

// HTTPSource reads both collections from JSON endpoints.
type HTTPSource struct {
	questionsURL  string
	interviewsURL string
	http          *http.Client
}

func NewHTTPSource(questionsURL, interviewsURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		questionsURL:  questionsURL,
		interviewsURL: interviewsURL,
		http:          &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Questions(ctx context.Context) ([]model.Question, error) {
	var out []model.Question
	if err := s.getJSON(ctx, s.questionsURL, &out); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return out, nil
}

func (s *HTTPSource) Interviews(ctx context.Context) ([]model.Interview, error) {
	var out []model.Interview
	if err := s.getJSON(ctx, s.interviewsURL, &out); err != nil {
		return nil, fmt.Errorf("load interviews: %w", err)
	}
	return out, nil
}

func (s *HTTPSource) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// FileSource reads both collections from JSON files on disk.
type FileSource struct {
	questionsPath  string
	interviewsPath string
}

func NewFileSource(questionsPath, interviewsPath string) *FileSource {
	return &FileSource{questionsPath: questionsPath, interviewsPath: interviewsPath}
}

func (s *FileSource) Questions(ctx context.Context) ([]model.Question, error) {
	var out []model.Question
	if err := readJSONFile(s.questionsPath, &out); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return out, nil
}

func (s *FileSource) Interviews(ctx context.Context) ([]model.Interview, error) {
	var out []model.Interview
	if err := readJSONFile(s.interviewsPath, &out); err != nil {
		return nil, fmt.Errorf("load interviews: %w", err)
	}
	return out, nil
}

func readJSONFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
