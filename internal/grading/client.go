package grading

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const EvaluatePath = "/evaluate-question/"

// Client posts recorded answers to a remote grading endpoint.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

type evaluateResponse struct {
	Score       *int    `json:"score"`
	Explanation *string `json:"explanation"`
}

func (c *Client) Grade(ctx context.Context, req Request) (Result, error) {
	if len(req.Audio) == 0 {
		return Result{}, ErrEmptyAudio
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("audio", req.filename())
	if err != nil {
		return Result{}, err
	}
	if _, err := fw.Write(req.Audio); err != nil {
		return Result{}, err
	}
	fields := [][2]string{
		{"question", req.Question},
		{"correctAnswer", req.CorrectAnswer},
		{"token", req.Token},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return Result{}, err
		}
	}
	if err := mw.Close(); err != nil {
		return Result{}, err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+EvaluatePath, &body)
	if err != nil {
		return Result{}, err
	}
	r.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(r)
	if err != nil {
		return Result{}, fmt.Errorf("grading request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read grading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("grading endpoint returned status %d", resp.StatusCode)
	}

	return decodeEvaluateResponse(bodyBytes)
}

func decodeEvaluateResponse(b []byte) (Result, error) {
	var er evaluateResponse
	if err := json.Unmarshal(b, &er); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if er.Score == nil {
		return Result{}, fmt.Errorf("%w: missing score", ErrMalformedResponse)
	}
	if !validScore(*er.Score) {
		return Result{}, fmt.Errorf("%w: score %d out of range", ErrMalformedResponse, *er.Score)
	}
	res := Result{Score: *er.Score}
	if er.Explanation != nil {
		res.Explanation = *er.Explanation
	}
	return res, nil
}
