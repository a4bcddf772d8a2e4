package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.openai.com/v1"

var (
	ErrMissingAPIKey     = errors.New("openai: missing api key")
	ErrMalformedResponse = errors.New("openai: malformed response")
)

// APIError is returned for any non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai api error: status %d: %s", e.StatusCode, e.Message)
}

// Client talks to an OpenAI compatible completion endpoint (OpenAI, Groq, ...).
type Client struct {
	apiKey string
	base   string
	http   *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{Timeout: timeout},
	}
}

// WithAPIKey returns a copy of the client that authenticates with key.
func (c *Client) WithAPIKey(key string) *Client {
	cp := *c
	cp.apiKey = key
	return &cp
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float32   `json:"temperature,omitempty"`
}

type ChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Chat calls /chat/completions and returns the first choice's content.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	var ch ChatResponse
	if err := c.postJSON(ctx, "/chat/completions", req, &ch); err != nil {
		return "", err
	}
	if len(ch.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}
	return ch.Choices[0].Message.Content, nil
}

type ResponsesRequest struct {
	Model       string    `json:"model"`
	Input       []Message `json:"input"`
	Temperature float32   `json:"temperature,omitempty"`
}

type ResponsesResponse struct {
	ID     string `json:"id"`
	Output []struct {
		Content []struct {
			Type string  `json:"type"`
			Text *string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// Respond calls /responses and returns output[0].content[0].text.
func (c *Client) Respond(ctx context.Context, req ResponsesRequest) (string, error) {
	var rr ResponsesResponse
	if err := c.postJSON(ctx, "/responses", req, &rr); err != nil {
		return "", err
	}
	if len(rr.Output) == 0 {
		return "", fmt.Errorf("%w: no output", ErrMalformedResponse)
	}
	if len(rr.Output[0].Content) == 0 {
		return "", fmt.Errorf("%w: output without content", ErrMalformedResponse)
	}
	text := rr.Output[0].Content[0].Text
	if text == nil {
		return "", fmt.Errorf("%w: content without text", ErrMalformedResponse)
	}
	return *text, nil
}

type transcriptionResponse struct {
	Text *string `json:"text"`
}

// Transcribe uploads audio to /audio/transcriptions and returns the text.
func (c *Client) Transcribe(ctx context.Context, model, filename string, audio []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("model", model); err != nil {
		return "", err
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(audio); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var tr transcriptionResponse
	if err := c.do(ctx, "/audio/transcriptions", mw.FormDataContentType(), &body, &tr); err != nil {
		return "", err
	}
	if tr.Text == nil {
		return "", fmt.Errorf("%w: transcription without text", ErrMalformedResponse)
	}
	return *tr.Text, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, path, "application/json", bytes.NewReader(b), out)
}

func (c *Client) do(ctx context.Context, path, contentType string, body io.Reader, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, body)
	if err != nil {
		return err
	}
	r.Header.Set("Authorization", "Bearer "+c.apiKey)
	r.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: apiErrorMessage(bodyBytes)}
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func apiErrorMessage(body []byte) string {
	var e struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return strings.TrimSpace(string(body))
}
