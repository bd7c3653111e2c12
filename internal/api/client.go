package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	dailyQuestionPath = "/v1/questions/daily"
	answersPath       = "/v1/answers"
)

// Client talks to a remote reflection backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient swaps the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DailyQuestion fetches today's question for the given user. The
// request always bypasses intermediary caches so a user who answered
// on another device sees the locked state immediately.
func (c *Client) DailyQuestion(ctx context.Context, userID string) (*DailyQuestion, error) {
	u := c.baseURL + dailyQuestionPath
	if userID != "" {
		u += "?userId=" + url.QueryEscape(userID)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building daily question request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	var question DailyQuestion
	if err := c.do(req, "daily-question", dailyQuestionSchema, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// SubmitAnswer posts the finished answer and returns the verdict.
func (c *Client) SubmitAnswer(ctx context.Context, sub AnswerSubmission) (*AnswerResult, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encoding answer: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+answersPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building answer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result AnswerResult
	if err := c.do(req, "answer-result", answerResultSchema, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(req *http.Request, schemaName, schemaDef string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if err := validatePayload(schemaName, schemaDef, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", req.URL.Path, err)
	}
	return nil
}
