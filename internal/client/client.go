package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quotebook-backend/internal/domains/sentence/model"
)

const DefaultTimeout = 15 * time.Second

// APIError is a non-2xx answer from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server answered %d", e.StatusCode)
	}
	return fmt.Sprintf("server answered %d: %s", e.StatusCode, e.Message)
}

// Client talks to the sentences HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the server at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches every sentence, newest first
func (c *Client) List(ctx context.Context) ([]model.Sentence, error) {
	var out []model.Sentence
	if err := c.do(ctx, http.MethodGet, "/api/sentences", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Sentence{}
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, english, chinese string) (*model.Sentence, error) {
	var out *model.Sentence
	body := model.CreateSentenceRequest{English: english, Chinese: chinese}
	if err := c.do(ctx, http.MethodPost, "/api/sentences", body, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("create: empty response")
	}
	return out, nil
}

// Update sends only the non-nil fields. A nil sentence with a nil error means
// the server no longer has that id.
func (c *Client) Update(ctx context.Context, id string, english, chinese *string) (*model.Sentence, error) {
	var out *model.Sentence
	body := model.UpdateSentenceRequest{English: english, Chinese: chinese}
	if err := c.do(ctx, http.MethodPut, sentencePath(id), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, sentencePath(id), nil, nil)
}

func sentencePath(id string) string {
	return "/api/sentences/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&e) == nil {
			apiErr.Message = e.Error
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
