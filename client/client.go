// Package client is a typed HTTP client for the catalog API, used by the
// panel package and by anything else that talks to a running server.
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
)

// Envelope mirrors the server's response wrapper. A failure envelope is a
// normal return value; only transport and decoding problems are errors.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`

	StatusCode int `json:"-"`
}

type Meta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Client talks to one API server.
type Client struct {
	baseURL    string
	httpClient *http.Client

	Tools   *ToolsAPI
	Blog    *BlogAPI
	Docs    *DocsAPI
	Contact *ContactAPI
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout for the client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the server at baseURL, e.g.
// "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Tools = &ToolsAPI{c: c}
	c.Blog = &BlogAPI{c: c}
	c.Docs = &DocsAPI{c: c}
	c.Contact = &ContactAPI{c: c}
	return c
}

// Health fetches GET /health.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	code, err := c.doJSON(ctx, http.MethodGet, "/health", nil, nil, &status)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("health check returned status %d", code)
	}
	return &status, nil
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

func do[T any](ctx context.Context, c *Client, method, path string, q url.Values, body any) (*Envelope[T], error) {
	var env Envelope[T]
	code, err := c.doJSON(ctx, method, path, q, body, &env)
	if err != nil {
		return nil, err
	}
	env.StatusCode = code
	return &env, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, q url.Values, body, out any) (int, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	return resp.StatusCode, nil
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, fmt.Sprint(v))
	}
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
