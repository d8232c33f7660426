// Package client talks to the Issue Store API over HTTP/JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thenoetrevino/issuetracker/internal/models"
)

// DefaultTimeout bounds every request unless WithHTTPClient or WithTimeout say otherwise
const DefaultTimeout = 15 * time.Second

// API is the subset of the Issue Store API the user interfaces depend on
type API interface {
	Health(ctx context.Context) (*Health, error)
	ListIssues(ctx context.Context) ([]*models.Issue, error)
	CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.Issue, error)
}

// CreateIssueRequest is the body of POST /issues
type CreateIssueRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}

// Health is the body of GET /health
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Client is an Issue Store API client.
// It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ API = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// New returns a client for the API rooted at baseURL, e.g. http://localhost:4000/api
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

// Health calls GET /health
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var health Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, http.StatusOK, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// ListIssues calls GET /issues and returns the issues newest first
func (c *Client) ListIssues(ctx context.Context) ([]*models.Issue, error) {
	issues := []*models.Issue{}
	if err := c.do(ctx, http.MethodGet, "/issues", nil, http.StatusOK, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// CreateIssue calls POST /issues and returns the stored record
func (c *Client) CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.Issue, error) {
	var issue models.Issue
	if err := c.do(ctx, http.MethodPost, "/issues", req, http.StatusCreated, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, want int, dest any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != want {
		return readErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
