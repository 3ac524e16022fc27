// Package backend provides a client for the backend under test
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/timcheck/internal/common"
	"github.com/bobmcallan/timcheck/internal/interfaces"
	"github.com/bobmcallan/timcheck/internal/models"
)

const (
	DefaultRateLimit = 10 // requests per second

	PathRegister     = "/auth/register"
	PathLogin        = "/auth/login"
	PathTimPlanos    = "/transactions/tim-planos"
	PathTransactions = "/user/transactions"
)

// Client implements the BackendClient interface
type Client struct {
	apiBase    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

var _ interfaces.BackendClient = (*Client)(nil)

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// WithTimeout sets the HTTP timeout. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a client for the API rooted at apiBase (e.g. https://host/api)
func NewClient(apiBase string, opts ...ClientOption) *Client {
	c := &Client{
		apiBase:    strings.TrimRight(apiBase, "/"),
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:     common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIBase returns the API root the client talks to
func (c *Client) APIBase() string {
	return c.apiBase
}

// Register posts the test user to /auth/register
func (c *Client) Register(ctx context.Context, user models.TestUser) (*interfaces.BackendResponse, error) {
	return c.do(ctx, http.MethodPost, PathRegister, "", user)
}

// Login posts credentials to /auth/login
func (c *Client) Login(ctx context.Context, creds models.LoginRequest) (*interfaces.BackendResponse, error) {
	return c.do(ctx, http.MethodPost, PathLogin, "", creds)
}

// CreateTimPlanos posts a TIM Planos payload. An empty token omits the Authorization header.
func (c *Client) CreateTimPlanos(ctx context.Context, token models.AuthToken, payload map[string]interface{}) (*interfaces.BackendResponse, error) {
	return c.do(ctx, http.MethodPost, PathTimPlanos, token, payload)
}

// ListTransactions fetches the authenticated user's transactions
func (c *Client) ListTransactions(ctx context.Context, token models.AuthToken) (*interfaces.BackendResponse, error) {
	return c.do(ctx, http.MethodGet, PathTransactions, token, nil)
}

// do performs a rate-limited request and returns the raw response.
// Any HTTP status is returned as a response; only transport failures are errors.
func (c *Client) do(ctx context.Context, method, path string, token models.AuthToken, body interface{}) (*interfaces.BackendResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token.Header())
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Backend request")

	return &interfaces.BackendResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}
