// Package erpclient is the terminal's HTTP adapter to the remote back-office
// API. All backend interaction (invoice creation, daily summary, POS profile
// lookup, item search, M-Pesa STK push) goes through this client; it owns the
// request/response contract and nothing else in the codebase speaks HTTP to
// the backend.
package erpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	headerTenant      = "X-Tenant-ID"
	headerIdempotency = "X-Idempotency-Key"
)

// RemoteError is a non-success response from the backend. The message is
// surfaced to the cashier verbatim.
type RemoteError struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("erp: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("erp: %s (status %d)", e.Message, e.StatusCode)
}

// Client talks to the remote ERP backend on behalf of one terminal.
// The bearer token and tenant id come from the out-of-scope auth flow.
type Client struct {
	baseURL    string
	token      string
	tenantID   string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the client logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger.Named("erpclient")
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new ERP client
func New(baseURL, token, tenantID string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		token:    token,
		tenantID: tenantID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doJSON issues a request with the standard headers and decodes a JSON
// response into out. A nil body sends no payload; extraHeaders may be nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any, extraHeaders map[string]string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erp: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("erp: failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.tenantID != "" {
		req.Header.Set(headerTenant, c.tenantID)
	}
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erp: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erp: failed to read response: %w", err)
	}

	c.logger.Debug("ERP request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.remoteError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("erp: failed to parse response: %w", err)
		}
	}
	return nil
}

// remoteError builds a RemoteError from a non-success response body.
// The backend wraps errors as {"error": {"code", "message"}}; anything
// else degrades to the raw body.
func (c *Client) remoteError(status int, body []byte) *RemoteError {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return &RemoteError{StatusCode: status, Code: envelope.Error.Code, Message: envelope.Error.Message}
	}

	msg := string(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &RemoteError{StatusCode: status, Message: msg}
}
