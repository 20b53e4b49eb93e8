package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to the campus server over its REST JSON contract. Every
// response body is the `{success, message, data}` envelope; non-2xx responses
// (or envelopes with success=false) surface as *StatusError so callers can
// show the server-provided message.
type Client struct {
	baseURL  string
	http     *http.Client
	cookie   string
	clientID string
	log      *zap.Logger
}

type Option func(*Client)

// WithSessionCookie attaches the stored session cookie to every request.
func WithSessionCookie(cookie string) Option {
	return func(c *Client) { c.cookie = strings.TrimSpace(cookie) }
}

// WithClientID sets the stable per-install id sent as X-Client-ID.
func WithClientID(id string) Option {
	return func(c *Client) { c.clientID = strings.TrimSpace(id) }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// envelope is the wire shape shared by every endpoint.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    json.RawMessage   `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// do performs one request and decodes the envelope. out may be nil for
// endpoints whose data payload the caller does not need.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("reqId", reqID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	c.log.Debug("request done",
		zap.String("reqId", reqID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("dur", time.Since(start)))

	var env envelope
	// Some error paths (proxies, panics) produce non-JSON bodies; fold those
	// into a StatusError instead of a decode error.
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return fmt.Errorf("%s %s: decode response: %w", method, path, err)
			}
			return &StatusError{Code: resp.StatusCode}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return &StatusError{
			Code:        resp.StatusCode,
			Message:     env.Message,
			FieldErrors: env.Errors,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}
