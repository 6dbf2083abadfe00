// Package cloudflare is the API gateway: it owns every HTTP exchange with the
// Cloudflare v4 REST API and classifies each outcome into one of three tiers
// before anything reaches the caller. Transport failures become
// *CommunicationError, non-2xx statuses become *HTTPError, and 2xx responses
// whose envelope does not report success become *APIError. Only a response
// that clears all three tiers is usable.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lite-lake/cfman/internal/domain"
	"github.com/lite-lake/cfman/internal/infrastructure/logger"
)

const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

const (
	// DefaultTimeout applies to every standard API call.
	DefaultTimeout = 15 * time.Second
	// DefaultExportTimeout is longer because zone exports can be large.
	DefaultExportTimeout = 30 * time.Second
)

type Client struct {
	http          *http.Client
	baseURL       string
	token         string
	timeout       time.Duration
	exportTimeout time.Duration
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithExportTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.exportTimeout = d
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		http:          &http.Client{},
		baseURL:       DefaultBaseURL,
		token:         token,
		timeout:       DefaultTimeout,
		exportTimeout: DefaultExportTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if enc := query.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// doJSON runs one request/response cycle against an envelope endpoint and
// applies the three-tier classification in order. The returned envelope has
// Success set and its Result still raw for the caller to decode.
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, payload any) (*Envelope, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, domain.WrapOp(op, err)
		}
		body = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, domain.WrapOp(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("communication error with Cloudflare", "op", op, "error", err)
		return nil, &CommunicationError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("communication error with Cloudflare", "op", op, "error", err)
		return nil, &CommunicationError{Op: op, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("HTTP error from Cloudflare", "op", op, "status", resp.StatusCode)
		logResponseBody(raw)
		return nil, &HTTPError{Op: op, StatusCode: resp.StatusCode, Body: raw}
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// 2xx but not an envelope: the success flag is absent, which is an
		// API-logical failure, not a transport one.
		logResponseBody(raw)
		return nil, &APIError{Op: op}
	}
	if !env.Success {
		logger.Error("Cloudflare reported failure", "op", op, "errors", env.Errors)
		logResponseBody(raw)
		return nil, &APIError{Op: op, Errors: env.Errors}
	}

	return &env, nil
}
