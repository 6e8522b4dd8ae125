// Package http is the default doofinder.HTTPClient implementation.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// Static errors for err113 compliance.
var (
	ErrMalformedHeader = errors.New(`header must be in "Name: value" form`)
)

// Client executes single-attempt HTTP requests and decodes JSON bodies.
type Client struct {
	httpClient *retryablehttp.Client
	logger     doofinder.Logger
	debug      bool
	userAgent  string
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger doofinder.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the timeout of the underlying net/http client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client.
//
// The underlying retryablehttp client makes exactly one attempt per request
// and hands every response back regardless of its status code.
func NewClient(opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request implements doofinder.HTTPClient.
//
// GET and DELETE params are sent in the query string; for other methods a
// non-empty params map is sent as a JSON body. RawBodyParam always produces a
// body. A caller header replaces a default header of the same name; repeated
// caller headers are all sent. Transport failures are returned as-is.
func (c *Client) Request(ctx context.Context, target, method string, params map[string]any, headers []string) (*doofinder.Response, error) {
	req, err := c.newRequest(ctx, target, method, params)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(headers))

	for _, header := range headers {
		name, value, ok := strings.Cut(header, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
		}

		name = http.CanonicalHeaderKey(strings.TrimSpace(name))
		if !seen[name] {
			req.Header.Del(name)
			seen[name] = true
		}

		req.Header.Add(name, strings.TrimSpace(value))
	}

	c.logRequest(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logResponse(req, resp)

	return &doofinder.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       decodeBody(raw),
	}, nil
}

func (c *Client) newRequest(ctx context.Context, target, method string, params map[string]any) (*retryablehttp.Request, error) {
	var body interface{}

	_, raw := params[doofinder.RawBodyParam]

	switch {
	case !raw && (method == http.MethodGet || method == http.MethodDelete):
		if query := EncodeQuery(params); query != "" {
			separator := "?"
			if strings.Contains(target, "?") {
				separator = "&"
			}

			target += separator + query
		}
	case len(params) > 0:
		payload, err := encodeBody(params)
		if err != nil {
			return nil, err
		}

		body = payload
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

// decodeBody returns nil for an empty body, the decoded value for JSON, and
// the raw text for anything else.
func decodeBody(raw []byte) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var decoded any

	err := json.Unmarshal(raw, &decoded)
	if err != nil {
		return string(raw)
	}

	return decoded
}

func noRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, nil
}

func (c *Client) logRequest(req *retryablehttp.Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})
}

func (c *Client) logResponse(req *retryablehttp.Request, resp *http.Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":      req.Method,
		"url":         req.URL.String(),
		"status_code": resp.StatusCode,
	})
}
