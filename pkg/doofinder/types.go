package doofinder

import (
	"context"
	"fmt"
	"net/http"
)

// Response is the result of a single API call.
//
// Body holds the decoded payload as produced by the transport (maps, slices,
// strings, numbers) unless a ModelFactory was supplied for the call, in which
// case it holds the typed model instead.
type Response struct {
	StatusCode int         `json:"status_code" yaml:"status_code"`
	Headers    http.Header `json:"headers"     yaml:"headers"`
	Body       any         `json:"body"        yaml:"body"`
}

// HTTPClient executes one HTTP request.
//
// Implementations return a Response for every HTTP status code; an error is
// reserved for requests that could not complete (network, DNS, timeouts).
// Headers are "Name: value" strings. Placement of params (query string or
// body) is up to the implementation.
type HTTPClient interface {
	Request(ctx context.Context, url, method string, params map[string]any, headers []string) (*Response, error)
}

// TokenGenerator produces a short-lived bearer token from stored credentials.
type TokenGenerator func(apiToken, userID string) (string, error)

// URLProvider supplies the base URL of a concrete resource.
type URLProvider interface {
	URL() string
}

// ModelFactory converts a decoded response body into a typed model.
// Conversions must depend only on the body they are given.
type ModelFactory interface {
	CreateFromBody(body any) (any, error)
}

// ModelFunc adapts a typed conversion function to ModelFactory.
type ModelFunc[T any] func(body any) (T, error)

// CreateFromBody implements ModelFactory.
func (f ModelFunc[T]) CreateFromBody(body any) (any, error) {
	return f(body)
}

// BodyAs returns the response body as T.
func BodyAs[T any](response *Response) (T, error) {
	var zero T

	if response == nil {
		return zero, ErrEmptyResponse
	}

	typed, ok := response.Body.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %T, got %T", ErrUnexpectedBody, zero, response.Body)
	}

	return typed, nil
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// RawBodyParam is a reserved params key. When present, transports send its
// value as the whole JSON request body instead of the params map. Bulk item
// endpoints use it to send JSON arrays.
const RawBodyParam = "_body"
