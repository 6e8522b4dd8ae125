package doofinder

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/doofinder-client/internal/auth"
)

const authorizationHeader = "Authorization"

// Resource is the request pipeline shared by every API resource.
//
// A concrete resource embeds *Resource and supplies its base URL through
// URLProvider. The base URL is resolved once in NewResource and never
// recomputed. Resource holds no mutable state, so it is safe for concurrent
// use whenever its HTTPClient is.
type Resource struct {
	httpClient    HTTPClient
	config        *Configuration
	baseURL       string
	generateToken TokenGenerator
}

// ResourceOption configures a Resource.
type ResourceOption func(*Resource)

// WithTokenGenerator replaces the JWT generator used by RequestWithJWT.
func WithTokenGenerator(generator TokenGenerator) ResourceOption {
	return func(r *Resource) {
		r.generateToken = generator
	}
}

// NewResource creates the shared pipeline for one resource family.
func NewResource(httpClient HTTPClient, config *Configuration, provider URLProvider, opts ...ResourceOption) *Resource {
	resource := &Resource{
		httpClient:    httpClient,
		config:        config,
		generateToken: auth.GenerateToken,
	}

	for _, opt := range opts {
		opt(resource)
	}

	resource.baseURL = provider.URL()

	return resource
}

// BaseURL returns the base URL computed at construction.
func (r *Resource) BaseURL() string {
	return r.baseURL
}

// Configuration returns the credentials the resource was built with.
func (r *Resource) Configuration() *Configuration {
	return r.config
}

// RequestWithJWT performs a request authenticated with a freshly generated
// JWT ("Authorization: Bearer <jwt>"). Non-2xx/3xx responses yield *APIError.
func (r *Resource) RequestWithJWT(ctx context.Context, url, method string, model ModelFactory, params map[string]any, headers []string) (*Response, error) {
	token, err := r.generateToken(r.config.Token(), r.config.UserID())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenGeneration, err)
	}

	return r.request(ctx, url, method, model, params, withAuthorization("Bearer "+token, headers))
}

// RequestWithToken performs a request authenticated with the stored API token
// ("Authorization: Token <token>"). Non-2xx/3xx responses yield *APIError.
func (r *Resource) RequestWithToken(ctx context.Context, url, method string, model ModelFactory, params map[string]any, headers []string) (*Response, error) {
	return r.request(ctx, url, method, model, params, withAuthorization("Token "+r.config.Token(), headers))
}

func (r *Resource) request(ctx context.Context, url, method string, model ModelFactory, params map[string]any, headers []string) (*Response, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	if !isSupportedMethod(method) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}

	response, err := r.httpClient.Request(ctx, url, method, params, headers)
	if err != nil {
		return nil, err
	}

	if response == nil {
		return nil, ErrEmptyResponse
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusBadRequest {
		return nil, NewAPIError(response)
	}

	if model != nil {
		body, err := model.CreateFromBody(response.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrModelDecode, err)
		}

		response.Body = body
	}

	return response, nil
}

// withAuthorization returns a new header list starting with the given
// Authorization value followed by the caller's headers. Caller-supplied
// Authorization headers are dropped.
func withAuthorization(value string, headers []string) []string {
	result := make([]string, 0, len(headers)+1)
	result = append(result, authorizationHeader+": "+value)

	for _, header := range headers {
		name, _, _ := strings.Cut(header, ":")
		if strings.EqualFold(strings.TrimSpace(name), authorizationHeader) {
			continue
		}

		result = append(result, header)
	}

	return result
}

func isSupportedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
