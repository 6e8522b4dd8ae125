package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// StatsClient implements doofinder.StatsClient.
type StatsClient struct {
	*doofinder.Resource
	config *doofinder.Configuration
}

// NewStatsClient creates a new stats client.
func NewStatsClient(httpClient doofinder.HTTPClient, config *doofinder.Configuration, opts ...doofinder.ResourceOption) *StatsClient {
	client := &StatsClient{config: config}
	client.Resource = doofinder.NewResource(httpClient, config, client, opts...)

	return client
}

// URL implements doofinder.URLProvider.
func (c *StatsClient) URL() string {
	return searchURL(c.config)
}

// InitSession implements doofinder.StatsClient.InitSession.
func (c *StatsClient) InitSession(ctx context.Context, hashID, sessionID string) (*doofinder.Response, error) {
	return c.log(ctx, hashID, "init", sessionID, nil, "initializing session")
}

// LogClick implements doofinder.StatsClient.LogClick.
func (c *StatsClient) LogClick(ctx context.Context, hashID, sessionID, itemID, query string) (*doofinder.Response, error) {
	if itemID == "" {
		return nil, doofinder.ErrItemIDRequired
	}

	return c.log(ctx, hashID, "click", sessionID, map[string]any{"id": itemID, "query": query}, "logging click")
}

// LogCheckout implements doofinder.StatsClient.LogCheckout.
func (c *StatsClient) LogCheckout(ctx context.Context, hashID, sessionID string) (*doofinder.Response, error) {
	return c.log(ctx, hashID, "checkout", sessionID, nil, "logging checkout")
}

// LogRedirect implements doofinder.StatsClient.LogRedirect.
func (c *StatsClient) LogRedirect(ctx context.Context, hashID, sessionID, redirectionID, query string) (*doofinder.Response, error) {
	return c.log(ctx, hashID, "redirect", sessionID, map[string]any{"id": redirectionID, "query": query}, "logging redirect")
}

func (c *StatsClient) log(ctx context.Context, hashID, event, sessionID string, params map[string]any, action string) (*doofinder.Response, error) {
	if hashID == "" {
		return nil, doofinder.ErrHashIDRequired
	}

	if sessionID == "" {
		return nil, doofinder.ErrSessionIDRequired
	}

	target := joinPath(c.BaseURL(), hashID, "stats", event)

	resp, err := c.RequestWithToken(ctx, target, http.MethodPut, nil, withParams(params, map[string]any{"session_id": sessionID}), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return resp, nil
}
