package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// SearchEnginesClient implements doofinder.SearchEnginesClient.
type SearchEnginesClient struct {
	*doofinder.Resource
	config *doofinder.Configuration
}

// NewSearchEnginesClient creates a new search engines client.
func NewSearchEnginesClient(httpClient doofinder.HTTPClient, config *doofinder.Configuration, opts ...doofinder.ResourceOption) *SearchEnginesClient {
	client := &SearchEnginesClient{config: config}
	client.Resource = doofinder.NewResource(httpClient, config, client, opts...)

	return client
}

// URL implements doofinder.URLProvider.
func (c *SearchEnginesClient) URL() string {
	return managementURL(c.config) + "/search_engines"
}

// List implements doofinder.SearchEnginesClient.List.
func (c *SearchEnginesClient) List(ctx context.Context) (*doofinder.Response, error) {
	resp, err := c.RequestWithJWT(ctx, c.BaseURL(), http.MethodGet, doofinder.SearchEngineListModel, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listing search engines: %w", err)
	}

	return resp, nil
}

// Get implements doofinder.SearchEnginesClient.Get.
func (c *SearchEnginesClient) Get(ctx context.Context, hashID string) (*doofinder.Response, error) {
	if hashID == "" {
		return nil, doofinder.ErrHashIDRequired
	}

	resp, err := c.RequestWithJWT(ctx, joinPath(c.BaseURL(), hashID), http.MethodGet, doofinder.SearchEngineModel, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting search engine: %w", err)
	}

	return resp, nil
}

// Create implements doofinder.SearchEnginesClient.Create.
func (c *SearchEnginesClient) Create(ctx context.Context, params map[string]any) (*doofinder.Response, error) {
	resp, err := c.RequestWithJWT(ctx, c.BaseURL(), http.MethodPost, doofinder.SearchEngineModel, params, nil)
	if err != nil {
		return nil, fmt.Errorf("creating search engine: %w", err)
	}

	return resp, nil
}

// Update implements doofinder.SearchEnginesClient.Update.
func (c *SearchEnginesClient) Update(ctx context.Context, hashID string, params map[string]any) (*doofinder.Response, error) {
	if hashID == "" {
		return nil, doofinder.ErrHashIDRequired
	}

	resp, err := c.RequestWithJWT(ctx, joinPath(c.BaseURL(), hashID), http.MethodPatch, doofinder.SearchEngineModel, params, nil)
	if err != nil {
		return nil, fmt.Errorf("updating search engine: %w", err)
	}

	return resp, nil
}

// Delete implements doofinder.SearchEnginesClient.Delete.
func (c *SearchEnginesClient) Delete(ctx context.Context, hashID string) (*doofinder.Response, error) {
	if hashID == "" {
		return nil, doofinder.ErrHashIDRequired
	}

	resp, err := c.RequestWithJWT(ctx, joinPath(c.BaseURL(), hashID), http.MethodDelete, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting search engine: %w", err)
	}

	return resp, nil
}

// Process implements doofinder.SearchEnginesClient.Process.
// It schedules a full reprocess of every data source of the search engine.
func (c *SearchEnginesClient) Process(ctx context.Context, hashID string, params map[string]any) (*doofinder.Response, error) {
	if hashID == "" {
		return nil, doofinder.ErrHashIDRequired
	}

	resp, err := c.RequestWithJWT(ctx, joinPath(c.BaseURL(), hashID, "_process"), http.MethodPost, nil, params, nil)
	if err != nil {
		return nil, fmt.Errorf("processing search engine: %w", err)
	}

	return resp, nil
}

// ProcessStatus implements doofinder.SearchEnginesClient.ProcessStatus.
func (c *SearchEnginesClient) ProcessStatus(ctx context.Context, hashID string) (*doofinder.Response, error) {
	if hashID == "" {
		return nil, doofinder.ErrHashIDRequired
	}

	resp, err := c.RequestWithJWT(ctx, joinPath(c.BaseURL(), hashID, "_process"), http.MethodGet, doofinder.ProcessStatusModel, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting process status: %w", err)
	}

	return resp, nil
}
