package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// IndicesClient implements doofinder.IndicesClient.
type IndicesClient struct {
	*doofinder.Resource
	config *doofinder.Configuration
}

// NewIndicesClient creates a new indices client.
func NewIndicesClient(httpClient doofinder.HTTPClient, config *doofinder.Configuration, opts ...doofinder.ResourceOption) *IndicesClient {
	client := &IndicesClient{config: config}
	client.Resource = doofinder.NewResource(httpClient, config, client, opts...)

	return client
}

// URL implements doofinder.URLProvider.
func (c *IndicesClient) URL() string {
	return managementURL(c.config) + "/search_engines"
}

func (c *IndicesClient) indicesURL(hashID string, segments ...string) (string, error) {
	if hashID == "" {
		return "", doofinder.ErrHashIDRequired
	}

	return joinPath(c.BaseURL(), append([]string{hashID, "indices"}, segments...)...), nil
}

func (c *IndicesClient) indexURL(hashID, name string, segments ...string) (string, error) {
	if name == "" {
		return "", doofinder.ErrIndexNameRequired
	}

	return c.indicesURL(hashID, append([]string{name}, segments...)...)
}

// List implements doofinder.IndicesClient.List.
func (c *IndicesClient) List(ctx context.Context, hashID string) (*doofinder.Response, error) {
	target, err := c.indicesURL(hashID)
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodGet, doofinder.IndexListModel, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listing indices: %w", err)
	}

	return resp, nil
}

// Get implements doofinder.IndicesClient.Get.
func (c *IndicesClient) Get(ctx context.Context, hashID, name string) (*doofinder.Response, error) {
	target, err := c.indexURL(hashID, name)
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodGet, doofinder.IndexModel, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting index: %w", err)
	}

	return resp, nil
}

// Create implements doofinder.IndicesClient.Create.
func (c *IndicesClient) Create(ctx context.Context, hashID string, params map[string]any) (*doofinder.Response, error) {
	target, err := c.indicesURL(hashID)
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodPost, doofinder.IndexModel, params, nil)
	if err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}

	return resp, nil
}

// Update implements doofinder.IndicesClient.Update.
func (c *IndicesClient) Update(ctx context.Context, hashID, name string, params map[string]any) (*doofinder.Response, error) {
	target, err := c.indexURL(hashID, name)
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodPatch, doofinder.IndexModel, params, nil)
	if err != nil {
		return nil, fmt.Errorf("updating index: %w", err)
	}

	return resp, nil
}

// Delete implements doofinder.IndicesClient.Delete.
func (c *IndicesClient) Delete(ctx context.Context, hashID, name string) (*doofinder.Response, error) {
	target, err := c.indexURL(hashID, name)
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodDelete, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting index: %w", err)
	}

	return resp, nil
}

// Reindex implements doofinder.IndicesClient.Reindex.
// Items are rebuilt into a temporary index that replaces the live one when done.
func (c *IndicesClient) Reindex(ctx context.Context, hashID, name string) (*doofinder.Response, error) {
	target, err := c.indexURL(hashID, name, "_reindex_to_temp")
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodPost, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("reindexing index: %w", err)
	}

	return resp, nil
}

// ReindexStatus implements doofinder.IndicesClient.ReindexStatus.
func (c *IndicesClient) ReindexStatus(ctx context.Context, hashID, name string) (*doofinder.Response, error) {
	target, err := c.indexURL(hashID, name, "_reindex_to_temp")
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodGet, doofinder.ProcessStatusModel, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting reindex status: %w", err)
	}

	return resp, nil
}
