package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// QueriesClient implements doofinder.QueriesClient.
type QueriesClient struct {
	*doofinder.Resource
	config *doofinder.Configuration
}

// NewQueriesClient creates a new queries client.
func NewQueriesClient(httpClient doofinder.HTTPClient, config *doofinder.Configuration, opts ...doofinder.ResourceOption) *QueriesClient {
	client := &QueriesClient{config: config}
	client.Resource = doofinder.NewResource(httpClient, config, client, opts...)

	return client
}

// URL implements doofinder.URLProvider.
func (c *QueriesClient) URL() string {
	return searchURL(c.config)
}

// Search implements doofinder.QueriesClient.Search.
// params carries paging (page, rpp), filters and sorting.
func (c *QueriesClient) Search(ctx context.Context, hashID, query string, params map[string]any) (*doofinder.Response, error) {
	return c.query(ctx, hashID, "_search", query, params, doofinder.SearchResultsModel, "searching")
}

// Suggest implements doofinder.QueriesClient.Suggest.
func (c *QueriesClient) Suggest(ctx context.Context, hashID, query string, params map[string]any) (*doofinder.Response, error) {
	return c.query(ctx, hashID, "_suggest", query, params, doofinder.SuggestionsModel, "getting suggestions")
}

func (c *QueriesClient) query(
	ctx context.Context,
	hashID, endpoint, query string,
	params map[string]any,
	model doofinder.ModelFactory,
	action string,
) (*doofinder.Response, error) {
	if hashID == "" {
		return nil, doofinder.ErrHashIDRequired
	}

	if query == "" {
		return nil, doofinder.ErrQueryRequired
	}

	target := joinPath(c.BaseURL(), hashID, endpoint)

	resp, err := c.RequestWithToken(ctx, target, http.MethodGet, model, withParams(params, map[string]any{"query": query}), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return resp, nil
}
