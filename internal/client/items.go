package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// ItemsClient implements doofinder.ItemsClient.
type ItemsClient struct {
	*doofinder.Resource
	config *doofinder.Configuration
}

// NewItemsClient creates a new items client.
func NewItemsClient(httpClient doofinder.HTTPClient, config *doofinder.Configuration, opts ...doofinder.ResourceOption) *ItemsClient {
	client := &ItemsClient{config: config}
	client.Resource = doofinder.NewResource(httpClient, config, client, opts...)

	return client
}

// URL implements doofinder.URLProvider.
func (c *ItemsClient) URL() string {
	return managementURL(c.config) + "/search_engines"
}

func (c *ItemsClient) itemsURL(hashID, index string, segments ...string) (string, error) {
	if hashID == "" {
		return "", doofinder.ErrHashIDRequired
	}

	if index == "" {
		return "", doofinder.ErrIndexNameRequired
	}

	return joinPath(c.BaseURL(), append([]string{hashID, "indices", index, "items"}, segments...)...), nil
}

func (c *ItemsClient) itemURL(hashID, index, itemID string) (string, error) {
	if itemID == "" {
		return "", doofinder.ErrItemIDRequired
	}

	return c.itemsURL(hashID, index, itemID)
}

// Scroll implements doofinder.ItemsClient.Scroll.
// Pass the scroll_id of the previous page in params to continue a scroll.
func (c *ItemsClient) Scroll(ctx context.Context, hashID, index string, params map[string]any) (*doofinder.Response, error) {
	target, err := c.itemsURL(hashID, index)
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodGet, doofinder.ItemsPageModel, params, nil)
	if err != nil {
		return nil, fmt.Errorf("scrolling items: %w", err)
	}

	return resp, nil
}

// Get implements doofinder.ItemsClient.Get.
func (c *ItemsClient) Get(ctx context.Context, hashID, index, itemID string) (*doofinder.Response, error) {
	target, err := c.itemURL(hashID, index, itemID)
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodGet, doofinder.ItemModel, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	return resp, nil
}

// Create implements doofinder.ItemsClient.Create.
func (c *ItemsClient) Create(ctx context.Context, hashID, index string, params map[string]any) (*doofinder.Response, error) {
	target, err := c.itemsURL(hashID, index)
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodPost, doofinder.ItemModel, params, nil)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return resp, nil
}

// Update implements doofinder.ItemsClient.Update.
func (c *ItemsClient) Update(ctx context.Context, hashID, index, itemID string, params map[string]any) (*doofinder.Response, error) {
	target, err := c.itemURL(hashID, index, itemID)
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodPatch, doofinder.ItemModel, params, nil)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	return resp, nil
}

// Delete implements doofinder.ItemsClient.Delete.
func (c *ItemsClient) Delete(ctx context.Context, hashID, index, itemID string) (*doofinder.Response, error) {
	target, err := c.itemURL(hashID, index, itemID)
	if err != nil {
		return nil, err
	}

	resp, err := c.RequestWithJWT(ctx, target, http.MethodDelete, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting item: %w", err)
	}

	return resp, nil
}

// CreateBulk implements doofinder.ItemsClient.CreateBulk.
func (c *ItemsClient) CreateBulk(ctx context.Context, hashID, index string, items []map[string]any) (*doofinder.Response, error) {
	return c.bulk(ctx, hashID, index, http.MethodPost, items, "creating items")
}

// UpdateBulk implements doofinder.ItemsClient.UpdateBulk.
func (c *ItemsClient) UpdateBulk(ctx context.Context, hashID, index string, items []map[string]any) (*doofinder.Response, error) {
	return c.bulk(ctx, hashID, index, http.MethodPatch, items, "updating items")
}

// DeleteBulk implements doofinder.ItemsClient.DeleteBulk.
func (c *ItemsClient) DeleteBulk(ctx context.Context, hashID, index string, itemIDs []string) (*doofinder.Response, error) {
	ids := make([]map[string]any, 0, len(itemIDs))
	for _, id := range itemIDs {
		ids = append(ids, map[string]any{"id": id})
	}

	return c.bulk(ctx, hashID, index, http.MethodDelete, ids, "deleting items")
}

func (c *ItemsClient) bulk(ctx context.Context, hashID, index, method string, body []map[string]any, action string) (*doofinder.Response, error) {
	target, err := c.itemsURL(hashID, index, "_bulk")
	if err != nil {
		return nil, err
	}

	params := map[string]any{doofinder.RawBodyParam: body}

	resp, err := c.RequestWithJWT(ctx, target, method, doofinder.BulkResultModel, params, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return resp, nil
}
