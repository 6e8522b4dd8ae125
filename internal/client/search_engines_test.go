package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

func TestSearchEnginesClient_List(t *testing.T) {
	t.Parallel()

	server := NewTestServer(t, http.StatusOK, []map[string]interface{}{
		{"hashid": "abc", "name": "shop", "language": "es"},
		{"hashid": "def", "name": "blog", "inactive": true},
	})
	engines := NewTestManagement(server).SearchEngines()

	resp, err := engines.List(context.Background())
	require.NoError(t, err)

	list, err := doofinder.BodyAs[*doofinder.SearchEngineList](resp)
	require.NoError(t, err)
	require.Len(t, *list, 2)
	assert.Equal(t, "abc", (*list)[0].HashID)
	assert.True(t, (*list)[1].Inactive)

	request := server.LastRequest(t)
	assert.Equal(t, "GET", request.Method)
	assert.Equal(t, "/api/v2/search_engines", request.Path)
	assert.Equal(t, "Bearer "+TestJWT, request.Authorization)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSearchEnginesClient_Operations(t *testing.T) {
	t.Parallel()

	engine := map[string]interface{}{"hashid": "abc", "name": "shop"}

	tests := []struct {
		name         string
		call         func(context.Context, doofinder.SearchEnginesClient) (*doofinder.Response, error)
		response     interface{}
		expectedVerb string
		expectedPath string
		expectedBody any
	}{
		{
			name: "get",
			call: func(ctx context.Context, c doofinder.SearchEnginesClient) (*doofinder.Response, error) {
				return c.Get(ctx, "abc")
			},
			response:     engine,
			expectedVerb: "GET",
			expectedPath: "/api/v2/search_engines/abc",
		},
		{
			name: "create",
			call: func(ctx context.Context, c doofinder.SearchEnginesClient) (*doofinder.Response, error) {
				return c.Create(ctx, map[string]any{"name": "shop", "language": "es"})
			},
			response:     engine,
			expectedVerb: "POST",
			expectedPath: "/api/v2/search_engines",
			expectedBody: map[string]any{"name": "shop", "language": "es"},
		},
		{
			name: "update",
			call: func(ctx context.Context, c doofinder.SearchEnginesClient) (*doofinder.Response, error) {
				return c.Update(ctx, "abc", map[string]any{"name": "shop 2"})
			},
			response:     engine,
			expectedVerb: "PATCH",
			expectedPath: "/api/v2/search_engines/abc",
			expectedBody: map[string]any{"name": "shop 2"},
		},
		{
			name: "delete",
			call: func(ctx context.Context, c doofinder.SearchEnginesClient) (*doofinder.Response, error) {
				return c.Delete(ctx, "abc")
			},
			expectedVerb: "DELETE",
			expectedPath: "/api/v2/search_engines/abc",
		},
		{
			name: "process",
			call: func(ctx context.Context, c doofinder.SearchEnginesClient) (*doofinder.Response, error) {
				return c.Process(ctx, "abc", map[string]any{"callback_url": "https://example.com/done"})
			},
			response:     map[string]interface{}{"status": "QUEUED"},
			expectedVerb: "POST",
			expectedPath: "/api/v2/search_engines/abc/_process",
			expectedBody: map[string]any{"callback_url": "https://example.com/done"},
		},
		{
			name: "process status",
			call: func(ctx context.Context, c doofinder.SearchEnginesClient) (*doofinder.Response, error) {
				return c.ProcessStatus(ctx, "abc")
			},
			response:     map[string]interface{}{"status": "SUCCESS", "finished_at": "2026-01-01T00:00:00Z"},
			expectedVerb: "GET",
			expectedPath: "/api/v2/search_engines/abc/_process",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := NewTestServer(t, http.StatusOK, testCase.response)
			engines := NewTestManagement(server).SearchEngines()

			resp, err := testCase.call(context.Background(), engines)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			request := server.LastRequest(t)
			assert.Equal(t, testCase.expectedVerb, request.Method)
			assert.Equal(t, testCase.expectedPath, request.Path)
			assert.Equal(t, "Bearer "+TestJWT, request.Authorization)
			assert.Equal(t, testCase.expectedBody, request.Body)
		})
	}
}

func TestSearchEnginesClient_ProcessStatusModel(t *testing.T) {
	t.Parallel()

	server := NewTestServer(t, http.StatusOK, map[string]interface{}{"status": "SUCCESS", "result": "OK"})
	engines := NewTestManagement(server).SearchEngines()

	resp, err := engines.ProcessStatus(context.Background(), "abc")
	require.NoError(t, err)

	status, err := doofinder.BodyAs[*doofinder.ProcessStatus](resp)
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", status.Status)
	assert.Equal(t, "OK", status.Result)
}

func TestSearchEnginesClient_NotFound(t *testing.T) {
	t.Parallel()

	server := NewTestServer(t, http.StatusNotFound, map[string]interface{}{
		"error": map[string]interface{}{"code": "not_found", "message": "Search engine not found"},
	})
	engines := NewTestManagement(server).SearchEngines()

	resp, err := engines.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, doofinder.IsNotFound(err))
	assert.Contains(t, err.Error(), "getting search engine")
	assert.Contains(t, err.Error(), "not_found")
}

func TestSearchEnginesClient_RequiresHashID(t *testing.T) {
	t.Parallel()

	server := NewTestServer(t, http.StatusOK, nil)
	engines := NewTestManagement(server).SearchEngines()
	ctx := context.Background()

	_, err := engines.Get(ctx, "")
	require.ErrorIs(t, err, doofinder.ErrHashIDRequired)

	_, err = engines.Update(ctx, "", nil)
	require.ErrorIs(t, err, doofinder.ErrHashIDRequired)

	_, err = engines.Delete(ctx, "")
	require.ErrorIs(t, err, doofinder.ErrHashIDRequired)

	_, err = engines.Process(ctx, "", nil)
	require.ErrorIs(t, err, doofinder.ErrHashIDRequired)

	_, err = engines.ProcessStatus(ctx, "")
	require.ErrorIs(t, err, doofinder.ErrHashIDRequired)

	assert.Zero(t, server.RequestCount())
}

func TestSearchEnginesClient_BaseURL(t *testing.T) {
	t.Parallel()

	config := doofinder.NewConfiguration("https://eu1-api.doofinder.com/", TestToken, "user")
	engines := NewSearchEnginesClient(nil, config)

	assert.Equal(t, "https://eu1-api.doofinder.com/api/v2/search_engines", engines.BaseURL())
	assert.Equal(t, engines.URL(), engines.BaseURL())
}
