//nolint:testpackage // Need access to internal helpers
package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type recordedRequest struct {
	method        string
	path          string
	query         string
	authorization string
	body          string
}

type apiStub struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

// newAPIStub starts a server answering every request with body and points
// the CLI configuration at it.
func newAPIStub(t *testing.T, status int, body string) *apiStub {
	t.Helper()

	stub := &apiStub{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		stub.mu.Lock()
		stub.requests = append(stub.requests, recordedRequest{
			method:        r.Method,
			path:          r.URL.EscapedPath(),
			query:         r.URL.RawQuery,
			authorization: r.Header.Get("Authorization"),
			body:          string(data),
		})
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(stub.Close)
	t.Cleanup(viper.Reset)

	viper.Set("host", stub.URL)
	viper.Set("token", "eu1-abcdef")
	viper.Set("user_id", "user-42")

	return stub
}

func (s *apiStub) last(t *testing.T) recordedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	require.NotEmpty(t, s.requests)

	return s.requests[len(s.requests)-1]
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestSearchEnginesList_EndToEnd(t *testing.T) { //nolint:paralleltest // Uses global viper state
	stub := newAPIStub(t, http.StatusOK, `[{"hashid":"abc","name":"shop","language":"es"}]`)
	viper.Set("output", "json")

	out, err := execute(t, NewSearchEnginesCommand(), "list")
	require.NoError(t, err)

	var engines []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &engines))
	require.Len(t, engines, 1)
	assert.Equal(t, "abc", engines[0]["hashid"])

	request := stub.last(t)
	assert.Equal(t, http.MethodGet, request.method)
	assert.Equal(t, "/api/v2/search_engines", request.path)
	assert.True(t, strings.HasPrefix(request.authorization, "Bearer "))
}

func TestSearchEnginesGet_APIError(t *testing.T) { //nolint:paralleltest // Uses global viper state
	newAPIStub(t, http.StatusNotFound, `{"error":{"code":"not_found"}}`)

	_, err := execute(t, NewSearchEnginesCommand(), "get", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_found")
}

func TestItemsDelete_Bulk(t *testing.T) { //nolint:paralleltest // Uses global viper state
	stub := newAPIStub(t, http.StatusOK, `{"errors":false,"results":[{"id":"2","result":"deleted"},{"id":"1","result":"deleted"}]}`)

	out, err := execute(t, NewItemsCommand(), "delete", "abc", "product", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")

	request := stub.last(t)
	assert.Equal(t, http.MethodDelete, request.method)
	assert.Equal(t, "/api/v2/search_engines/abc/indices/product/items/_bulk", request.path)
	assert.JSONEq(t, `[{"id":"1"},{"id":"2"}]`, request.body)
}

func TestSearch_EndToEnd(t *testing.T) { //nolint:paralleltest // Uses global viper state
	stub := newAPIStub(t, http.StatusOK, `{"query":"shoes","total":1,"page":2,"results":[{"id":"1","title":"Red shoes"}]}`)

	out, err := execute(t, NewSearchCommand(), "abc", "shoes", "--page", "2", "-p", "filter={\"brand\":[\"acme\"]}")
	require.NoError(t, err)
	assert.Contains(t, out, "Red shoes")

	request := stub.last(t)
	assert.Equal(t, "/6/abc/_search", request.path)
	assert.Equal(t, "Token eu1-abcdef", request.authorization)
	assert.Contains(t, request.query, "query=shoes")
	assert.Contains(t, request.query, "page=2")
	assert.Contains(t, request.query, "filter%5Bbrand%5D%5B%5D=acme")
}

func TestStatsInitSession_EndToEnd(t *testing.T) { //nolint:paralleltest // Uses global viper state
	stub := newAPIStub(t, http.StatusOK, `"OK"`)

	out, err := execute(t, NewStatsCommand(), "init-session", "abc", "--session-id", "session-1")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")

	request := stub.last(t)
	assert.Equal(t, http.MethodPut, request.method)
	assert.Equal(t, "/6/abc/stats/init", request.path)
	assert.JSONEq(t, `{"session_id":"session-1"}`, request.body)
}

func TestStatsInitSession_GeneratesSessionID(t *testing.T) { //nolint:paralleltest // Uses global viper state
	stub := newAPIStub(t, http.StatusOK, `"OK"`)

	var out, errOut bytes.Buffer

	cmd := NewStatsCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"init-session", "abc"})
	require.NoError(t, cmd.Execute())

	printed, ok := strings.CutPrefix(strings.TrimSpace(errOut.String()), "Session ID: ")
	require.True(t, ok, errOut.String())
	assert.NotEmpty(t, printed)

	request := stub.last(t)
	assert.JSONEq(t, `{"session_id":"`+printed+`"}`, request.body)
}

func TestStatsClick_RequiresSessionID(t *testing.T) { //nolint:paralleltest // Uses global viper state
	stub := newAPIStub(t, http.StatusOK, `"OK"`)

	_, err := execute(t, NewStatsCommand(), "click", "abc", "sku-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session-id")

	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Empty(t, stub.requests)
}

func TestConfigSet_WritesFile(t *testing.T) { //nolint:paralleltest // Uses global viper state
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)
	viper.Set("host", "https://eu1-api.doofinder.com")

	_, err := execute(t, NewConfigCommand(), "set", "token", "eu1-secret")
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, "eu1-secret", saved.Token)
	assert.Equal(t, "https://eu1-api.doofinder.com", saved.Host)

	_, err = execute(t, NewConfigCommand(), "set", "zone", "eu1")
	require.Error(t, err)
}

func TestConfigShow_MasksToken(t *testing.T) { //nolint:paralleltest // Uses global viper state
	t.Cleanup(viper.Reset)

	viper.Set("token", "eu1-secret")
	viper.Set("output", "json")

	out, err := execute(t, NewConfigCommand(), "show")
	require.NoError(t, err)

	var shown Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "eu1-***", shown.Token)
}

func TestItemsImport_Stdin(t *testing.T) { //nolint:paralleltest // Uses global viper state
	stub := newAPIStub(t, http.StatusOK, `{"errors":false,"results":[]}`)

	cmd := NewItemsCommand()
	cmd.SetIn(strings.NewReader(`[{"id":"1"},{"id":"2"},{"id":"3"}]`))

	out, err := execute(t, cmd, "import", "abc", "product", "-", "--chunk-size", "2", "--operation", "update")
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	stub.mu.Lock()
	defer stub.mu.Unlock()

	require.Len(t, stub.requests, 2)

	for _, request := range stub.requests {
		assert.Equal(t, http.MethodPatch, request.method)
		assert.Equal(t, "/api/v2/search_engines/abc/indices/product/items/_bulk", request.path)
	}
}

func TestReadItems(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"sku-1","price":9.5}]`), 0o600))

	items, err := readItems(nil, path)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"id": "sku-1", "price": 9.5}}, items)

	_, err = readItems(strings.NewReader(`{"id":"not-an-array"}`), "-")
	require.Error(t, err)

	_, err = readItems(nil, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
