package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/doofinder-client/internal/http"
	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// TestToken is the API token used by test clients.
const TestToken = "eu1-testtoken"

// TestJWT is the bearer token returned by the test token generator.
const TestJWT = "header.payload.signature"

// CapturedRequest is what a test server saw for one request.
type CapturedRequest struct {
	Method        string
	Path          string
	Query         map[string][]string
	Authorization string
	Body          any
}

// TestServer is an httptest server that answers every request with a fixed
// status and body, and records what it received.
type TestServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []CapturedRequest
}

// NewTestServer starts a server that replies with status and the JSON
// encoding of response (no body when response is nil).
func NewTestServer(t *testing.T, status int, response interface{}) *TestServer {
	t.Helper()

	server := &TestServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured := CapturedRequest{
			Method:        request.Method,
			Path:          request.URL.EscapedPath(),
			Query:         request.URL.Query(),
			Authorization: request.Header.Get("Authorization"),
		}

		raw, _ := io.ReadAll(request.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &captured.Body)
		}

		server.mu.Lock()
		server.requests = append(server.requests, captured)
		server.mu.Unlock()

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)

		if response != nil {
			_ = json.NewEncoder(writer).Encode(response)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

// LastRequest returns the most recent request the server received.
func (s *TestServer) LastRequest(t *testing.T) CapturedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	require.NotEmpty(t, s.requests, "server received no request")

	return s.requests[len(s.requests)-1]
}

// RequestCount returns how many requests the server received.
func (s *TestServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

// NewTestConfiguration returns credentials pointing at baseURL.
func NewTestConfiguration(baseURL string) *doofinder.Configuration {
	return doofinder.NewConfiguration(baseURL, TestToken, "test-user")
}

func testTokenGenerator(apiToken, userID string) (string, error) {
	return TestJWT, nil
}

// NewTestManagement builds a management client against the test server.
func NewTestManagement(server *TestServer) *Management {
	return NewManagementClient(internalhttp.NewClient(), NewTestConfiguration(server.URL), doofinder.WithTokenGenerator(testTokenGenerator))
}

// NewTestSearch builds a search client against the test server.
func NewTestSearch(server *TestServer) *Search {
	return NewSearchClient(internalhttp.NewClient(), NewTestConfiguration(server.URL), doofinder.WithTokenGenerator(testTokenGenerator))
}
