package client

import (
	"net/url"
	"strings"

	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

const (
	// ManagementPath is appended to the host to build management URLs.
	ManagementPath = "/api/v2"
	// SearchPath is appended to the host to build search URLs.
	SearchPath = "/6"
)

// Management implements doofinder.ManagementClient.
type Management struct {
	searchEngines *SearchEnginesClient
	indices       *IndicesClient
	items         *ItemsClient
}

// NewManagementClient wires the management resources over one transport and
// one set of credentials.
func NewManagementClient(httpClient doofinder.HTTPClient, config *doofinder.Configuration, opts ...doofinder.ResourceOption) *Management {
	return &Management{
		searchEngines: NewSearchEnginesClient(httpClient, config, opts...),
		indices:       NewIndicesClient(httpClient, config, opts...),
		items:         NewItemsClient(httpClient, config, opts...),
	}
}

// SearchEngines returns the search engines client.
func (m *Management) SearchEngines() doofinder.SearchEnginesClient {
	return m.searchEngines
}

// Indices returns the indices client.
func (m *Management) Indices() doofinder.IndicesClient {
	return m.indices
}

// Items returns the items client.
func (m *Management) Items() doofinder.ItemsClient {
	return m.items
}

// Search implements doofinder.SearchClient.
type Search struct {
	queries *QueriesClient
	stats   *StatsClient
}

// NewSearchClient wires the search resources over one transport and one set
// of credentials.
func NewSearchClient(httpClient doofinder.HTTPClient, config *doofinder.Configuration, opts ...doofinder.ResourceOption) *Search {
	return &Search{
		queries: NewQueriesClient(httpClient, config, opts...),
		stats:   NewStatsClient(httpClient, config, opts...),
	}
}

// Queries returns the queries client.
func (s *Search) Queries() doofinder.QueriesClient {
	return s.queries
}

// Stats returns the stats client.
func (s *Search) Stats() doofinder.StatsClient {
	return s.stats
}

func managementURL(config *doofinder.Configuration) string {
	return config.Host() + ManagementPath
}

func searchURL(config *doofinder.Configuration) string {
	return config.Host() + SearchPath
}

// joinPath appends escaped path segments to base.
func joinPath(base string, segments ...string) string {
	var builder strings.Builder

	builder.WriteString(base)

	for _, segment := range segments {
		builder.WriteString("/")
		builder.WriteString(url.PathEscape(segment))
	}

	return builder.String()
}

// withParams returns a copy of params with extra keys set.
func withParams(params map[string]any, extra map[string]any) map[string]any {
	merged := make(map[string]any, len(params)+len(extra))

	for key, value := range params {
		merged[key] = value
	}

	for key, value := range extra {
		merged[key] = value
	}

	return merged
}
