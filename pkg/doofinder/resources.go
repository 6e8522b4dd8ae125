package doofinder

import (
	"context"

	"github.com/google/uuid"
)

// SearchEnginesClient manages search engines. Requests use JWT auth.
type SearchEnginesClient interface {
	List(ctx context.Context) (*Response, error)
	Get(ctx context.Context, hashID string) (*Response, error)
	Create(ctx context.Context, params map[string]any) (*Response, error)
	Update(ctx context.Context, hashID string, params map[string]any) (*Response, error)
	Delete(ctx context.Context, hashID string) (*Response, error)
	Process(ctx context.Context, hashID string, params map[string]any) (*Response, error)
	ProcessStatus(ctx context.Context, hashID string) (*Response, error)
}

// IndicesClient manages the indices of a search engine. Requests use JWT auth.
type IndicesClient interface {
	List(ctx context.Context, hashID string) (*Response, error)
	Get(ctx context.Context, hashID, name string) (*Response, error)
	Create(ctx context.Context, hashID string, params map[string]any) (*Response, error)
	Update(ctx context.Context, hashID, name string, params map[string]any) (*Response, error)
	Delete(ctx context.Context, hashID, name string) (*Response, error)
	Reindex(ctx context.Context, hashID, name string) (*Response, error)
	ReindexStatus(ctx context.Context, hashID, name string) (*Response, error)
}

// ItemsClient manages the items of an index. Requests use JWT auth.
type ItemsClient interface {
	Scroll(ctx context.Context, hashID, index string, params map[string]any) (*Response, error)
	Get(ctx context.Context, hashID, index, itemID string) (*Response, error)
	Create(ctx context.Context, hashID, index string, params map[string]any) (*Response, error)
	Update(ctx context.Context, hashID, index, itemID string, params map[string]any) (*Response, error)
	Delete(ctx context.Context, hashID, index, itemID string) (*Response, error)
	CreateBulk(ctx context.Context, hashID, index string, items []map[string]any) (*Response, error)
	UpdateBulk(ctx context.Context, hashID, index string, items []map[string]any) (*Response, error)
	DeleteBulk(ctx context.Context, hashID, index string, itemIDs []string) (*Response, error)
}

// QueriesClient runs searches. Requests use token auth.
type QueriesClient interface {
	Search(ctx context.Context, hashID, query string, params map[string]any) (*Response, error)
	Suggest(ctx context.Context, hashID, query string, params map[string]any) (*Response, error)
}

// StatsClient records usage statistics. Requests use token auth.
// Every call requires the session id the events belong to; use NewSessionID
// to start a session and pass the same id to the calls that follow.
type StatsClient interface {
	InitSession(ctx context.Context, hashID, sessionID string) (*Response, error)
	LogClick(ctx context.Context, hashID, sessionID, itemID, query string) (*Response, error)
	LogCheckout(ctx context.Context, hashID, sessionID string) (*Response, error)
	LogRedirect(ctx context.Context, hashID, sessionID, redirectionID, query string) (*Response, error)
}

// NewSessionID returns a random stats session id.
func NewSessionID() string {
	return uuid.NewString()
}

// ManagementClient provides access to the management API resources.
type ManagementClient interface {
	SearchEngines() SearchEnginesClient
	Indices() IndicesClient
	Items() ItemsClient
}

// SearchClient provides access to the search API resources.
type SearchClient interface {
	Queries() QueriesClient
	Stats() StatsClient
}
