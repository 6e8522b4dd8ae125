package doofinder

import (
	"fmt"
	"maps"

	"github.com/mitchellh/mapstructure"
)

// SearchEngine represents a search engine managed through the management API.
type SearchEngine struct {
	HashID      string  `json:"hashid"                 yaml:"hashid"`
	Name        string  `json:"name"                   yaml:"name"`
	Currency    string  `json:"currency,omitempty"     yaml:"currency,omitempty"`
	Language    string  `json:"language,omitempty"     yaml:"language,omitempty"`
	SiteURL     string  `json:"site_url,omitempty"     yaml:"site_url,omitempty"`
	SearchURL   string  `json:"search_url,omitempty"   yaml:"search_url,omitempty"`
	Platform    string  `json:"platform,omitempty"     yaml:"platform,omitempty"`
	Stopwords   bool    `json:"stopwords"              yaml:"stopwords"`
	HasGrouping bool    `json:"has_grouping"           yaml:"has_grouping"`
	Inactive    bool    `json:"inactive"               yaml:"inactive"`
	Indices     []Index `json:"indices,omitempty"      yaml:"indices,omitempty"`
}

// SearchEngineList is the response of the search engine list endpoint.
type SearchEngineList []SearchEngine

// ProcessStatus reports the state of a processing or reindexing task.
type ProcessStatus struct {
	Status     string `json:"status"                yaml:"status"`
	Result     string `json:"result,omitempty"      yaml:"result,omitempty"`
	Message    string `json:"message,omitempty"     yaml:"message,omitempty"`
	FinishedAt string `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
}

// Index represents one index of a search engine.
type Index struct {
	Name        string         `json:"name"                  yaml:"name"`
	Preset      string         `json:"preset,omitempty"      yaml:"preset,omitempty"`
	Options     map[string]any `json:"options,omitempty"     yaml:"options,omitempty"`
	DataSources []DataSource   `json:"datasources,omitempty" yaml:"datasources,omitempty"`
}

// IndexList is the response of the index list endpoint.
type IndexList []Index

// DataSource describes where an index pulls its items from.
type DataSource struct {
	Type    string         `json:"type"              yaml:"type"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Item is a schemaless indexed document. Only "id" is guaranteed.
type Item map[string]any

// ID returns the item identifier.
func (i Item) ID() string {
	id, ok := i["id"]
	if !ok || id == nil {
		return ""
	}

	return fmt.Sprint(id)
}

// ItemsPage is one page of a scroll over an index.
type ItemsPage struct {
	ScrollID string `json:"scroll_id" yaml:"scroll_id"`
	Items    []Item `json:"items"     yaml:"items"`
	Total    int    `json:"total"     yaml:"total"`
}

// BulkResult is the response of the bulk item endpoints.
type BulkResult struct {
	Errors  bool             `json:"errors"  yaml:"errors"`
	Results []BulkItemResult `json:"results" yaml:"results"`
}

// BulkItemResult is the outcome for a single item of a bulk operation.
type BulkItemResult struct {
	ID      string `json:"id"                yaml:"id"`
	Result  string `json:"result"            yaml:"result"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// SearchResults is the response of the search endpoint.
type SearchResults struct {
	HashID         string           `json:"hashid,omitempty"  yaml:"hashid,omitempty"`
	Query          string           `json:"query"             yaml:"query"`
	QueryName      string           `json:"query_name"        yaml:"query_name"`
	QueryCounter   int              `json:"query_counter"     yaml:"query_counter"`
	Total          int              `json:"total"             yaml:"total"`
	Page           int              `json:"page"              yaml:"page"`
	ResultsPerPage int              `json:"results_per_page"  yaml:"results_per_page"`
	MaxScore       float64          `json:"max_score"         yaml:"max_score"`
	Results        []map[string]any `json:"results"           yaml:"results"`
	Facets         map[string]any   `json:"facets,omitempty"  yaml:"facets,omitempty"`
}

// Suggestions is the response of the suggest endpoint.
type Suggestions struct {
	Results []Suggestion `json:"results" yaml:"results"`
}

// Suggestion is a single suggested term.
type Suggestion struct {
	Term string `json:"term" yaml:"term"`
}

// Model factories for the typed responses above.
var (
	SearchEngineModel     = ModelFunc[*SearchEngine](decodeModel[SearchEngine])
	SearchEngineListModel = ModelFunc[*SearchEngineList](decodeModel[SearchEngineList])
	ProcessStatusModel    = ModelFunc[*ProcessStatus](decodeModel[ProcessStatus])
	IndexModel            = ModelFunc[*Index](decodeModel[Index])
	IndexListModel        = ModelFunc[*IndexList](decodeModel[IndexList])
	ItemModel             = ModelFunc[Item](newItem)
	ItemsPageModel        = ModelFunc[*ItemsPage](decodeModel[ItemsPage])
	BulkResultModel       = ModelFunc[*BulkResult](decodeModel[BulkResult])
	SearchResultsModel    = ModelFunc[*SearchResults](decodeModel[SearchResults])
	SuggestionsModel      = ModelFunc[*Suggestions](decodeModel[Suggestions])
)

// decodeModel maps a generic decoded body onto T using the json tags.
func decodeModel[T any](body any) (*T, error) {
	var model T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &model,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating decoder for %T: %w", model, err)
	}

	err = decoder.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedBody, err)
	}

	return &model, nil
}

func newItem(body any) (Item, error) {
	data, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: item must be an object, got %T", ErrUnexpectedBody, body)
	}

	return Item(maps.Clone(data)), nil
}
