package doofinder

import (
	"strings"
	"time"
)

// Configuration holds the credentials shared by every resource built from it.
// It is read-only once created.
type Configuration struct {
	host   string
	token  string
	userID string
}

// NewConfiguration creates a credentials holder. A trailing slash on host is
// dropped so resources can append paths directly.
func NewConfiguration(host, token, userID string) *Configuration {
	return &Configuration{
		host:   strings.TrimSuffix(host, "/"),
		token:  token,
		userID: userID,
	}
}

// Host returns the API host, e.g. "https://eu1-api.doofinder.com".
func (c *Configuration) Host() string {
	return c.host
}

// Token returns the stored API token.
func (c *Configuration) Token() string {
	return c.token
}

// UserID returns the stored user identifier.
func (c *Configuration) UserID() string {
	return c.userID
}

// Config represents client configuration for building the management and
// search clients (see pkg/dfclient).
//
// # Hosts
//
// Host may be left empty: dfclient derives it from the zone prefix of the
// token ("eu1-..." becomes https://eu1-api.doofinder.com for management and
// https://eu1-search.doofinder.com for search). A host without a scheme gets
// "https://".
//
// # Timeouts
//
// The request core never sets timeouts. HTTPTimeout configures the default
// transport only; callers should prefer context deadlines.
type Config struct {
	// Host: base URL of the API. Optional when the token carries a zone.
	Host string
	// Token: API token, used directly for search requests and as the JWT
	// signing key for management requests.
	Token string
	// UserID: account identifier carried in management JWTs.
	UserID string

	// HTTPTimeout: optional timeout applied by the default transport.
	HTTPTimeout time.Duration
	// UserAgent: overrides the User-Agent header sent by the default transport.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the default transport.
	Logger Logger
	// HTTPClient: replaces the default transport entirely.
	HTTPClient HTTPClient
}
