// Package dfclient provides the main entry points for creating Doofinder API clients
package dfclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/doofinder-client/internal/auth"
	"github.com/fivetwenty-io/doofinder-client/internal/client"
	"github.com/fivetwenty-io/doofinder-client/internal/constants"
	"github.com/fivetwenty-io/doofinder-client/internal/http"
	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// Service host prefixes combined with the token zone.
const (
	managementService = "api"
	searchService     = "search"
)

// NewManagement creates a client for the management API (search engines,
// indices and items). Requests are authenticated with a JWT signed by the
// API token; each JWT is reused by the client until shortly before it
// expires.
func NewManagement(config *doofinder.Config) (doofinder.ManagementClient, error) {
	configuration, err := newConfiguration(config, managementService)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenCache()

	return client.NewManagementClient(transport(config), configuration, doofinder.WithTokenGenerator(tokens.Generate)), nil
}

// NewSearch creates a client for the search API (queries and stats).
// Requests are authenticated with the API token.
func NewSearch(config *doofinder.Config) (doofinder.SearchClient, error) {
	configuration, err := newConfiguration(config, searchService)
	if err != nil {
		return nil, err
	}

	return client.NewSearchClient(transport(config), configuration), nil
}

func newConfiguration(config *doofinder.Config, service string) (*doofinder.Configuration, error) {
	if config == nil {
		return nil, doofinder.ErrConfigRequired
	}

	if config.Token == "" {
		return nil, doofinder.ErrTokenRequired
	}

	host := config.Host
	if host == "" {
		zone, err := Zone(config.Token)
		if err != nil {
			return nil, err
		}

		host = ZoneHost(zone, service)
	}

	return doofinder.NewConfiguration(NormalizeHost(host), config.Token, config.UserID), nil
}

// NormalizeHost adds the https scheme when missing and drops trailing slashes.
func NormalizeHost(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}

	return host
}

// Zone returns the zone prefix of an API token ("eu1-abc..." gives "eu1").
func Zone(token string) (string, error) {
	zone, secret, found := strings.Cut(token, "-")
	if !found || zone == "" || secret == "" {
		return "", doofinder.ErrNoZoneInToken
	}

	return zone, nil
}

// ZoneHost returns the host of a service in a zone, e.g.
// ZoneHost("eu1", "api") is "https://eu1-api.doofinder.com".
func ZoneHost(zone, service string) string {
	return fmt.Sprintf("https://%s-%s.%s", zone, service, constants.DoofinderDomain)
}

// transport returns the configured HTTPClient or builds the default one.
func transport(config *doofinder.Config) doofinder.HTTPClient {
	if config.HTTPClient != nil {
		return config.HTTPClient
	}

	return http.NewClient(httpClientOptions(config)...)
}

// httpClientOptions builds HTTP client options from config.
func httpClientOptions(config *doofinder.Config) []http.Option {
	httpOpts := []http.Option{http.WithUserAgent(constants.DefaultUserAgent)}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}
