// Package doofinder provides types, interfaces, and the shared request core for
// working with the Doofinder management and search APIs.
//
// # Overview
//
// Every API resource (search engines, indices, items, search, stats) embeds a
// Resource. Resource owns the one request pipeline of the library: it sets the
// Authorization header, hands the call to an HTTPClient exactly once, turns
// responses outside [200, 400) into *APIError, and optionally decodes the body
// into a typed model through a ModelFactory.
//
// Two authentication schemes are supported and chosen per call:
//
//	RequestWithJWT   → Authorization: Bearer <jwt signed with the API token>
//	RequestWithToken → Authorization: Token <API token>
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/doofinder-client/pkg/dfclient"
//	  "github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := dfclient.NewManagement(&doofinder.Config{Token: "eu1-abc", UserID: "user"})
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.SearchEngines().Get(ctx, "6a96504dc173514cab1e0198af92e6e9")
//	  if err != nil { log.Fatal(err) }
//
//	  engine, err := doofinder.BodyAs[*doofinder.SearchEngine](resp)
//	  if err != nil { log.Fatal(err) }
//	  _ = engine
//	}
//
// # Custom resources
//
// A resource outside this module builds its own pipeline by implementing
// URLProvider and calling NewResource:
//
//	type Reports struct {
//	  *doofinder.Resource
//	  config *doofinder.Configuration
//	}
//
//	func (r *Reports) URL() string { return r.config.Host() + "/api/v2/reports" }
//
//	reports := &Reports{config: cfg}
//	reports.Resource = doofinder.NewResource(httpClient, cfg, reports)
//
// # Errors
//
// API failures are *APIError values carrying the status code, the serialized
// body, and the original Response. Helpers such as IsNotFound, IsUnauthorized,
// and IsForbidden branch on common cases. Transport failures are returned
// exactly as the HTTPClient produced them.
package doofinder
