/*
Package dfclient creates ready-to-use Doofinder API clients.

Management API:

	mgmt, err := dfclient.NewManagement(&doofinder.Config{
		Token:  os.Getenv("DOOFINDER_TOKEN"), // "eu1-..."
		UserID: os.Getenv("DOOFINDER_USER_ID"),
	})
	if err != nil {
		log.Fatal(err)
	}

	resp, err := mgmt.SearchEngines().List(ctx)

Search API:

	search, err := dfclient.NewSearch(&doofinder.Config{Token: token})
	resp, err := search.Queries().Search(ctx, hashID, "shoes", map[string]any{"rpp": 20})

When Host is empty the zone prefix of the token selects the host:
https://<zone>-api.doofinder.com for management and
https://<zone>-search.doofinder.com for search.
*/
package dfclient
