package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// NewSearchEnginesCommand creates the search-engines command group.
func NewSearchEnginesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search-engines",
		Aliases: []string{"search-engine", "se"},
		Short:   "Manage search engines",
		Long:    "List, inspect, create, delete and process Doofinder search engines",
	}

	cmd.AddCommand(newSearchEnginesListCommand())
	cmd.AddCommand(newSearchEnginesGetCommand())
	cmd.AddCommand(newSearchEnginesCreateCommand())
	cmd.AddCommand(newSearchEnginesDeleteCommand())
	cmd.AddCommand(newSearchEnginesProcessCommand())
	cmd.AddCommand(newSearchEnginesProcessStatusCommand())

	return cmd
}

func newSearchEnginesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List search engines",
		Long:  "List all search engines of the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newManagementClient()
			if err != nil {
				return err
			}

			resp, err := client.SearchEngines().List(cmd.Context())
			if err != nil {
				return err
			}

			engines, err := doofinder.BodyAs[*doofinder.SearchEngineList](resp)
			if err != nil {
				return fmt.Errorf("failed to read search engines: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), engines, func(table *tablewriter.Table) {
				table.Header(headers("hashid", "name", "language", "currency", "site_url", "inactive")...)

				for _, engine := range *engines {
					_ = table.Append(
						engine.HashID,
						engine.Name,
						formatValue(engine.Language),
						formatValue(engine.Currency),
						formatValue(engine.SiteURL),
						boolText(engine.Inactive),
					)
				}
			})
		},
	}
}

func newSearchEnginesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get HASHID",
		Short: "Get search engine details",
		Long:  "Display detailed information about a specific search engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newManagementClient()
			if err != nil {
				return err
			}

			resp, err := client.SearchEngines().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			engine, err := doofinder.BodyAs[*doofinder.SearchEngine](resp)
			if err != nil {
				return fmt.Errorf("failed to read search engine: %w", err)
			}

			return writeSearchEngine(cmd, engine)
		},
	}
}

func newSearchEnginesCreateCommand() *cobra.Command {
	var (
		name     string
		language string
		currency string
		siteURL  string
		params   []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a search engine",
		Long:  "Create a new search engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseParams(params)
			if err != nil {
				return err
			}

			body["name"] = name
			body["language"] = language

			if currency != "" {
				body["currency"] = currency
			}

			if siteURL != "" {
				body["site_url"] = siteURL
			}

			client, err := newManagementClient()
			if err != nil {
				return err
			}

			resp, err := client.SearchEngines().Create(cmd.Context(), body)
			if err != nil {
				return err
			}

			engine, err := doofinder.BodyAs[*doofinder.SearchEngine](resp)
			if err != nil {
				return fmt.Errorf("failed to read search engine: %w", err)
			}

			return writeSearchEngine(cmd, engine)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "search engine name")
	cmd.Flags().StringVarP(&language, "language", "l", "", "search engine language (e.g. en, es)")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (e.g. EUR)")
	cmd.Flags().StringVar(&siteURL, "site-url", "", "URL of the site the engine serves")
	addParamFlag(cmd, &params)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}

func newSearchEnginesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete HASHID",
		Short: "Delete a search engine",
		Long:  "Delete a search engine and all of its indices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newManagementClient()
			if err != nil {
				return err
			}

			_, err = client.SearchEngines().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Search engine %s deleted\n", args[0])

			return nil
		},
	}
}

func newSearchEnginesProcessCommand() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "process HASHID",
		Short: "Process a search engine",
		Long:  "Schedule processing of every data source of a search engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseParams(params)
			if err != nil {
				return err
			}

			client, err := newManagementClient()
			if err != nil {
				return err
			}

			resp, err := client.SearchEngines().Process(cmd.Context(), args[0], body)
			if err != nil {
				return err
			}

			return writeBody(cmd.OutOrStdout(), resp.Body)
		},
	}

	addParamFlag(cmd, &params)

	return cmd
}

func newSearchEnginesProcessStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "process-status HASHID",
		Short: "Show processing status",
		Long:  "Display the status of the last processing task of a search engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newManagementClient()
			if err != nil {
				return err
			}

			resp, err := client.SearchEngines().ProcessStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			status, err := doofinder.BodyAs[*doofinder.ProcessStatus](resp)
			if err != nil {
				return fmt.Errorf("failed to read process status: %w", err)
			}

			return writeProcessStatus(cmd, status)
		},
	}
}

func writeSearchEngine(cmd *cobra.Command, engine *doofinder.SearchEngine) error {
	return writeOutput(cmd.OutOrStdout(), engine, func(table *tablewriter.Table) {
		table.Header(headers("property", "value")...)
		_ = table.Append("HashID", engine.HashID)
		_ = table.Append("Name", engine.Name)
		_ = table.Append("Language", formatValue(engine.Language))
		_ = table.Append("Currency", formatValue(engine.Currency))
		_ = table.Append("Site URL", formatValue(engine.SiteURL))
		_ = table.Append("Search URL", formatValue(engine.SearchURL))
		_ = table.Append("Inactive", boolText(engine.Inactive))
		_ = table.Append("Indices", fmt.Sprint(len(engine.Indices)))
	})
}

func writeProcessStatus(cmd *cobra.Command, status *doofinder.ProcessStatus) error {
	return writeOutput(cmd.OutOrStdout(), status, func(table *tablewriter.Table) {
		table.Header(headers("property", "value")...)
		_ = table.Append("Status", formatValue(status.Status))
		_ = table.Append("Result", formatValue(status.Result))
		_ = table.Append("Message", formatValue(status.Message))
		_ = table.Append("Finished At", formatValue(status.FinishedAt))
	})
}
