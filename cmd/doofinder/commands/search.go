package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/doofinder-client/internal/constants"
	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var (
		page   int
		rpp    int
		params []string
	)

	cmd := &cobra.Command{
		Use:   "search HASHID QUERY",
		Short: "Search a search engine",
		Long:  "Run a query against a search engine and list the matching results",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseParams(params)
			if err != nil {
				return err
			}

			query["page"] = page
			query["rpp"] = rpp

			client, err := newSearchClient()
			if err != nil {
				return err
			}

			resp, err := client.Queries().Search(cmd.Context(), args[0], args[1], query)
			if err != nil {
				return err
			}

			results, err := doofinder.BodyAs[*doofinder.SearchResults](resp)
			if err != nil {
				return fmt.Errorf("failed to read search results: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), results, func(table *tablewriter.Table) {
				table.Header(headers("id", "title", "type")...)

				for _, result := range results.Results {
					_ = table.Append(formatValue(result["id"]), formatValue(result["title"]), formatValue(result["type"]))
				}

				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d results (page %d)\n", results.Total, results.Page)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "results page")
	cmd.Flags().IntVar(&rpp, "rpp", constants.DefaultPageSize, "results per page")
	addParamFlag(cmd, &params)

	return cmd
}

// NewSuggestCommand creates the suggest command.
func NewSuggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest HASHID QUERY",
		Short: "Get query suggestions",
		Long:  "List the terms suggested for a partial query",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSearchClient()
			if err != nil {
				return err
			}

			resp, err := client.Queries().Suggest(cmd.Context(), args[0], args[1], nil)
			if err != nil {
				return err
			}

			suggestions, err := doofinder.BodyAs[*doofinder.Suggestions](resp)
			if err != nil {
				return fmt.Errorf("failed to read suggestions: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), suggestions, func(table *tablewriter.Table) {
				table.Header(headers("term")...)

				for _, suggestion := range suggestions.Results {
					_ = table.Append(suggestion.Term)
				}
			})
		},
	}
}
