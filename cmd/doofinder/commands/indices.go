package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/doofinder-client/internal/constants"
	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// NewIndicesCommand creates the indices command group.
func NewIndicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "indices",
		Aliases: []string{"index", "idx"},
		Short:   "Manage search engine indices",
		Long:    "List, inspect and reindex the indices of a search engine",
	}

	cmd.AddCommand(newIndicesListCommand())
	cmd.AddCommand(newIndicesGetCommand())
	cmd.AddCommand(newIndicesReindexCommand())

	return cmd
}

func newIndicesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list HASHID",
		Short: "List indices",
		Long:  "List the indices of a search engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newManagementClient()
			if err != nil {
				return err
			}

			resp, err := client.Indices().List(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			indices, err := doofinder.BodyAs[*doofinder.IndexList](resp)
			if err != nil {
				return fmt.Errorf("failed to read indices: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), indices, func(table *tablewriter.Table) {
				table.Header(headers("name", "preset", "datasources")...)

				for _, index := range *indices {
					_ = table.Append(index.Name, formatValue(index.Preset), fmt.Sprint(len(index.DataSources)))
				}
			})
		},
	}
}

func newIndicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get HASHID NAME",
		Short: "Get index details",
		Long:  "Display detailed information about an index",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newManagementClient()
			if err != nil {
				return err
			}

			resp, err := client.Indices().Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			index, err := doofinder.BodyAs[*doofinder.Index](resp)
			if err != nil {
				return fmt.Errorf("failed to read index: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), index, func(table *tablewriter.Table) {
				table.Header(headers("property", "value")...)
				_ = table.Append("Name", index.Name)
				_ = table.Append("Preset", formatValue(index.Preset))

				for i, source := range index.DataSources {
					_ = table.Append(fmt.Sprintf("Datasource %d", i+1), source.Type)
				}
			})
		},
	}
}

func newIndicesReindexCommand() *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "reindex HASHID NAME",
		Short: "Reindex an index",
		Long:  "Rebuild an index into a temporary index, or show the status of the running reindex with --status",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newManagementClient()
			if err != nil {
				return err
			}

			if status {
				resp, err := client.Indices().ReindexStatus(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}

				processStatus, err := doofinder.BodyAs[*doofinder.ProcessStatus](resp)
				if err != nil {
					return fmt.Errorf("failed to read reindex status: %w", err)
				}

				return writeProcessStatus(cmd, processStatus)
			}

			resp, err := client.Indices().Reindex(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return writeBody(cmd.OutOrStdout(), resp.Body)
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "show the status of the current reindex instead of starting one")

	return cmd
}
