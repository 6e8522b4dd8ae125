package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/doofinder-client/internal/constants"
	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

const itemArgs = 3

// NewItemsCommand creates the items command group.
func NewItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Manage index items",
		Long:    "Read, scroll and delete the items stored in an index",
	}

	cmd.AddCommand(newItemsGetCommand())
	cmd.AddCommand(newItemsScrollCommand())
	cmd.AddCommand(newItemsDeleteCommand())
	cmd.AddCommand(newItemsImportCommand())

	return cmd
}

func newItemsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get HASHID INDEX ITEM_ID",
		Short: "Get an item",
		Long:  "Display every field of an indexed item",
		Args:  cobra.ExactArgs(itemArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newManagementClient()
			if err != nil {
				return err
			}

			resp, err := client.Items().Get(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			item, err := doofinder.BodyAs[doofinder.Item](resp)
			if err != nil {
				return fmt.Errorf("failed to read item: %w", err)
			}

			return writeBody(cmd.OutOrStdout(), map[string]any(item))
		},
	}
}

func newItemsScrollCommand() *cobra.Command {
	var (
		scrollID string
		rpp      int
		fields   []string
	)

	cmd := &cobra.Command{
		Use:   "scroll HASHID INDEX",
		Short: "Scroll through items",
		Long:  "Fetch one page of items; pass the returned scroll id with --scroll-id to get the next page",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{"rpp": rpp}
			if scrollID != "" {
				params["scroll_id"] = scrollID
			}

			client, err := newManagementClient()
			if err != nil {
				return err
			}

			resp, err := client.Items().Scroll(cmd.Context(), args[0], args[1], params)
			if err != nil {
				return err
			}

			page, err := doofinder.BodyAs[*doofinder.ItemsPage](resp)
			if err != nil {
				return fmt.Errorf("failed to read items: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), page, func(table *tablewriter.Table) {
				columns := append([]string{"id"}, fields...)
				table.Header(headers(columns...)...)

				for _, item := range page.Items {
					row := []any{item.ID()}
					for _, field := range fields {
						row = append(row, formatValue(item[field]))
					}

					_ = table.Append(row...)
				}

				if page.ScrollID != "" {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Next page: --scroll-id %s (total %d)\n", page.ScrollID, page.Total)
				}
			})
		},
	}

	cmd.Flags().StringVar(&scrollID, "scroll-id", "", "scroll id returned by the previous page")
	cmd.Flags().IntVar(&rpp, "rpp", constants.DefaultPageSize, "items per page")
	cmd.Flags().StringSliceVar(&fields, "fields", []string{"title"}, "item fields shown in table output")

	return cmd
}

func newItemsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete HASHID INDEX ITEM_ID...",
		Short: "Delete items",
		Long:  "Delete one item, or several in a single bulk request",
		Args:  cobra.MinimumNArgs(itemArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newManagementClient()
			if err != nil {
				return err
			}

			hashID, index, ids := args[0], args[1], args[2:]

			if len(ids) == 1 {
				_, err = client.Items().Delete(cmd.Context(), hashID, index, ids[0])
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Item %s deleted\n", ids[0])

				return nil
			}

			resp, err := client.Items().DeleteBulk(cmd.Context(), hashID, index, ids)
			if err != nil {
				return err
			}

			result, err := doofinder.BodyAs[*doofinder.BulkResult](resp)
			if err != nil {
				return fmt.Errorf("failed to read bulk result: %w", err)
			}

			sort.Slice(result.Results, func(i, j int) bool { return result.Results[i].ID < result.Results[j].ID })

			return writeOutput(cmd.OutOrStdout(), result, func(table *tablewriter.Table) {
				table.Header(headers("id", "result", "message")...)

				for _, item := range result.Results {
					_ = table.Append(item.ID, item.Result, formatValue(item.Message))
				}
			})
		},
	}
}

func newItemsImportCommand() *cobra.Command {
	var (
		operation   string
		chunkSize   int
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "import HASHID INDEX FILE",
		Short: "Bulk import items",
		Long:  "Create, update or delete the items of a JSON array file (\"-\" reads stdin) in concurrent bulk requests",
		Args:  cobra.ExactArgs(itemArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readItems(cmd.InOrStdin(), args[2])
			if err != nil {
				return err
			}

			client, err := newManagementClient()
			if err != nil {
				return err
			}

			executor := doofinder.NewBatchExecutor(client.Items(), concurrency)
			executor.SetChunkSize(chunkSize)

			results, err := executor.Execute(cmd.Context(), doofinder.BatchOperation(operation), args[0], args[1], items)
			if err != nil {
				return err
			}

			err = writeOutput(cmd.OutOrStdout(), results, func(table *tablewriter.Table) {
				table.Header(headers("chunk", "items", "status", "duration")...)

				for _, result := range results {
					status := "ok"
					if !result.Success() {
						status = result.Error.Error()
					}

					_ = table.Append(fmt.Sprint(result.Chunk), fmt.Sprint(result.Items), status, result.Duration.String())
				}
			})
			if err != nil {
				return err
			}

			return results.Err()
		},
	}

	cmd.Flags().StringVar(&operation, "operation", string(doofinder.BatchCreate), "bulk operation (create, update, delete)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", doofinder.MaxBulkSize, "items per bulk request")
	cmd.Flags().IntVar(&concurrency, "concurrency", doofinder.DefaultBatchConcurrency, "bulk requests in flight")

	return cmd
}

// readItems decodes a JSON array of items from path, or from stdin for "-".
func readItems(stdin io.Reader, path string) ([]map[string]any, error) {
	reader := stdin

	if path != "-" {
		file, err := os.Open(path) //nolint:gosec // path is provided by the user
		if err != nil {
			return nil, fmt.Errorf("failed to open items file: %w", err)
		}
		defer file.Close()

		reader = file
	}

	var items []map[string]any

	err := json.NewDecoder(reader).Decode(&items)
	if err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	return items, nil
}
