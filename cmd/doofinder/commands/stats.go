package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/doofinder-client/internal/constants"
	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// NewStatsCommand creates the stats command group.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Record usage statistics",
		Long:  "Register search sessions and result clicks",
	}

	cmd.AddCommand(newStatsInitSessionCommand())
	cmd.AddCommand(newStatsClickCommand())

	return cmd
}

func newStatsInitSessionCommand() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "init-session HASHID",
		Short: "Start a stats session",
		Long:  "Start a stats session; when --session-id is omitted a random id is generated and printed to stderr",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSearchClient()
			if err != nil {
				return err
			}

			if sessionID == "" {
				sessionID = doofinder.NewSessionID()
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Session ID: %s\n", sessionID)
			}

			resp, err := client.Stats().InitSession(cmd.Context(), args[0], sessionID)
			if err != nil {
				return err
			}

			return writeBody(cmd.OutOrStdout(), resp.Body)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session-id", "", "session id")

	return cmd
}

func newStatsClickCommand() *cobra.Command {
	var (
		sessionID string
		query     string
	)

	cmd := &cobra.Command{
		Use:   "click HASHID ITEM_ID",
		Short: "Log a result click",
		Long:  "Record that a search result was clicked",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSearchClient()
			if err != nil {
				return err
			}

			resp, err := client.Stats().LogClick(cmd.Context(), args[0], sessionID, args[1], query)
			if err != nil {
				return err
			}

			return writeBody(cmd.OutOrStdout(), resp.Body)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session-id", "", "session id returned by init-session")
	_ = cmd.MarkFlagRequired("session-id")
	cmd.Flags().StringVarP(&query, "query", "q", "", "query that produced the clicked result")

	return cmd
}
