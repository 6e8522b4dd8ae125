package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/doofinder-client/internal/constants"
	"github.com/fivetwenty-io/doofinder-client/pkg/dfclient"
	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Doofinder credentials",
		Long:  "Save the API token and user id, verifying them against the management API",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if config.UserID == "" {
				reader := bufio.NewReader(cmd.InOrStdin())
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "User ID: ")
				userID, _ := reader.ReadString('\n')
				config.UserID = strings.TrimSpace(userID)
			}

			if config.Token == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				config.Token = strings.TrimSpace(string(byteToken))
			}

			if config.Token == "" {
				return constants.ErrEmptyToken
			}

			if !skipVerify {
				err := verifyCredentials(cmd, config)
				if err != nil {
					return err
				}
			}

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Credentials saved")

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save credentials without calling the API")

	return cmd
}

// verifyCredentials lists search engines with the new credentials.
func verifyCredentials(cmd *cobra.Command, config *Config) error {
	client, err := dfclient.NewManagement(&doofinder.Config{
		Host:        config.Host,
		Token:       config.Token,
		UserID:      config.UserID,
		HTTPTimeout: constants.DefaultHTTPTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	resp, err := client.SearchEngines().List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to verify credentials: %w", err)
	}

	if viper.GetBool("verbose") {
		engines, _ := doofinder.BodyAs[*doofinder.SearchEngineList](resp)
		if engines != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Found %d search engines\n", len(*engines))
		}
	}

	return nil
}
