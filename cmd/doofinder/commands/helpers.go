package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/doofinder-client/internal/constants"
	"github.com/fivetwenty-io/doofinder-client/internal/logging"
	"github.com/fivetwenty-io/doofinder-client/pkg/dfclient"
	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// JSON formatting.
const defaultJSONIndent = 2

// clientConfig builds the client configuration from flags, env and the
// config file.
func clientConfig() (*doofinder.Config, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrTokenNotConfigured
	}

	config := &doofinder.Config{
		Host:        viper.GetString("host"),
		Token:       token,
		UserID:      viper.GetString("user_id"),
		HTTPTimeout: constants.DefaultHTTPTimeout,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = logging.NewWithFormat(os.Stderr, "debug", logging.FormatConsole).WithComponent("http")
	}

	return config, nil
}

func newManagementClient() (doofinder.ManagementClient, error) {
	config, err := clientConfig()
	if err != nil {
		return nil, err
	}

	if config.UserID == "" {
		return nil, constants.ErrUserIDNotConfigured
	}

	client, err := dfclient.NewManagement(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create management client: %w", err)
	}

	return client, nil
}

func newSearchClient() (doofinder.SearchClient, error) {
	config, err := clientConfig()
	if err != nil {
		return nil, err
	}

	client, err := dfclient.NewSearch(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}

	return client, nil
}

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	return parseOutputFormat(viper.GetString("output"))
}

func parseOutputFormat(value string) (string, error) {
	output := strings.ToLower(value)

	switch output {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, output)
	}
}

// writeOutput renders value as JSON or YAML, or calls renderTable for the
// table format.
func writeOutput(writer io.Writer, value any, renderTable func(*tablewriter.Table)) error {
	output, err := outputFormat()
	if err != nil {
		return err
	}

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(writer)

		return encoder.Encode(value)
	default:
		table := tablewriter.NewWriter(writer)
		renderTable(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// writeBody renders a response body whose shape is not known in advance.
// Objects become a property table, everything else a single value row.
func writeBody(writer io.Writer, body any) error {
	return writeOutput(writer, body, func(table *tablewriter.Table) {
		table.Header(headers("property", "value")...)

		fields, ok := body.(map[string]any)
		if !ok {
			_ = table.Append("result", formatValue(body))

			return
		}

		keys := make([]string, 0, len(fields))
		for key := range fields {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			_ = table.Append(key, formatValue(fields[key]))
		}
	})
}

// headers title-cases column names: "site_url" becomes "Site Url".
func headers(names ...string) []any {
	caser := cases.Title(language.English)
	result := make([]any, 0, len(names))

	for _, name := range names {
		result = append(result, caser.String(strings.ReplaceAll(name, "_", " ")))
	}

	return result
}

// formatValue renders a decoded JSON value for a table cell.
func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return constants.NotAvailable
	case string:
		if typed == "" {
			return constants.NotAvailable
		}

		return typed
	case map[string]any, []any:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}

		return string(encoded)
	default:
		return fmt.Sprint(typed)
	}
}

// parseParams turns repeated key=value flags into request params. Values
// that are valid JSON (numbers, booleans, arrays, objects) keep their type.
func parseParams(pairs []string) (map[string]any, error) {
	params := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParam, pair)
		}

		var value any

		err := json.Unmarshal([]byte(raw), &value)
		if err != nil {
			value = raw
		}

		params[key] = value
	}

	return params, nil
}

// maskToken hides all but the first characters of a secret.
func maskToken(token string) string {
	if token == "" {
		return constants.NotAvailable
	}

	if len(token) <= constants.StringTruncationLimit {
		return constants.MaskedSecret
	}

	return token[:constants.StringTruncationLimit] + constants.MaskedSecret
}

func boolText(value bool) string {
	if value {
		return constants.BooleanTrue
	}

	return constants.BooleanFalse
}

// addParamFlag registers the repeatable --param flag.
func addParamFlag(cmd *cobra.Command, target *[]string) {
	cmd.Flags().StringArrayVarP(target, "param", "p", nil, "extra request parameter as key=value (repeatable)")
}
