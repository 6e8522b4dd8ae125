package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/doofinder-client/internal/constants"
)

// Config represents the CLI configuration file.
type Config struct {
	Host   string `json:"host,omitempty"    yaml:"host,omitempty"`
	Token  string `json:"token,omitempty"   yaml:"token,omitempty"`
	UserID string `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	Output string `json:"output,omitempty"  yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the Doofinder CLI config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = maskToken(config.Token)

			return writeOutput(cmd.OutOrStdout(), config, func(table *tablewriter.Table) {
				table.Header(headers("property", "value")...)
				_ = table.Append("Host", formatValue(config.Host))
				_ = table.Append("Token", config.Token)
				_ = table.Append("User ID", formatValue(config.UserID))
				_ = table.Append("Output", formatValue(config.Output))
				_ = table.Append("Config File", formatValue(viper.ConfigFileUsed()))
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of host, token, user_id or output in the config file",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

// loadConfig reads the persisted configuration through viper.
func loadConfig() *Config {
	return &Config{
		Host:   viper.GetString("host"),
		Token:  viper.GetString("token"),
		UserID: viper.GetString("user_id"),
		Output: viper.GetString("output"),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "host":
		config.Host = value
	case "token":
		if value == "" {
			return constants.ErrEmptyToken
		}

		config.Token = value
	case "user_id", "user-id":
		config.UserID = value
	case "output":
		output, err := parseOutputFormat(value)
		if err != nil {
			return err
		}

		config.Output = output
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath returns the file in use, or ~/.doofinder/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
