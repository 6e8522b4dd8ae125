package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".doofinder"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file extension.
	ConfigFileType = "yml"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "DOOFINDER"
)

// API endpoints.
const (
	// DoofinderDomain is the domain shared by every zone host.
	DoofinderDomain = "doofinder.com"

	// DefaultUserAgent is sent by the default transport.
	DefaultUserAgent = "doofinder-go-client"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for CLI requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 20

	// StringTruncationLimit is how many leading characters of a secret stay visible.
	StringTruncationLimit = 4
)

// Validation and limits.
const (
	// MinimumArgumentCount is the argument count of KEY VALUE commands.
	MinimumArgumentCount = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)
