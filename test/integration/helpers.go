//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Host       string
	Token      string
	UserID     string
	HashID     string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Host:       os.Getenv("DOOFINDER_HOST"),
		Token:      os.Getenv("DOOFINDER_TOKEN"),
		UserID:     os.Getenv("DOOFINDER_USER_ID"),
		HashID:     os.Getenv("DOOFINDER_HASHID"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("DOOFINDER_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the doofinder binary
func getBinaryPath() string {
	if path := os.Getenv("DOOFINDER_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../doofinder",
		"./doofinder",
		"../doofinder",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "doofinder"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Token == "" || config.UserID == "" {
		t.Skip("DOOFINDER_TOKEN or DOOFINDER_USER_ID not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("doofinder binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// SkipIfNoHashID skips tests that need an existing search engine
func (config *TestConfig) SkipIfNoHashID(t *testing.T) {
	t.Helper()

	if config.HashID == "" {
		t.Skip("DOOFINDER_HASHID not set, skipping integration test")
	}
}

// CommandRunner provides utilities for running doofinder commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a doofinder command with credentials taken from the test
// config and returns its output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(),
		"DOOFINDER_TOKEN="+runner.config.Token,
		"DOOFINDER_USER_ID="+runner.config.UserID,
		"DOOFINDER_HOST="+runner.config.Host,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a command with JSON output and decodes it into target
func (runner *CommandRunner) RunJSON(target any, args ...string) error {
	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	if err != nil {
		return fmt.Errorf("command failed: %w: %s", err, stderr)
	}

	if err := json.Unmarshal([]byte(stdout), target); err != nil {
		return fmt.Errorf("decoding output: %w", err)
	}

	return nil
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupSearchEngine attempts to delete a test search engine
func (runner *CommandRunner) CleanupSearchEngine(hashID string) {
	stdout, stderr, err := runner.Run("search-engines", "delete", hashID)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for search engine %s: %s\nStderr: %s", hashID, stdout, stderr)
	}
}

// WaitForCondition waits for a condition to be met with timeout
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	timeoutChan := time.After(timeout)

	for {
		select {
		case <-ticker.C:
			if condition() {
				return
			}
		case <-timeoutChan:
			t.Fatalf("Timeout waiting for condition: %s", message)
		}
	}
}
