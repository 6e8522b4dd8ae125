//go:build integration
// +build integration

package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearchEngineWorkflow creates, inspects and deletes a search engine
func TestSearchEngineWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)
	name := GenerateTestName("integration-engine")

	// 1. Create the engine
	var created map[string]any
	require.NoError(t, runner.RunJSON(&created,
		"search-engines", "create",
		"--name", name,
		"--language", "en",
		"--currency", "EUR",
		"--site-url", "https://example.com",
	))

	hashID, _ := created["hashid"].(string)
	require.NotEmpty(t, hashID)

	defer runner.CleanupSearchEngine(hashID)

	// 2. It shows up in the list
	WaitForCondition(t, func() bool {
		var engines []map[string]any
		if err := runner.RunJSON(&engines, "search-engines", "list"); err != nil {
			return false
		}

		for _, engine := range engines {
			if engine["hashid"] == hashID {
				return true
			}
		}

		return false
	}, 30*time.Second, "search engine listed")

	// 3. Get returns the same engine
	var fetched map[string]any
	require.NoError(t, runner.RunJSON(&fetched, "search-engines", "get", hashID))
	assert.Equal(t, name, fetched["name"])

	// 4. Delete it
	_, stderr, err := runner.Run("search-engines", "delete", hashID)
	require.NoError(t, err, stderr)

	// 5. Get now fails with not_found
	_, stderr, err = runner.Run("search-engines", "get", hashID)
	require.Error(t, err)
	assert.Contains(t, stderr, "not_found")
}

// TestSearchWorkflow runs a search and records stats against an existing engine
func TestSearchWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfNoHashID(t)

	runner := NewCommandRunner(config, t)

	var results map[string]any
	require.NoError(t, runner.RunJSON(&results, "search", config.HashID, "a", "--rpp", "5"))
	assert.Contains(t, results, "total")
	assert.Contains(t, results, "results")

	var suggestions map[string]any
	require.NoError(t, runner.RunJSON(&suggestions, "suggest", config.HashID, "a"))
	assert.Contains(t, suggestions, "results")

	sessionID := GenerateTestName("session")
	_, stderr, err := runner.Run("stats", "init-session", config.HashID, "--session-id", sessionID)
	require.NoError(t, err, stderr)
}

// TestIndicesWorkflow lists the indices of an existing engine
func TestIndicesWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfNoHashID(t)

	runner := NewCommandRunner(config, t)

	var indices []map[string]any
	require.NoError(t, runner.RunJSON(&indices, "indices", "list", config.HashID))

	for _, index := range indices {
		name, _ := index["name"].(string)
		require.NotEmpty(t, name)

		var page map[string]any
		require.NoError(t, runner.RunJSON(&page, "items", "scroll", config.HashID, name, "--rpp", "1"))
		assert.Contains(t, page, "items")
	}
}
