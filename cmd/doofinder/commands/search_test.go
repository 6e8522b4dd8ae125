package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/doofinder-client/cmd/doofinder/commands"
)

func TestNewSearchCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewSearchCommand()
	assert.Equal(t, "search HASHID QUERY", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.Equal(t, "1", cmd.Flags().Lookup("page").DefValue)
	assert.Equal(t, "20", cmd.Flags().Lookup("rpp").DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("param"))
}

func TestNewSuggestCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewSuggestCommand()
	assert.Equal(t, "suggest HASHID QUERY", cmd.Use)
	require.Error(t, cmd.Args(cmd, []string{"abc"}))
}

func TestNewStatsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewStatsCommand()
	assert.Equal(t, "stats", cmd.Use)
	assert.ElementsMatch(t, []string{"init-session", "click"}, subcommandNames(cmd))

	click := findSubcommand(cmd, "click")
	require.NotNil(t, click)
	assert.Equal(t, "click HASHID ITEM_ID", click.Use)
	assert.NotNil(t, click.Flags().Lookup("session-id"))
	assert.Equal(t, "q", click.Flags().Lookup("query").Shorthand)
}

func TestNewConfigAndLoginCommands(t *testing.T) {
	t.Parallel()

	config := commands.NewConfigCommand()
	assert.Equal(t, "config", config.Use)
	assert.ElementsMatch(t, []string{"show", "set"}, subcommandNames(config))

	login := commands.NewLoginCommand()
	assert.Equal(t, "login", login.Use)
	assert.NotNil(t, login.Flags().Lookup("skip-verify"))

	version := commands.NewVersionCommand("1.0.0", "abc123", "2026-01-01")
	assert.Equal(t, "version", version.Use)
}
