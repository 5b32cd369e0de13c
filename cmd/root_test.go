package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/testutil"
)

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, sub := range NewRootCmd().Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"task", "prefs", "init"})
}

func TestRootCmd_MemoryBoard(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	out, err := testutil.ExecuteCommand(t, root, "--memory", "task", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found")
}

func TestRootCmd_UnknownFlagIsUsageError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	_, err := testutil.ExecuteCommand(t, root, "--memory", "task", "list", "--bogus")

	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
