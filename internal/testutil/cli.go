package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Invocation describes one run of a lanes command tree
type Invocation struct {
	Args  []string
	Stdin string
	Ctx   context.Context
}

// Run executes cmd with inv and returns what it wrote to its out writer.
// Error output is dropped; commands report failures through the returned error.
func Run(t *testing.T, cmd *cobra.Command, inv Invocation) (string, error) {
	t.Helper()

	ctx := inv.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	args := inv.Args
	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(inv.Stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

// ExecuteCommand runs cmd with args and no stdin
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	return Run(t, cmd, Invocation{Args: args})
}

// ParseJSON decodes a --json response object
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}
