package testutil

import (
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CapturesOutAndFeedsStdin(t *testing.T) {
	cmd := &cobra.Command{
		Use: "echo",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			cmd.Printf("args=%v stdin=%s", args, in)
			cmd.PrintErr("dropped")
			return nil
		},
	}

	out, err := Run(t, cmd, Invocation{Args: []string{"a", "b"}, Stdin: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "args=[a b] stdin=hello", out)
}

func TestExecuteCommand_NoArgsIgnoresProcessArgs(t *testing.T) {
	var got []string
	cmd := &cobra.Command{
		Use: "noop",
		Run: func(cmd *cobra.Command, args []string) { got = args },
	}

	_, err := ExecuteCommand(t, cmd)

	require.NoError(t, err)
	assert.Empty(t, got)
}
