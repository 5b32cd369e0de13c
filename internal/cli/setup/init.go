// Package setup implements `lanes init`
package setup

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the board on first run",
		Long: `Create an empty task collection and show the sidebar.

An existing board is never touched. With --sample the new board starts with
a few example tasks.

Examples:
  lanes init
  lanes init --sample --json
`,
		Args: cli.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("sample", false, "Seed the new board with example tasks")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sample, _ := cmd.Flags().GetBool("sample")
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetUninitializedCLI(ctx)
	if err != nil {
		return formatter.FailWithCode(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	initialized, err := cliInstance.App.Initialize(ctx, sample)
	if err != nil {
		return formatter.Fail(err)
	}

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, models.NoBoard)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success":     true,
			"initialized": initialized,
			"tasks":       len(tasks),
		})
	}
	if formatter.Quiet {
		return nil
	}

	if initialized {
		formatter.Printf("✓ Board initialized with %d tasks\n", len(tasks))
	} else {
		formatter.Printf("Board already exists (%d tasks), nothing changed\n", len(tasks))
	}
	return nil
}
