// Package task implements the `lanes task` subcommands
package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// open returns the formatter and CLI for cmd. The caller closes the CLI.
func open(cmd *cobra.Command) (*cli.OutputFormatter, *cli.CLI, error) {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter, nil, formatter.FailWithCode(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	return formatter, cliInstance, nil
}

func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
