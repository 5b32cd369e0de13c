// Package cmd wires the lanes command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/prefs"
	"github.com/thenoetrevino/lanes/internal/cli/setup"
	"github.com/thenoetrevino/lanes/internal/cli/task"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/launcher"
	"github.com/thenoetrevino/lanes/internal/logging"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// NewRootCmd builds the lanes command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lanes",
		Short: "Lanes - A terminal-based kanban board",
		Long: `Lanes is a terminal-based kanban board with three columns: Todo, Doing and Done.

Run without a subcommand to open the board. Use the task commands to script it.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cli.NoArgs,
		PersistentPreRunE: injectMemoryBoard,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().Bool("memory", false, "Use a throwaway in-memory board")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(prefs.PrefsCmd())
	rootCmd.AddCommand(setup.InitCmd())

	return rootCmd
}

// injectMemoryBoard swaps the on-disk board for an in-memory one under --memory
func injectMemoryBoard(cmd *cobra.Command, args []string) error {
	memory, _ := cmd.Flags().GetBool("memory")
	if !memory {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	application := app.New(storage.NewMemoryStore(), app.WithConfig(cfg))
	cmd.SetContext(cli.WithApp(cmd.Context(), application))
	return nil
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	closer, err := logging.Init()
	if err != nil {
		logging.Discard()
	} else {
		defer func() { _ = closer.Close() }()
	}

	rootCmd := NewRootCmd()
	err = rootCmd.ExecuteContext(context.Background())
	if err != nil {
		// Commands report their own failures; parse errors still need printing
		var cmdErr *cli.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code == cli.ExitUsage {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}
		slog.Error("command failed", "error", err)
	}
	return cli.ExitCode(err)
}
