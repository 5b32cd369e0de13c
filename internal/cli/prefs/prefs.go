// Package prefs implements the `lanes prefs` subcommands
package prefs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// PrefsCmd returns the prefs parent command
func PrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change board preferences",
		Long: `Show or change the preferences the board remembers between runs.

Run without a subcommand to print all of them.`,
		Args: cli.NoArgs,
		RunE: runShow,
	}
	cli.AddOutputFlags(cmd)

	cmd.AddCommand(SidebarCmd())
	cmd.AddCommand(ThemeCmd())
	cmd.AddCommand(BoardCmd())

	return cmd
}

// snapshot is the printed form of all preferences
type snapshot struct {
	Sidebar bool           `json:"sidebar"`
	Theme   string         `json:"theme"`
	Board   models.BoardID `json:"board"`
}

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

func current(cmd *cobra.Command, cliInstance *cli.CLI) snapshot {
	ctx := cmd.Context()
	prefs := cliInstance.App.Prefs
	theme := "dark"
	if prefs.LightTheme(ctx) {
		theme = "light"
	}
	return snapshot{
		Sidebar: prefs.SidebarVisible(ctx),
		Theme:   theme,
		Board:   prefs.ActiveBoard(ctx),
	}
}

func report(formatter *cli.OutputFormatter, s snapshot) error {
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success":     true,
			"preferences": s,
		})
	}

	sidebar := "off"
	if s.Sidebar {
		sidebar = "on"
	}
	board := "(all)"
	if s.Board.IsSet() {
		board = string(s.Board)
	}

	if formatter.Quiet {
		fmt.Fprintf(formatter.Out, "%s %s %s\n", sidebar, s.Theme, board)
		return nil
	}
	formatter.Printf("sidebar: %s\ntheme:   %s\nboard:   %s\n", sidebar, s.Theme, board)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter, cliInstance, err := open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	return report(formatter, current(cmd, cliInstance))
}

// parseSwitch accepts the spellings of an on/off value
func parseSwitch(value string, on, off string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case on, "true", "yes", "1":
		return true, nil
	case off, "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid value %q: expected %s or %s", value, on, off)
}
