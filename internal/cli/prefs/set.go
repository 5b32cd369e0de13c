package prefs

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// SidebarCmd returns the prefs sidebar subcommand
func SidebarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sidebar [on|off]",
		Short: "Show or set whether the board list is visible",
		Args:  cli.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, cliInstance, err := open(cmd)
			if err != nil {
				return err
			}
			defer closeCLI(cliInstance)

			if len(args) == 1 {
				visible, err := parseSwitch(args[0], "on", "off")
				if err != nil {
					return formatter.FailWithCode(cli.ExitUsage, "INVALID_VALUE", err, "Use: lanes prefs sidebar on|off")
				}
				if err := cliInstance.App.Prefs.SetSidebarVisible(cmd.Context(), visible); err != nil {
					return formatter.Fail(err)
				}
			}
			return report(formatter, current(cmd, cliInstance))
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// ThemeCmd returns the prefs theme subcommand
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the color theme",
		Args:  cli.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, cliInstance, err := open(cmd)
			if err != nil {
				return err
			}
			defer closeCLI(cliInstance)

			if len(args) == 1 {
				light, err := parseSwitch(args[0], "light", "dark")
				if err != nil {
					return formatter.FailWithCode(cli.ExitUsage, "INVALID_VALUE", err, "Use: lanes prefs theme light|dark")
				}
				if err := cliInstance.App.Prefs.SetLightTheme(cmd.Context(), light); err != nil {
					return formatter.Fail(err)
				}
			}
			return report(formatter, current(cmd, cliInstance))
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// BoardCmd returns the prefs board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [id]",
		Short: "Show or set the board the TUI opens on",
		Long: `Show or set the board the TUI opens on.

Examples:
  lanes prefs board launch
  lanes prefs board --clear
`,
		Args: cli.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, cliInstance, err := open(cmd)
			if err != nil {
				return err
			}
			defer closeCLI(cliInstance)

			clearBoard, _ := cmd.Flags().GetBool("clear")
			if clearBoard && len(args) == 1 {
				return formatter.FailWithCode(cli.ExitUsage, "CONFLICTING_ARGS",
					errors.New("pass a board id or --clear, not both"))
			}

			switch {
			case clearBoard:
				err = cliInstance.App.Prefs.SetActiveBoard(cmd.Context(), models.NoBoard)
			case len(args) == 1:
				err = cliInstance.App.Prefs.SetActiveBoard(cmd.Context(), models.BoardID(args[0]))
			}
			if err != nil {
				return formatter.Fail(err)
			}
			return report(formatter, current(cmd, cliInstance))
		},
	}
	cmd.Flags().Bool("clear", false, "Show all boards")
	cli.AddOutputFlags(cmd)
	return cmd
}
