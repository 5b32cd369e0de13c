package task

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <next|prev|status>",
		Short: "Move a task to another column",
		Long: `Move a task to another column by direction or status.

Examples:
  # Move to next column
  lanes task move 0190d6c2-... next

  # Move to previous column
  lanes task move 0190d6c2-... prev

  # Move to a specific column (case-insensitive)
  lanes task move 0190d6c2-... Done
`,
		Args: cli.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	taskID, target := args[0], args[1]

	formatter, cliInstance, err := open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	svc := cliInstance.App.TaskService

	before, err := svc.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(err)
	}

	switch strings.ToLower(target) {
	case "next":
		err = svc.MoveTaskToNextColumn(ctx, taskID)
	case "prev":
		err = svc.MoveTaskToPrevColumn(ctx, taskID)
	default:
		status, parseErr := models.ParseStatus(target)
		if parseErr != nil {
			return formatter.Fail(parseErr, "Use next, prev or one of: "+joinStatuses())
		}
		err = svc.MoveTaskToStatus(ctx, taskID, status)
	}
	if err != nil {
		return formatter.Fail(err)
	}

	after, err := svc.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return formatter.Success(after)
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"task":    after,
			"from":    before.Status,
			"to":      after.Status,
		})
	}

	formatter.Printf("✓ Task '%s' moved from %s to %s\n", after.Title, before.Status.Name(), after.Status.Name())
	return nil
}

func joinStatuses() string {
	return strings.Join(models.StatusKeys(), ", ")
}
