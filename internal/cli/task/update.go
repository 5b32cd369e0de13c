package task

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Update the given fields of a task; fields not passed are left as they are.

Examples:
  lanes task update 0190d6c2-... --title="New title"
  lanes task update 0190d6c2-... --status=done --board=""
`,
		Args: cli.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("status", "", "New column: todo, doing or done")
	cmd.Flags().String("board", "", "New board identifier (empty clears it)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	taskID := args[0]

	formatter, cliInstance, err := open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	req := taskservice.UpdateTaskRequest{TaskID: taskID}
	flags := cmd.Flags()
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		req.Title = &title
	}
	if flags.Changed("description") {
		description, _ := flags.GetString("description")
		req.Description = &description
	}
	if flags.Changed("status") {
		statusFlag, _ := flags.GetString("status")
		status, err := models.ParseStatus(statusFlag)
		if err != nil {
			return formatter.Fail(err, statusSuggestion())
		}
		req.Status = &status
	}
	if flags.Changed("board") {
		boardFlag, _ := flags.GetString("board")
		board := models.BoardID(boardFlag)
		req.Board = &board
	}

	if req.Title == nil && req.Description == nil && req.Status == nil && req.Board == nil {
		return formatter.FailWithCode(cli.ExitUsage, "NO_UPDATES",
			errors.New("no fields to update"),
			"Pass at least one of --title, --description, --status or --board")
	}

	if err := cliInstance.App.TaskService.UpdateTask(ctx, req); err != nil {
		return formatter.Fail(err)
	}

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return formatter.Success(task)
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"task":    task,
		})
	}

	formatter.Printf("✓ Task %s updated successfully\n", task.ID)
	return nil
}
