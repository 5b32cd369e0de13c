package task

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task in one of the board columns.

Examples:
  # Simple task (human-readable output)
  lanes task create --title="Fix bug"

  # JSON output for scripts
  lanes task create --title="Fix bug" --status=doing --json

  # Quiet mode for shell capture
  TASK_ID=$(lanes task create --title="Fix bug" --quiet)

  # Description from stdin, on a specific board
  echo "details" | lanes task create --title="Write docs" --description=- --board=docs
`,
		Args: cli.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title (required)")

	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("status", string(models.StatusTodo), "Column: todo, doing or done")
	cmd.Flags().String("board", "", "Board identifier (defaults to the active board)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	statusFlag, _ := cmd.Flags().GetString("status")
	boardFlag, _ := cmd.Flags().GetString("board")

	formatter, cliInstance, err := open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	if !cmd.Flags().Changed("title") {
		return formatter.FailWithCode(cli.ExitUsage, "MISSING_TITLE",
			errors.New("required flag \"title\" not set"),
			"Usage: lanes task create --title=<title>")
	}

	status, err := models.ParseStatus(statusFlag)
	if err != nil {
		return formatter.Fail(err, statusSuggestion())
	}

	if description == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return formatter.FailWithCode(cli.ExitDataErr, "STDIN_READ_ERROR", err)
		}
		description = string(data)
	}

	board := models.BoardID(boardFlag)
	if !cmd.Flags().Changed("board") {
		board = cliInstance.App.Prefs.ActiveBoard(ctx)
	}

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		Status:      status,
		Board:       board,
	})
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

	formatter.Printf("✓ Task '%s' created successfully (ID: %s)\n", task.Title, task.ID)
	formatter.Printf("  Status: %s\n", task.Status.Name())
	if task.Board.IsSet() {
		formatter.Printf("  Board: %s\n", task.Board)
	}
	return nil
}

func statusSuggestion() string {
	return fmt.Sprintf("Valid statuses are: %s", joinStatuses())
}
