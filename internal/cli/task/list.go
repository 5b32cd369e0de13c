package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by column",
		Long: `List the tasks of the active board grouped by column.

Examples:
  lanes task list
  lanes task list --board=docs --status=doing
  lanes task list --all --json
`,
		Args: cli.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("board", "", "Board identifier (defaults to the active board)")
	cmd.Flags().Bool("all", false, "List tasks of every board")
	cmd.Flags().String("status", "", "Only list one column: todo, doing or done")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	boardFlag, _ := cmd.Flags().GetString("board")
	all, _ := cmd.Flags().GetBool("all")
	statusFlag, _ := cmd.Flags().GetString("status")

	formatter, cliInstance, err := open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	columns := models.Columns
	if statusFlag != "" {
		status, err := models.ParseStatus(statusFlag)
		if err != nil {
			return formatter.Fail(err, statusSuggestion())
		}
		columns = []models.Column{columns[status.Index()]}
	}

	board := models.BoardID(boardFlag)
	switch {
	case all:
		board = models.NoBoard
	case !cmd.Flags().Changed("board"):
		board = cliInstance.App.Prefs.ActiveBoard(ctx)
	}

	byStatus, err := cliInstance.App.TaskService.GetTasksByStatus(ctx, board)
	if err != nil {
		return formatter.Fail(err,
			"Creating a task starts a fresh collection; the unreadable data is kept under the tasks.corrupt key")
	}

	tasks := make([]models.Task, 0)
	for _, col := range columns {
		tasks = append(tasks, byStatus[col.Status]...)
	}

	if formatter.Quiet {
		for _, t := range tasks {
			if err := formatter.Success(t); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"board":   board,
			"tasks":   tasks,
		})
	}

	if len(tasks) == 0 {
		formatter.Printf("No tasks found\n")
		return nil
	}

	formatter.Printf("Found %d tasks:\n", len(tasks))
	for _, col := range columns {
		colTasks := byStatus[col.Status]
		formatter.Printf("\n%s (%d)\n", col.Name, len(colTasks))
		for _, t := range colTasks {
			formatter.Printf("  [%s] %s\n", t.ID, t.Title)
		}
	}
	return nil
}
