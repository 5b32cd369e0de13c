package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/components"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display a task with its markdown description rendered.",
		Args:  cli.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter, cliInstance, err := open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	task, err := cliInstance.App.TaskService.GetTask(ctx, args[0])
	if err != nil {
		return formatter.Fail(err, "Use 'lanes task list --all' to see task IDs")
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

	light := cliInstance.App.Prefs.LightTheme(ctx)
	styles.Init(cliInstance.App.Config.Scheme(light))
	_, err = fmt.Fprintln(formatter.Out, renderTask(task, light))
	return err
}

func renderTask(task models.Task, light bool) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(task.Title))
	content.WriteString("  ")
	content.WriteString(styles.RenderStatus(task.Status))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(task.ID))
	content.WriteString("\n")

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: task.Description,
		Width:       styles.CardWidth - 6,
		Light:       light,
	}))
	content.WriteString("\n\n")

	board := "none"
	if task.Board.IsSet() {
		board = string(task.Board)
	}
	content.WriteString(fmt.Sprintf("%s %s",
		styles.LabelStyle.Render("Board:"),
		styles.ValueStyle.Render(board),
	))

	return styles.RenderCard(content.String())
}
