package app

import (
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
)

// SampleTasks returns the starter board written by `lanes init --sample`
func SampleTasks() []taskservice.CreateTaskRequest {
	return []taskservice.CreateTaskRequest{
		{
			Title:       "Launch Epic Career",
			Description: "Create a killer resume and **apply** to at least three jobs.",
			Status:      models.StatusTodo,
			Board:       "launch",
		},
		{
			Title:       "Conquer React",
			Description: "Finish the hooks chapter and build a small project with it.",
			Status:      models.StatusDoing,
			Board:       "launch",
		},
		{
			Title:       "Master JavaScript",
			Description: "Closures, promises and the event loop.",
			Status:      models.StatusDone,
			Board:       "launch",
		},
		{
			Title:       "Plan the roadmap",
			Description: "- collect ideas\n- pick three\n- schedule them",
			Status:      models.StatusTodo,
			Board:       "roadmap",
		},
	}
}
