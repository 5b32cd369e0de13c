// Package cli sets up CLI command tests against an in-memory board
package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
	"github.com/thenoetrevino/lanes/internal/testutil"
)

// SetupCLITest returns an App on a fresh in-memory SQLite store with
// sequential task ids
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return SetupCLITestWithConfig(t, config.Default())
}

// SetupCLITestWithConfig is SetupCLITest with an explicit configuration
func SetupCLITestWithConfig(t *testing.T, cfg *config.Config) *app.App {
	t.Helper()
	appInstance := app.New(testutil.SetupTestStore(t),
		app.WithConfig(cfg),
		app.WithIDGenerator(testutil.SequentialIDs()),
	)
	if _, err := appInstance.Initialize(context.Background(), false); err != nil {
		t.Fatalf("Failed to initialize test board: %v", err)
	}
	return appInstance
}

// CreateTestTask creates a task through the service and returns it
func CreateTestTask(t *testing.T, appInstance *app.App, title string, status models.Status) models.Task {
	t.Helper()
	task, err := appInstance.TaskService.CreateTask(context.Background(), taskservice.CreateTaskRequest{
		Title:  title,
		Status: status,
	})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// GetTestTask fetches a task, failing the test when it is missing
func GetTestTask(t *testing.T, appInstance *app.App, id string) models.Task {
	t.Helper()
	task, err := appInstance.TaskService.GetTask(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to get task %s: %v", id, err)
	}
	return task
}
