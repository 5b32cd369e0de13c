package setup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/storage"
	"github.com/thenoetrevino/lanes/internal/testutil"
	cliutil "github.com/thenoetrevino/lanes/internal/testutil/cli"
)

func TestInit_FreshBoard(t *testing.T) {
	a := app.New(storage.NewMemoryStore())

	out, err := cliutil.ExecuteCLICommand(t, a, InitCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, true, result["initialized"])
	assert.Equal(t, float64(0), result["tasks"])
	assert.True(t, a.Prefs.SidebarVisible(context.Background()))
}

func TestInit_Sample(t *testing.T) {
	a := app.New(storage.NewMemoryStore())

	out, err := cliutil.ExecuteCLICommand(t, a, InitCmd(), []string{"--sample"})
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Board initialized with")
	tasks, err := a.TaskService.ListTasks(context.Background(), models.NoBoard)
	require.NoError(t, err)
	assert.Len(t, tasks, len(app.SampleTasks()))
}

func TestInit_KeepsExistingBoard(t *testing.T) {
	a := cliutil.SetupCLITest(t)
	cliutil.CreateTestTask(t, a, "Precious", models.StatusTodo)

	out, err := cliutil.ExecuteCLICommand(t, a, InitCmd(), []string{"--sample"})
	require.NoError(t, err)

	assert.Contains(t, out, "Board already exists (1 tasks)")
	tasks, err := a.Tasks.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Precious", tasks[0].Title)
}
