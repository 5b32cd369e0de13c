package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/testutil"
	cliutil "github.com/thenoetrevino/lanes/internal/testutil/cli"
)

func TestPrefs_ShowDefaults(t *testing.T) {
	app := cliutil.SetupCLITest(t)

	out, err := cliutil.ExecuteCLICommand(t, app, PrefsCmd(), []string{"--json"})
	require.NoError(t, err)

	prefs := testutil.ParseJSON(t, out)["preferences"].(map[string]any)
	assert.Equal(t, true, prefs["sidebar"], "first run shows the sidebar")
	assert.Equal(t, "dark", prefs["theme"])
	assert.Nil(t, prefs["board"])
}

func TestPrefs_Sidebar(t *testing.T) {
	app := cliutil.SetupCLITest(t)
	ctx := context.Background()

	out, err := cliutil.ExecuteCLICommand(t, app, SidebarCmd(), []string{"off"})
	require.NoError(t, err)
	assert.Contains(t, out, "sidebar: off")
	assert.False(t, app.Prefs.SidebarVisible(ctx))

	_, err = cliutil.ExecuteCLICommand(t, app, SidebarCmd(), []string{"ON", "--quiet"})
	require.NoError(t, err)
	assert.True(t, app.Prefs.SidebarVisible(ctx))
}

func TestPrefs_Theme(t *testing.T) {
	app := cliutil.SetupCLITest(t)

	out, err := cliutil.ExecuteCLICommand(t, app, ThemeCmd(), []string{"light", "--quiet"})
	require.NoError(t, err)

	assert.Equal(t, "on light (all)\n", out)
	assert.True(t, app.Prefs.LightTheme(context.Background()))
}

func TestPrefs_Board(t *testing.T) {
	app := cliutil.SetupCLITest(t)
	ctx := context.Background()

	_, err := cliutil.ExecuteCLICommand(t, app, BoardCmd(), []string{"launch"})
	require.NoError(t, err)
	assert.Equal(t, models.BoardID("launch"), app.Prefs.ActiveBoard(ctx))

	out, err := cliutil.ExecuteCLICommand(t, app, BoardCmd(), []string{"--json"})
	require.NoError(t, err)
	assert.Equal(t, "launch", testutil.ParseJSON(t, out)["preferences"].(map[string]any)["board"])

	_, err = cliutil.ExecuteCLICommand(t, app, BoardCmd(), []string{"--clear"})
	require.NoError(t, err)
	assert.Equal(t, models.NoBoard, app.Prefs.ActiveBoard(ctx))
}

func TestPrefs_InvalidValues(t *testing.T) {
	app := cliutil.SetupCLITest(t)

	tests := []struct {
		name string
		run  func() error
	}{
		{name: "sidebar", run: func() error {
			_, err := cliutil.ExecuteCLICommand(t, app, SidebarCmd(), []string{"maybe"})
			return err
		}},
		{name: "theme", run: func() error {
			_, err := cliutil.ExecuteCLICommand(t, app, ThemeCmd(), []string{"purple"})
			return err
		}},
		{name: "board and clear", run: func() error {
			_, err := cliutil.ExecuteCLICommand(t, app, BoardCmd(), []string{"x", "--clear"})
			return err
		}},
		{name: "too many args", run: func() error {
			_, err := cliutil.ExecuteCLICommand(t, app, ThemeCmd(), []string{"light", "dark"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
		})
	}

	assert.False(t, app.Prefs.LightTheme(context.Background()), "failed commands change nothing")
}

func TestParseSwitch(t *testing.T) {
	tests := []struct {
		in   string
		want bool
		ok   bool
	}{
		{"on", true, true},
		{" Off ", false, true},
		{"yes", true, true},
		{"0", false, true},
		{"sometimes", false, false},
	}

	for _, tt := range tests {
		got, err := parseSwitch(tt.in, "on", "off")
		assert.Equal(t, tt.ok, err == nil, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
