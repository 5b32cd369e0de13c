package preferences

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/storage"
)

func TestSidebarFlag(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	p := New(store)

	assert.False(t, p.SidebarVisible(ctx), "absent flag should hide the sidebar")

	require.NoError(t, p.SetSidebarVisible(ctx, true))
	v, _, _ := store.Get(ctx, SidebarKey)
	assert.Equal(t, "true", v)
	assert.True(t, p.SidebarVisible(ctx))

	require.NoError(t, p.SetSidebarVisible(ctx, false))
	v, _, _ = store.Get(ctx, SidebarKey)
	assert.Equal(t, "false", v)
	assert.False(t, p.SidebarVisible(ctx))

	require.NoError(t, store.Set(ctx, SidebarKey, "yes"))
	assert.False(t, p.SidebarVisible(ctx), "only the literal true shows the sidebar")
}

func TestThemeFlag(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	p := New(store)

	assert.False(t, p.LightTheme(ctx), "dark theme is the default")

	require.NoError(t, p.SetLightTheme(ctx, true))
	v, _, _ := store.Get(ctx, ThemeKey)
	assert.Equal(t, "enabled", v)
	assert.True(t, p.LightTheme(ctx))

	require.NoError(t, p.SetLightTheme(ctx, false))
	v, _, _ = store.Get(ctx, ThemeKey)
	assert.Equal(t, "disabled", v)
	assert.False(t, p.LightTheme(ctx))
}

func TestActiveBoard(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	p := New(store)

	assert.Equal(t, models.NoBoard, p.ActiveBoard(ctx))

	require.NoError(t, p.SetActiveBoard(ctx, "roadmap"))
	assert.Equal(t, models.BoardID("roadmap"), p.ActiveBoard(ctx))

	require.NoError(t, p.SetActiveBoard(ctx, models.NoBoard))
	_, ok, _ := store.Get(ctx, BoardKey)
	assert.False(t, ok, "clearing the board should remove the key")

	require.NoError(t, store.Set(ctx, BoardKey, `{"id":"launch","name":"Launch","tasks":[]}`))
	assert.Equal(t, models.BoardID("launch"), p.ActiveBoard(ctx))
}

func TestActiveBoard_RoundTripsLiteralValues(t *testing.T) {
	ctx := context.Background()
	p := New(storage.NewMemoryStore())

	for _, board := range []models.BoardID{"null", `"q"`, "42", "true", "[1]"} {
		require.NoError(t, p.SetActiveBoard(ctx, board))
		assert.Equal(t, board, p.ActiveBoard(ctx), "board %s", board)
	}
}
