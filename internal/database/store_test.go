package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStore_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	store := NewStore(setupTestDB(t))

	_, ok, err := store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should report ok=false")

	require.NoError(t, store.Set(ctx, "tasks", "[]"))
	require.NoError(t, store.Set(ctx, "tasks", `[{"id":"a"}]`))

	v, ok, err := store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v, "second Set should replace the first")

	require.NoError(t, store.Remove(ctx, "tasks"))
	_, ok, err = store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Remove(ctx, "tasks"), "removing an absent key is not an error")
}

func TestStore_EmptyValueIsPresent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(setupTestDB(t))

	require.NoError(t, store.Set(ctx, "showSideBar", ""))

	v, ok, err := store.Get(ctx, "showSideBar")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestStore_Size(t *testing.T) {
	ctx := context.Background()
	store := NewStore(setupTestDB(t))

	n, err := store.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, store.Set(ctx, "tasks", "[]"))
	require.NoError(t, store.Set(ctx, "board", "café"))

	n, err = store.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, len("tasks")+len("[]")+len("board")+len("café"), n, "sizes are counted in bytes")
}

// TestStore_QuotaCountsEarlierRuns checks rows written before the quota wrapper
// existed still count against it
func TestStore_QuotaCountsEarlierRuns(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, NewStore(db).Set(ctx, "tasks.corrupt", strings.Repeat("x", 900)))

	accessor := storage.NewAccessor(storage.WithQuota(NewStore(db), 1000))
	title, status := strings.Repeat("t", 300), models.StatusTodo
	_, err := accessor.Create(ctx, models.TaskFields{Title: &title, Status: &status})

	assert.ErrorIs(t, err, storage.ErrQuotaExceeded)
	_, ok, err := NewStore(db).Get(ctx, "tasks")
	require.NoError(t, err)
	assert.False(t, ok, "rejected write must leave nothing behind")
}

func TestStore_ClosedDatabaseIsUnavailable(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	accessor := storage.NewAccessor(NewStore(db))
	require.NoError(t, db.Close())

	tasks, err := accessor.List(ctx)

	assert.ErrorIs(t, err, storage.ErrStorageUnavailable)
	assert.Empty(t, tasks)
}

// TestPersistence_AcrossReopen checks tasks survive closing and reopening the file
func TestPersistence_AcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "board.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)

	title, desc, status, board := "Survivor", "still here", models.StatusDoing, models.BoardID("7")
	created, err := storage.NewAccessor(NewStore(db)).Create(ctx, models.TaskFields{
		Title:       &title,
		Description: &desc,
		Status:      &status,
		Board:       &board,
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	tasks, err := storage.NewAccessor(NewStore(db)).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Task{created}, tasks)
}

func TestInitDB_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	require.NoError(t, runMigrations(ctx, db))

	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'local_storage'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
