package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestAccessor(t *testing.T, opts ...Option) (*Accessor, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return NewAccessor(store, opts...), store
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fields(title, description string, status models.Status, board models.BoardID) models.TaskFields {
	return models.TaskFields{
		Title:       &title,
		Description: &description,
		Status:      &status,
		Board:       &board,
	}
}

func rawTasks(t *testing.T, store *MemoryStore) string {
	t.Helper()
	v, _, err := store.Get(context.Background(), TasksKey)
	require.NoError(t, err)
	return v
}

// failingStore fails every operation
type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(context.Context, string, string) error         { return f.err }
func (f failingStore) Remove(context.Context, string) error              { return f.err }
func (f failingStore) Size(context.Context) (int, error)                 { return 0, f.err }

// ============================================================================
// SCENARIOS
// ============================================================================

func TestList_EmptyStorage(t *testing.T) {
	t.Parallel()
	a, _ := newTestAccessor(t)

	tasks, err := a.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestCreate_ReturnsRecordWithGeneratedID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, _ := newTestAccessor(t)

	created, err := a.Create(ctx, fields("A", "d", models.StatusTodo, "1"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	tasks, err := a.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.Task{
		ID:          created.ID,
		Title:       "A",
		Description: "d",
		Status:      models.StatusTodo,
		Board:       "1",
	}, tasks[0])
}

func TestUpdate_ChangesOnlyGivenFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, _ := newTestAccessor(t)

	created, err := a.Create(ctx, fields("A", "d", models.StatusTodo, "1"))
	require.NoError(t, err)

	done := models.StatusDone
	require.NoError(t, a.Update(ctx, created.ID, models.TaskFields{Status: &done}))

	tasks, err := a.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	want := created
	want.Status = models.StatusDone
	assert.Equal(t, want, tasks[0])
}

func TestDelete_RemovesRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, _ := newTestAccessor(t)

	created, err := a.Create(ctx, fields("A", "d", models.StatusTodo, "1"))
	require.NoError(t, err)

	require.NoError(t, a.Delete(ctx, created.ID))

	tasks, err := a.List(ctx)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.NotEqual(t, created.ID, task.ID)
	}
}

func TestDelete_NonexistentLeavesCollection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, store := newTestAccessor(t)

	_, err := a.Create(ctx, fields("A", "d", models.StatusTodo, "1"))
	require.NoError(t, err)
	before := rawTasks(t, store)

	require.NoError(t, a.Delete(ctx, "nonexistent-id"))

	assert.Equal(t, before, rawTasks(t, store))
}

// ============================================================================
// PROPERTIES
// ============================================================================

func TestSaveAllList_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, store := newTestAccessor(t)

	for i := range 5 {
		_, err := a.Create(ctx, fields(fmt.Sprintf("task %d", i), "", models.StatusDoing, "b"))
		require.NoError(t, err)
	}
	before, err := a.List(ctx)
	require.NoError(t, err)
	raw := rawTasks(t, store)

	require.NoError(t, a.SaveAll(ctx, before))

	after, err := a.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, raw, rawTasks(t, store))
}

func TestCreate_IDsPairwiseDistinct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, _ := newTestAccessor(t)

	seen := make(map[string]bool)
	for i := range 200 {
		task, err := a.Create(ctx, fields(fmt.Sprintf("t%d", i), "", models.StatusTodo, models.NoBoard))
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestCreate_RegeneratesCollidingID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ids := []string{"same", "same", "other"}
	next := 0
	a, _ := newTestAccessor(t, WithIDGenerator(func() (string, error) {
		id := ids[next]
		next++
		return id, nil
	}))

	first, err := a.Create(ctx, fields("one", "", models.StatusTodo, models.NoBoard))
	require.NoError(t, err)
	second, err := a.Create(ctx, fields("two", "", models.StatusTodo, models.NoBoard))
	require.NoError(t, err)

	assert.Equal(t, "same", first.ID)
	assert.Equal(t, "other", second.ID)
}

func TestDelete_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, store := newTestAccessor(t)

	keep, err := a.Create(ctx, fields("keep", "", models.StatusTodo, models.NoBoard))
	require.NoError(t, err)
	drop, err := a.Create(ctx, fields("drop", "", models.StatusTodo, models.NoBoard))
	require.NoError(t, err)

	require.NoError(t, a.Delete(ctx, drop.ID))
	once := rawTasks(t, store)
	require.NoError(t, a.Delete(ctx, drop.ID))

	assert.Equal(t, once, rawTasks(t, store))
	tasks, err := a.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Task{keep}, tasks)
}

func TestUpdate_Isolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, _ := newTestAccessor(t)

	var created []models.Task
	for i := range 4 {
		task, err := a.Create(ctx, fields(fmt.Sprintf("t%d", i), "desc", models.StatusTodo, "b"))
		require.NoError(t, err)
		created = append(created, task)
	}

	title := "changed"
	doing := models.StatusDoing
	require.NoError(t, a.Update(ctx, created[2].ID, models.TaskFields{Title: &title, Status: &doing}))

	tasks, err := a.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	for i, task := range tasks {
		if i == 2 {
			assert.Equal(t, "changed", task.Title)
			assert.Equal(t, models.StatusDoing, task.Status)
			assert.Equal(t, created[2].ID, task.ID)
			continue
		}
		assert.Equal(t, created[i], task)
	}
}

// ============================================================================
// ERROR HANDLING
// ============================================================================

func TestList_CorruptPayloadIsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, store := newTestAccessor(t)
	require.NoError(t, store.Set(ctx, TasksKey, "{not json"))

	tasks, err := a.List(ctx)

	assert.ErrorIs(t, err, ErrCorruptPayload)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestCreate_OverCorruptPayloadPreservesIt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, store := newTestAccessor(t)
	require.NoError(t, store.Set(ctx, TasksKey, "[{broken"))

	created, err := a.Create(ctx, fields("fresh", "", models.StatusTodo, models.NoBoard))
	require.NoError(t, err)

	tasks, err := a.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Task{created}, tasks)

	backup, ok, err := store.Get(ctx, TasksKey+corruptSuffix)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[{broken", backup)
}

func TestList_NullPayloadIsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, store := newTestAccessor(t)
	require.NoError(t, store.Set(ctx, TasksKey, "null"))

	tasks, err := a.List(ctx)

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestList_LegacyBoardShapes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, store := newTestAccessor(t)
	payload := `[
		{"id":"_a","title":"numeric","description":"","status":"todo","board":1},
		{"id":"_b","title":"object","description":"","status":"doing","board":{"id":"launch","tasks":[]}},
		{"id":"_c","title":"absent","description":"","status":"done"}
	]`
	require.NoError(t, store.Set(ctx, TasksKey, payload))

	tasks, err := a.List(ctx)

	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, models.BoardID("1"), tasks[0].Board)
	assert.Equal(t, models.BoardID("launch"), tasks[1].Board)
	assert.Equal(t, models.NoBoard, tasks[2].Board)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, store := newTestAccessor(t)
	_, err := a.Create(ctx, fields("A", "", models.StatusTodo, models.NoBoard))
	require.NoError(t, err)
	before := rawTasks(t, store)

	title := "x"
	err = a.Update(ctx, "missing", models.TaskFields{Title: &title})

	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Equal(t, before, rawTasks(t, store))
}

func TestCreateUpdate_RejectUnknownStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, _ := newTestAccessor(t)

	_, err := a.Create(ctx, fields("A", "", "archived", models.NoBoard))
	assert.ErrorIs(t, err, models.ErrUnknownStatus)

	_, err = a.Create(ctx, models.TaskFields{})
	assert.ErrorIs(t, err, models.ErrUnknownStatus)

	created, err := a.Create(ctx, fields("A", "", models.StatusTodo, models.NoBoard))
	require.NoError(t, err)
	bad := models.Status("later")
	assert.ErrorIs(t, a.Update(ctx, created.ID, models.TaskFields{Status: &bad}), models.ErrUnknownStatus)
}

func TestStorageUnavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("disk gone")
	a := NewAccessor(failingStore{err: boom}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	tasks, err := a.List(ctx)
	assert.Empty(t, tasks)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, boom)

	_, err = a.Create(ctx, fields("A", "", models.StatusTodo, models.NoBoard))
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	assert.ErrorIs(t, a.SaveAll(ctx, nil), ErrStorageUnavailable)
}

func TestQuotaExceeded_LeavesPriorState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := NewMemoryStore()
	a := NewAccessor(WithQuota(mem, 256), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	first, err := a.Create(ctx, fields("small", "", models.StatusTodo, models.NoBoard))
	require.NoError(t, err)
	before, _, _ := mem.Get(ctx, TasksKey)

	big := make([]byte, 512)
	for i := range big {
		big[i] = 'x'
	}
	_, err = a.Create(ctx, fields(string(big), "", models.StatusTodo, models.NoBoard))
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	after, _, _ := mem.Get(ctx, TasksKey)
	assert.Equal(t, before, after)
	tasks, err := a.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Task{first}, tasks)
}

func TestSaveAll_NilWritesEmptyArray(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, store := newTestAccessor(t)

	require.NoError(t, a.SaveAll(ctx, nil))

	assert.Equal(t, "[]", rawTasks(t, store))
}

func TestGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, _ := newTestAccessor(t)
	created, err := a.Create(ctx, fields("A", "d", models.StatusTodo, models.NoBoard))
	require.NoError(t, err)

	got, err := a.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = a.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
