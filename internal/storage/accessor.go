package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/lanes/internal/models"
)

const (
	// TasksKey is the key holding the serialized task collection
	TasksKey = "tasks"

	// corruptSuffix names the key a corrupted collection is copied to before
	// a mutation overwrites it
	corruptSuffix = ".corrupt"

	// maxIDAttempts bounds regeneration when a fresh id collides
	maxIDAttempts = 5
)

// TaskStore is the persistence contract the rest of the application uses.
// After any mutation returns, List reflects it.
type TaskStore interface {
	// List returns the full collection. The slice is never nil; on a
	// corrupted or unreadable payload it is empty and the error says why.
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, id string) (models.Task, error)
	SaveAll(ctx context.Context, tasks []models.Task) error
	Create(ctx context.Context, fields models.TaskFields) (models.Task, error)
	Update(ctx context.Context, id string, fields models.TaskFields) error
	Delete(ctx context.Context, id string) error
}

// Accessor implements TaskStore over a key-value Store
type Accessor struct {
	store  Store
	key    string
	newID  IDGenerator
	logger *slog.Logger
}

// Option configures an Accessor
type Option func(*Accessor)

// WithIDGenerator replaces the default UUIDv7 generator
func WithIDGenerator(gen IDGenerator) Option {
	return func(a *Accessor) { a.newID = gen }
}

// WithLogger replaces slog.Default
func WithLogger(logger *slog.Logger) Option {
	return func(a *Accessor) { a.logger = logger }
}

// WithKey stores the collection under a key other than TasksKey
func WithKey(key string) Option {
	return func(a *Accessor) { a.key = key }
}

// NewAccessor creates an Accessor persisting into store
func NewAccessor(store Store, opts ...Option) *Accessor {
	a := &Accessor{
		store:  store,
		key:    TasksKey,
		newID:  NewTaskID,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the key the collection is stored under
func (a *Accessor) Key() string {
	return a.key
}

func (a *Accessor) List(ctx context.Context) ([]models.Task, error) {
	tasks, _, err := a.load(ctx)
	if err != nil {
		a.logger.Warn("treating task collection as empty", "key", a.key, "error", err)
	}
	return tasks, err
}

func (a *Accessor) Get(ctx context.Context, id string) (models.Task, error) {
	tasks, err := a.List(ctx)
	if err != nil && !errors.Is(err, ErrCorruptPayload) {
		return models.Task{}, err
	}
	for _, task := range tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %s: %w", id, ErrTaskNotFound)
}

func (a *Accessor) SaveAll(ctx context.Context, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	if err := a.store.Set(ctx, a.key, string(data)); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (a *Accessor) Create(ctx context.Context, fields models.TaskFields) (models.Task, error) {
	if fields.Status == nil || !fields.Status.Valid() {
		return models.Task{}, models.ErrUnknownStatus
	}

	var created models.Task
	err := a.mutate(ctx, func(tasks []models.Task) ([]models.Task, bool, error) {
		id, err := a.uniqueID(tasks)
		if err != nil {
			return nil, false, err
		}
		created = fields.Apply(models.Task{ID: id})
		return append(tasks, created), true, nil
	})
	if err != nil {
		return models.Task{}, err
	}

	a.logger.Debug("task created", "id", created.ID, "status", created.Status)
	return created, nil
}

func (a *Accessor) Update(ctx context.Context, id string, fields models.TaskFields) error {
	if fields.Status != nil && !fields.Status.Valid() {
		return models.ErrUnknownStatus
	}

	return a.mutate(ctx, func(tasks []models.Task) ([]models.Task, bool, error) {
		for i := range tasks {
			if tasks[i].ID == id {
				tasks[i] = fields.Apply(tasks[i])
				return tasks, true, nil
			}
		}
		a.logger.Warn("update skipped, task not found", "id", id)
		return nil, false, fmt.Errorf("task %s: %w", id, ErrTaskNotFound)
	})
}

func (a *Accessor) Delete(ctx context.Context, id string) error {
	return a.mutate(ctx, func(tasks []models.Task) ([]models.Task, bool, error) {
		kept := tasks[:0]
		for _, task := range tasks {
			if task.ID != id {
				kept = append(kept, task)
			}
		}
		if len(kept) == len(tasks) {
			a.logger.Debug("delete skipped, task not found", "id", id)
			return nil, false, nil
		}
		return kept, true, nil
	})
}

// load decodes the stored collection, returning the raw payload alongside
func (a *Accessor) load(ctx context.Context) ([]models.Task, string, error) {
	raw, ok, err := a.store.Get(ctx, a.key)
	if err != nil {
		return []models.Task{}, "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []models.Task{}, "", nil
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return []models.Task{}, raw, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, raw, nil
}

// mutate runs a read-modify-write cycle. fn reports whether it changed the
// collection; nothing is written when it did not or when it failed.
func (a *Accessor) mutate(ctx context.Context, fn func([]models.Task) ([]models.Task, bool, error)) error {
	tasks, raw, err := a.load(ctx)
	switch {
	case errors.Is(err, ErrCorruptPayload):
		a.logger.Warn("replacing corrupted task collection", "key", a.key, "bytes", len(raw), "error", err)
		if err := a.store.Set(ctx, a.key+corruptSuffix, raw); err != nil {
			if !errors.Is(err, ErrQuotaExceeded) {
				return fmt.Errorf("failed to preserve corrupted collection: %w", err)
			}
			a.logger.Warn("corrupted task collection too large to preserve", "key", a.key+corruptSuffix, "bytes", len(raw), "error", err)
		}
	case err != nil:
		return err
	}

	next, changed, err := fn(tasks)
	if err != nil || !changed {
		return err
	}
	return a.SaveAll(ctx, next)
}

func (a *Accessor) uniqueID(tasks []models.Task) (string, error) {
	taken := make(map[string]struct{}, len(tasks))
	for _, task := range tasks {
		taken[task.ID] = struct{}{}
	}

	for range maxIDAttempts {
		id, err := a.newID()
		if err != nil {
			return "", fmt.Errorf("failed to generate task id: %w", err)
		}
		if _, dup := taken[id]; id != "" && !dup {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique task id after %d attempts", maxIDAttempts)
}
