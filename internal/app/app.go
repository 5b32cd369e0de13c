// Package app wires the storage, service and preference layers together
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/preferences"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Store is the raw key-value store shared by tasks and preferences
	Store storage.Store

	// Tasks is the task collection accessor
	Tasks storage.TaskStore

	TaskService taskservice.Service
	Prefs       *preferences.Preferences
	Config      *config.Config

	closer io.Closer
}

// New creates an App over an already opened key-value store.
func New(store storage.Store, opts ...Option) *App {
	cfg := &appConfig{
		config: config.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	quota := storage.DefaultQuotaBytes
	if cfg.config.QuotaBytes != 0 {
		quota = int(cfg.config.QuotaBytes)
	}
	store = storage.WithQuota(store, quota)

	accessorOpts := []storage.Option{storage.WithLogger(cfg.logger)}
	if cfg.newID != nil {
		accessorOpts = append(accessorOpts, storage.WithIDGenerator(cfg.newID))
	}
	tasks := storage.NewAccessor(store, accessorOpts...)

	return &App{
		Store: store,
		Tasks: tasks,
		TaskService: taskservice.NewService(tasks, taskservice.Options{
			RequireDescription: cfg.config.RequireDescription,
		}),
		Prefs:  preferences.New(store),
		Config: cfg.config,
		closer: cfg.closer,
	}
}

// Open opens the SQLite store named by cfg.DataPath (default ~/.lanes/board.db)
// and builds an App on it. The App owns the database and closes it in Close.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	path := cfg.DataPath
	if path == "" {
		var err error
		if path, err = database.DefaultPath(); err != nil {
			return nil, err
		}
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Debug("opened board database", "path", path)

	store := database.NewStore(db)
	opts = append([]Option{WithConfig(cfg), WithCloser(store)}, opts...)
	return New(store, opts...), nil
}

// Initialize seeds a first run: when no task collection exists yet it writes
// an empty one (or the sample tasks) and shows the sidebar. Existing data is
// never touched. It reports whether seeding happened.
func (a *App) Initialize(ctx context.Context, sample bool) (bool, error) {
	_, ok, err := a.Store.Get(ctx, storage.TasksKey)
	if err != nil {
		return false, fmt.Errorf("%w: %w", storage.ErrStorageUnavailable, err)
	}
	if ok {
		slog.Debug("task collection already exists, skipping seed")
		return false, nil
	}

	if err := a.Tasks.SaveAll(ctx, nil); err != nil {
		return false, err
	}
	if sample {
		for _, req := range SampleTasks() {
			if _, err := a.TaskService.CreateTask(ctx, req); err != nil {
				return false, fmt.Errorf("failed to seed sample task %q: %w", req.Title, err)
			}
		}
	}
	if err := a.Prefs.SetSidebarVisible(ctx, true); err != nil {
		return false, err
	}

	slog.Info("initialized task board", "sample", sample)
	return true, nil
}

// Close releases the underlying store, if the App owns one.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	if err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}
