// Package cli holds the pieces shared by the lanes subcommands
package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
)

type contextKey string

// appKey carries a preconfigured *app.App through a command context
const appKey contextKey = "lanes-app"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is true when the CLI opened the App itself and must close it
	owned bool
}

// WithApp returns a context whose commands run against application instead of
// opening the on-disk board
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}

// GetCLIFromContext returns a CLI for the command context: the App injected
// with WithApp when present, otherwise the board configured on disk. A board
// without a task collection is seeded first.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	return getCLI(ctx, true)
}

// GetUninitializedCLI is GetCLIFromContext without first-run seeding
func GetUninitializedCLI(ctx context.Context) (*CLI, error) {
	return getCLI(ctx, false)
}

func getCLI(ctx context.Context, seed bool) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	c := &CLI{}
	if application, ok := ctx.Value(appKey).(*app.App); ok && application != nil {
		c.App = application
	} else {
		opened, err := NewCLI(ctx)
		if err != nil {
			return nil, err
		}
		c = opened
	}

	if seed {
		if _, err := c.App.Initialize(ctx, c.App.Config.SeedSampleTasks); err != nil {
			return nil, errors.Join(err, c.Close())
		}
	}
	return c, nil
}

// NewCLI loads the configuration and opens the on-disk board
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
