package app

import (
	"io"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config *config.Config
	logger *slog.Logger
	newID  storage.IDGenerator
	closer io.Closer
}

// WithConfig sets the loaded configuration
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		if cfg != nil {
			c.config = cfg
		}
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithIDGenerator replaces the task id generator
func WithIDGenerator(gen storage.IDGenerator) Option {
	return func(c *appConfig) {
		c.newID = gen
	}
}

// WithCloser hands ownership of a resource to the App's Close
func WithCloser(closer io.Closer) Option {
	return func(c *appConfig) {
		c.closer = closer
	}
}
