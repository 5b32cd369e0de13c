// Package preferences stores the board's UI flags next to the task collection
package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// Storage keys and their literal values
const (
	SidebarKey = "showSideBar"
	ThemeKey   = "light-theme"
	BoardKey   = "activeBoard"

	sidebarShown  = "true"
	sidebarHidden = "false"
	themeLight    = "enabled"
	themeDark     = "disabled"
)

// Preferences reads and writes UI flags in a key-value store
type Preferences struct {
	store storage.Store
}

// New creates Preferences backed by store
func New(store storage.Store) *Preferences {
	return &Preferences{store: store}
}

// SidebarVisible reports whether the sidebar is shown. Only the literal
// "true" counts as shown; an absent or unreadable flag hides it.
func (p *Preferences) SidebarVisible(ctx context.Context) bool {
	v, ok, err := p.store.Get(ctx, SidebarKey)
	if err != nil {
		slog.Warn("failed to read sidebar flag", "error", err)
		return false
	}
	return ok && v == sidebarShown
}

// SetSidebarVisible persists the sidebar flag
func (p *Preferences) SetSidebarVisible(ctx context.Context, visible bool) error {
	v := sidebarHidden
	if visible {
		v = sidebarShown
	}
	if err := p.store.Set(ctx, SidebarKey, v); err != nil {
		return fmt.Errorf("failed to save sidebar flag: %w", err)
	}
	return nil
}

// LightTheme reports whether the light theme is enabled; dark is the default
func (p *Preferences) LightTheme(ctx context.Context) bool {
	v, ok, err := p.store.Get(ctx, ThemeKey)
	if err != nil {
		slog.Warn("failed to read theme flag", "error", err)
		return false
	}
	return ok && v == themeLight
}

// SetLightTheme persists the theme flag
func (p *Preferences) SetLightTheme(ctx context.Context, light bool) error {
	v := themeDark
	if light {
		v = themeLight
	}
	if err := p.store.Set(ctx, ThemeKey, v); err != nil {
		return fmt.Errorf("failed to save theme flag: %w", err)
	}
	return nil
}

// ActiveBoard returns the board the UI is scoped to, or NoBoard.
func (p *Preferences) ActiveBoard(ctx context.Context) models.BoardID {
	v, ok, err := p.store.Get(ctx, BoardKey)
	if err != nil {
		slog.Warn("failed to read active board", "error", err)
		return models.NoBoard
	}
	if !ok {
		return models.NoBoard
	}

	// older data stored the whole board object as JSON
	if strings.HasPrefix(strings.TrimSpace(v), "{") {
		var board models.BoardID
		if err := json.Unmarshal([]byte(v), &board); err == nil {
			return board
		}
	}
	return models.BoardID(v)
}

// SetActiveBoard persists the active board; NoBoard clears it
func (p *Preferences) SetActiveBoard(ctx context.Context, board models.BoardID) error {
	var err error
	if board.IsSet() {
		err = p.store.Set(ctx, BoardKey, string(board))
	} else {
		err = p.store.Remove(ctx, BoardKey)
	}
	if err != nil {
		return fmt.Errorf("failed to save active board: %w", err)
	}
	return nil
}
