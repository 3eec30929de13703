// Package controller provides output adapters for notifications, diffs and
// inventory listings.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gooze.dev/pkg/mockprep/internal/model"
)

// OutputFormat selects how inventories are rendered.
type OutputFormat string

// Available OutputFormat values.
const (
	FormatTable OutputFormat = "table"
	FormatYAML  OutputFormat = "yaml"
)

// Option is a functional option for NewUI.
type Option func(*Config)

// Config holds configuration for the UI.
type Config struct {
	debug bool
}

// WithDebug makes debug notifications visible.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.debug = debug
	}
}

// UI defines how handlers talk to the user.
// Implementations can use different output methods (plain text, styled boxes).
type UI interface {
	Notify(ctx context.Context, notification m.Notification)
	DisplayDiff(ctx context.Context, path m.Path, diff string)
	DisplayInventory(ctx context.Context, entries []m.InventoryEntry, format OutputFormat) error
}

// NewUI returns a StyledUI on a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool, options ...Option) UI {
	cfg := Config{}
	for _, option := range options {
		option(&cfg)
	}

	simple := NewSimpleUI(cmd, cfg.debug)
	if tty {
		return &StyledUI{SimpleUI: simple}
	}

	return simple
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
