package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	m "gooze.dev/pkg/mockprep/internal/model"
)

// ErrNoEditor is returned when no editor command is configured.
var ErrNoEditor = errors.New("no editor configured")

// EditorAdapter opens files for the user.
type EditorAdapter interface {
	Open(ctx context.Context, path m.Path) error
}

// LocalEditorAdapter runs an editor command with the file as last argument.
// The command may carry its own arguments, e.g. "code --wait".
type LocalEditorAdapter struct {
	command string
}

// NewLocalEditorAdapter constructs a LocalEditorAdapter. An empty command
// falls back to $VISUAL, then $EDITOR.
func NewLocalEditorAdapter(command string) *LocalEditorAdapter {
	if strings.TrimSpace(command) == "" {
		command = os.Getenv("VISUAL")
	}

	if strings.TrimSpace(command) == "" {
		command = os.Getenv("EDITOR")
	}

	return &LocalEditorAdapter{command: command}
}

// Open runs the editor attached to the current terminal and waits for it.
func (a *LocalEditorAdapter) Open(ctx context.Context, path m.Path) error {
	fields := strings.Fields(a.command)
	if len(fields) == 0 {
		return ErrNoEditor
	}

	args := append(fields[1:], string(path))

	// #nosec G204 - the editor command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", fields[0], err)
	}

	return nil
}
