package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/mockprep/internal/model"
)

// SimpleUI implements UI by printing plain lines through the cobra command.
// Output is serialized so handlers may notify from several goroutines.
type SimpleUI struct {
	mu    sync.Mutex
	cmd   *cobra.Command
	debug bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, debug bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, debug: debug}
}

// Notify prints the notification. Errors go to stderr, debug notifications
// are dropped unless debug output is enabled.
func (s *SimpleUI) Notify(ctx context.Context, n m.Notification) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !s.visible(n) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.writer(n), "[%s] %s\n", n.Level, formatNotification(n))
}

// DisplayDiff prints a unified diff, or a note when nothing would change.
func (s *SimpleUI) DisplayDiff(ctx context.Context, path m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("%s: no changes\n", path)
		return
	}

	s.printf("%s", diff)
}

// DisplayInventory renders the entries as a table or YAML document.
func (s *SimpleUI) DisplayInventory(ctx context.Context, entries []m.InventoryEntry, format OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := renderInventory(entries, format)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

func (s *SimpleUI) visible(n m.Notification) bool {
	return n.Level != m.LevelDebug || s.debug
}

func (s *SimpleUI) writer(n m.Notification) io.Writer {
	if n.Level == m.LevelError {
		return s.cmd.ErrOrStderr()
	}

	return s.cmd.OutOrStdout()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatNotification(n m.Notification) string {
	switch {
	case n.Title == "":
		return n.Message
	case n.Message == "":
		return n.Title
	default:
		return n.Title + ": " + n.Message
	}
}

func renderInventory(entries []m.InventoryEntry, format OutputFormat) (string, error) {
	switch format {
	case FormatTable, "":
		return renderInventoryTable(entries), nil
	case FormatYAML:
		out, err := yaml.Marshal(entries)
		if err != nil {
			return "", fmt.Errorf("failed to encode inventory: %w", err)
		}

		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

func renderInventoryTable(entries []m.InventoryEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Class", "Public Methods", "Mocked", "PrepareForTest"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
	})

	methods := 0

	for _, entry := range entries {
		class := entry.Class
		if class == "" {
			class = "-"
		}

		mocked := strings.Join(entry.Mocked, ", ")
		if mocked == "" {
			mocked = "-"
		}

		table.Append([]string{string(entry.Path), class, fmt.Sprintf("%d", entry.PublicMethods), mocked, string(entry.Prepare)})
		methods += entry.PublicMethods
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(entries)),
		"",
		fmt.Sprintf("%d", methods),
		"",
		"",
	})

	table.Render()

	return tableBuffer.String()
}
