package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"gooze.dev/pkg/mockprep/internal/adapter"
	"gooze.dev/pkg/mockprep/internal/controller"
	m "gooze.dev/pkg/mockprep/internal/model"
)

const prepareCommandName = "Generate @PrepareForTest"

// PrepareArgs selects the file to update.
type PrepareArgs struct {
	Path   m.Path
	DryRun bool
}

// PrepareResult describes one prepare run.
type PrepareResult struct {
	Path    m.Path
	Classes []string
	Changed bool
	Diff    string
}

// Updater keeps a test file's @PrepareForTest annotation in sync with the
// classes it passes to mockStatic.
type Updater interface {
	// Prepare updates the file on disk, or only shows the diff on a dry run.
	Prepare(ctx context.Context, args PrepareArgs) (PrepareResult, error)
	// Apply runs the update against an open document as one command.
	Apply(ctx context.Context, doc *Document) error
	// Undo restores the file to its text before the last recorded update.
	Undo(ctx context.Context, path m.Path) error
}

type updater struct {
	adapter.SourceFSAdapter
	adapter.JournalStore
	ClassLocator
	ui controller.UI
}

// NewUpdater creates an Updater.
func NewUpdater(fs adapter.SourceFSAdapter, journal adapter.JournalStore, locator ClassLocator, ui controller.UI) Updater {
	return &updater{
		SourceFSAdapter: fs,
		JournalStore:    journal,
		ClassLocator:    locator,
		ui:              ui,
	}
}

func (u *updater) Prepare(ctx context.Context, args PrepareArgs) (PrepareResult, error) {
	result := PrepareResult{Path: args.Path}

	content, err := u.ReadFile(ctx, args.Path)
	if err != nil {
		return result, u.fail(ctx, err)
	}

	doc := NewDocument(args.Path, string(content))
	if err := u.Apply(ctx, doc); err != nil {
		return result, u.fail(ctx, err)
	}

	result.Classes = ExtractMockedClasses(doc.Text()).Sorted()

	if !doc.Modified() {
		u.ui.Notify(ctx, m.Notification{Level: m.LevelDebug, Title: "No changes", Message: string(args.Path)})
		if args.DryRun {
			u.ui.DisplayDiff(ctx, args.Path, "")
		}

		return result, nil
	}

	entry, _ := doc.LastCommand()

	result.Changed = true
	result.Diff, err = unifiedDiff(args.Path, entry.Before, entry.After)
	if err != nil {
		return result, u.fail(ctx, err)
	}

	if args.DryRun {
		u.ui.DisplayDiff(ctx, args.Path, result.Diff)
		return result, nil
	}

	perm := os.FileMode(0o644)
	if info, err := u.FileInfo(ctx, args.Path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := u.WriteFile(ctx, args.Path, []byte(doc.Text()), perm); err != nil {
		return result, u.fail(ctx, err)
	}

	if err := u.Push(ctx, entry); err != nil {
		slog.Warn("failed to record undo entry", "path", args.Path, "error", err)
	}

	slog.Info("updated @PrepareForTest", "path", args.Path, "classes", result.Classes)
	u.ui.Notify(ctx, m.Notification{
		Level:   m.LevelInfo,
		Title:   "Updated @PrepareForTest",
		Message: fmt.Sprintf("%s (%d classes)", args.Path, len(result.Classes)),
	})

	return result, nil
}

func (u *updater) Apply(ctx context.Context, doc *Document) error {
	classes := ExtractMockedClasses(doc.Text())

	class, err := u.Locate(ctx, doc)
	if err != nil {
		return err
	}

	var annotation *m.Annotation
	if class != nil {
		annotation = class.FindAnnotation(prepareForTestName)
	}

	slog.Debug("prepare", "path", doc.Path(), "mocked", classes.Sorted(), "annotated", annotation != nil)

	return doc.WriteCommand(prepareCommandName, func(tx *Tx) error {
		if annotation == nil {
			return insertPrepareForTest(tx, classes)
		}

		return replacePrepareForTest(tx, classes, annotation)
	})
}

func (u *updater) Undo(ctx context.Context, path m.Path) error {
	depth, err := u.Depth(ctx, path)
	if err != nil {
		return u.fail(ctx, err)
	}

	if depth == 0 {
		return u.fail(ctx, fmt.Errorf("%w: nothing to undo for %s", adapter.ErrJournalEmpty, path))
	}

	entry, err := u.Last(ctx, path)
	if err != nil {
		return u.fail(ctx, err)
	}

	hash, err := u.HashFile(ctx, path)
	if err != nil {
		return u.fail(ctx, err)
	}

	if hash != entry.AfterHash {
		return u.fail(ctx, fmt.Errorf("%w: %s", ErrJournalStale, path))
	}

	perm := os.FileMode(0o644)
	if info, err := u.FileInfo(ctx, path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := u.WriteFile(ctx, path, []byte(entry.Before), perm); err != nil {
		return u.fail(ctx, err)
	}

	if _, err := u.Pop(ctx, path); err != nil {
		return u.fail(ctx, err)
	}

	message := string(path)
	if remaining := depth - 1; remaining > 0 {
		message = fmt.Sprintf("%s (%d earlier edits left)", path, remaining)
	}

	slog.Info("undid command", "command", entry.Command, "path", path, "remaining", depth-1)
	u.ui.Notify(ctx, m.Notification{
		Level:   m.LevelInfo,
		Title:   "Undo " + entry.Command,
		Message: message,
	})

	return nil
}

func (u *updater) fail(ctx context.Context, err error) error {
	slog.Error("prepare failed", "error", err)
	u.ui.Notify(ctx, m.Notification{Level: m.LevelError, Title: "Error", Message: err.Error()})

	return err
}

// insertPrepareForTest adds the import and the annotation block to a file
// that has no @PrepareForTest yet. Nothing is inserted when no class is
// mocked.
func insertPrepareForTest(tx *Tx, classes m.MockedClassSet) error {
	if classes.Len() == 0 {
		return nil
	}

	if !strings.Contains(tx.Text(), importPrepareForTest) {
		offset := strings.Index(tx.Text(), importRunWith)
		if offset < 0 {
			return fmt.Errorf("%w: %q", ErrMarkerNotFound, importRunWith)
		}

		var err error
		if offset == 0 {
			err = tx.Insert(0, importPrepareForTest+"\n")
		} else {
			err = tx.Insert(offset-1, "\n"+importPrepareForTest)
		}

		if err != nil {
			return err
		}
	}

	index := strings.Index(tx.Text(), runWithMarker)
	if index < 0 {
		return fmt.Errorf("%w: %q", ErrMarkerNotFound, runWithMarker)
	}

	return tx.Insert(index, RenderPrepareForTest(classes))
}

// replacePrepareForTest rewrites the text between the start of the existing
// annotation and @RunWith(.
func replacePrepareForTest(tx *Tx, classes m.MockedClassSet, annotation *m.Annotation) error {
	content := tx.Text()

	start := strings.Index(content, prepareForTestHeader)
	if start < 0 {
		start = annotation.StartByte
	}

	end := strings.Index(content, runWithMarker)
	if end < 0 {
		return fmt.Errorf("%w: %q", ErrMarkerNotFound, runWithMarker)
	}

	if end < start {
		return fmt.Errorf("%w: %q precedes @PrepareForTest", ErrMarkerNotFound, runWithMarker)
	}

	return tx.Replace(start, end, RenderPrepareForTest(classes))
}

func unifiedDiff(path m.Path, before, after string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(path) + " (original)",
		ToFile:   string(path),
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}

	return diff, nil
}
