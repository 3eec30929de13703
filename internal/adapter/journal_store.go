package adapter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	m "gooze.dev/pkg/mockprep/internal/model"
	"gooze.dev/pkg/mockprep/pkg/journal"
)

// ErrJournalEmpty is returned when a file has no recorded edits to undo.
var ErrJournalEmpty = errors.New("no recorded edits")

// JournalStore persists undo entries per document.
type JournalStore interface {
	Push(ctx context.Context, entry m.UndoEntry) error
	Last(ctx context.Context, path m.Path) (m.UndoEntry, error)
	Pop(ctx context.Context, path m.Path) (m.UndoEntry, error)
	// Depth returns how many entries are recorded for path.
	Depth(ctx context.Context, path m.Path) (int, error)
}

// LocalJournalStore keeps one gob journal per document under dir, named by
// the hash of the document's absolute path.
type LocalJournalStore struct {
	dir        string
	maxEntries int
}

// NewLocalJournalStore constructs a LocalJournalStore.
func NewLocalJournalStore(dir string, maxEntries int) *LocalJournalStore {
	return &LocalJournalStore{dir: dir, maxEntries: maxEntries}
}

func (s *LocalJournalStore) open(path m.Path) (journal.Journal[m.UndoEntry], error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return nil, err
	}

	name := HashBytes([]byte(abs)) + ".gob"

	return journal.Open[m.UndoEntry](filepath.Join(s.dir, name), s.maxEntries)
}

// Push records entry for entry.Path.
func (s *LocalJournalStore) Push(ctx context.Context, entry m.UndoEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j, err := s.open(entry.Path)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	return j.Append(entry)
}

// Last returns the newest entry for path without removing it.
func (s *LocalJournalStore) Last(ctx context.Context, path m.Path) (m.UndoEntry, error) {
	if err := ctx.Err(); err != nil {
		return m.UndoEntry{}, err
	}

	j, err := s.open(path)
	if err != nil {
		return m.UndoEntry{}, fmt.Errorf("open journal: %w", err)
	}

	entry, err := j.Last()
	if errors.Is(err, journal.ErrEmpty) {
		return m.UndoEntry{}, ErrJournalEmpty
	}

	return entry, err
}

// Pop removes and returns the newest entry for path.
func (s *LocalJournalStore) Pop(ctx context.Context, path m.Path) (m.UndoEntry, error) {
	if err := ctx.Err(); err != nil {
		return m.UndoEntry{}, err
	}

	j, err := s.open(path)
	if err != nil {
		return m.UndoEntry{}, fmt.Errorf("open journal: %w", err)
	}

	entry, err := j.Pop()
	if errors.Is(err, journal.ErrEmpty) {
		return m.UndoEntry{}, ErrJournalEmpty
	}

	return entry, err
}

// Depth returns the number of recorded entries for path.
func (s *LocalJournalStore) Depth(ctx context.Context, path m.Path) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	j, err := s.open(path)
	if err != nil {
		return 0, fmt.Errorf("open journal: %w", err)
	}

	return int(j.Len()), nil
}
