// Package journal provides a bounded, persistent stack of gob-encoded items.
package journal

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrEmpty is returned by Last and Pop when the journal holds no items.
var ErrEmpty = errors.New("journal is empty")

// Journal is a persistent stack of items of type T. Every mutation is written
// through to disk before it returns.
type Journal[T any] interface {
	Len() uint64
	Append(item T) error
	Last() (T, error)
	Pop() (T, error)
}

type fileJournal[T any] struct {
	path  string
	limit int
	mu    sync.Mutex
	items []T
}

// Open loads the journal stored at path, creating parent directories as
// needed. A missing file is an empty journal. When limit is positive the
// journal keeps at most limit items, dropping the oldest.
func Open[T any](path string, limit int) (Journal[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		slog.Error("failed to create journal directory", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	j := &fileJournal[T]{path: path, limit: limit}
	if err := j.load(); err != nil {
		return nil, err
	}

	slog.Debug("opened journal", "path", path, "length", len(j.items))

	return j, nil
}

func (j *fileJournal[T]) load() error {
	// #nosec G304 - path is derived from the configured journal directory
	file, err := os.Open(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		slog.Error("failed to open journal", "path", j.path, "error", err)

		return fmt.Errorf("failed to open journal: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close journal", "path", j.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for {
		var item T
		if err := decoder.Decode(&item); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			slog.Error("failed to decode item", "path", j.path, "index", len(j.items), "error", err)

			return fmt.Errorf("failed to decode item at index %d: %w", len(j.items), err)
		}

		j.items = append(j.items, item)
	}
}

// flush rewrites the whole file through a temp file and a rename.
func (j *fileJournal[T]) flush() error {
	if len(j.items) == 0 {
		if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove journal: %w", err)
		}

		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(j.path), filepath.Base(j.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	encoder := gob.NewEncoder(tmp)
	for i, item := range j.items {
		if err := encoder.Encode(item); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())

			return fmt.Errorf("failed to encode item %d: %w", i, err)
		}
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), j.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace journal: %w", err)
	}

	return nil
}

// Len implements Journal.
func (j *fileJournal[T]) Len() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	return uint64(len(j.items))
}

// Append implements Journal.
func (j *fileJournal[T]) Append(item T) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	previous := j.items
	next := append(append(make([]T, 0, len(previous)+1), previous...), item)

	if j.limit > 0 && len(next) > j.limit {
		next = next[len(next)-j.limit:]
	}

	j.items = next
	if err := j.flush(); err != nil {
		j.items = previous

		slog.Error("failed to append item", "path", j.path, "error", err)

		return err
	}

	slog.Debug("appended item", "path", j.path, "length", len(j.items))

	return nil
}

// Last implements Journal.
func (j *fileJournal[T]) Last() (T, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return j.items[len(j.items)-1], nil
}

// Pop implements Journal.
func (j *fileJournal[T]) Pop() (T, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var zero T

	if len(j.items) == 0 {
		return zero, ErrEmpty
	}

	previous := j.items
	last := previous[len(previous)-1]

	j.items = previous[:len(previous)-1]
	if err := j.flush(); err != nil {
		j.items = previous

		slog.Error("failed to pop item", "path", j.path, "error", err)

		return zero, err
	}

	slog.Debug("popped item", "path", j.path, "length", len(j.items))

	return last, nil
}
