package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	m "gooze.dev/pkg/mockprep/internal/model"
)

// WatchAdapter reports Java files that were written under a directory tree.
type WatchAdapter interface {
	// Watch starts watching root recursively. Both channels are closed when
	// ctx is done or the underlying watcher stops.
	Watch(ctx context.Context, root m.Path) (<-chan m.Path, <-chan error, error)
}

// LocalWatchAdapter is the fsnotify-backed WatchAdapter.
type LocalWatchAdapter struct{}

// NewLocalWatchAdapter constructs a LocalWatchAdapter.
func NewLocalWatchAdapter() *LocalWatchAdapter {
	return &LocalWatchAdapter{}
}

// Watch implements WatchAdapter.
func (a *LocalWatchAdapter) Watch(ctx context.Context, root m.Path) (<-chan m.Path, <-chan error, error) {
	info, err := os.Stat(string(root))
	if err != nil {
		return nil, nil, fmt.Errorf("directory does not exist: %s", root)
	}

	if !info.IsDir() {
		return nil, nil, fmt.Errorf("not a directory: %s", root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := addTree(watcher, string(root)); err != nil {
		_ = watcher.Close()
		return nil, nil, err
	}

	paths := make(chan m.Path)
	errs := make(chan error)

	go func() {
		defer close(errs)
		defer close(paths)
		defer func() { _ = watcher.Close() }()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				if event.Has(fsnotify.Create) {
					if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
						if err := addTree(watcher, event.Name); err != nil {
							slog.Warn("failed to watch new directory", "path", event.Name, "error", err)
						}

						continue
					}
				}

				if !strings.HasSuffix(event.Name, ".java") {
					continue
				}

				select {
				case paths <- m.Path(event.Name):
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				select {
				case errs <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return paths, errs, nil
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && IsIgnoredDir(d.Name()) {
			return filepath.SkipDir
		}

		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}

		return nil
	})
}
