package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"gooze.dev/pkg/mockprep/internal/adapter"
	"gooze.dev/pkg/mockprep/internal/controller"
	m "gooze.dev/pkg/mockprep/internal/model"
)

// DefaultDebounce is how long a file must stay quiet before it is prepared.
const DefaultDebounce = 500 * time.Millisecond

// WatchArgs selects the tree to watch.
type WatchArgs struct {
	Root     m.Path
	Debounce time.Duration
}

// Watcher re-runs the @PrepareForTest update whenever a Java file under a
// tree is saved.
type Watcher interface {
	// Watch blocks until ctx is done or the underlying watch ends.
	Watch(ctx context.Context, args WatchArgs) error
}

type watcher struct {
	adapter.WatchAdapter
	Updater
	ui controller.UI
}

// NewWatcher creates a Watcher.
func NewWatcher(watch adapter.WatchAdapter, updater Updater, ui controller.UI) Watcher {
	return &watcher{WatchAdapter: watch, Updater: updater, ui: ui}
}

func (w *watcher) Watch(ctx context.Context, args WatchArgs) error {
	debounce := args.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	paths, errs, err := w.WatchAdapter.Watch(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("watch %s: %w", args.Root, err)
	}

	w.ui.Notify(ctx, m.Notification{Level: m.LevelInfo, Title: "Watching", Message: string(args.Root)})

	timers := make(map[m.Path]*time.Timer)
	ready := make(chan m.Path)
	done := make(chan struct{})

	defer func() {
		for _, timer := range timers {
			timer.Stop()
		}

		close(done)
	}()

	for paths != nil || errs != nil {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-paths:
			if !ok {
				paths = nil
				w.flush(ctx, timers)

				continue
			}

			if timer, found := timers[path]; found {
				timer.Stop()
			}

			timers[path] = time.AfterFunc(debounce, func() {
				select {
				case ready <- path:
				case <-ctx.Done():
				case <-done:
				}
			})
		case path := <-ready:
			if _, pending := timers[path]; !pending {
				continue
			}

			delete(timers, path)
			w.prepare(ctx, path)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			slog.Error("watch error", "error", err)
			w.ui.Notify(ctx, m.Notification{Level: m.LevelError, Title: "Watch", Message: err.Error()})
		}
	}

	return nil
}

// flush prepares every path still waiting out its debounce once no more
// events can arrive.
func (w *watcher) flush(ctx context.Context, timers map[m.Path]*time.Timer) {
	pending := make([]m.Path, 0, len(timers))
	for path, timer := range timers {
		timer.Stop()
		pending = append(pending, path)
		delete(timers, path)
	}

	slices.Sort(pending)

	for _, path := range pending {
		w.prepare(ctx, path)
	}
}

func (w *watcher) prepare(ctx context.Context, path m.Path) {
	// Errors are already reported to the user by Prepare.
	if _, err := w.Prepare(ctx, PrepareArgs{Path: path}); err != nil {
		slog.Debug("prepare on save failed", "path", path, "error", err)
	}
}
