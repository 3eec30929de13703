package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/mockprep/internal/adapter"
	m "gooze.dev/pkg/mockprep/internal/model"
)

const recursiveSuffix = "/..."

// ListArgs selects the sources to inventory. A path ending in "/..." is
// walked recursively; an empty list means "./...".
type ListArgs struct {
	Paths    []m.Path
	Parallel int
}

// Inventory reports, per Java file, its first class and the state of its
// @PrepareForTest annotation.
type Inventory interface {
	List(ctx context.Context, args ListArgs) ([]m.InventoryEntry, error)
}

type inventory struct {
	adapter.SourceFSAdapter
	ClassLocator
}

// NewInventory creates an Inventory.
func NewInventory(fs adapter.SourceFSAdapter, locator ClassLocator) Inventory {
	return &inventory{SourceFSAdapter: fs, ClassLocator: locator}
}

func (i *inventory) List(ctx context.Context, args ListArgs) ([]m.InventoryEntry, error) {
	files, err := i.collect(ctx, args.Paths)
	if err != nil {
		return nil, err
	}

	entries := make([]m.InventoryEntry, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for index, file := range files {
		group.Go(func() error {
			entry, err := i.describe(groupCtx, file)
			if err != nil {
				return err
			}

			entries[index] = entry

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("inventory complete", "files", len(entries))

	return entries, nil
}

// collect expands the path patterns into a sorted, de-duplicated list of
// Java files.
func (i *inventory) collect(ctx context.Context, paths []m.Path) ([]m.Path, error) {
	if len(paths) == 0 {
		paths = []m.Path{"." + recursiveSuffix}
	}

	seen := make(map[m.Path]struct{})

	for _, p := range paths {
		root, recursive := splitPattern(p)

		err := i.Walk(ctx, root, recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path != string(root) && adapter.IsIgnoredDir(info.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if strings.HasSuffix(path, ".java") {
				seen[m.Path(path)] = struct{}{}
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	files := make([]m.Path, 0, len(seen))
	for file := range seen {
		files = append(files, file)
	}

	sort.Slice(files, func(a, b int) bool { return files[a] < files[b] })

	return files, nil
}

func splitPattern(p m.Path) (m.Path, bool) {
	s := filepath.ToSlash(string(p))
	if s == "..." {
		return ".", true
	}

	if strings.HasSuffix(s, recursiveSuffix) {
		root := strings.TrimSuffix(s, recursiveSuffix)
		if root == "" {
			root = "/"
		}

		return m.Path(filepath.FromSlash(root)), true
	}

	return p, false
}

func (i *inventory) describe(ctx context.Context, file m.Path) (m.InventoryEntry, error) {
	entry := m.InventoryEntry{Path: file, Prepare: m.PrepareNone}

	content, err := i.ReadFile(ctx, file)
	if err != nil {
		return entry, err
	}

	doc := NewDocument(file, string(content))

	class, err := i.Locate(ctx, doc)
	if err != nil {
		return entry, err
	}

	classes := ExtractMockedClasses(doc.Text())
	entry.Mocked = classes.Sorted()

	var annotation *m.Annotation
	if class != nil {
		entry.Class = class.Name
		entry.Kind = class.Kind
		entry.PublicMethods = len(class.PublicMethodNames())
		annotation = class.FindAnnotation(prepareForTestName)
	}

	entry.Prepare = prepareState(classes, annotation)

	return entry, nil
}

// prepareState compares the mocked classes against the annotation values.
func prepareState(classes m.MockedClassSet, annotation *m.Annotation) m.PrepareState {
	switch {
	case annotation == nil && classes.Len() == 0:
		return m.PrepareNone
	case annotation == nil:
		return m.PrepareMissing
	case classes.Equal(annotation.Values):
		return m.PrepareOK
	default:
		return m.PrepareStale
	}
}
