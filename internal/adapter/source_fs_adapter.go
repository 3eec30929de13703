// Package adapter contains the infrastructure adapters used by mockprep:
// filesystem access, Java parsing, file watching, the editor launcher and
// the undo journal store.
package adapter

import (
	"bufio"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "gooze.dev/pkg/mockprep/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on. It hides direct `os` access so handlers can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// ReadFirstLine returns the first line of the file without its line
	// terminator. An empty file yields io.EOF.
	ReadFirstLine(ctx context.Context, path m.Path) (string, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory tree.
	MkdirAll(ctx context.Context, path m.Path) error

	// WriteFile writes content to a file with the given permissions,
	// truncating any existing file.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// AbsPath returns an absolute representation of path.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the handlers.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// ReadFirstLine reads only the first line of the file.
func (a *LocalSourceFSAdapter) ReadFirstLine(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// #nosec G304 - path is the file the user asked to process
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return scanner.Text(), nil
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// #nosec G304 - path is the file the user asked to process
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// MkdirAll creates path and any missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(path), 0o750)
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// AbsPath returns the absolute form of path.
func (a *LocalSourceFSAdapter) AbsPath(ctx context.Context, path m.Path) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// HashBytes returns the SHA-256 hash of content in the same format as HashFile.
func HashBytes(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// IsIgnoredDir reports whether a directory holds no hand-written sources:
// hidden directories and build output.
func IsIgnoredDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "build" || name == "node_modules"
}
