// Package domain implements the mockprep handlers: the @PrepareForTest
// updater, the test scaffold generator, the inventory and the watcher.
package domain

import "errors"

var (
	// ErrNoPackageDeclaration is returned when a source file does not start
	// with a package statement.
	ErrNoPackageDeclaration = errors.New("first line is not a package declaration")

	// ErrSourceRootNotFound is returned when a source path does not contain
	// the configured main source root.
	ErrSourceRootNotFound = errors.New("source root not found in path")

	// ErrMarkerNotFound is returned when the text needed to anchor an edit is
	// missing from the document.
	ErrMarkerNotFound = errors.New("edit anchor not found")

	// ErrOffsetOutOfRange is returned by document edits outside the text.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrJournalStale is returned by undo when the file changed after the
	// recorded edit.
	ErrJournalStale = errors.New("file changed since the recorded edit")
)
