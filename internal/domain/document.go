package domain

import (
	"fmt"
	"time"

	"gooze.dev/pkg/mockprep/internal/adapter"
	m "gooze.dev/pkg/mockprep/internal/model"
)

// Document is an in-memory text buffer for one source file. Edits happen
// only inside WriteCommand.
type Document struct {
	path     m.Path
	text     string
	modified bool
	history  []m.UndoEntry
}

// NewDocument wraps text read from path.
func NewDocument(path m.Path, text string) *Document {
	return &Document{path: path, text: text}
}

// Path returns the file the document was loaded from.
func (d *Document) Path() m.Path {
	return d.path
}

// Text returns the current contents.
func (d *Document) Text() string {
	return d.text
}

// Modified reports whether any command changed the text.
func (d *Document) Modified() bool {
	return d.modified
}

// Tx is the edit scope handed to a WriteCommand callback. Offsets are byte
// offsets into the transaction's current text.
type Tx struct {
	text string
}

// Text returns the text as edited so far in this transaction.
func (tx *Tx) Text() string {
	return tx.text
}

// Insert places s at offset.
func (tx *Tx) Insert(offset int, s string) error {
	if offset < 0 || offset > len(tx.text) {
		return fmt.Errorf("%w: insert at %d (length %d)", ErrOffsetOutOfRange, offset, len(tx.text))
	}

	tx.text = tx.text[:offset] + s + tx.text[offset:]

	return nil
}

// Replace swaps the text in [start, end) for s.
func (tx *Tx) Replace(start, end int, s string) error {
	if start < 0 || end > len(tx.text) || start > end {
		return fmt.Errorf("%w: replace [%d, %d) (length %d)", ErrOffsetOutOfRange, start, end, len(tx.text))
	}

	tx.text = tx.text[:start] + s + tx.text[end:]

	return nil
}

// WriteCommand runs fn as one undoable command. If fn fails none of its
// edits are applied. A command that leaves the text unchanged records
// nothing.
func (d *Document) WriteCommand(name string, fn func(tx *Tx) error) error {
	tx := &Tx{text: d.text}

	if err := fn(tx); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if tx.text == d.text {
		return nil
	}

	d.history = append(d.history, m.UndoEntry{
		Command:    name,
		Path:       d.path,
		Before:     d.text,
		After:      tx.text,
		BeforeHash: adapter.HashBytes([]byte(d.text)),
		AfterHash:  adapter.HashBytes([]byte(tx.text)),
		Time:       time.Now(),
	})
	d.text = tx.text
	d.modified = true

	return nil
}

// LastCommand returns the newest committed command.
func (d *Document) LastCommand() (m.UndoEntry, bool) {
	if len(d.history) == 0 {
		return m.UndoEntry{}, false
	}

	return d.history[len(d.history)-1], true
}
