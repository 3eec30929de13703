package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gooze.dev/pkg/mockprep/internal/adapter"
	"gooze.dev/pkg/mockprep/internal/controller"
	m "gooze.dev/pkg/mockprep/internal/model"
)

// ClassLocator maps a document to the first top-level type declared in it.
type ClassLocator interface {
	// Locate returns nil without error when the document is not Java or
	// declares no top-level type.
	Locate(ctx context.Context, doc *Document) (*m.ClassDescriptor, error)
}

type classLocator struct {
	java adapter.JavaFileAdapter
	ui   controller.UI
}

// NewClassLocator creates a ClassLocator. ui receives debug notifications
// describing the parse and may be nil.
func NewClassLocator(java adapter.JavaFileAdapter, ui controller.UI) ClassLocator {
	return &classLocator{java: java, ui: ui}
}

func (l *classLocator) Locate(ctx context.Context, doc *Document) (*m.ClassDescriptor, error) {
	content := []byte(doc.Text())

	if !l.java.IsJava(doc.Path(), content) {
		l.debug(ctx, fmt.Sprintf("Source file: %s is not Java", doc.Path()))
		return nil, nil
	}

	file, err := l.java.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", doc.Path(), err)
	}

	names := make([]string, 0, len(file.Classes))
	for _, class := range file.Classes {
		names = append(names, string(class.Kind)+" "+class.Name)
	}

	slog.Debug("located classes", "path", doc.Path(), "package", file.Package, "classes", names, "syntaxErrors", file.HasErrors)
	l.debug(ctx, fmt.Sprintf("Source file: %s (package %q)", doc.Path(), file.Package))
	l.debug(ctx, fmt.Sprintf("Classes: [%s]", strings.Join(names, ", ")))

	return file.FirstClass(), nil
}

func (l *classLocator) debug(ctx context.Context, message string) {
	if l.ui == nil {
		return
	}

	l.ui.Notify(ctx, m.Notification{Level: m.LevelDebug, Title: "Debug", Message: message})
}
