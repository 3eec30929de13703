package domain

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"gooze.dev/pkg/mockprep/internal/adapter"
	"gooze.dev/pkg/mockprep/internal/controller"
	m "gooze.dev/pkg/mockprep/internal/model"
)

//go:embed templates/test.java.tmpl
var defaultTestTemplate string

var templateFuncs = template.FuncMap{
	"stubName": StubName,
}

// Layout names the source roots, relative to the project root, and the
// prefix given to generated test classes.
type Layout struct {
	MainRoot string
	TestRoot string
	Prefix   string
}

// DefaultLayout is the Android/Gradle layout.
var DefaultLayout = Layout{
	MainRoot: "app/src/main/java/",
	TestRoot: "app/src/test/java/",
	Prefix:   "Test",
}

// Derive computes where the test for sourcePath, declared in package pkg,
// belongs. The project root is everything before the main root.
func (l Layout) Derive(sourcePath m.Path, pkg string) (m.TestFileSpec, error) {
	slashed := filepath.ToSlash(string(sourcePath))
	mainRoot := withTrailingSlash(l.MainRoot)

	index := strings.Index(slashed, mainRoot)
	if index < 0 {
		return m.TestFileSpec{}, fmt.Errorf("%w: %q in %s", ErrSourceRootNotFound, mainRoot, sourcePath)
	}

	dir := slashed[:index] + withTrailingSlash(l.TestRoot) + strings.ReplaceAll(pkg, ".", "/")
	base := path.Base(slashed)
	className := l.Prefix + strings.TrimSuffix(base, path.Ext(base))

	return m.TestFileSpec{
		Package:   pkg,
		Dir:       m.Path(filepath.FromSlash(dir)),
		ClassName: className,
		Path:      m.Path(filepath.FromSlash(dir + "/" + className + ".java")),
	}, nil
}

func withTrailingSlash(root string) string {
	root = filepath.ToSlash(root)
	if strings.HasSuffix(root, "/") {
		return root
	}

	return root + "/"
}

// ParsePackageLine reads the package name from a `package a.b.c;` line.
func ParsePackageLine(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "package" {
		return "", fmt.Errorf("%w: %q", ErrNoPackageDeclaration, line)
	}

	name := strings.TrimSuffix(fields[1], ";")
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrNoPackageDeclaration, line)
	}

	return name, nil
}

// StubName names the test stub for method: "doWork" becomes "testDoWork".
func StubName(method string) string {
	r, size := utf8.DecodeRuneInString(method)
	if r == utf8.RuneError {
		return "test"
	}

	return "test" + string(unicode.ToUpper(r)) + method[size:]
}

// LoadTestTemplate parses the test body template in file, or the built-in
// template when file is empty.
func LoadTestTemplate(file string, fs adapter.SourceFSAdapter) (*template.Template, error) {
	text := defaultTestTemplate

	if file != "" {
		content, err := fs.ReadFile(context.Background(), m.Path(file))
		if err != nil {
			return nil, fmt.Errorf("read test template: %w", err)
		}

		text = string(content)
	}

	tmpl, err := template.New("test").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse test template: %w", err)
	}

	return tmpl, nil
}

// RenderTestFile fills tmpl with spec.
func RenderTestFile(tmpl *template.Template, spec m.TestFileSpec) (string, error) {
	var sb strings.Builder

	data := struct {
		Package   string
		ClassName string
		Methods   []string
	}{spec.Package, spec.ClassName, spec.Methods}

	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", spec.Path, err)
	}

	return sb.String(), nil
}

// ScaffoldArgs selects the production source to generate a test for.
type ScaffoldArgs struct {
	Path m.Path
	Open bool
}

// Scaffolder generates a JUnit test skeleton for a production class.
type Scaffolder interface {
	Generate(ctx context.Context, args ScaffoldArgs) (m.TestFileSpec, error)
}

type scaffolder struct {
	adapter.SourceFSAdapter
	adapter.EditorAdapter
	ClassLocator
	ui       controller.UI
	layout   Layout
	template *template.Template
}

// NewScaffolder creates a Scaffolder. A nil tmpl selects the built-in test
// template.
func NewScaffolder(fs adapter.SourceFSAdapter, editor adapter.EditorAdapter, locator ClassLocator, ui controller.UI, layout Layout, tmpl *template.Template) Scaffolder {
	if tmpl == nil {
		tmpl = template.Must(template.New("test").Funcs(templateFuncs).Parse(defaultTestTemplate))
	}

	return &scaffolder{
		SourceFSAdapter: fs,
		EditorAdapter:   editor,
		ClassLocator:    locator,
		ui:              ui,
		layout:          layout,
		template:        tmpl,
	}
}

func (s *scaffolder) Generate(ctx context.Context, args ScaffoldArgs) (m.TestFileSpec, error) {
	spec, err := s.destination(ctx, args.Path)
	if err != nil {
		return spec, s.fail(ctx, err)
	}

	s.ui.Notify(ctx, m.Notification{Level: m.LevelInfo, Title: "Test file", Message: string(spec.Path)})

	spec, err = s.write(ctx, args.Path, spec)
	if err != nil {
		return spec, s.fail(ctx, err)
	}

	slog.Info("generated test", "source", args.Path, "test", spec.Path, "methods", len(spec.Methods))
	s.ui.Notify(ctx, m.Notification{Level: m.LevelInfo, Title: "Destination", Message: string(spec.Path)})

	if args.Open {
		if err := s.Open(ctx, spec.Path); err != nil {
			return spec, s.fail(ctx, err)
		}
	}

	return spec, nil
}

// destination resolves the test path from the package line and creates its
// directory.
func (s *scaffolder) destination(ctx context.Context, source m.Path) (m.TestFileSpec, error) {
	// The source root is matched against the full path, not the one typed.
	source, err := s.AbsPath(ctx, source)
	if err != nil {
		return m.TestFileSpec{}, err
	}

	line, err := s.ReadFirstLine(ctx, source)
	if errors.Is(err, io.EOF) {
		return m.TestFileSpec{}, fmt.Errorf("%w: %s is empty", ErrNoPackageDeclaration, source)
	}

	if err != nil {
		return m.TestFileSpec{}, err
	}

	pkg, err := ParsePackageLine(line)
	if err != nil {
		return m.TestFileSpec{}, err
	}

	spec, err := s.layout.Derive(source, pkg)
	if err != nil {
		return spec, err
	}

	if err := s.MkdirAll(ctx, spec.Dir); err != nil {
		return spec, err
	}

	return spec, nil
}

// write renders one stub per public method of the first class in source and
// overwrites the test file.
func (s *scaffolder) write(ctx context.Context, source m.Path, spec m.TestFileSpec) (m.TestFileSpec, error) {
	content, err := s.ReadFile(ctx, source)
	if err != nil {
		return spec, err
	}

	class, err := s.Locate(ctx, NewDocument(source, string(content)))
	if err != nil {
		return spec, err
	}

	if class != nil {
		spec.Methods = class.PublicMethodNames()
	}

	s.ui.Notify(ctx, m.Notification{
		Level:   m.LevelDebug,
		Title:   "Methods",
		Message: "[" + strings.Join(spec.Methods, ", ") + "]",
	})

	spec.Body, err = RenderTestFile(s.template, spec)
	if err != nil {
		return spec, err
	}

	if err := s.WriteFile(ctx, spec.Path, []byte(spec.Body), 0o644); err != nil {
		return spec, err
	}

	return spec, nil
}

func (s *scaffolder) fail(ctx context.Context, err error) error {
	slog.Error("scaffold failed", "error", err)
	s.ui.Notify(ctx, m.Notification{Level: m.LevelError, Title: "Error", Message: err.Error()})

	return err
}
