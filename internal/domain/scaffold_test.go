package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/mockprep/internal/adapter"
	adaptermocks "gooze.dev/pkg/mockprep/internal/adapter/mocks"
	controllermocks "gooze.dev/pkg/mockprep/internal/controller/mocks"
	"gooze.dev/pkg/mockprep/internal/domain"
	m "gooze.dev/pkg/mockprep/internal/model"
)

const fooTestBody = "package com.example.app;\n" +
	"\n" +
	"import org.junit.Before;\n" +
	"import org.junit.BeforeClass;\n" +
	"import org.junit.Test;\n" +
	"import org.junit.runner.RunWith;\n" +
	"import org.powermock.modules.junit4.PowerMockRunner;\n" +
	"\n" +
	"import static org.mockito.MockitoAnnotations.initMocks;\n" +
	"\n" +
	"@RunWith(PowerMockRunner.class)\n" +
	"public class TestFoo {\n" +
	"\n" +
	"    @BeforeClass\n" +
	"    public static void setUp() {\n" +
	"\n" +
	"    }\n" +
	"\n" +
	"    @Before\n" +
	"    public void init() {\n" +
	"        initMocks(this);\n" +
	"    }\n" +
	"\n" +
	"    @Test\n" +
	"    public void testDoWork() {\n" +
	"    \n" +
	"    }\n" +
	"\n" +
	"    @Test\n" +
	"    public void testHelper() {\n" +
	"    \n" +
	"    }\n" +
	"\n" +
	"}\n"

func newScaffolder(editor adapter.EditorAdapter, ui *controllermocks.MockUI) domain.Scaffolder {
	locator := domain.NewClassLocator(adapter.NewLocalJavaFileAdapter(), ui)
	return domain.NewScaffolder(adapter.NewLocalSourceFSAdapter(), editor, locator, ui, domain.DefaultLayout, nil)
}

func TestScaffolderGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("writes one stub per public method", func(t *testing.T) {
		root := copyFixtures(t)
		source := fixture(root, mainPackageDir, "Foo.java")
		editor := new(adaptermocks.MockEditorAdapter)
		ui := newQuietUI()

		spec, err := newScaffolder(editor, ui).Generate(ctx, domain.ScaffoldArgs{Path: source})
		require.NoError(t, err)

		want := fixture(root, testPackageDir, "TestFoo.java")
		assert.Equal(t, want, spec.Path)
		assert.Equal(t, "TestFoo", spec.ClassName)
		assert.Equal(t, []string{"doWork", "helper"}, spec.Methods)
		assert.Equal(t, fooTestBody, readFile(t, want))

		editor.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
		assert.Empty(t, errorNotifications(ui))
	})

	t.Run("relative path from the package directory", func(t *testing.T) {
		root := copyFixtures(t)
		t.Chdir(filepath.Join(root, filepath.FromSlash(mainPackageDir)))

		spec, err := newScaffolder(new(adaptermocks.MockEditorAdapter), newQuietUI()).
			Generate(ctx, domain.ScaffoldArgs{Path: "Foo.java"})
		require.NoError(t, err)

		want := fixture(root, testPackageDir, "TestFoo.java")
		assert.Equal(t, want, spec.Path)
		assert.Equal(t, fooTestBody, readFile(t, want))
	})

	t.Run("interface methods are public", func(t *testing.T) {
		root := copyFixtures(t)

		spec, err := newScaffolder(new(adaptermocks.MockEditorAdapter), newQuietUI()).
			Generate(ctx, domain.ScaffoldArgs{Path: fixture(root, mainPackageDir, "Loader.java")})
		require.NoError(t, err)

		assert.Equal(t, []string{"load", "exists"}, spec.Methods)
		assert.Contains(t, spec.Body, "public class TestLoader {")
		assert.Contains(t, spec.Body, "    public void testLoad() {\n")
		assert.Contains(t, spec.Body, "    public void testExists() {\n")
		assert.NotContains(t, spec.Body, "testAudit")
	})

	t.Run("overwrites an existing test", func(t *testing.T) {
		root := copyFixtures(t)
		existing := fixture(root, testPackageDir, "TestFoo.java")
		writeFile(t, existing, "stale")

		_, err := newScaffolder(new(adaptermocks.MockEditorAdapter), newQuietUI()).
			Generate(ctx, domain.ScaffoldArgs{Path: fixture(root, mainPackageDir, "Foo.java")})
		require.NoError(t, err)
		assert.Equal(t, fooTestBody, readFile(t, existing))
	})

	t.Run("opens the generated file", func(t *testing.T) {
		root := copyFixtures(t)
		want := fixture(root, testPackageDir, "TestFoo.java")

		editor := new(adaptermocks.MockEditorAdapter)
		editor.On("Open", mock.Anything, want).Return(nil).Once()

		_, err := newScaffolder(editor, newQuietUI()).
			Generate(ctx, domain.ScaffoldArgs{Path: fixture(root, mainPackageDir, "Foo.java"), Open: true})
		require.NoError(t, err)
		editor.AssertExpectations(t)
	})

	t.Run("editor failure is reported", func(t *testing.T) {
		root := copyFixtures(t)
		editor := new(adaptermocks.MockEditorAdapter)
		editor.On("Open", mock.Anything, mock.Anything).Return(adapter.ErrNoEditor).Once()
		ui := newQuietUI()

		_, err := newScaffolder(editor, ui).
			Generate(ctx, domain.ScaffoldArgs{Path: fixture(root, mainPackageDir, "Foo.java"), Open: true})
		require.ErrorIs(t, err, adapter.ErrNoEditor)
		assert.Len(t, errorNotifications(ui), 1)
	})

	t.Run("first line is not a package", func(t *testing.T) {
		root := t.TempDir()
		source := m.Path(filepath.Join(root, "app/src/main/java/a/A.java"))
		writeFile(t, source, "// header\npackage a;\npublic class A {}\n")
		editor := new(adaptermocks.MockEditorAdapter)
		ui := newQuietUI()

		_, err := newScaffolder(editor, ui).Generate(ctx, domain.ScaffoldArgs{Path: source, Open: true})
		require.ErrorIs(t, err, domain.ErrNoPackageDeclaration)

		_, statErr := os.Stat(filepath.Join(root, "app/src/test"))
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
		assert.Len(t, errorNotifications(ui), 1)
		editor.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
	})

	t.Run("empty file", func(t *testing.T) {
		source := m.Path(filepath.Join(t.TempDir(), "app/src/main/java/a/A.java"))
		writeFile(t, source, "")

		_, err := newScaffolder(new(adaptermocks.MockEditorAdapter), newQuietUI()).Generate(ctx, domain.ScaffoldArgs{Path: source})
		require.ErrorIs(t, err, domain.ErrNoPackageDeclaration)
	})

	t.Run("outside the main source root", func(t *testing.T) {
		source := m.Path(filepath.Join(t.TempDir(), "src/a/A.java"))
		writeFile(t, source, "package a;\npublic class A {}\n")

		_, err := newScaffolder(new(adaptermocks.MockEditorAdapter), newQuietUI()).Generate(ctx, domain.ScaffoldArgs{Path: source})
		require.ErrorIs(t, err, domain.ErrSourceRootNotFound)
	})

	t.Run("file without a class gets no stubs", func(t *testing.T) {
		root := t.TempDir()
		source := m.Path(filepath.Join(root, "app/src/main/java/a/package-info.java"))
		writeFile(t, source, "package a;\n")

		spec, err := newScaffolder(new(adaptermocks.MockEditorAdapter), newQuietUI()).Generate(ctx, domain.ScaffoldArgs{Path: source})
		require.NoError(t, err)
		assert.Empty(t, spec.Methods)
		assert.NotContains(t, readFile(t, spec.Path), "@Test")
	})
}

func TestScaffolderCustomTemplate(t *testing.T) {
	root := copyFixtures(t)
	tmplPath := filepath.Join(t.TempDir(), "test.tmpl")
	writeFile(t, m.Path(tmplPath), "package {{ .Package }}; // {{ .ClassName }}{{ range .Methods }} {{ stubName . }}{{ end }}\n")

	fs := adapter.NewLocalSourceFSAdapter()
	tmpl, err := domain.LoadTestTemplate(tmplPath, fs)
	require.NoError(t, err)

	ui := newQuietUI()
	locator := domain.NewClassLocator(adapter.NewLocalJavaFileAdapter(), ui)
	layout := domain.Layout{MainRoot: "app/src/main/java", TestRoot: "app/src/test/java", Prefix: "Should"}

	spec, err := domain.NewScaffolder(fs, new(adaptermocks.MockEditorAdapter), locator, ui, layout, tmpl).
		Generate(context.Background(), domain.ScaffoldArgs{Path: fixture(root, mainPackageDir, "Foo.java")})
	require.NoError(t, err)

	assert.Equal(t, fixture(root, testPackageDir, "ShouldFoo.java"), spec.Path)
	assert.Equal(t, "package com.example.app; // ShouldFoo testDoWork testHelper\n", readFile(t, spec.Path))
}

func TestLoadTestTemplate(t *testing.T) {
	fs := adapter.NewLocalSourceFSAdapter()

	t.Run("missing file", func(t *testing.T) {
		_, err := domain.LoadTestTemplate(filepath.Join(t.TempDir(), "none.tmpl"), fs)
		require.Error(t, err)
	})

	t.Run("invalid template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.tmpl")
		writeFile(t, m.Path(path), "{{ .Package ")

		_, err := domain.LoadTestTemplate(path, fs)
		require.Error(t, err)
	})

	t.Run("built-in", func(t *testing.T) {
		tmpl, err := domain.LoadTestTemplate("", fs)
		require.NoError(t, err)

		body, err := domain.RenderTestFile(tmpl, m.TestFileSpec{Package: "com.example.app", ClassName: "TestFoo", Methods: []string{"doWork", "helper"}})
		require.NoError(t, err)
		assert.Equal(t, fooTestBody, body)
	})
}

func TestLayoutDerive(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		pkg     string
		dir     string
		path    string
		wantErr error
	}{
		{
			name:   "nested package",
			source: "/work/proj/app/src/main/java/com/example/app/Foo.java",
			pkg:    "com.example.app",
			dir:    "/work/proj/app/src/test/java/com/example/app",
			path:   "/work/proj/app/src/test/java/com/example/app/TestFoo.java",
		},
		{
			name:   "relative path",
			source: "app/src/main/java/a/Bar.java",
			pkg:    "a",
			dir:    "app/src/test/java/a",
			path:   "app/src/test/java/a/TestBar.java",
		},
		{
			name:   "package does not follow the directory",
			source: "/p/app/src/main/java/x/y/Baz.java",
			pkg:    "other",
			dir:    "/p/app/src/test/java/other",
			path:   "/p/app/src/test/java/other/TestBaz.java",
		},
		{
			name:    "no main root",
			source:  "/p/src/main/java/a/Foo.java",
			pkg:     "a",
			wantErr: domain.ErrSourceRootNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := domain.DefaultLayout.Derive(m.Path(filepath.FromSlash(tt.source)), tt.pkg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, m.Path(filepath.FromSlash(tt.dir)), spec.Dir)
			assert.Equal(t, m.Path(filepath.FromSlash(tt.path)), spec.Path)
			assert.Equal(t, tt.pkg, spec.Package)
		})
	}
}

func TestParsePackageLine(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{line: "package com.example.app;", want: "com.example.app", ok: true},
		{line: "package a ;", want: "a", ok: true},
		{line: "  package a;", want: "a", ok: true},
		{line: "import a.B;"},
		{line: "package"},
		{line: "package ;"},
		{line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := domain.ParsePackageLine(tt.line)
			if !tt.ok {
				require.ErrorIs(t, err, domain.ErrNoPackageDeclaration)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStubName(t *testing.T) {
	assert.Equal(t, "testDoWork", domain.StubName("doWork"))
	assert.Equal(t, "testX", domain.StubName("x"))
	assert.Equal(t, "testÉtat", domain.StubName("état"))
	assert.Equal(t, "test", domain.StubName(""))
}
