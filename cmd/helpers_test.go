package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const (
	fooSource = "app/src/main/java/com/example/app/Foo.java"
	fooTest   = "app/src/test/java/com/example/app/FooTest.java"
)

// setupProject copies the powermock fixture project into a temp dir and
// makes it the working directory.
func setupProject(t *testing.T) string {
	t.Helper()

	originalWD, err := os.Getwd()
	require.NoError(t, err)

	fixtures, err := filepath.Abs(filepath.Join("..", "examples", "powermock"))
	require.NoError(t, err)

	root := t.TempDir()
	require.NoError(t, os.CopyFS(root, os.DirFS(fixtures)))
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return root
}

// runCommand executes sub under a fresh root command and returns stdout and
// stderr.
func runCommand(t *testing.T, sub *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	root.AddCommand(sub)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func readProjectFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.FromSlash(path))
	require.NoError(t, err)

	return string(content)
}
