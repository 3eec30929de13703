package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	controllermocks "gooze.dev/pkg/mockprep/internal/controller/mocks"
	m "gooze.dev/pkg/mockprep/internal/model"
)

const (
	mainPackageDir = "app/src/main/java/com/example/app"
	testPackageDir = "app/src/test/java/com/example/app"
)

// copyFixtures copies the powermock fixture project into a temp dir and
// returns its root.
func copyFixtures(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.CopyFS(root, os.DirFS(filepath.Join("..", "..", "examples", "powermock"))))

	return root
}

func fixture(root, dir, name string) m.Path {
	return m.Path(filepath.Join(root, filepath.FromSlash(dir), name))
}

func readFile(t *testing.T, path m.Path) string {
	t.Helper()

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)

	return string(content)
}

func writeFile(t *testing.T, path m.Path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(string(path)), 0o755))
	require.NoError(t, os.WriteFile(string(path), []byte(content), 0o644))
}

// newQuietUI accepts every notification.
func newQuietUI() *controllermocks.MockUI {
	ui := new(controllermocks.MockUI)
	ui.On("Notify", mock.Anything, mock.Anything).Return()
	ui.On("DisplayDiff", mock.Anything, mock.Anything, mock.Anything).Return()

	return ui
}

func errorNotifications(ui *controllermocks.MockUI) []m.Notification {
	var out []m.Notification

	for _, n := range ui.Notifications() {
		if n.Level == m.LevelError {
			out = append(out, n)
		}
	}

	return out
}
