package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareCmd_UpdatesFile(t *testing.T) {
	setupProject(t)

	stdout, _, err := runCommand(t, newPrepareCmd(), "prepare", fooTest)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Updated @PrepareForTest")
	assert.Contains(t, readProjectFile(t, fooTest), "@PrepareForTest({\n        Util.class,\n        Config.class,\n})\n@RunWith(")

	entries, err := os.ReadDir(filepath.FromSlash(defaultJournalDir))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPrepareCmd_DryRun(t *testing.T) {
	setupProject(t)
	original := readProjectFile(t, fooTest)

	stdout, _, err := runCommand(t, newPrepareCmd(), "prepare", "--dry-run", fooTest)
	require.NoError(t, err)

	assert.Contains(t, stdout, "+@PrepareForTest({")
	assert.Contains(t, stdout, "+        Util.class,")
	assert.Equal(t, original, readProjectFile(t, fooTest))
}

func TestPrepareCmd_ContinuesAfterFailure(t *testing.T) {
	setupProject(t)

	_, stderr, err := runCommand(t, newPrepareCmd(), "prepare", "Missing.java", fooTest)
	require.Error(t, err)

	var shown reportedError
	assert.ErrorAs(t, err, &shown)
	assert.Contains(t, stderr, "Missing.java")
	assert.Contains(t, readProjectFile(t, fooTest), "@PrepareForTest({")
}

func TestPrepareCmd_RequiresFile(t *testing.T) {
	setupProject(t)

	_, _, err := runCommand(t, newPrepareCmd(), "prepare")
	require.Error(t, err)
}
