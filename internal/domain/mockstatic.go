package domain

import (
	"regexp"
	"strings"

	m "gooze.dev/pkg/mockprep/internal/model"
)

const (
	prepareForTestName   = "PrepareForTest"
	prepareForTestHeader = "@PrepareForTest({\n"
	prepareForTestFooter = "\n})\n"
	prepareClassIndent   = "        "
	importPrepareForTest = "import org.powermock.core.classloader.annotations.PrepareForTest;"
	runWithMarker        = "@RunWith("
	importRunWith        = "import org.junit.runner.RunWith;"
)

// mockStaticPattern matches one `mockStatic(X.class);` call per match, even
// when several share a line.
var mockStaticPattern = regexp.MustCompile(`mockStatic\((.*?)\.class\);`)

// ExtractMockedClasses returns every distinct class passed to mockStatic in
// text, each in "X.class" form.
func ExtractMockedClasses(text string) m.MockedClassSet {
	classes := m.NewMockedClassSet()

	for _, match := range mockStaticPattern.FindAllStringSubmatch(text, -1) {
		classes.Add(match[1] + ".class")
	}

	return classes
}

// RenderPrepareForTest renders the full annotation block, shortest class
// names first, each entry on its own line with a trailing comma.
func RenderPrepareForTest(classes m.MockedClassSet) string {
	sorted := classes.Sorted()

	lines := make([]string, 0, len(sorted))
	for _, class := range sorted {
		lines = append(lines, prepareClassIndent+class+",")
	}

	return prepareForTestHeader + strings.Join(lines, "\n") + prepareForTestFooter
}
