package model

// TestFileSpec describes a generated test file before it is written.
type TestFileSpec struct {
	Package   string
	Dir       Path
	ClassName string
	Path      Path
	Methods   []string
	Body      string
}
