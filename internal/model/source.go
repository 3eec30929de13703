// Package model defines the data structures shared by the mockprep handlers.
package model

// Path represents a file system path.
type Path string

// File represents a source code file.
type File struct {
	Path Path
	Hash string
}

// TypeKind is the flavor of a top-level Java type declaration.
type TypeKind string

const (
	// KindClass is a `class` declaration.
	KindClass TypeKind = "class"
	// KindInterface is an `interface` declaration. Its methods are public
	// unless marked private.
	KindInterface TypeKind = "interface"
	// KindEnum is an `enum` declaration.
	KindEnum TypeKind = "enum"
	// KindRecord is a `record` declaration.
	KindRecord TypeKind = "record"
	// KindAnnotation is an `@interface` declaration.
	KindAnnotation TypeKind = "annotation"
)

// JavaFile is the parsed view of a Java compilation unit.
type JavaFile struct {
	Package string
	Imports []string
	Classes []ClassDescriptor
	// HasErrors reports whether the parser had to recover from syntax errors.
	HasErrors bool
}

// FirstClass returns the first top-level type, or nil.
func (f *JavaFile) FirstClass() *ClassDescriptor {
	if f == nil || len(f.Classes) == 0 {
		return nil
	}

	return &f.Classes[0]
}
