package model

import "strings"

// Annotation is an annotation attached to a type declaration.
type Annotation struct {
	// Name is the annotation name as written, without the leading '@'.
	Name string
	// QualifiedName is Name resolved through the file's imports when possible.
	QualifiedName string
	// Values holds the class literals found in the arguments (e.g. "Foo.class").
	Values []string
	// StartByte and EndByte delimit the annotation text in the source.
	StartByte int
	EndByte   int
}

// Method is a method or constructor declared directly in a type body.
type Method struct {
	Name        string
	Public      bool
	Static      bool
	Constructor bool
	Line        int
}

// ClassDescriptor is a read-only view of a top-level type declaration.
type ClassDescriptor struct {
	Name        string
	Kind        TypeKind
	Annotations []Annotation
	Methods     []Method
	StartByte   int
	EndByte     int
}

// FindAnnotation returns the first annotation whose qualified name contains
// substr, or nil.
func (c *ClassDescriptor) FindAnnotation(substr string) *Annotation {
	if c == nil {
		return nil
	}

	for i := range c.Annotations {
		if strings.Contains(c.Annotations[i].QualifiedName, substr) {
			return &c.Annotations[i]
		}
	}

	return nil
}

// PublicMethodNames returns the distinct names of public non-constructor
// methods in first-seen order.
func (c *ClassDescriptor) PublicMethodNames() []string {
	if c == nil {
		return nil
	}

	names := make([]string, 0, len(c.Methods))
	seen := make(map[string]struct{}, len(c.Methods))

	for _, method := range c.Methods {
		if !method.Public || method.Constructor {
			continue
		}

		if _, ok := seen[method.Name]; ok {
			continue
		}

		seen[method.Name] = struct{}{}
		names = append(names, method.Name)
	}

	return names
}
