package model

import "sort"

// MockedClassSet is the set of class references passed to mockStatic, each
// stored in its rendered form ("Foo.class").
type MockedClassSet map[string]struct{}

// NewMockedClassSet builds a set from the given class references.
func NewMockedClassSet(classes ...string) MockedClassSet {
	set := make(MockedClassSet, len(classes))
	for _, class := range classes {
		set.Add(class)
	}

	return set
}

// Add inserts a class reference. Duplicates are ignored.
func (s MockedClassSet) Add(class string) {
	s[class] = struct{}{}
}

// Len returns the number of distinct entries.
func (s MockedClassSet) Len() int {
	return len(s)
}

// Sorted returns the entries shortest first. Entries of equal length are
// ordered lexicographically so the output does not depend on map order.
func (s MockedClassSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for class := range s {
		out = append(out, class)
	}

	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}

		return out[i] < out[j]
	})

	return out
}

// Equal reports whether values contains exactly the members of s.
func (s MockedClassSet) Equal(values []string) bool {
	other := NewMockedClassSet(values...)
	if len(other) != len(s) {
		return false
	}

	for class := range s {
		if _, ok := other[class]; !ok {
			return false
		}
	}

	return true
}
