package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	m "gooze.dev/pkg/mockprep/internal/model"
)

const javaLanguage = "Java"

// JavaFileAdapter encapsulates Java-specific parsing so the domain layer can
// work with model.JavaFile values instead of a concrete syntax tree.
type JavaFileAdapter interface {
	// IsJava reports whether the file is Java source, judged by name and content.
	IsJava(path m.Path, content []byte) bool

	// Parse builds the structured view of a compilation unit. Syntax errors
	// do not fail the parse; they are reported through JavaFile.HasErrors.
	Parse(ctx context.Context, content []byte) (*m.JavaFile, error)
}

// LocalJavaFileAdapter provides a JavaFileAdapter backed by tree-sitter.
type LocalJavaFileAdapter struct{}

// NewLocalJavaFileAdapter constructs a LocalJavaFileAdapter.
func NewLocalJavaFileAdapter() *LocalJavaFileAdapter {
	return &LocalJavaFileAdapter{}
}

// IsJava uses go-enry language detection.
func (a *LocalJavaFileAdapter) IsJava(path m.Path, content []byte) bool {
	return enry.GetLanguage(filepath.Base(string(path)), content) == javaLanguage
}

var typeKinds = map[string]m.TypeKind{
	"class_declaration":           m.KindClass,
	"interface_declaration":       m.KindInterface,
	"enum_declaration":            m.KindEnum,
	"record_declaration":          m.KindRecord,
	"annotation_type_declaration": m.KindAnnotation,
}

// Parse runs the tree-sitter Java grammar over content.
func (a *LocalJavaFileAdapter) Parse(ctx context.Context, content []byte) (*m.JavaFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse java source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	file := &m.JavaFile{HasErrors: root.HasError()}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)

		switch child.Type() {
		case "package_declaration":
			file.Package = packageName(child, content)
		case "import_declaration":
			file.Imports = append(file.Imports, importName(child, content))
		}
	}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if kind, ok := typeKinds[child.Type()]; ok {
			file.Classes = append(file.Classes, describeType(child, kind, content, file.Imports))
		}
	}

	return file, nil
}

func packageName(node *sitter.Node, content []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "scoped_identifier" || child.Type() == "identifier" {
			return compact(child.Content(content))
		}
	}

	return ""
}

func importName(node *sitter.Node, content []byte) string {
	text := strings.TrimSpace(node.Content(content))
	text = strings.TrimPrefix(text, "import")
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "static ")
	text = strings.TrimSuffix(strings.TrimSpace(text), ";")

	return compact(text)
}

func describeType(node *sitter.Node, kind m.TypeKind, content []byte, imports []string) m.ClassDescriptor {
	desc := m.ClassDescriptor{
		Kind:      kind,
		StartByte: int(node.StartByte()),
		EndByte:   int(node.EndByte()),
	}

	if name := node.ChildByFieldName("name"); name != nil {
		desc.Name = name.Content(content)
	}

	if mods := childOfType(node, "modifiers"); mods != nil {
		desc.Annotations = annotations(mods, content, imports)
	}

	if body := node.ChildByFieldName("body"); body != nil {
		desc.Methods = methods(body, kind, desc.Name, content)
	}

	return desc
}

func annotations(mods *sitter.Node, content []byte, imports []string) []m.Annotation {
	var out []m.Annotation

	for i := 0; i < int(mods.NamedChildCount()); i++ {
		child := mods.NamedChild(i)
		if child.Type() != "annotation" && child.Type() != "marker_annotation" {
			continue
		}

		nameNode := child.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}

		name := compact(nameNode.Content(content))
		annotation := m.Annotation{
			Name:          name,
			QualifiedName: resolveName(name, imports),
			StartByte:     int(child.StartByte()),
			EndByte:       int(child.EndByte()),
		}

		if args := child.ChildByFieldName("arguments"); args != nil {
			collectClassLiterals(args, content, &annotation.Values)
		}

		out = append(out, annotation)
	}

	return out
}

// resolveName maps a simple annotation name to the single-type import that
// declares it. Unresolvable names are returned unchanged.
func resolveName(name string, imports []string) string {
	if strings.Contains(name, ".") {
		return name
	}

	for _, imp := range imports {
		if strings.HasSuffix(imp, "."+name) {
			return imp
		}
	}

	return name
}

func collectClassLiterals(node *sitter.Node, content []byte, out *[]string) {
	if node.Type() == "class_literal" {
		*out = append(*out, compact(node.Content(content)))
		return
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectClassLiterals(node.NamedChild(i), content, out)
	}
}

func methods(body *sitter.Node, kind m.TypeKind, className string, content []byte) []m.Method {
	var out []m.Method

	for _, member := range members(body) {
		switch member.Type() {
		case "method_declaration":
			mods := childOfType(member, "modifiers")
			public := hasModifier(mods, "public")

			if kind == m.KindInterface && !hasModifier(mods, "private") {
				public = true
			}

			out = append(out, m.Method{
				Name:   fieldContent(member, "name", content),
				Public: public,
				Static: hasModifier(mods, "static"),
				Line:   int(member.StartPoint().Row) + 1,
			})

		case "constructor_declaration", "compact_constructor_declaration":
			name := fieldContent(member, "name", content)
			if name == "" {
				name = className
			}

			out = append(out, m.Method{
				Name:        name,
				Public:      hasModifier(childOfType(member, "modifiers"), "public"),
				Constructor: true,
				Line:        int(member.StartPoint().Row) + 1,
			})
		}
	}

	return out
}

// members flattens the body declarations, including those an enum keeps
// after its constants.
func members(body *sitter.Node) []*sitter.Node {
	var out []*sitter.Node

	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == "enum_body_declarations" {
			out = append(out, members(child)...)
			continue
		}

		out = append(out, child)
	}

	return out
}

func childOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}

	return nil
}

// hasModifier reports whether the modifiers node carries the keyword. The
// keywords are anonymous nodes, so all children are inspected.
func hasModifier(mods *sitter.Node, keyword string) bool {
	if mods == nil {
		return false
	}

	for i := 0; i < int(mods.ChildCount()); i++ {
		if mods.Child(i).Type() == keyword {
			return true
		}
	}

	return false
}

func fieldContent(node *sitter.Node, field string, content []byte) string {
	if child := node.ChildByFieldName(field); child != nil {
		return child.Content(content)
	}

	return ""
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
