package emit

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"declaration-corrector/internal/decl"
	"declaration-corrector/internal/naming"
)

// Output is one rendered file.
type Output struct {
	// Name is the logical file name.
	Name    string
	Content []byte
}

const indentUnit = "    "

// fileData holds everything the file template needs.
type fileData struct {
	Package    string
	Imports    []string
	Aliases    []string
	Classes    []classData
	Functions  []memberData
	Properties []memberData
}

type classData struct {
	Indent  string
	Header  string
	Members []memberData
	Nested  []classData
}

// memberData is an indented member line with its optional annotation.
type memberData struct {
	Annotation string
	Line       string
}

func (m memberData) indent(by string) memberData {
	if m.Annotation != "" {
		m.Annotation = by + m.Annotation
	}

	m.Line = by + m.Line

	return m
}

func (c classData) HasBody() bool {
	return len(c.Members) > 0 || len(c.Nested) > 0
}

var fileTemplate = template.Must(template.New("file").Parse(
	`{{define "member"}}{{if .Annotation}}{{.Annotation}}
{{end}}{{.Line}}
{{end}}
{{- define "class"}}{{.Indent}}{{.Header}}{{if .HasBody}} {
{{range .Members}}{{template "member" .}}{{end}}{{range .Nested}}{{template "class" .}}{{end}}{{.Indent}}}{{end}}
{{end}}
{{- if .Package}}package {{.Package}}

{{end}}
{{- if .Imports}}{{range .Imports}}import {{.}}
{{end}}
{{end}}
{{- range .Aliases}}{{.}}

{{end}}
{{- range .Classes}}{{template "class" .}}
{{end}}
{{- range .Functions}}{{template "member" .}}
{{end}}
{{- range .Properties}}{{template "member" .}}
{{end}}`))

// File renders f.
func File(f *decl.File) ([]byte, error) {
	var buf bytes.Buffer

	if err := fileTemplate.Execute(&buf, buildFileData(f)); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", f.Name, err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Package renders every file of pkg in order.
func Package(pkg *decl.Package) ([]Output, error) {
	files := pkg.Files()
	out := make([]Output, 0, len(files))

	for _, f := range files {
		content, err := File(f)
		if err != nil {
			return nil, err
		}

		out = append(out, Output{Name: f.Name, Content: content})
	}

	return out, nil
}

func buildFileData(f *decl.File) fileData {
	data := fileData{
		Package: f.PackageName,
		Imports: append([]string(nil), f.Imports...),
	}

	for _, a := range f.TypeAliases() {
		data.Aliases = append(data.Aliases, aliasLine(a))
	}

	for _, c := range f.Classes() {
		data.Classes = append(data.Classes, buildClass(c, "", true))
	}

	for _, fn := range f.Functions() {
		data.Functions = append(data.Functions, functionData(fn, true))
	}

	for _, p := range f.Properties() {
		data.Properties = append(data.Properties, propertyData(p, true))
	}

	return data
}

func aliasLine(a *decl.TypeAlias) string {
	return "public typealias " + naming.Escape(a.Name()) + typeVariables(a.TypeVariables) + " = " + a.Aliased.String()
}

func buildClass(c *decl.Class, indent string, external bool) classData {
	var sb strings.Builder

	sb.WriteString("public ")

	if external {
		sb.WriteString("external ")
	}

	for _, m := range c.Modifiers {
		if m == decl.ModifierExternal {
			continue
		}

		sb.WriteString(string(m) + " ")
	}

	switch {
	case c.Companion:
		sb.WriteString("companion object")
	case c.ClassKind == decl.ClassKindEnum:
		sb.WriteString("enum class")
	case c.ClassKind != "":
		sb.WriteString(string(c.ClassKind))
	default:
		sb.WriteString(string(decl.ClassKindClass))
	}

	sb.WriteString(" " + naming.Escape(c.Name()) + typeVariables(c.TypeVariables))

	if supers := c.Supertypes(); len(supers) > 0 {
		names := make([]string, len(supers))
		for i, s := range supers {
			names[i] = s.String()
		}

		sb.WriteString(" : " + strings.Join(names, ", "))
	}

	data := classData{Indent: indent, Header: sb.String()}
	inner := indent + indentUnit

	for _, m := range c.Members() {
		switch v := m.(type) {
		case *decl.Property:
			data.Members = append(data.Members, propertyData(v, false).indent(inner))
		case *decl.Function:
			data.Members = append(data.Members, functionData(v, false).indent(inner))
		case *decl.Class:
			data.Nested = append(data.Nested, buildClass(v, inner, false))
		}
	}

	return data
}

type annotated interface {
	ForeignName() (string, bool)
	Modifiers() decl.Modifiers
}

func prefix(m annotated, external bool) (memberData, string) {
	var data memberData
	if name, ok := m.ForeignName(); ok {
		data.Annotation = fmt.Sprintf("@JsName(%q)", name)
	}

	var sb strings.Builder

	sb.WriteString("public ")

	if external {
		sb.WriteString("external ")
	}

	for _, mod := range m.Modifiers() {
		sb.WriteString(string(mod) + " ")
	}

	return data, sb.String()
}

func functionData(f *decl.Function, external bool) memberData {
	data, head := prefix(f, external)

	params := make([]string, 0, len(f.Parameters()))
	for _, p := range f.Parameters() {
		params = append(params, naming.Escape(p.Name())+": "+p.Type.String())
	}

	vars := typeVariables(f.TypeVariables)
	if vars != "" {
		vars += " "
	}

	line := head + "fun " + vars + naming.Escape(f.Name()) + "(" + strings.Join(params, ", ") + ")"
	if f.ReturnType != nil {
		line += ": " + f.ReturnType.String()
	}

	data.Line = line

	return data
}

func propertyData(p *decl.Property, external bool) memberData {
	data, head := prefix(p, external)

	keyword := "val"
	if p.Mutable || external {
		keyword = "var"
	}

	data.Line = head + keyword + " " + naming.Escape(p.Name()) + ": " + p.Type.String()

	return data
}

func typeVariables(vars []string) string {
	if len(vars) == 0 {
		return ""
	}

	return "<" + strings.Join(vars, ", ") + ">"
}
