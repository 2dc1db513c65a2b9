package source

import (
	"slices"

	"declaration-corrector/internal/decl"
)

// Document is one logical declaration file.
type Document struct {
	Name        string              `yaml:"name"`
	Package     string              `yaml:"package,omitempty"`
	Imports     []string            `yaml:"imports,omitempty"`
	Classes     []ClassDocument     `yaml:"classes,omitempty"`
	Functions   []FunctionDocument  `yaml:"functions,omitempty"`
	Properties  []PropertyDocument  `yaml:"properties,omitempty"`
	TypeAliases []TypeAliasDocument `yaml:"typeAliases,omitempty"`
}

// ClassDocument describes a class, interface, object or enum.
type ClassDocument struct {
	Name          string             `yaml:"name"`
	Kind          decl.ClassKind     `yaml:"kind,omitempty"`
	Superclass    string             `yaml:"superclass,omitempty"`
	Interfaces    []string           `yaml:"interfaces,omitempty"`
	TypeVariables []string           `yaml:"typeVariables,omitempty"`
	Modifiers     []decl.Modifier    `yaml:"modifiers,omitempty"`
	Companion     bool               `yaml:"companion,omitempty"`
	Properties    []PropertyDocument `yaml:"properties,omitempty"`
	Functions     []FunctionDocument `yaml:"functions,omitempty"`
	Classes       []ClassDocument    `yaml:"classes,omitempty"`
}

// FunctionDocument describes a function.
type FunctionDocument struct {
	Name          string              `yaml:"name"`
	ReturnType    string              `yaml:"returnType,omitempty"`
	TypeVariables []string            `yaml:"typeVariables,omitempty"`
	Modifiers     []decl.Modifier     `yaml:"modifiers,omitempty"`
	JsName        string              `yaml:"jsName,omitempty"`
	Parameters    []ParameterDocument `yaml:"parameters,omitempty"`
}

// ParameterDocument describes a function parameter.
type ParameterDocument struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// PropertyDocument describes a property.
type PropertyDocument struct {
	Name      string          `yaml:"name"`
	Type      string          `yaml:"type"`
	Mutable   bool            `yaml:"mutable,omitempty"`
	Modifiers []decl.Modifier `yaml:"modifiers,omitempty"`
	JsName    string          `yaml:"jsName,omitempty"`
}

// TypeAliasDocument describes a type alias.
type TypeAliasDocument struct {
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type"`
	TypeVariables []string `yaml:"typeVariables,omitempty"`
}

// File converts the document into a declaration file.
func (d Document) File() *decl.File {
	f := decl.NewFile(d.Name, d.Package)
	f.Imports = append([]string(nil), d.Imports...)

	for _, a := range d.TypeAliases {
		alias := decl.NewTypeAlias(a.Name, typeName(a.Type, a.TypeVariables))
		alias.TypeVariables = append([]string(nil), a.TypeVariables...)
		f.Add(alias)
	}

	for _, c := range d.Classes {
		f.Add(c.class(nil))
	}

	for _, fn := range d.Functions {
		f.Add(fn.function(nil))
	}

	for _, p := range d.Properties {
		f.Add(p.property(nil))
	}

	return f
}

func (c ClassDocument) class(outer []string) *decl.Class {
	vars := append(slices.Clone(outer), c.TypeVariables...)

	out := decl.NewClass(c.Name)
	if c.Kind != "" {
		out.ClassKind = c.Kind
	}

	if c.Superclass != "" {
		t := typeName(c.Superclass, vars)
		out.Superclass = &t
	}

	for _, i := range c.Interfaces {
		out.Superinterfaces = append(out.Superinterfaces, typeName(i, vars))
	}

	out.TypeVariables = append([]string(nil), c.TypeVariables...)
	out.Modifiers = append(decl.Modifiers(nil), c.Modifiers...)
	out.Companion = c.Companion

	for _, p := range c.Properties {
		out.AddProperty(p.property(vars))
	}

	for _, fn := range c.Functions {
		out.AddFunction(fn.function(vars))
	}

	for _, n := range c.Classes {
		out.AddClass(n.class(vars))
	}

	return out
}

func (f FunctionDocument) function(outer []string) *decl.Function {
	vars := append(slices.Clone(outer), f.TypeVariables...)

	out := decl.NewFunction(f.Name)
	out.TypeVariables = append([]string(nil), f.TypeVariables...)

	if f.ReturnType != "" {
		t := typeName(f.ReturnType, vars)
		out.ReturnType = &t
	}

	for _, m := range f.Modifiers {
		out.AddModifier(m)
	}

	if f.JsName != "" {
		out.SetForeignName(f.JsName)
	}

	for _, p := range f.Parameters {
		out.AddParameter(p.Name, typeName(p.Type, vars))
	}

	return out
}

func (p PropertyDocument) property(vars []string) *decl.Property {
	out := decl.NewProperty(p.Name, typeName(p.Type, vars))
	out.Mutable = p.Mutable

	for _, m := range p.Modifiers {
		out.AddModifier(m)
	}

	if p.JsName != "" {
		out.SetForeignName(p.JsName)
	}

	return out
}

// typeName parses s and marks references to the type variables in scope.
func typeName(s string, vars []string) decl.TypeName {
	t := decl.ParseTypeName(s)
	markVariables(&t, vars)

	return t
}

func markVariables(t *decl.TypeName, vars []string) {
	if t.Package == "" && slices.Contains(vars, t.Name) {
		t.Variable = true
	}

	for i := range t.Args {
		markVariables(&t.Args[i], vars)
	}
}
