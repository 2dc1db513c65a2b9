package decl

import "strings"

// TypeName is a reference to a type, e.g. "kotlin.Array<ue.Vector>?".
type TypeName struct {
	Package  string
	Name     string
	Args     []TypeName
	Nullable bool
	// Variable marks a reference to a type variable in scope.
	Variable bool

	// ref is the class this reference resolves to, set by Package.Link.
	ref *Class
}

// Dynamic is the untyped foreign type.
const Dynamic = "dynamic"

// ParseTypeName parses a textual type reference. Generic arguments are split on
// top-level commas; a trailing "?" marks the reference nullable. Function types
// are kept verbatim in Name.
func ParseTypeName(s string) TypeName {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeName{}
	}

	if strings.Contains(s, "->") {
		return TypeName{Name: s}
	}

	var t TypeName
	if strings.HasSuffix(s, "?") {
		t.Nullable = true
		s = strings.TrimSuffix(s, "?")
	}

	head := s
	if open := strings.IndexByte(s, '<'); open >= 0 && strings.HasSuffix(s, ">") {
		head = s[:open]
		for _, arg := range splitTopLevel(s[open+1 : len(s)-1]) {
			t.Args = append(t.Args, ParseTypeName(arg))
		}
	}

	if dot := strings.LastIndexByte(head, '.'); dot >= 0 {
		t.Package = head[:dot]
		t.Name = head[dot+1:]
	} else {
		t.Name = head
	}

	return t
}

func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i, r := range s {
		switch r {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	if rest := strings.TrimSpace(s[start:]); rest != "" {
		parts = append(parts, rest)
	}

	return parts
}

// IsZero reports whether the reference is empty.
func (t TypeName) IsZero() bool {
	return t.Name == ""
}

// SimpleName returns the referenced name, following a resolved class rename.
func (t TypeName) SimpleName() string {
	if t.ref != nil {
		return t.ref.Name()
	}

	return t.Name
}

// Qualified returns package and simple name joined by a dot.
func (t TypeName) Qualified() string {
	if t.Package == "" {
		return t.SimpleName()
	}

	return t.Package + "." + t.SimpleName()
}

// String renders the full reference including arguments and nullability.
func (t TypeName) String() string {
	var sb strings.Builder

	sb.WriteString(t.Qualified())

	if len(t.Args) > 0 {
		sb.WriteByte('<')

		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(a.String())
		}

		sb.WriteByte('>')
	}

	if t.Nullable {
		sb.WriteByte('?')
	}

	return sb.String()
}

// IsName reports whether name denotes this reference, either as the simple
// name (original or current) or the qualified name.
func (t TypeName) IsName(name string) bool {
	return name == t.Name || name == t.SimpleName() || name == t.Qualified()
}

// AllNames returns the package segments, the simple name and then the names of
// every argument, recursively.
func (t TypeName) AllNames() []string {
	var out []string
	if t.Package != "" {
		out = append(out, strings.Split(t.Package, ".")...)
	}

	out = append(out, t.SimpleName())

	for _, a := range t.Args {
		out = append(out, a.AllNames()...)
	}

	return out
}

// ReferencedNames returns the simple names of the reference and all of its
// arguments.
func (t TypeName) ReferencedNames() []string {
	out := []string{t.SimpleName()}
	for _, a := range t.Args {
		out = append(out, a.ReferencedNames()...)
	}

	return out
}

// Class returns the class this reference resolves to, or nil.
func (t TypeName) Class() *Class {
	return t.ref
}

// walk visits t and every argument.
func (t *TypeName) walk(fn func(*TypeName)) {
	fn(t)

	for i := range t.Args {
		t.Args[i].walk(fn)
	}
}
