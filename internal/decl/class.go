package decl

// ClassKind distinguishes the flavours of class-like declarations.
type ClassKind string

const (
	ClassKindClass     ClassKind = "class"
	ClassKindInterface ClassKind = "interface"
	ClassKindObject    ClassKind = "object"
	ClassKindEnum      ClassKind = "enum"
)

// Class is a class, interface, object or enum declaration.
type Class struct {
	nameState

	ClassKind       ClassKind
	Superclass      *TypeName
	Superinterfaces []TypeName
	TypeVariables   []string
	Companion       bool
	Modifiers       Modifiers

	members []Declaration
	parent  Declaration
	pkg     *Package
}

// NewClass creates a class with the given original name.
func NewClass(name string) *Class {
	return &Class{nameState: newNameState(name), ClassKind: ClassKindClass}
}

func (c *Class) Kind() Kind { return KindClass }

// Members returns nested classes, functions and properties in declaration order.
func (c *Class) Members() []Declaration {
	return append([]Declaration(nil), c.members...)
}

// Parent returns the owning file or class.
func (c *Class) Parent() Declaration { return c.parent }

// Functions returns the member functions.
func (c *Class) Functions() []*Function { return filterMembers[*Function](c.members) }

// Properties returns the member properties.
func (c *Class) Properties() []*Property { return filterMembers[*Property](c.members) }

// Classes returns the nested classes.
func (c *Class) Classes() []*Class { return filterMembers[*Class](c.members) }

// Function returns the first function with the given current name.
func (c *Class) Function(name string) *Function {
	for _, f := range c.Functions() {
		if f.Name() == name {
			return f
		}
	}

	return nil
}

// Property returns the first property with the given current name.
func (c *Class) Property(name string) *Property {
	for _, p := range c.Properties() {
		if p.Name() == name {
			return p
		}
	}

	return nil
}

// AddFunction appends a member function.
func (c *Class) AddFunction(f *Function) {
	f.parent = c
	c.members = append(c.members, f)
}

// AddProperty appends a member property.
func (c *Class) AddProperty(p *Property) {
	p.parent = c
	c.members = append(c.members, p)
}

// AddClass appends a nested class.
func (c *Class) AddClass(n *Class) {
	n.parent = c
	n.pkg = c.pkg
	c.members = append(c.members, n)
}

// RemoveMember removes d from the direct members. It reports whether d was found.
func (c *Class) RemoveMember(d Declaration) bool {
	var ok bool

	c.members, ok = removeMember(c.members, d)

	return ok
}

// RemoveFunction removes f from the direct members.
func (c *Class) RemoveFunction(f *Function) bool { return c.RemoveMember(f) }

// Supertypes returns the superclass (if any) followed by the superinterfaces.
func (c *Class) Supertypes() []TypeName {
	out := make([]TypeName, 0, len(c.Superinterfaces)+1)
	if c.Superclass != nil {
		out = append(out, *c.Superclass)
	}

	return append(out, c.Superinterfaces...)
}

// AddSuperinterface adds t unless an equal reference is already present.
func (c *Class) AddSuperinterface(t TypeName) bool {
	for _, cur := range c.Superinterfaces {
		if cur.String() == t.String() {
			return false
		}
	}

	if c.pkg != nil {
		c.pkg.resolve(&t)
	}

	c.Superinterfaces = append(c.Superinterfaces, t)

	return true
}

// RemoveSuperinterface removes every superinterface matching name.
func (c *Class) RemoveSuperinterface(name string) bool {
	kept := c.Superinterfaces[:0]
	removed := false

	for _, t := range c.Superinterfaces {
		if t.IsName(name) {
			removed = true
			continue
		}

		kept = append(kept, t)
	}

	c.Superinterfaces = kept

	return removed
}

// RemoveSupertype clears the superclass when it matches name, otherwise removes
// matching superinterfaces.
func (c *Class) RemoveSupertype(name string) bool {
	if c.Superclass != nil && c.Superclass.IsName(name) {
		c.Superclass = nil
		return true
	}

	return c.RemoveSuperinterface(name)
}

// HasSuperType reports whether name appears anywhere in the supertype chain.
// Supertypes are followed through resolved class references.
func (c *Class) HasSuperType(name string) bool {
	seen := make(map[*Class]struct{})

	var walk func(*Class) bool
	walk = func(k *Class) bool {
		if _, ok := seen[k]; ok {
			return false
		}

		seen[k] = struct{}{}

		for _, t := range k.Supertypes() {
			if t.IsName(name) {
				return true
			}

			if sup := t.Class(); sup != nil && walk(sup) {
				return true
			}
		}

		return false
	}

	return walk(c)
}

// IsEnumLike reports whether the class is an enum or an enum-shaped object.
func (c *Class) IsEnumLike() bool {
	return c.ClassKind == ClassKindEnum
}

// ReferencedNames returns the simple names of every type the class refers to
// through supertypes, property types, function signatures and nested classes.
func (c *Class) ReferencedNames() []string {
	var out []string

	c.visitTypes(func(t *TypeName) {
		if t.Variable {
			return
		}

		out = append(out, t.SimpleName())
	})

	return out
}

// Refresh relinks parents of the current members and refreshes nested classes.
func (c *Class) Refresh() {
	kept := c.members[:0]

	for _, m := range c.members {
		if m == nil {
			continue
		}

		switch v := m.(type) {
		case *Function:
			v.parent = c
		case *Property:
			v.parent = c
		case *Class:
			v.parent = c
			v.pkg = c.pkg
		}

		m.Refresh()
		kept = append(kept, m)
	}

	c.members = kept
}

func (c *Class) visitTypes(fn func(*TypeName)) {
	if c.Superclass != nil {
		c.Superclass.walk(fn)
	}

	for i := range c.Superinterfaces {
		c.Superinterfaces[i].walk(fn)
	}

	for _, m := range c.members {
		switch v := m.(type) {
		case *Function:
			v.visitTypes(fn)
		case *Property:
			v.Type.walk(fn)
		case *Class:
			v.visitTypes(fn)
		}
	}
}

func filterMembers[T Declaration](members []Declaration) []T {
	var out []T

	for _, m := range members {
		if v, ok := m.(T); ok {
			out = append(out, v)
		}
	}

	return out
}

func removeMember(members []Declaration, d Declaration) ([]Declaration, bool) {
	for i, m := range members {
		if m.ID() == d.ID() {
			return append(members[:i:i], members[i+1:]...), true
		}
	}

	return members, false
}
