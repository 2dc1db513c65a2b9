package decl

// Function is a function declaration, either top-level or a class member.
type Function struct {
	member

	ReturnType    *TypeName
	TypeVariables []string

	parameters []*Parameter
}

// NewFunction creates a function with the given original name.
func NewFunction(name string) *Function {
	return &Function{member: member{nameState: newNameState(name)}}
}

func (f *Function) Kind() Kind { return KindFunction }

// Members returns the parameters.
func (f *Function) Members() []Declaration {
	out := make([]Declaration, len(f.parameters))
	for i, p := range f.parameters {
		out[i] = p
	}

	return out
}

func (f *Function) Refresh() {
	for _, p := range f.parameters {
		p.parent = f
	}
}

// Parameters returns the parameter list.
func (f *Function) Parameters() []*Parameter {
	return append([]*Parameter(nil), f.parameters...)
}

// Parameter returns the parameter with the given current name, or nil.
func (f *Function) Parameter(name string) *Parameter {
	for _, p := range f.parameters {
		if p.Name() == name {
			return p
		}
	}

	return nil
}

// AddParameter appends a parameter unless one with the same name exists.
func (f *Function) AddParameter(name string, t TypeName) bool {
	if f.Parameter(name) != nil {
		return false
	}

	p := NewParameter(name, t)
	p.parent = f
	f.parameters = append(f.parameters, p)

	return true
}

// DeleteParameter removes the named parameter. Missing names are a no-op.
func (f *Function) DeleteParameter(name string) bool {
	for i, p := range f.parameters {
		if p.Name() == name {
			f.parameters = append(f.parameters[:i:i], f.parameters[i+1:]...)
			return true
		}
	}

	return false
}

// RenameParameter renames the named parameter and locks it. Missing names are a
// no-op.
func (f *Function) RenameParameter(source, oldName, newName string) bool {
	p := f.Parameter(oldName)
	if p == nil {
		return false
	}

	ok := p.Rename(source, newName)
	p.LockRenaming()

	return ok
}

// ChangeParameterType replaces the type of the named parameter.
func (f *Function) ChangeParameterType(name string, t TypeName) bool {
	p := f.Parameter(name)
	if p == nil {
		return false
	}

	p.Type = t

	return true
}

// ChangeReturnType replaces the return type.
func (f *Function) ChangeReturnType(t TypeName) {
	f.ReturnType = &t
}

// HasTypeVariables reports whether the function is generic.
func (f *Function) HasTypeVariables() bool {
	return len(f.TypeVariables) > 0
}

// RemoveTypeVariables makes the function non-generic. References to the removed
// variables are widened to the dynamic type.
func (f *Function) RemoveTypeVariables() {
	if len(f.TypeVariables) == 0 {
		return
	}

	vars := make(map[string]struct{}, len(f.TypeVariables))
	for _, v := range f.TypeVariables {
		vars[v] = struct{}{}
	}

	f.TypeVariables = nil

	f.visitTypes(func(t *TypeName) {
		if _, ok := vars[t.Name]; ok && t.Package == "" {
			*t = TypeName{Name: Dynamic}
		}
	})
}

func (f *Function) visitTypes(fn func(*TypeName)) {
	if f.ReturnType != nil {
		f.ReturnType.walk(fn)
	}

	for _, p := range f.parameters {
		p.Type.walk(fn)
	}
}

// Property is a property declaration, either top-level or a class member.
type Property struct {
	member

	Type    TypeName
	Mutable bool
}

// NewProperty creates a property with the given original name and type.
func NewProperty(name string, t TypeName) *Property {
	return &Property{member: member{nameState: newNameState(name)}, Type: t}
}

func (p *Property) Kind() Kind             { return KindProperty }
func (p *Property) Members() []Declaration { return nil }
func (p *Property) Refresh()               {}

// ChangeType replaces the property type.
func (p *Property) ChangeType(t TypeName) {
	p.Type = t
}

// Parameter is a function parameter.
type Parameter struct {
	nameState

	Type TypeName

	parent *Function
}

// NewParameter creates a parameter.
func NewParameter(name string, t TypeName) *Parameter {
	return &Parameter{nameState: newNameState(name), Type: t}
}

func (p *Parameter) Kind() Kind             { return KindParameter }
func (p *Parameter) Members() []Declaration { return nil }
func (p *Parameter) Refresh()               {}

// Function returns the owning function.
func (p *Parameter) Function() *Function { return p.parent }

// TypeAlias is a top-level type alias.
type TypeAlias struct {
	nameState

	Aliased       TypeName
	TypeVariables []string
}

// NewTypeAlias creates a type alias.
func NewTypeAlias(name string, aliased TypeName) *TypeAlias {
	return &TypeAlias{nameState: newNameState(name), Aliased: aliased}
}

func (a *TypeAlias) Kind() Kind             { return KindTypeAlias }
func (a *TypeAlias) Members() []Declaration { return nil }
func (a *TypeAlias) Refresh()               {}
