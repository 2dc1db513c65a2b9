package decl

// File is one logical source file of declarations.
type File struct {
	id ID

	Name        string
	PackageName string
	Imports     []string

	members []Declaration
	pkg     *Package
}

// NewFile creates an empty file.
func NewFile(name, packageName string) *File {
	return &File{id: nextID(), Name: name, PackageName: packageName}
}

func (f *File) ID() ID     { return f.id }
func (f *File) Kind() Kind { return KindFile }

// Members returns the top-level declarations in order.
func (f *File) Members() []Declaration {
	return append([]Declaration(nil), f.members...)
}

// Classes returns the top-level classes.
func (f *File) Classes() []*Class { return filterMembers[*Class](f.members) }

// Functions returns the top-level functions.
func (f *File) Functions() []*Function { return filterMembers[*Function](f.members) }

// Properties returns the top-level properties.
func (f *File) Properties() []*Property { return filterMembers[*Property](f.members) }

// TypeAliases returns the top-level type aliases.
func (f *File) TypeAliases() []*TypeAlias { return filterMembers[*TypeAlias](f.members) }

// Add appends a top-level declaration.
func (f *File) Add(d Declaration) {
	switch v := d.(type) {
	case *Class:
		v.parent = f
		v.pkg = f.pkg
	case *Function:
		v.parent = f
	case *Property:
		v.parent = f
	}

	f.members = append(f.members, d)
}

// Remove removes a top-level declaration. It reports whether d was found.
func (f *File) Remove(d Declaration) bool {
	var ok bool

	f.members, ok = removeMember(f.members, d)

	return ok
}

// RemoveClass removes a top-level class.
func (f *File) RemoveClass(c *Class) bool { return f.Remove(c) }

// Refresh relinks and refreshes every member.
func (f *File) Refresh() {
	for _, m := range f.members {
		switch v := m.(type) {
		case *Class:
			v.parent = f
			v.pkg = f.pkg
		case *Function:
			v.parent = f
		case *Property:
			v.parent = f
		}

		m.Refresh()
	}
}

// Package is the root of a declaration graph.
type Package struct {
	id ID

	Name string

	files []*File
	index map[string]*Class
}

// NewPackage creates a package over the given files and links type references.
func NewPackage(name string, files ...*File) *Package {
	p := &Package{id: nextID(), Name: name}
	for _, f := range files {
		p.AddFile(f)
	}

	p.Refresh()

	return p
}

func (p *Package) ID() ID     { return p.id }
func (p *Package) Kind() Kind { return KindPackage }

// Members returns the files.
func (p *Package) Members() []Declaration {
	out := make([]Declaration, len(p.files))
	for i, f := range p.files {
		out[i] = f
	}

	return out
}

// Files returns the files in load order.
func (p *Package) Files() []*File {
	return append([]*File(nil), p.files...)
}

// AddFile appends a file. Call Refresh once all files are added.
func (p *Package) AddFile(f *File) {
	f.pkg = p
	p.files = append(p.files, f)
}

// Refresh refreshes every file and re-links type references.
func (p *Package) Refresh() {
	for _, f := range p.files {
		f.pkg = p
		f.Refresh()
	}

	p.Link()
}

// Link resolves every type reference to the class it names. Classes are
// indexed by original name; the first declaration of a name wins.
func (p *Package) Link() {
	p.index = make(map[string]*Class)

	for _, c := range p.AllClasses() {
		if _, ok := p.index[c.OriginalName()]; !ok {
			p.index[c.OriginalName()] = c
		}
	}

	p.VisitTypes(func(t *TypeName) {
		if t.ref == nil {
			p.resolve(t)
		}
	})
}

func (p *Package) resolve(t *TypeName) {
	if t.Variable || p.index == nil {
		return
	}

	if c, ok := p.index[t.Name]; ok {
		t.ref = c
	}
}

// TopLevelClasses returns every file-level class.
func (p *Package) TopLevelClasses() []*Class {
	var out []*Class
	for _, f := range p.files {
		out = append(out, f.Classes()...)
	}

	return out
}

// AllClasses returns every class including nested ones.
func (p *Package) AllClasses() []*Class {
	var out []*Class

	for _, d := range AllMembers(p) {
		if c, ok := d.(*Class); ok {
			out = append(out, c)
		}
	}

	return out
}

// VisitTypes calls fn for every type reference in the package.
func (p *Package) VisitTypes(fn func(*TypeName)) {
	for _, f := range p.files {
		for _, m := range f.members {
			switch v := m.(type) {
			case *Class:
				v.visitTypes(fn)
			case *Function:
				v.visitTypes(fn)
			case *Property:
				v.Type.walk(fn)
			case *TypeAlias:
				v.Aliased.walk(fn)
			}
		}
	}
}

// Retarget points every reference to from at to instead.
func (p *Package) Retarget(from, to *Class) {
	p.VisitTypes(func(t *TypeName) {
		if t.ref == from {
			t.ref = to
		}
	})
}

// RemoveClass removes c from whichever file declares it at top level.
func (p *Package) RemoveClass(c *Class) bool {
	for _, f := range p.files {
		if f.RemoveClass(c) {
			return true
		}
	}

	return false
}
