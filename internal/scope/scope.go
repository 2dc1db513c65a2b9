package scope

import (
	"log/slog"

	"declaration-corrector/internal/decl"
	"declaration-corrector/internal/rules"
)

// Scope is the common view of every scope kind.
type Scope interface {
	Named() decl.Named
	Use(c NameCorrection, lock bool)
	NameCorrection() NameCorrection
	// Apply applies the staged name correction and reports whether the
	// declaration was renamed.
	Apply() bool
}

// Class is a lazy view over a class and its members.
type Class struct {
	staged

	target *decl.Class
	parent *Class
	logger *slog.Logger

	functions  []*Function
	properties []*Property
	classes    []*Class
	loaded     bool
}

// NewClass creates a class scope. A nil logger silences rule mismatch logs.
func NewClass(c *decl.Class, logger *slog.Logger) *Class {
	return &Class{target: c, logger: logger}
}

func (s *Class) Decl() *decl.Class { return s.target }
func (s *Class) Named() decl.Named { return s.target }
func (s *Class) Parent() *Class    { return s.parent }
func (s *Class) Apply() bool       { return ApplyName(s.target, s.NameCorrection()) }
func (s *Class) Functions() []*Function {
	s.load()
	return s.functions
}

func (s *Class) Properties() []*Property {
	s.load()
	return s.properties
}

func (s *Class) Classes() []*Class {
	s.load()
	return s.classes
}

func (s *Class) load() {
	if s.loaded {
		return
	}

	s.loaded = true

	for _, f := range s.target.Functions() {
		s.functions = append(s.functions, &Function{target: f, parent: s})
	}

	for _, p := range s.target.Properties() {
		s.properties = append(s.properties, &Property{target: p, parent: s})
	}

	for _, c := range s.target.Classes() {
		s.classes = append(s.classes, &Class{target: c, parent: s, logger: s.logger})
	}
}

// FindFunction returns the first function with the given current name.
func (s *Class) FindFunction(name string) *Function {
	for _, f := range s.Functions() {
		if f.target.Name() == name {
			return f
		}
	}

	return nil
}

// FindProperty returns the first property with the given current name.
func (s *Class) FindProperty(name string) *Property {
	for _, p := range s.Properties() {
		if p.target.Name() == name {
			return p
		}
	}

	return nil
}

// FindClass returns the first nested class with the given current name.
func (s *Class) FindClass(name string) *Class {
	for _, c := range s.Classes() {
		if c.target.Name() == name {
			return c
		}
	}

	return nil
}

// FindMember looks up a function, then a property, then a nested class.
func (s *Class) FindMember(name string) Scope {
	if f := s.FindFunction(name); f != nil {
		return f
	}

	if p := s.FindProperty(name); p != nil {
		return p
	}

	if c := s.FindClass(name); c != nil {
		return c
	}

	return nil
}

// HasMember reports whether any member has the given current name.
func (s *Class) HasMember(name string) bool {
	return s.FindMember(name) != nil
}

// OnMembers applies r to every member of the matching kind accepted by filter
// (nil accepts all). Member rules apply to functions and properties alike. It
// returns the number of members the rule matched.
func (s *Class) OnMembers(r rules.Rule, filter func(Scope) bool) int {
	n := 0

	switch rule := r.(type) {
	case rules.FunctionCorrection:
		n += s.OnFunctions(rule, func(f *Function) bool { return accept(filter, f) })
	case rules.PropertyCorrection:
		n += s.OnProperties(rule, func(p *Property) bool { return accept(filter, p) })
	case rules.ClassCorrection:
		n += s.OnClasses(rule, func(c *Class) bool { return accept(filter, c) })
	case rules.MemberCorrection:
		for _, f := range s.Functions() {
			if accept(filter, f) && rule.Correct(f.target) {
				n++
			}
		}

		for _, p := range s.Properties() {
			if accept(filter, p) && rule.Correct(p.target) {
				n++
			}
		}
	}

	return n
}

// OnFunctions applies r to every function accepted by filter.
func (s *Class) OnFunctions(r rules.FunctionCorrection, filter func(*Function) bool) int {
	n := 0

	for _, f := range s.Functions() {
		if (filter == nil || filter(f)) && r.Correct(f.target, s.logger) {
			n++
		}
	}

	return n
}

// OnProperties applies r to every property accepted by filter.
func (s *Class) OnProperties(r rules.PropertyCorrection, filter func(*Property) bool) int {
	n := 0

	for _, p := range s.Properties() {
		if (filter == nil || filter(p)) && r.Correct(p.target, s.logger) {
			n++
		}
	}

	return n
}

// OnClasses applies r to every nested class accepted by filter.
func (s *Class) OnClasses(r rules.ClassCorrection, filter func(*Class) bool) int {
	n := 0

	for _, c := range s.Classes() {
		if (filter == nil || filter(c)) && r.Correct(c.target, s.logger) {
			n++
		}
	}

	return n
}

// OnFunction applies r to the function with the given current name.
func (s *Class) OnFunction(name string, r rules.FunctionCorrection) bool {
	if f := s.FindFunction(name); f != nil {
		return r.Correct(f.target, s.logger)
	}

	return false
}

// OnProperty applies r to the property with the given current name.
func (s *Class) OnProperty(name string, r rules.PropertyCorrection) bool {
	if p := s.FindProperty(name); p != nil {
		return r.Correct(p.target, s.logger)
	}

	return false
}

// OnClass applies r to the nested class with the given current name.
func (s *Class) OnClass(name string, r rules.ClassCorrection) bool {
	if c := s.FindClass(name); c != nil {
		return r.Correct(c.target, s.logger)
	}

	return false
}

func accept[S Scope](filter func(Scope) bool, s S) bool {
	return filter == nil || filter(s)
}

// Function is a lazy view over a function and its parameters.
type Function struct {
	staged

	target *decl.Function
	parent *Class

	parameters []*Parameter
	loaded     bool
}

// NewFunction creates a scope for a file-level function.
func NewFunction(f *decl.Function) *Function {
	return &Function{target: f}
}

func (s *Function) Decl() *decl.Function { return s.target }
func (s *Function) Named() decl.Named    { return s.target }
func (s *Function) Parent() *Class       { return s.parent }
func (s *Function) Apply() bool          { return ApplyName(s.target, s.NameCorrection()) }

func (s *Function) Parameters() []*Parameter {
	if !s.loaded {
		s.loaded = true

		for _, p := range s.target.Parameters() {
			s.parameters = append(s.parameters, &Parameter{target: p, parent: s})
		}
	}

	return s.parameters
}

// FindParameter returns the parameter with the given current name.
func (s *Function) FindParameter(name string) *Parameter {
	for _, p := range s.Parameters() {
		if p.target.Name() == name {
			return p
		}
	}

	return nil
}

// OnParameters applies c to every parameter and returns how many were renamed.
func (s *Function) OnParameters(c NameCorrection) int {
	n := 0

	for _, p := range s.Parameters() {
		if ApplyName(p.target, c) {
			n++
		}
	}

	return n
}

// OnParameter applies c to the parameter with the given current name.
func (s *Function) OnParameter(name string, c NameCorrection) bool {
	if p := s.FindParameter(name); p != nil {
		return ApplyName(p.target, c)
	}

	return false
}

// Property is a view over a property.
type Property struct {
	staged

	target *decl.Property
	parent *Class
}

// NewProperty creates a scope for a file-level property.
func NewProperty(p *decl.Property) *Property {
	return &Property{target: p}
}

func (s *Property) Decl() *decl.Property { return s.target }
func (s *Property) Named() decl.Named    { return s.target }
func (s *Property) Parent() *Class       { return s.parent }
func (s *Property) Apply() bool          { return ApplyName(s.target, s.NameCorrection()) }

// Parameter is a view over a function parameter.
type Parameter struct {
	staged

	target *decl.Parameter
	parent *Function
}

func (s *Parameter) Decl() *decl.Parameter { return s.target }
func (s *Parameter) Named() decl.Named     { return s.target }
func (s *Parameter) Parent() *Function     { return s.parent }
func (s *Parameter) Apply() bool           { return ApplyName(s.target, s.NameCorrection()) }

// TypeAlias is a view over a type alias.
type TypeAlias struct {
	staged

	target *decl.TypeAlias
}

// NewTypeAlias creates a type-alias scope.
func NewTypeAlias(a *decl.TypeAlias) *TypeAlias {
	return &TypeAlias{target: a}
}

func (s *TypeAlias) Decl() *decl.TypeAlias { return s.target }
func (s *TypeAlias) Named() decl.Named     { return s.target }
func (s *TypeAlias) Apply() bool           { return ApplyName(s.target, s.NameCorrection()) }
