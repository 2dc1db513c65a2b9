package rules

// ClassBuilder composes a ClassCorrection incrementally.
type ClassBuilder struct {
	c ClassCorrection
}

// NewClass starts a rule for the class with the given original name.
func NewClass(name string) *ClassBuilder {
	return &ClassBuilder{c: ClassCorrection{Name: name}}
}

// NewClassWithSupertype starts a rule for every class deriving from superType.
func NewClassWithSupertype(superType string) *ClassBuilder {
	return &ClassBuilder{c: ClassCorrection{SuperType: superType}}
}

// Rename sets the new class name.
func (b *ClassBuilder) Rename(newName string) *ClassBuilder {
	b.c.NewName = newName
	return b
}

// Delete marks the class for removal from the output.
func (b *ClassBuilder) Delete() *ClassBuilder {
	b.c.Delete = true
	return b
}

// RemoveSupertype drops the named supertypes.
func (b *ClassBuilder) RemoveSupertype(types ...string) *ClassBuilder {
	b.c.RemoveSuperTypes = unionList(b.c.RemoveSuperTypes, types)
	return b
}

// AddSupertype appends the named supertypes as interfaces.
func (b *ClassBuilder) AddSupertype(types ...string) *ClassBuilder {
	b.c.AddSuperTypes = unionList(b.c.AddSuperTypes, types)
	return b
}

// Function adds a function rule. returnType may be empty to match any.
func (b *ClassBuilder) Function(name, returnType string, fn func(*FunctionBuilder)) *ClassBuilder {
	fb := NewFunction(name, returnType)
	if fn != nil {
		fn(fb)
	}

	b.c.Functions = mergeFunctions(b.c.Functions, []FunctionCorrection{fb.Build()})

	return b
}

// Property adds a property rule. typ may be empty to match any.
func (b *ClassBuilder) Property(name, typ string, fn func(*PropertyBuilder)) *ClassBuilder {
	pb := NewProperty(name, typ)
	if fn != nil {
		fn(pb)
	}

	b.c.Properties = mergeProperties(b.c.Properties, []PropertyCorrection{pb.Build()})

	return b
}

// RenameMember renames any member with the given original name.
func (b *ClassBuilder) RenameMember(name, newName string) *ClassBuilder {
	b.c.Members = mergeMembers(b.c.Members, []MemberCorrection{{Name: name, NewName: newName}})
	return b
}

// RenameFunction adds a function rule that only renames.
func (b *ClassBuilder) RenameFunction(name, newName string) *ClassBuilder {
	return b.Function(name, "", func(f *FunctionBuilder) { f.Rename(newName) })
}

// RenameProperty adds a property rule that only renames.
func (b *ClassBuilder) RenameProperty(name, newName string) *ClassBuilder {
	return b.Property(name, "", func(p *PropertyBuilder) { p.Rename(newName) })
}

// Include layers other on top of the rule being built.
func (b *ClassBuilder) Include(other ClassCorrection) *ClassBuilder {
	b.c = b.c.Merge(other)
	return b
}

// Build returns the composed rule.
func (b *ClassBuilder) Build() ClassCorrection { return b.c }

// FunctionBuilder composes a FunctionCorrection.
type FunctionBuilder struct {
	f FunctionCorrection
}

// NewFunction starts a rule for the function with the given original name.
// returnType may be empty to match any.
func NewFunction(name, returnType string) *FunctionBuilder {
	return &FunctionBuilder{f: FunctionCorrection{Name: name, ReturnType: returnType}}
}

// Rename sets the new function name.
func (b *FunctionBuilder) Rename(newName string) *FunctionBuilder {
	b.f.NewName = newName
	return b
}

// ChangeReturnType replaces the return type.
func (b *FunctionBuilder) ChangeReturnType(t string) *FunctionBuilder {
	b.f.NewReturnType = t
	return b
}

// ShouldOverride adds or removes the override modifier.
func (b *FunctionBuilder) ShouldOverride(v bool) *FunctionBuilder {
	b.f.ShouldOverride = Bool(v)
	return b
}

// RemoveTypeVariables erases the type variables to dynamic.
func (b *FunctionBuilder) RemoveTypeVariables() *FunctionBuilder {
	b.f.RemoveTypeVariables = Bool(true)
	return b
}

// RenameParameter renames a parameter by its current name.
func (b *FunctionBuilder) RenameParameter(oldName, newName string) *FunctionBuilder {
	b.f.RenameParameters = unionMap(b.f.RenameParameters, map[string]string{oldName: newName})
	return b
}

// RemoveParameter drops a parameter when present.
func (b *FunctionBuilder) RemoveParameter(name string) *FunctionBuilder {
	b.f.RemoveParameters = unionList(b.f.RemoveParameters, []string{name})
	return b
}

// AddParameter appends a parameter unless one with that name exists.
func (b *FunctionBuilder) AddParameter(name, typ string) *FunctionBuilder {
	b.f.AddParameters = unionMap(b.f.AddParameters, map[string]string{name: typ})
	return b
}

// Include layers other on top when it targets the same function.
func (b *FunctionBuilder) Include(other FunctionCorrection) *FunctionBuilder {
	if other.Name == b.f.Name {
		b.f = b.f.Merge(other)
	}

	return b
}

// Build returns the composed rule.
func (b *FunctionBuilder) Build() FunctionCorrection { return b.f }

// PropertyBuilder composes a PropertyCorrection.
type PropertyBuilder struct {
	p PropertyCorrection
}

// NewProperty starts a rule for the property with the given original name.
// typ may be empty to match any.
func NewProperty(name, typ string) *PropertyBuilder {
	return &PropertyBuilder{p: PropertyCorrection{Name: name, Type: typ}}
}

// Rename sets the new property name.
func (b *PropertyBuilder) Rename(newName string) *PropertyBuilder {
	b.p.NewName = newName
	return b
}

// ChangeType replaces the property type.
func (b *PropertyBuilder) ChangeType(t string) *PropertyBuilder {
	b.p.NewType = t
	return b
}

// ShouldOverride adds or removes the override modifier.
func (b *PropertyBuilder) ShouldOverride(v bool) *PropertyBuilder {
	b.p.ShouldOverride = Bool(v)
	return b
}

// Include layers other on top when it targets the same property.
func (b *PropertyBuilder) Include(other PropertyCorrection) *PropertyBuilder {
	if other.Name == b.p.Name {
		b.p = b.p.Merge(other)
	}

	return b
}

// Build returns the composed rule.
func (b *PropertyBuilder) Build() PropertyCorrection { return b.p }

// classList is the shared part of the class-holding section builders.
type classList struct {
	classes []ClassCorrection
}

func (l *classList) add(c ClassCorrection) {
	l.classes = mergeClasses(l.classes, []ClassCorrection{c})
}

func (l *classList) class(name string, fn func(*ClassBuilder)) {
	cb := NewClass(name)
	if fn != nil {
		fn(cb)
	}

	l.add(cb.Build())
}

// EnumBuilder composes the enum section.
type EnumBuilder struct{ classList }

// Class adds or extends the rule for an enum class.
func (b *EnumBuilder) Class(name string, fn func(*ClassBuilder)) *EnumBuilder {
	b.class(name, fn)
	return b
}

// RenameClass renames an enum class.
func (b *EnumBuilder) RenameClass(name, newName string) *EnumBuilder {
	b.add(ClassCorrection{Name: name, NewName: newName})
	return b
}

// Include merges the classes of other into the section.
func (b *EnumBuilder) Include(other EnumCorrections) *EnumBuilder {
	b.classes = mergeClasses(b.classes, other.Classes)
	return b
}

// Build returns the composed section.
func (b *EnumBuilder) Build() EnumCorrections {
	return EnumCorrections{Classes: b.classes}
}

// UnnamedClassBuilder composes the unnamed-class section.
type UnnamedClassBuilder struct{ classList }

// Class adds or extends the rule for a placeholder class.
func (b *UnnamedClassBuilder) Class(name string, fn func(*ClassBuilder)) *UnnamedClassBuilder {
	b.class(name, fn)
	return b
}

// RenameClass names a placeholder class.
func (b *UnnamedClassBuilder) RenameClass(name, newName string) *UnnamedClassBuilder {
	b.add(ClassCorrection{Name: name, NewName: newName})
	return b
}

// Include merges the classes of other into the section.
func (b *UnnamedClassBuilder) Include(other UnnamedClassCorrections) *UnnamedClassBuilder {
	b.classes = mergeClasses(b.classes, other.Classes)
	return b
}

// Build returns the composed section.
func (b *UnnamedClassBuilder) Build() UnnamedClassCorrections {
	return UnnamedClassCorrections{Classes: b.classes}
}

// NonClassMemberBuilder composes the non-class-member section.
type NonClassMemberBuilder struct {
	n NonClassMemberCorrections
}

// RenameTypeAlias renames a top-level type alias.
func (b *NonClassMemberBuilder) RenameTypeAlias(name, newName string) *NonClassMemberBuilder {
	b.n.TypeAliasRenames = unionMap(b.n.TypeAliasRenames, map[string]string{name: newName})
	return b
}

// RenameProperty renames a top-level property.
func (b *NonClassMemberBuilder) RenameProperty(name, newName string) *NonClassMemberBuilder {
	b.n.PropertyRenames = unionMap(b.n.PropertyRenames, map[string]string{name: newName})
	return b
}

// Include merges other into the section.
func (b *NonClassMemberBuilder) Include(other NonClassMemberCorrections) *NonClassMemberBuilder {
	b.n = b.n.Plus(other)
	return b
}

// Build returns the composed section.
func (b *NonClassMemberBuilder) Build() NonClassMemberCorrections { return b.n }

// StandardBuilder composes the standard section.
type StandardBuilder struct {
	s StandardCorrections
}

// Class adds or extends the rule for the class with the given original name.
func (b *StandardBuilder) Class(name string, fn func(*ClassBuilder)) *StandardBuilder {
	cb := NewClass(name)
	if fn != nil {
		fn(cb)
	}

	b.s.Classes = mergeClasses(b.s.Classes, []ClassCorrection{cb.Build()})

	return b
}

// ClassWithSupertype adds a rule for every class deriving from superType.
func (b *StandardBuilder) ClassWithSupertype(superType string, fn func(*ClassBuilder)) *StandardBuilder {
	cb := NewClassWithSupertype(superType)
	if fn != nil {
		fn(cb)
	}

	b.s.Classes = mergeClasses(b.s.Classes, []ClassCorrection{cb.Build()})

	return b
}

// RenameClass adds a class rule that only renames.
func (b *StandardBuilder) RenameClass(name, newName string) *StandardBuilder {
	return b.Class(name, func(c *ClassBuilder) { c.Rename(newName) })
}

// ReplaceCommonPrefix replaces a leading class-name prefix.
func (b *StandardBuilder) ReplaceCommonPrefix(prefix, replacement string) *StandardBuilder {
	b.s.CommonPrefixReplacements = unionMap(b.s.CommonPrefixReplacements, map[string]string{prefix: replacement})
	return b
}

// IgnoreFunctions leaves the named functions untouched.
func (b *StandardBuilder) IgnoreFunctions(names ...string) *StandardBuilder {
	b.s.IgnoreFunctions = unionList(b.s.IgnoreFunctions, names)
	return b
}

// IgnoreProperties leaves the named properties untouched.
func (b *StandardBuilder) IgnoreProperties(names ...string) *StandardBuilder {
	b.s.IgnoreProperties = unionList(b.s.IgnoreProperties, names)
	return b
}

// Function adds a function rule applied in every class.
func (b *StandardBuilder) Function(name, returnType string, fn func(*FunctionBuilder)) *StandardBuilder {
	fb := NewFunction(name, returnType)
	if fn != nil {
		fn(fb)
	}

	b.s.Functions = mergeFunctions(b.s.Functions, []FunctionCorrection{fb.Build()})

	return b
}

// Property adds a property rule applied in every class.
func (b *StandardBuilder) Property(name, typ string, fn func(*PropertyBuilder)) *StandardBuilder {
	pb := NewProperty(name, typ)
	if fn != nil {
		fn(pb)
	}

	b.s.Properties = mergeProperties(b.s.Properties, []PropertyCorrection{pb.Build()})

	return b
}

// RenameMember renames any member with the given original name.
func (b *StandardBuilder) RenameMember(name, newName string) *StandardBuilder {
	b.s.Members = mergeMembers(b.s.Members, []MemberCorrection{{Name: name, NewName: newName}})
	return b
}

// Include merges other into the section.
func (b *StandardBuilder) Include(other StandardCorrections) *StandardBuilder {
	b.s = b.s.Plus(other)
	return b
}

// Build returns the composed section.
func (b *StandardBuilder) Build() StandardCorrections { return b.s }

// ConfigurationBuilder composes a Configuration section by section.
type ConfigurationBuilder struct {
	enums    EnumBuilder
	nonClass NonClassMemberBuilder
	standard StandardBuilder
	unnamed  UnnamedClassBuilder
}

// Enums edits the enum section.
func (b *ConfigurationBuilder) Enums(fn func(*EnumBuilder)) *ConfigurationBuilder {
	fn(&b.enums)
	return b
}

// NonClassMembers edits the non-class-member section.
func (b *ConfigurationBuilder) NonClassMembers(fn func(*NonClassMemberBuilder)) *ConfigurationBuilder {
	fn(&b.nonClass)
	return b
}

// Standard edits the standard section.
func (b *ConfigurationBuilder) Standard(fn func(*StandardBuilder)) *ConfigurationBuilder {
	fn(&b.standard)
	return b
}

// UnnamedClasses edits the unnamed-class section.
func (b *ConfigurationBuilder) UnnamedClasses(fn func(*UnnamedClassBuilder)) *ConfigurationBuilder {
	fn(&b.unnamed)
	return b
}

// Include layers every section of other on top.
func (b *ConfigurationBuilder) Include(other Configuration) *ConfigurationBuilder {
	b.enums.Include(other.EnumCorrections)
	b.nonClass.Include(other.NonClassMemberCorrections)
	b.standard.Include(other.StandardCorrections)
	b.unnamed.Include(other.UnnamedClasses)

	return b
}

// Build returns the composed configuration.
func (b *ConfigurationBuilder) Build() Configuration {
	return Configuration{
		EnumCorrections:           b.enums.Build(),
		NonClassMemberCorrections: b.nonClass.Build(),
		StandardCorrections:       b.standard.Build(),
		UnnamedClasses:            b.unnamed.Build(),
	}
}

// Build runs fn against a fresh ConfigurationBuilder and returns the result.
func Build(fn func(*ConfigurationBuilder)) Configuration {
	var b ConfigurationBuilder

	fn(&b)

	return b.Build()
}
