package engine

import (
	"declaration-corrector/internal/common"
	"declaration-corrector/internal/decl"
	"declaration-corrector/internal/naming"
	"declaration-corrector/internal/rules"
)

// standardTables are the lookups derived from the standard section once per
// run.
type standardTables struct {
	section          rules.StandardCorrections
	index            *rules.ClassIndex
	classRenames     map[string]string
	memberRenames    map[string]map[string]string
	overrides        map[string]common.Set[string]
	propOverrides    map[string]common.Set[string]
	functionRenames  map[string]string
	propertyRenames  map[string]string
	globalRenames    map[string]string
	ignoreFunctions  common.Set[string]
	ignoreProperties common.Set[string]
	prefixes         []rules.PrefixReplacement
}

func newStandardTables(s rules.StandardCorrections) *standardTables {
	idx := s.Index()

	return &standardTables{
		section:          s,
		index:            idx,
		classRenames:     idx.Renames(),
		memberRenames:    idx.MemberRenames(),
		overrides:        idx.ForcedOverrides(),
		propOverrides:    idx.ForcedPropertyOverrides(),
		functionRenames:  s.FunctionRenames(),
		propertyRenames:  s.PropertyRenames(),
		globalRenames:    s.MemberRenames(),
		ignoreFunctions:  common.NewSet(s.IgnoreFunctions...),
		ignoreProperties: common.NewSet(s.IgnoreProperties...),
		prefixes:         s.PrefixReplacements(),
	}
}

// memberName resolves the new name of a member: a class-level rename first,
// then the global function or property rename, then the global member rename,
// then prefix replacement followed by member casing.
func (t *standardTables) memberName(local, global map[string]string, d decl.Named) string {
	if name, ok := local[d.OriginalName()]; ok {
		return name
	}

	if name, ok := global[d.OriginalName()]; ok {
		return name
	}

	if name, ok := t.globalRenames[d.OriginalName()]; ok {
		return name
	}

	return naming.MemberLevel(rules.ReplacePrefix(t.prefixes, d.Name()))
}

func (e *Environment) standardPass() {
	for _, f := range e.pkg.Files() {
		for _, m := range f.Members() {
			switch v := m.(type) {
			case *decl.Class:
				e.correctClass(v)
			case *decl.Function:
				e.correctFunction(nil, v)
			case *decl.Property:
				e.correctProperty(nil, v)
			case *decl.TypeAlias:
				e.correctTypeAlias(v)
			}
		}
	}
}

func (e *Environment) correctClass(c *decl.Class) {
	if !e.visit(c) || !e.pending(c) {
		return
	}

	newName, ok := e.std.classRenames[c.OriginalName()]
	if !ok {
		newName = naming.TopLevel(c.Name())
	}

	c.Rename(sourceStandard, newName)

	if rule, ok := e.std.index.Lookup(c.OriginalName()); ok {
		rule.Correct(c, e.logger)
	}

	for _, rule := range e.std.index.SupertypeRules() {
		if rule.Matches(c) {
			rule.Correct(c, e.logger)
		}
	}

	e.finalize(c)

	for _, m := range c.Members() {
		switch v := m.(type) {
		case *decl.Class:
			e.correctClass(v)
		case *decl.Function:
			e.correctFunction(c, v)
		case *decl.Property:
			e.correctProperty(c, v)
		}
	}

	if e.opts.MediaSourceSupertype != "" && c.HasSuperType(e.opts.MediaSourceSupertype) {
		stripGenerics(c)
	}
}

func (e *Environment) correctFunction(parent *decl.Class, f *decl.Function) {
	if !e.visit(f) || !e.pending(f) {
		return
	}

	if e.std.ignoreFunctions.Has(f.OriginalName()) {
		return
	}

	var local map[string]string

	if parent != nil {
		local = e.std.memberRenames[parent.OriginalName()]

		if e.std.overrides[parent.OriginalName()].Has(f.OriginalName()) {
			f.AddModifier(decl.ModifierOverride)
			f.RemoveForeignName()
		}
	}

	f.Rename(sourceStandard, e.std.memberName(local, e.std.functionRenames, f))

	for _, rule := range e.std.section.FunctionRules(f.OriginalName()) {
		rule.Correct(f, e.logger)
	}

	f.LockRenaming()

	e.renameParameters(f, sourceStandard)
}

func (e *Environment) correctProperty(parent *decl.Class, p *decl.Property) {
	if !e.visit(p) || !e.pending(p) {
		return
	}

	if e.std.ignoreProperties.Has(p.OriginalName()) {
		return
	}

	var local map[string]string

	if parent != nil {
		local = e.std.memberRenames[parent.OriginalName()]

		if e.std.propOverrides[parent.OriginalName()].Has(p.OriginalName()) {
			p.AddModifier(decl.ModifierOverride)
			p.RemoveForeignName()
		}
	}

	p.Rename(sourceStandard, e.std.memberName(local, e.std.propertyRenames, p))

	for _, rule := range e.std.section.PropertyRules(p.OriginalName()) {
		rule.Correct(p, e.logger)
	}

	p.LockRenaming()
}

func (e *Environment) correctTypeAlias(a *decl.TypeAlias) {
	if !e.visit(a) || !e.pending(a) {
		return
	}

	a.Rename(sourceStandard, naming.MemberLevel(a.Name()))
	a.LockRenaming()
}

// stripGenerics drops type variables and override modifiers from every
// function of c.
func stripGenerics(c *decl.Class) {
	for _, f := range c.Functions() {
		f.RemoveTypeVariables()
		f.RemoveModifier(decl.ModifierOverride)
	}
}
