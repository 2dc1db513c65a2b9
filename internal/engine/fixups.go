package engine

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"declaration-corrector/internal/common"
	"declaration-corrector/internal/decl"
	"declaration-corrector/internal/diagnostic"
	"declaration-corrector/internal/naming"
	"declaration-corrector/internal/scope"
)

// fixups runs the global corrections over the renamed graph, in order.
func (e *Environment) fixups() {
	e.removeIgnored()
	e.fixMembers()
	e.assignDefaultPackage()
	e.fixPropertyCollisions()
	e.disambiguateSharedNames()
	e.fixMediaSources()
	e.deleteClasses()
}

// removeIgnored drops duplicate placeholder classes and points references to
// them at their representative.
func (e *Environment) removeIgnored() {
	for _, dup := range e.ignored {
		if e.pkg.RemoveClass(dup.class) {
			e.report.Ignored = append(e.report.Ignored, dup.class.OriginalName())
		}

		e.pkg.Retarget(dup.class, dup.representative)
	}
}

// fixMembers forces override on input-event clone functions, strips stray
// foreign names and applies parameter renames and casing.
func (e *Environment) fixMembers() {
	for _, d := range decl.AllMembers(e.pkg) {
		switch v := d.(type) {
		case *decl.Class:
			if e.opts.InputEventSupertype == "" || !v.HasSuperType(e.opts.InputEventSupertype) {
				continue
			}

			if fn := scope.NewClass(v, e.logger).FindFunction(e.opts.CloneFunction); fn != nil {
				fn.Decl().AddModifier(decl.ModifierOverride)
			}
		case *decl.Function:
			stripForeignName(v)
			e.fixParameters(v)
		case *decl.Property:
			stripForeignName(v)
		}
	}
}

type foreignNamed interface {
	Name() string
	IsOverride() bool
	ForeignName() (string, bool)
	RemoveForeignName()
}

func stripForeignName(m foreignNamed) {
	foreign, ok := m.ForeignName()
	if !ok {
		return
	}

	if m.IsOverride() || m.Name() == foreign {
		m.RemoveForeignName()
	}
}

// fixParameters reopens parameters whose name still needs a configured
// rename or member casing, renames them and locks them again.
func (e *Environment) fixParameters(f *decl.Function) {
	for _, p := range f.Parameters() {
		name := p.Name()
		if renamed, ok := e.opts.ParameterRenames[name]; ok {
			name = renamed
		}

		name = naming.MemberLevel(name)
		if name == p.Name() {
			continue
		}

		p.UnlockRenaming(reasonParameterCase)
		p.Rename(sourceParameter, name)
		p.LockRenaming()
	}
}

// assignDefaultPackage gives every resolved type reference without a package,
// or with a retargeted one, the default package.
func (e *Environment) assignDefaultPackage() {
	if e.opts.DefaultPackage == "" {
		return
	}

	e.pkg.VisitTypes(func(t *decl.TypeName) {
		if t.Class() == nil {
			return
		}

		if t.Package == "" || slices.Contains(e.opts.RetargetedPackages, t.Package) {
			t.Package = e.opts.DefaultPackage
		}
	})
}

// fixPropertyCollisions renames the Boolean property of every pair of
// properties that ended up with the same name.
func (e *Environment) fixPropertyCollisions() {
	for _, c := range e.pkg.AllClasses() {
		byName := make(map[string][]*decl.Property)

		for _, p := range c.Properties() {
			byName[p.Name()] = append(byName[p.Name()], p)
		}

		for _, name := range common.SortedKeys(byName) {
			props := byName[name]
			if len(props) < 2 {
				continue
			}

			for _, p := range props {
				if !p.Type.IsName(e.opts.BooleanType) {
					continue
				}

				p.UnlockRenaming(sourceCollision)
				p.Rename(sourceCollision, e.opts.BooleanPrefix+naming.Capitalize(name))
				p.LockRenaming()

				e.report.Diagnostics.AddInfo(diagnostic.CodePropertyCollisionFixed,
					fmt.Sprintf("renamed Boolean property %s to %s", name, p.Name()),
					c.Name(), p.OriginalName())

				break
			}
		}
	}
}

// disambiguateSharedNames renames distinct top-level classes that share a
// final name. Each class is renamed after its own name and its first
// property's type; a derived name that is unchanged or already taken gets a
// numeric suffix.
func (e *Environment) disambiguateSharedNames() {
	byName := make(map[string][]*decl.Class)

	for _, c := range e.pkg.TopLevelClasses() {
		byName[c.Name()] = append(byName[c.Name()], c)
	}

	taken := common.NewSet[string]()
	for name := range byName {
		taken.Add(name)
	}

	for _, name := range common.SortedKeys(byName) {
		classes := byName[name]
		if len(classes) < 2 {
			continue
		}

		for _, c := range classes {
			base, suffix := e.sharedName(c)

			derived := base + suffix
			if derived == name || taken.Has(derived) {
				derived = newStem(base, suffix, taken).Next()
			}

			taken.Add(derived)

			c.UnlockRenaming(sourceSharedName)
			c.Rename(sourceSharedName, derived)
			c.LockRenaming()

			e.report.Diagnostics.AddInfo(diagnostic.CodeSharedNameDisambiguated,
				fmt.Sprintf("class name %s is shared; renamed to %s", name, derived),
				c.OriginalName(), "")
		}

		e.logger.Debug("shared class name disambiguated",
			slog.String("name", name),
			slog.Int("classes", len(classes)))
	}
}

// sharedName derives a name from the class name and the type of its first
// property. A provider suffix is split off so it stays at the end.
func (e *Environment) sharedName(c *decl.Class) (string, string) {
	base, suffix := strings.TrimSpace(c.Name()), ""
	if s := e.opts.ProviderSuffix; s != "" && strings.Contains(base, s) {
		base, suffix = strings.ReplaceAll(base, s, ""), s
	}

	props := c.Properties()
	if len(props) == 0 {
		return base, suffix
	}

	names := append([]string{base}, props[0].Type.AllNames()...)

	return naming.JoinNames(names, e.keepSegment), suffix
}

// fixMediaSources strips generic functions and override modifiers from the
// known media-source classes.
func (e *Environment) fixMediaSources() {
	for _, c := range e.pkg.AllClasses() {
		if !slices.Contains(e.opts.MediaSourceClasses, c.Name()) {
			continue
		}

		for _, f := range c.Functions() {
			if f.HasTypeVariables() {
				c.RemoveFunction(f)
				continue
			}

			f.RemoveModifier(decl.ModifierOverride)
		}
	}
}

// deleteClasses removes every class a delete rule names, nested ones
// included, from the file or class that holds it.
func (e *Environment) deleteClasses() {
	deleted := common.NewSet(e.cfg.DeletedClasses()...)
	if len(deleted) == 0 {
		return
	}

	for _, c := range e.pkg.AllClasses() {
		if !deleted.Has(c.OriginalName()) {
			continue
		}

		switch parent := c.Parent().(type) {
		case *decl.File:
			parent.RemoveClass(c)
		case *decl.Class:
			parent.RemoveMember(c)
		default:
			continue
		}

		e.report.Deleted = append(e.report.Deleted, c.OriginalName())
		e.report.Diagnostics.AddInfo(diagnostic.CodeClassDeleted,
			"class removed by a delete rule", c.OriginalName(), "")
	}
}

// adjust runs the configured scope adjustments in class-name order.
func (e *Environment) adjust() {
	if len(e.opts.Adjustments) == 0 {
		return
	}

	for _, name := range common.SortedKeys(e.opts.Adjustments) {
		fn := e.opts.Adjustments[name]

		for _, c := range e.pkg.AllClasses() {
			if c.Name() == name {
				fn(scope.NewClass(c, e.logger))
			}
		}
	}
}
