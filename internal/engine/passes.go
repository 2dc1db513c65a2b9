package engine

import (
	"log/slog"

	"declaration-corrector/internal/decl"
	"declaration-corrector/internal/diagnostic"
	"declaration-corrector/internal/naming"
)

// enumPass applies the enum rules. Enum classes and classes an enum rule
// names are renamed, locked and finalized; supertype-only enum rules are
// broadcast to every top-level class.
func (e *Environment) enumPass() {
	idx := e.cfg.EnumCorrections.Index()
	broadcast := idx.SupertypeRules()

	for _, c := range e.pkg.TopLevelClasses() {
		rule, named := idx.Lookup(c.OriginalName())
		if !named && !c.IsEnumLike() {
			for _, r := range broadcast {
				if r.Matches(c) {
					r.Correct(c, e.logger)
				}
			}

			continue
		}

		if named {
			rule.Correct(c, e.logger)
		}

		for _, r := range broadcast {
			if !r.Correct(c, e.logger) {
				e.report.Diagnostics.AddInfo(diagnostic.CodeRuleMismatch,
					"enum rule for supertype "+r.SuperType+" does not apply", c.OriginalName(), "")
			}
		}

		c.Rename(sourceEnum, naming.TopLevel(c.Name()))
		c.LockRenaming()

		if e.finalize(c) {
			e.enums = append(e.enums, c)
			e.report.Enums = append(e.report.Enums, c.Name())
		}
	}

	e.logger.Debug("enum pass done", slog.Int("enums", len(e.enums)))
}

// nonClassPass renames and locks file-level type aliases, functions and
// properties. Properties typed dynamic and the root property stay open.
func (e *Environment) nonClassPass() {
	renames := e.cfg.NonClassMemberCorrections

	for _, f := range e.pkg.Files() {
		for _, a := range f.TypeAliases() {
			if name, ok := renames.TypeAliasRenames[a.OriginalName()]; ok {
				a.Rename(sourceNonClass, name)
			}

			a.LockRenaming()
			e.finalize(a)
		}

		for _, fn := range f.Functions() {
			fn.LockRenaming()
			e.renameParameters(fn, sourceNonClass)
			e.finalize(fn)
		}

		for _, p := range f.Properties() {
			if name, ok := renames.PropertyRenames[p.OriginalName()]; ok {
				p.Rename(sourceNonClass, name)
			}

			p.LockRenaming()

			if p.Name() == e.opts.RootProperty || p.Type.IsName(decl.Dynamic) {
				continue
			}

			e.finalize(p)
		}
	}
}
