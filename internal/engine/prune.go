package engine

import (
	"log/slog"

	"declaration-corrector/internal/closure"
	"declaration-corrector/internal/common"
	"declaration-corrector/internal/diagnostic"
)

// roots returns the closure roots: the required classes, the minimal roots
// and, when enabled, every enum class.
func (e *Environment) roots() []string {
	roots := append([]string(nil), e.opts.RequiredClasses...)
	roots = append(roots, e.opts.MinimalRoots...)

	if e.opts.IncludeAllEnums {
		for _, c := range e.enums {
			roots = append(roots, c.Name())
		}
	}

	return roots
}

// prune removes every top-level class outside the dependency closure of the
// roots.
func (e *Environment) prune() {
	unreachable := common.NewSet(closure.FromPackage(e.pkg).Unreachable(e.roots()...)...)

	for _, f := range e.pkg.Files() {
		for _, c := range f.Classes() {
			if !unreachable.Has(c.Name()) {
				continue
			}

			f.RemoveClass(c)
			e.report.Pruned = append(e.report.Pruned, c.Name())
			e.report.Diagnostics.AddInfo(diagnostic.CodeClassPruned,
				"class is not reachable from the required classes", c.Name(), "")
		}
	}

	e.logger.Debug("pruned to dependency closure",
		slog.Int("unreachable", len(unreachable)),
		slog.Int("pruned", len(e.report.Pruned)))
}
