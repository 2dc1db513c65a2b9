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
	"declaration-corrector/internal/rules"
)

// Rename sources recorded in the declaration rename history.
const (
	sourceEnum          = "enumCorrections"
	sourceNonClass      = "nonClassMemberCorrections"
	sourceUnnamed       = "unnamedClassCorrections"
	sourceStandard      = "standardCorrections"
	sourceParameter     = "parameterCorrections"
	sourceCollision     = "propertyCollision"
	sourceSharedName    = "sharedNameDisambiguation"
	reasonParameterCase = "parameter casing"
)

// Report summarizes a run.
type Report struct {
	Diagnostics diagnostic.Diagnostics
	// Enums holds the final names of the enum classes.
	Enums []string
	// Unresolved holds placeholder classes whose derived name still ends in a
	// digit.
	Unresolved []string
	// Ignored holds the duplicate placeholder classes that were removed.
	Ignored []string
	// Deleted holds the original names of classes removed by delete rules.
	Deleted []string
	// Pruned holds the names of classes outside the dependency closure.
	Pruned []string
	// Renamed lists the surviving top-level classes whose name changed, as
	// "Original -> Final (sources)".
	Renamed []string
}

// Environment runs the passes over one package. It is not safe for concurrent
// use and processes its package once.
type Environment struct {
	pkg    *decl.Package
	cfg    rules.Configuration
	opts   Options
	logger *slog.Logger

	status     map[decl.ID]Status
	finalNames common.Set[string]
	visited    common.Set[decl.ID]

	enums   []*decl.Class
	unnamed []*decl.Class
	ignored []ignoredClass

	std    *standardTables
	report Report
	done   bool
}

// New creates an environment over pkg with a resolved configuration.
func New(pkg *decl.Package, cfg rules.Configuration, opts Options) *Environment {
	return &Environment{
		pkg:        pkg,
		cfg:        cfg,
		opts:       opts,
		logger:     opts.logger(),
		status:     make(map[decl.ID]Status),
		finalNames: common.NewSet[string](),
		visited:    common.NewSet[decl.ID](),
		std:        newStandardTables(cfg.StandardCorrections),
	}
}

// Package returns the package being corrected.
func (e *Environment) Package() *decl.Package { return e.pkg }

// Status returns the bookkeeping state of d.
func (e *Environment) Status(d decl.Declaration) Status {
	return e.status[d.ID()]
}

// Process runs every pass, the global fixups and pruning. Calling it again
// returns the first report without touching the package.
func (e *Environment) Process() *Report {
	if e.done {
		return &e.report
	}

	e.done = true

	e.enumPass()
	e.nonClassPass()
	e.unnamedPass()
	e.standardPass()
	e.fixups()
	e.adjust()

	if !e.opts.IncludeAllClasses {
		e.prune()
	}

	e.pkg.Refresh()
	e.collectRenames()

	e.logger.Info("correction finished",
		slog.Int("enums", len(e.report.Enums)),
		slog.Int("unresolved", len(e.report.Unresolved)),
		slog.Int("ignored", len(e.report.Ignored)),
		slog.Int("deleted", len(e.report.Deleted)),
		slog.Int("pruned", len(e.report.Pruned)),
		slog.Int("renamed", len(e.report.Renamed)))

	return &e.report
}

func (e *Environment) collectRenames() {
	for _, c := range e.pkg.TopLevelClasses() {
		if c.Name() == c.OriginalName() {
			continue
		}

		var sources []string
		for _, ev := range c.RenameHistory() {
			if !slices.Contains(sources, ev.Source) {
				sources = append(sources, ev.Source)
			}
		}

		e.report.Renamed = append(e.report.Renamed, fmt.Sprintf("%s -> %s (%s)",
			c.OriginalName(), c.Name(), strings.Join(sources, ", ")))
	}
}

// pending reports whether d is still open to the current pass.
func (e *Environment) pending(d decl.Declaration) bool {
	return e.status[d.ID()] == StatusPending
}

// finalize marks d as done. A class is only marked when no other finalized
// class holds its current name.
func (e *Environment) finalize(d decl.Named) bool {
	if c, ok := d.(*decl.Class); ok && !e.finalNames.Add(c.Name()) {
		e.logger.Debug("class name already finalized",
			slog.String("class", c.Name()),
			slog.String("original", c.OriginalName()))

		return false
	}

	e.status[d.ID()] = StatusFinalized

	return true
}

type ignoredClass struct {
	class          *decl.Class
	representative *decl.Class
}

func (e *Environment) ignore(c *decl.Class, representative *decl.Class) {
	e.status[c.ID()] = StatusIgnored
	e.ignored = append(e.ignored, ignoredClass{class: c, representative: representative})
	e.report.Diagnostics.AddInfo(diagnostic.CodeDuplicateIgnored,
		"placeholder class has the same shape as "+representative.OriginalName(),
		c.OriginalName(), "")
}

// visit records d for the standard pass and reports whether it is new.
func (e *Environment) visit(d decl.Declaration) bool {
	return e.visited.Add(d.ID())
}

// keepSegment filters type-name segments out of derived names.
func (e *Environment) keepSegment(s string) bool {
	if s == e.opts.DefaultPackage {
		return false
	}

	for _, ignored := range e.opts.IgnoredTypeSegments {
		if s == ignored {
			return false
		}
	}

	for _, pkg := range e.opts.RetargetedPackages {
		if s == pkg {
			return false
		}
	}

	return true
}

// renameParameters applies the configured parameter renames and member casing
// to every parameter of f and locks them.
func (e *Environment) renameParameters(f *decl.Function, source string) {
	for _, p := range f.Parameters() {
		name := p.Name()
		if renamed, ok := e.opts.ParameterRenames[name]; ok {
			name = renamed
		}

		p.Rename(source, naming.MemberLevel(name))
		p.LockRenaming()
	}
}
