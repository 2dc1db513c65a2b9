package engine

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"declaration-corrector/internal/common"
	"declaration-corrector/internal/decl"
	"declaration-corrector/internal/diagnostic"
	"declaration-corrector/internal/naming"
	"declaration-corrector/internal/rules"
)

// shapeGroup is a set of placeholder classes with identical property shapes.
// The first class is the representative.
type shapeGroup struct {
	key     string
	classes []*decl.Class
}

// shapeKey identifies a class by its sorted (property name, property type)
// pairs.
func shapeKey(c *decl.Class) string {
	props := c.Properties()
	pairs := make([]string, len(props))

	for i, p := range props {
		pairs[i] = p.OriginalName() + ":" + p.Type.String()
	}

	slices.Sort(pairs)

	return strings.Join(pairs, ";")
}

// groupByShape groups the placeholder classes of every file in first-seen
// order.
func (e *Environment) groupByShape() []*shapeGroup {
	var groups []*shapeGroup

	byKey := make(map[string]*shapeGroup)

	for _, c := range e.pkg.TopLevelClasses() {
		if !e.pending(c) || !strings.HasPrefix(c.OriginalName(), e.opts.PlaceholderPrefix) {
			continue
		}

		key := shapeKey(c)

		g, ok := byKey[key]
		if !ok {
			g = &shapeGroup{key: key}
			byKey[key] = g
			groups = append(groups, g)
		}

		g.classes = append(g.classes, c)
	}

	return groups
}

// unnamedResolver derives names for shape groups.
type unnamedResolver struct {
	env           *Environment
	index         *rules.ClassIndex
	classRenames  map[string]string
	memberRenames map[string]map[string]string
	claimed       common.Set[string]
}

func (e *Environment) newUnnamedResolver() *unnamedResolver {
	idx := e.cfg.UnnamedClasses.Index()
	r := &unnamedResolver{
		env:           e,
		index:         idx,
		classRenames:  idx.Renames(),
		memberRenames: idx.MemberRenames(),
		claimed:       common.NewSet[string](),
	}

	for from, to := range r.classRenames {
		r.claimed.AddAll(from, to)
	}

	return r
}

// configured returns the configured rename of any class in the group.
func (r *unnamedResolver) configured(g *shapeGroup) (string, bool) {
	for _, c := range g.classes {
		if name, ok := r.classRenames[c.Name()]; ok {
			return name, true
		}

		if name, ok := r.classRenames[c.OriginalName()]; ok {
			return name, true
		}
	}

	return "", false
}

// provider derives "<Name>Provider" for a single-property class. When the
// property name carries no meaning the property type names the class and the
// property is renamed after the type.
func (r *unnamedResolver) provider(c *decl.Class) (string, bool) {
	props := c.Properties()
	if len(props) != 1 {
		return "", false
	}

	p := props[0]
	opts := r.env.opts
	typeName := naming.JoinNames(p.Type.AllNames(), r.env.keepSegment)

	generic := len([]rune(p.OriginalName())) == 1 || slices.Contains(opts.GenericMemberNames, p.OriginalName())

	base := naming.TopLevel(p.OriginalName())
	if generic {
		base = typeName
	}

	if base == "" {
		return "", false
	}

	name := base + opts.ProviderSuffix
	if r.claimed.Has(name) {
		return "", false
	}

	r.claimed.Add(name)

	if generic {
		r.memberRenames[name] = map[string]string{p.OriginalName(): naming.MemberLevel(typeName)}
	}

	return name, true
}

// resolve picks the target name of a group: a configured rename, then a
// provider name, then the placeholder prefix replaced by the fallback token.
func (r *unnamedResolver) resolve(g *shapeGroup) string {
	if name, ok := r.configured(g); ok {
		return name
	}

	first := g.classes[0]

	if name, ok := r.provider(first); ok {
		return name
	}

	opts := r.env.opts

	return strings.Replace(first.Name(), opts.PlaceholderPrefix, opts.PlaceholderFallback, 1)
}

// localRenames returns the member renames for a representative under its
// target name and its original name.
func (r *unnamedResolver) localRenames(c *decl.Class) map[string]string {
	out := make(map[string]string)
	maps.Copy(out, r.memberRenames[c.OriginalName()])
	maps.Copy(out, r.memberRenames[c.Name()])

	return out
}

func (e *Environment) unnamedPass() {
	r := e.newUnnamedResolver()

	for _, g := range e.groupByShape() {
		name := r.resolve(g)
		first := g.classes[0]

		for _, c := range g.classes {
			c.Rename(sourceUnnamed, name)

			if rule, ok := r.index.Lookup(c.OriginalName()); ok {
				rule.Correct(c, e.logger)
			}

			c.LockRenaming()

			if c != first {
				e.ignore(c, first)
			}
		}

		e.correctRepresentative(first, r.localRenames(first))

		if naming.EndsInDigit(first.Name()) {
			e.unnamed = append(e.unnamed, first)
			e.report.Unresolved = append(e.report.Unresolved, first.Name())
			e.report.Diagnostics.AddWarning(diagnostic.CodeUnresolvedPlaceholder,
				"placeholder class could not be given a stable name",
				first.OriginalName(), "")
			e.status[first.ID()] = StatusFinalized

			continue
		}

		e.finalize(first)
	}

	e.logger.Debug("unnamed pass done",
		slog.Int("unresolved", len(e.unnamed)),
		slog.Int("ignored", len(e.ignored)))
}

// correctRepresentative corrects the members of a group representative.
// Nested classes go through the standard pass.
func (e *Environment) correctRepresentative(c *decl.Class, local map[string]string) {
	for _, m := range c.Members() {
		switch v := m.(type) {
		case *decl.Class:
			e.correctClass(v)
		case *decl.Function:
			if e.std.ignoreFunctions.Has(v.OriginalName()) {
				continue
			}

			v.Rename(sourceUnnamed, e.std.memberName(local, e.std.functionRenames, v))

			for _, rule := range e.std.section.FunctionRules(v.OriginalName()) {
				rule.Correct(v, e.logger)
			}

			v.LockRenaming()
			e.renameParameters(v, sourceUnnamed)
		case *decl.Property:
			if e.std.ignoreProperties.Has(v.OriginalName()) {
				continue
			}

			v.Rename(sourceUnnamed, e.std.memberName(local, e.std.propertyRenames, v))

			for _, rule := range e.std.section.PropertyRules(v.OriginalName()) {
				rule.Correct(v, e.logger)
			}

			v.LockRenaming()
		}
	}
}
