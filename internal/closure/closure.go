// Package closure computes which classes must be retained given a root set, by
// following the type references between classes.
package closure

import (
	"sort"

	"declaration-corrector/internal/common"
	"declaration-corrector/internal/decl"
)

// Graph maps a class name to the names it references.
type Graph struct {
	edges map[string]common.Set[string]
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{edges: make(map[string]common.Set[string])}
}

// FromPackage builds the graph of every class in pkg, nested classes included,
// keyed by current name. A class references every type named in its
// supertypes, member signatures and nested classes.
func FromPackage(pkg *decl.Package) *Graph {
	g := NewGraph()

	for _, c := range pkg.AllClasses() {
		g.Add(c.Name(), c.ReferencedNames()...)
	}

	return g
}

// Add records that name references refs. Repeated calls union the references.
func (g *Graph) Add(name string, refs ...string) {
	set, ok := g.edges[name]
	if !ok {
		set = common.NewSet[string]()
		g.edges[name] = set
	}

	for _, r := range refs {
		if r != "" && r != name {
			set.Add(r)
		}
	}
}

// References returns the sorted direct references of name.
func (g *Graph) References(name string) []string {
	return common.Sorted(g.edges[name])
}

// Closure returns every name reachable from roots, roots included. Roots that
// are not in the graph are still part of the result.
func (g *Graph) Closure(roots ...string) common.Set[string] {
	seen := common.NewSet[string]()

	queue := append([]string(nil), roots...)
	sort.Strings(queue)

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		if !seen.Add(name) {
			continue
		}

		for _, r := range g.References(name) {
			if !seen.Has(r) {
				queue = append(queue, r)
			}
		}
	}

	return seen
}

// Unreachable returns the sorted names in the graph that are not reachable
// from roots.
func (g *Graph) Unreachable(roots ...string) []string {
	keep := g.Closure(roots...)

	var out []string

	for name := range g.edges {
		if !keep.Has(name) {
			out = append(out, name)
		}
	}

	sort.Strings(out)

	return out
}
