package rules

import "declaration-corrector/internal/common"

// ClassIndex is a lookup over a list of class rules. Rules sharing a name are
// merged in list order, so a later rule's scalars win.
type ClassIndex struct {
	byName     map[string]ClassCorrection
	order      []string
	supertypes []ClassCorrection
}

// NewClassIndex indexes rules by name. Rules without a name but with a
// supertype are kept apart and returned by SupertypeRules.
func NewClassIndex(classes []ClassCorrection) *ClassIndex {
	idx := &ClassIndex{byName: make(map[string]ClassCorrection)}

	for _, c := range classes {
		if c.Name == "" {
			if c.SuperType != "" {
				idx.supertypes = mergeClasses(idx.supertypes, []ClassCorrection{c})
			}

			continue
		}

		if cur, ok := idx.byName[c.Name]; ok {
			idx.byName[c.Name] = cur.Merge(c)
			continue
		}

		idx.byName[c.Name] = c
		idx.order = append(idx.order, c.Name)
	}

	return idx
}

// Lookup returns the merged rule for an original class name.
func (idx *ClassIndex) Lookup(name string) (ClassCorrection, bool) {
	c, ok := idx.byName[name]
	return c, ok
}

// Rules returns the merged named rules in first-seen order.
func (idx *ClassIndex) Rules() []ClassCorrection {
	out := make([]ClassCorrection, len(idx.order))
	for i, n := range idx.order {
		out[i] = idx.byName[n]
	}

	return out
}

// Names returns the rule names in first-seen order.
func (idx *ClassIndex) Names() []string {
	return append([]string(nil), idx.order...)
}

// SupertypeRules returns rules that match by supertype only.
func (idx *ClassIndex) SupertypeRules() []ClassCorrection {
	return append([]ClassCorrection(nil), idx.supertypes...)
}

// Renames returns original name to new name for every renaming rule.
func (idx *ClassIndex) Renames() map[string]string {
	out := make(map[string]string)

	for _, n := range idx.order {
		if c := idx.byName[n]; c.NewName != "" {
			out[n] = c.NewName
		}
	}

	return out
}

// MemberRenames returns, per original class name, the configured member
// renames.
func (idx *ClassIndex) MemberRenames() map[string]map[string]string {
	out := make(map[string]map[string]string)

	for _, n := range idx.order {
		if renames := idx.byName[n].MemberRenames(); len(renames) > 0 {
			out[n] = renames
		}
	}

	return out
}

// ForcedOverrides returns, per original class name, the functions that must
// carry the override modifier.
func (idx *ClassIndex) ForcedOverrides() map[string]common.Set[string] {
	out := make(map[string]common.Set[string])

	for _, n := range idx.order {
		if names := idx.byName[n].ForcedOverrides(); len(names) > 0 {
			out[n] = common.NewSet(names...)
		}
	}

	return out
}

// ForcedPropertyOverrides returns, per original class name, the properties
// that must carry the override modifier.
func (idx *ClassIndex) ForcedPropertyOverrides() map[string]common.Set[string] {
	out := make(map[string]common.Set[string])

	for _, n := range idx.order {
		if names := idx.byName[n].ForcedPropertyOverrides(); len(names) > 0 {
			out[n] = common.NewSet(names...)
		}
	}

	return out
}

// Deleted returns the original names of classes marked for deletion.
func (idx *ClassIndex) Deleted() []string {
	var out []string

	for _, n := range idx.order {
		if idx.byName[n].Delete {
			out = append(out, n)
		}
	}

	return out
}
