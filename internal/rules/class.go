package rules

import (
	"log/slog"

	"declaration-corrector/internal/decl"
)

// ClassCorrection rewrites a class matched by original name, by its configured
// new name, or by a supertype anywhere in its supertype chain.
type ClassCorrection struct {
	Name             string               `yaml:"name"`
	NewName          string               `yaml:"newName,omitempty"`
	SuperType        string               `yaml:"superType,omitempty"`
	Delete           bool                 `yaml:"delete,omitempty"`
	RemoveSuperTypes []string             `yaml:"removeSuperTypes,omitempty"`
	AddSuperTypes    []string             `yaml:"addSuperTypes,omitempty"`
	Members          []MemberCorrection   `yaml:"members,omitempty"`
	Functions        []FunctionCorrection `yaml:"functions,omitempty"`
	Properties       []PropertyCorrection `yaml:"properties,omitempty"`
}

func (r ClassCorrection) Target() string { return r.Name }
func (ClassCorrection) rule()            {}

// Matches reports whether the rule targets c.
func (r ClassCorrection) Matches(c *decl.Class) bool {
	if r.Name != "" && c.OriginalName() == r.Name {
		return true
	}

	if r.NewName != "" && (c.Name() == r.NewName || c.OriginalName() == r.NewName) {
		return true
	}

	return r.SuperType != "" && c.HasSuperType(r.SuperType)
}

// Correct applies the rule to c. A class the rule does not target is logged at
// debug level and left untouched. It reports whether the rule matched.
//
// Order: rename and lock, supertype removals, supertype additions, then for
// each function its member rule and function rules, then for each property its
// member rule and property rules.
func (r ClassCorrection) Correct(c *decl.Class, logger *slog.Logger) bool {
	if !r.Matches(c) {
		if logger != nil {
			logger.Debug("class rule does not apply",
				slog.String("rule", r.describe()),
				slog.String("target", c.OriginalName()),
				slog.String("reason", r.mismatchReason()))
		}

		return false
	}

	if r.NewName != "" {
		c.Rename(SourceClassRule, r.NewName)
		c.LockRenaming()
	}

	for _, name := range r.RemoveSuperTypes {
		c.RemoveSupertype(name)
	}

	for _, name := range r.AddSuperTypes {
		c.AddSuperinterface(decl.ParseTypeName(name))
	}

	for _, f := range c.Functions() {
		if m, ok := r.Member(f.OriginalName()); ok {
			m.Correct(f)
		}

		for _, fr := range r.Functions {
			if fr.Name == f.OriginalName() {
				fr.Correct(f, logger)
			}
		}
	}

	for _, p := range c.Properties() {
		if m, ok := r.Member(p.OriginalName()); ok {
			m.Correct(p)
		}

		for _, pr := range r.Properties {
			if pr.Name == p.OriginalName() {
				pr.Correct(p, logger)
			}
		}
	}

	return true
}

// Member returns the member rule for the given original name.
func (r ClassCorrection) Member(name string) (MemberCorrection, bool) {
	for _, m := range r.Members {
		if m.Name == name {
			return m, true
		}
	}

	return MemberCorrection{}, false
}

// Function returns the first function rule for the given original name.
func (r ClassCorrection) Function(name string) (FunctionCorrection, bool) {
	for _, f := range r.Functions {
		if f.Name == name {
			return f, true
		}
	}

	return FunctionCorrection{}, false
}

// Property returns the first property rule for the given original name.
func (r ClassCorrection) Property(name string) (PropertyCorrection, bool) {
	for _, p := range r.Properties {
		if p.Name == name {
			return p, true
		}
	}

	return PropertyCorrection{}, false
}

// MemberRenames returns the configured member renames, keyed by original name.
func (r ClassCorrection) MemberRenames() map[string]string {
	out := make(map[string]string)

	for _, m := range r.Members {
		if m.NewName != "" {
			out[m.Name] = m.NewName
		}
	}

	return out
}

// ForcedOverrides returns the original names of functions the rule marks as
// overrides.
func (r ClassCorrection) ForcedOverrides() []string {
	var out []string

	for _, f := range r.Functions {
		if f.ShouldOverride != nil && *f.ShouldOverride {
			out = append(out, f.Name)
		}
	}

	return out
}

// ForcedPropertyOverrides returns the original names of properties the rule
// marks as overrides.
func (r ClassCorrection) ForcedPropertyOverrides() []string {
	var out []string

	for _, p := range r.Properties {
		if p.ShouldOverride != nil && *p.ShouldOverride {
			out = append(out, p.Name)
		}
	}

	return out
}

// Merge returns r with other layered on top. Delete is sticky: a layer that
// leaves it unset cannot bring a deleted class back.
func (r ClassCorrection) Merge(other ClassCorrection) ClassCorrection {
	r.Name = firstSet(r.Name, other.Name)
	r.SuperType = firstSet(r.SuperType, other.SuperType)
	r.NewName = lastSet(r.NewName, other.NewName)
	r.Delete = r.Delete || other.Delete
	r.RemoveSuperTypes = unionList(r.RemoveSuperTypes, other.RemoveSuperTypes)
	r.AddSuperTypes = unionList(r.AddSuperTypes, other.AddSuperTypes)
	r.Members = mergeMembers(r.Members, other.Members)
	r.Functions = mergeFunctions(r.Functions, other.Functions)
	r.Properties = mergeProperties(r.Properties, other.Properties)

	return r
}

func (r ClassCorrection) describe() string {
	if r.Name != "" {
		return r.Name
	}

	return "<" + r.SuperType + ">"
}

func (r ClassCorrection) mismatchReason() string {
	if r.SuperType != "" {
		return "name differs and supertype " + r.SuperType + " is absent"
	}

	return "name differs"
}
