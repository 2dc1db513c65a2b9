package rules

import (
	"log/slog"

	"declaration-corrector/internal/common"
	"declaration-corrector/internal/decl"
)

// Rule is one of ClassCorrection, FunctionCorrection, PropertyCorrection or
// MemberCorrection.
type Rule interface {
	// Target returns the original name the rule is keyed by.
	Target() string
	rule()
}

// Rename sources recorded in declaration rename history.
const (
	SourceClassRule  = "classConfiguration"
	SourceMemberRule = "memberConfiguration"
)

// MemberCorrection renames any member whose original name matches.
type MemberCorrection struct {
	Name    string `yaml:"name"`
	NewName string `yaml:"newName,omitempty"`
}

func (r MemberCorrection) Target() string { return r.Name }
func (MemberCorrection) rule()            {}

// Matches reports whether the rule targets d.
func (r MemberCorrection) Matches(d decl.Named) bool {
	return d.OriginalName() == r.Name
}

// Correct renames and locks d when it matches. It reports whether the rule
// matched.
func (r MemberCorrection) Correct(d decl.Named) bool {
	if !r.Matches(d) {
		return false
	}

	renameAndLock(d, SourceMemberRule, r.NewName)

	return true
}

// Merge returns r with other layered on top.
func (r MemberCorrection) Merge(other MemberCorrection) MemberCorrection {
	r.Name = firstSet(r.Name, other.Name)
	r.NewName = lastSet(r.NewName, other.NewName)

	return r
}

// FunctionCorrection rewrites a function matched by original name and,
// optionally, return type.
type FunctionCorrection struct {
	Name                string            `yaml:"name"`
	NewName             string            `yaml:"newName,omitempty"`
	ReturnType          string            `yaml:"returnType,omitempty"`
	NewReturnType       string            `yaml:"newReturnType,omitempty"`
	ShouldOverride      *bool             `yaml:"shouldOverride,omitempty"`
	RemoveTypeVariables *bool             `yaml:"removeTypeVariables,omitempty"`
	RenameParameters    map[string]string `yaml:"renameParameters,omitempty"`
	RemoveParameters    []string          `yaml:"removeParameters,omitempty"`
	AddParameters       map[string]string `yaml:"addParameters,omitempty"`
}

func (r FunctionCorrection) Target() string { return r.Name }
func (FunctionCorrection) rule()            {}

// Matches reports whether the rule targets f.
func (r FunctionCorrection) Matches(f *decl.Function) bool {
	if f.OriginalName() != r.Name {
		return false
	}

	if r.ReturnType == "" {
		return true
	}

	return f.ReturnType != nil && f.ReturnType.IsName(r.ReturnType)
}

// Correct applies the rule to f when it matches: rename, return type, type
// variables, override flag, then parameter renames, removals and additions.
// Parameters that do not exist are skipped. A function the rule does not target
// is logged at debug level. It reports whether the rule matched.
func (r FunctionCorrection) Correct(f *decl.Function, logger *slog.Logger) bool {
	if !r.Matches(f) {
		logMismatch(logger, "function", r.Name, f.OriginalName(), r.mismatchReason(f))
		return false
	}

	renameAndLock(f, SourceMemberRule, r.NewName)

	if r.NewReturnType != "" {
		f.ChangeReturnType(decl.ParseTypeName(r.NewReturnType))
	}

	if r.RemoveTypeVariables != nil && *r.RemoveTypeVariables {
		f.RemoveTypeVariables()
	}

	applyOverride(f, r.ShouldOverride)

	for _, old := range common.SortedKeys(r.RenameParameters) {
		f.RenameParameter(SourceMemberRule, old, r.RenameParameters[old])
	}

	for _, name := range r.RemoveParameters {
		f.DeleteParameter(name)
	}

	for _, name := range common.SortedKeys(r.AddParameters) {
		f.AddParameter(name, decl.ParseTypeName(r.AddParameters[name]))
	}

	return true
}

func (r FunctionCorrection) mismatchReason(f *decl.Function) string {
	if f.OriginalName() != r.Name {
		return "name differs"
	}

	return "return type is not " + r.ReturnType
}

// Merge returns r with other layered on top. Match keys (name and return type)
// are kept from r.
func (r FunctionCorrection) Merge(other FunctionCorrection) FunctionCorrection {
	r.Name = firstSet(r.Name, other.Name)
	r.ReturnType = firstSet(r.ReturnType, other.ReturnType)
	r.NewName = lastSet(r.NewName, other.NewName)
	r.NewReturnType = lastSet(r.NewReturnType, other.NewReturnType)
	r.ShouldOverride = lastBool(r.ShouldOverride, other.ShouldOverride)
	r.RemoveTypeVariables = lastBool(r.RemoveTypeVariables, other.RemoveTypeVariables)
	r.RenameParameters = unionMap(r.RenameParameters, other.RenameParameters)
	r.RemoveParameters = unionList(r.RemoveParameters, other.RemoveParameters)
	r.AddParameters = unionMap(r.AddParameters, other.AddParameters)

	return r
}

// PropertyCorrection rewrites a property matched by original name and,
// optionally, type.
type PropertyCorrection struct {
	Name           string `yaml:"name"`
	NewName        string `yaml:"newName,omitempty"`
	Type           string `yaml:"type,omitempty"`
	NewType        string `yaml:"newType,omitempty"`
	ShouldOverride *bool  `yaml:"shouldOverride,omitempty"`
}

func (r PropertyCorrection) Target() string { return r.Name }
func (PropertyCorrection) rule()            {}

// Matches reports whether the rule targets p.
func (r PropertyCorrection) Matches(p *decl.Property) bool {
	if p.OriginalName() != r.Name {
		return false
	}

	return r.Type == "" || p.Type.IsName(r.Type)
}

// Correct applies the rule to p when it matches. A property the rule does not
// target is logged at debug level. It reports whether the rule matched.
func (r PropertyCorrection) Correct(p *decl.Property, logger *slog.Logger) bool {
	if !r.Matches(p) {
		reason := "name differs"
		if p.OriginalName() == r.Name {
			reason = "type is not " + r.Type
		}

		logMismatch(logger, "property", r.Name, p.OriginalName(), reason)

		return false
	}

	renameAndLock(p, SourceMemberRule, r.NewName)

	if r.NewType != "" {
		p.ChangeType(decl.ParseTypeName(r.NewType))
	}

	applyOverride(p, r.ShouldOverride)

	return true
}

// Merge returns r with other layered on top.
func (r PropertyCorrection) Merge(other PropertyCorrection) PropertyCorrection {
	r.Name = firstSet(r.Name, other.Name)
	r.Type = firstSet(r.Type, other.Type)
	r.NewName = lastSet(r.NewName, other.NewName)
	r.NewType = lastSet(r.NewType, other.NewType)
	r.ShouldOverride = lastBool(r.ShouldOverride, other.ShouldOverride)

	return r
}

type overridable interface {
	IsOverride() bool
	AddModifier(decl.Modifier) bool
	RemoveModifier(decl.Modifier) bool
	ForeignName() (string, bool)
	RemoveForeignName()
}

func applyOverride(m overridable, should *bool) {
	if should == nil {
		return
	}

	if !*should {
		m.RemoveModifier(decl.ModifierOverride)
		return
	}

	if m.IsOverride() {
		return
	}

	m.AddModifier(decl.ModifierOverride)

	if _, ok := m.ForeignName(); ok {
		m.RemoveForeignName()
	}
}

func logMismatch(logger *slog.Logger, kind, rule, target, reason string) {
	if logger == nil {
		return
	}

	logger.Debug(kind+" rule does not apply",
		slog.String("rule", rule),
		slog.String("target", target),
		slog.String("reason", reason))
}

func renameAndLock(d decl.Named, source, newName string) {
	if newName == "" {
		return
	}

	d.Rename(source, newName)
	d.LockRenaming()
}

// Bool returns a pointer to v, for the optional flags of function and property
// rules.
func Bool(v bool) *bool {
	return &v
}
