package rules

import (
	"sort"
	"strings"
)

// EnumCorrections holds class rules applied to enum-like classes.
type EnumCorrections struct {
	Classes []ClassCorrection `yaml:"classes,omitempty"`
}

// Plus returns e with other layered on top.
func (e EnumCorrections) Plus(other EnumCorrections) EnumCorrections {
	return EnumCorrections{Classes: mergeClasses(e.Classes, other.Classes)}
}

// Index returns the class-rule index of the section.
func (e EnumCorrections) Index() *ClassIndex { return NewClassIndex(e.Classes) }

// NonClassMemberCorrections renames file-level type aliases and properties.
type NonClassMemberCorrections struct {
	TypeAliasRenames map[string]string `yaml:"typeAliasRenames,omitempty"`
	PropertyRenames  map[string]string `yaml:"propertyRenames,omitempty"`
}

// Plus returns n with other layered on top.
func (n NonClassMemberCorrections) Plus(other NonClassMemberCorrections) NonClassMemberCorrections {
	return NonClassMemberCorrections{
		TypeAliasRenames: unionMap(n.TypeAliasRenames, other.TypeAliasRenames),
		PropertyRenames:  unionMap(n.PropertyRenames, other.PropertyRenames),
	}
}

// StandardCorrections is the general-purpose rule set.
type StandardCorrections struct {
	CommonPrefixReplacements map[string]string    `yaml:"commonPrefixReplacements,omitempty"`
	IgnoreFunctions          []string             `yaml:"ignoreFunctions,omitempty"`
	IgnoreProperties         []string             `yaml:"ignoreProperties,omitempty"`
	Functions                []FunctionCorrection `yaml:"functions,omitempty"`
	Properties               []PropertyCorrection `yaml:"properties,omitempty"`
	Members                  []MemberCorrection   `yaml:"members,omitempty"`
	Classes                  []ClassCorrection    `yaml:"classes,omitempty"`
}

// Plus returns s with other layered on top.
func (s StandardCorrections) Plus(other StandardCorrections) StandardCorrections {
	return StandardCorrections{
		CommonPrefixReplacements: unionMap(s.CommonPrefixReplacements, other.CommonPrefixReplacements),
		IgnoreFunctions:          unionList(s.IgnoreFunctions, other.IgnoreFunctions),
		IgnoreProperties:         unionList(s.IgnoreProperties, other.IgnoreProperties),
		Functions:                mergeFunctions(s.Functions, other.Functions),
		Properties:               mergeProperties(s.Properties, other.Properties),
		Members:                  mergeMembers(s.Members, other.Members),
		Classes:                  mergeClasses(s.Classes, other.Classes),
	}
}

// Index returns the class-rule index of the section.
func (s StandardCorrections) Index() *ClassIndex { return NewClassIndex(s.Classes) }

// FunctionRenames returns the global function renames keyed by original name.
func (s StandardCorrections) FunctionRenames() map[string]string {
	out := make(map[string]string)

	for _, f := range mergeFunctions(nil, s.Functions) {
		if f.NewName != "" {
			out[f.Name] = f.NewName
		}
	}

	return out
}

// PropertyRenames returns the global property renames keyed by original name.
func (s StandardCorrections) PropertyRenames() map[string]string {
	out := make(map[string]string)

	for _, p := range mergeProperties(nil, s.Properties) {
		if p.NewName != "" {
			out[p.Name] = p.NewName
		}
	}

	return out
}

// MemberRenames returns the global member renames keyed by original name.
func (s StandardCorrections) MemberRenames() map[string]string {
	out := make(map[string]string)

	for _, m := range mergeMembers(nil, s.Members) {
		if m.NewName != "" {
			out[m.Name] = m.NewName
		}
	}

	return out
}

// FunctionRules returns every global function rule keyed by the given name.
func (s StandardCorrections) FunctionRules(name string) []FunctionCorrection {
	var out []FunctionCorrection

	for _, f := range s.Functions {
		if f.Name == name {
			out = append(out, f)
		}
	}

	return out
}

// PropertyRules returns every global property rule keyed by the given name.
func (s StandardCorrections) PropertyRules(name string) []PropertyCorrection {
	var out []PropertyCorrection

	for _, p := range s.Properties {
		if p.Name == name {
			out = append(out, p)
		}
	}

	return out
}

// PrefixReplacement is one entry of the common prefix table.
type PrefixReplacement struct {
	Prefix      string
	Replacement string
}

// PrefixReplacements returns the prefix table, longest prefix first.
func (s StandardCorrections) PrefixReplacements() []PrefixReplacement {
	out := make([]PrefixReplacement, 0, len(s.CommonPrefixReplacements))
	for p, r := range s.CommonPrefixReplacements {
		out = append(out, PrefixReplacement{Prefix: p, Replacement: r})
	}

	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Prefix) != len(out[j].Prefix) {
			return len(out[i].Prefix) > len(out[j].Prefix)
		}

		return out[i].Prefix < out[j].Prefix
	})

	return out
}

// ReplacePrefix replaces the longest configured prefix of name.
func ReplacePrefix(table []PrefixReplacement, name string) string {
	for _, pr := range table {
		if pr.Prefix != "" && strings.HasPrefix(name, pr.Prefix) {
			return pr.Replacement + name[len(pr.Prefix):]
		}
	}

	return name
}

// UnnamedClassCorrections holds class rules keyed by placeholder names.
type UnnamedClassCorrections struct {
	Classes []ClassCorrection `yaml:"classes,omitempty"`
}

// Plus returns u with other layered on top.
func (u UnnamedClassCorrections) Plus(other UnnamedClassCorrections) UnnamedClassCorrections {
	return UnnamedClassCorrections{Classes: mergeClasses(u.Classes, other.Classes)}
}

// Index returns the class-rule index of the section.
func (u UnnamedClassCorrections) Index() *ClassIndex { return NewClassIndex(u.Classes) }
