package rules

import (
	"fmt"

	"declaration-corrector/internal/diagnostic"
	"declaration-corrector/internal/naming"
)

const (
	sectionEnum     = "enumCorrections"
	sectionNonClass = "nonClassMemberCorrections"
	sectionStandard = "standardCorrections"
	sectionUnnamed  = "unnamedClasses"
)

// Validate checks a configuration for entries that can never apply or that
// contradict each other within one section.
func Validate(cfg Configuration) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	validateClasses(res, sectionEnum, cfg.EnumCorrections.Classes)
	validateClasses(res, sectionStandard, cfg.StandardCorrections.Classes)
	validateClasses(res, sectionUnnamed, cfg.UnnamedClasses.Classes)

	std := cfg.StandardCorrections
	validateFunctions(res, sectionStandard, "functions", std.Functions)
	validateProperties(res, sectionStandard, "properties", std.Properties)
	validateMembers(res, sectionStandard, "members", std.Members)

	for prefix := range std.CommonPrefixReplacements {
		if prefix == "" {
			res.AddError(diagnostic.CodeEmptyName, "empty common prefix", sectionStandard, "commonPrefixReplacements")
		}
	}

	for _, m := range []struct {
		field   string
		renames map[string]string
	}{
		{"typeAliasRenames", cfg.NonClassMemberCorrections.TypeAliasRenames},
		{"propertyRenames", cfg.NonClassMemberCorrections.PropertyRenames},
	} {
		for from, to := range m.renames {
			if from == "" || to == "" {
				res.AddError(diagnostic.CodeEmptyName,
					fmt.Sprintf("rename %q -> %q has an empty side", from, to), sectionNonClass, m.field)
			}
		}
	}

	return res
}

func validateClasses(res *diagnostic.Diagnostics, section string, classes []ClassCorrection) {
	renames := make(map[string]string)

	for i, c := range classes {
		where := fmt.Sprintf("classes[%d]", i)

		if c.Name == "" && c.SuperType == "" {
			res.AddError(diagnostic.CodeEmptyName, "class rule has neither a name nor a supertype", section, where)
			continue
		}

		if c.Delete && c.NewName != "" {
			res.AddError(diagnostic.CodeDeleteAndRename,
				fmt.Sprintf("class %s is both deleted and renamed to %s", c.describe(), c.NewName), section, where)
		}

		if c.Name != "" && c.NewName != "" {
			if prev, ok := renames[c.Name]; ok && prev != c.NewName {
				res.AddError(diagnostic.CodeConflictingRename,
					fmt.Sprintf("class %s renamed to both %s and %s", c.Name, prev, c.NewName), section, where)
			}

			renames[c.Name] = c.NewName
		}

		validateFunctions(res, section, where+".functions", c.Functions)
		validateProperties(res, section, where+".properties", c.Properties)
		validateMembers(res, section, where+".members", c.Members)
	}
}

func validateFunctions(res *diagnostic.Diagnostics, section, where string, rules []FunctionCorrection) {
	renames := make(map[string]string)

	for _, f := range rules {
		if f.Name == "" {
			res.AddError(diagnostic.CodeEmptyName, "function rule without a name", section, where)
			continue
		}

		checkRename(res, section, where, "function", renames, functionKey(f), f.Name, f.NewName)
	}
}

func validateProperties(res *diagnostic.Diagnostics, section, where string, rules []PropertyCorrection) {
	renames := make(map[string]string)

	for _, p := range rules {
		if p.Name == "" {
			res.AddError(diagnostic.CodeEmptyName, "property rule without a name", section, where)
			continue
		}

		checkRename(res, section, where, "property", renames, propertyKey(p), p.Name, p.NewName)
	}
}

func validateMembers(res *diagnostic.Diagnostics, section, where string, rules []MemberCorrection) {
	renames := make(map[string]string)

	for _, m := range rules {
		if m.Name == "" {
			res.AddError(diagnostic.CodeEmptyName, "member rule without a name", section, where)
			continue
		}

		checkRename(res, section, where, "member", renames, memberKey(m), m.Name, m.NewName)
	}
}

func checkRename(
	res *diagnostic.Diagnostics,
	section, where, kind string,
	seen map[string]string,
	key, name, newName string,
) {
	if newName == "" {
		return
	}

	if prev, ok := seen[key]; ok && prev != newName {
		res.AddError(diagnostic.CodeConflictingRename,
			fmt.Sprintf("%s %s renamed to both %s and %s", kind, name, prev, newName), section, where)
	}

	seen[key] = newName
}

// CheckTargets reports class rules whose name matches none of the given
// original class names. Each report carries near-miss suggestions.
func CheckTargets(cfg Configuration, classNames []string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	known := make(map[string]struct{}, len(classNames))
	for _, n := range classNames {
		known[n] = struct{}{}
	}

	for _, s := range []struct {
		name    string
		classes []ClassCorrection
	}{
		{sectionEnum, cfg.EnumCorrections.Classes},
		{sectionStandard, cfg.StandardCorrections.Classes},
		{sectionUnnamed, cfg.UnnamedClasses.Classes},
	} {
		for _, c := range NewClassIndex(s.classes).Rules() {
			if _, ok := known[c.Name]; ok {
				continue
			}

			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Code:        diagnostic.CodeUnknownTarget,
				Message:     "no class named " + c.Name,
				Declaration: s.name,
				Member:      c.Name,
				Suggestions: naming.Suggest(c.Name, classNames, 0.75, 3),
			})
		}
	}

	return res
}
