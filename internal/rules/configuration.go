package rules

import "reflect"

// Configuration is the full correction configuration.
type Configuration struct {
	EnumCorrections           EnumCorrections           `yaml:"enumCorrections"`
	NonClassMemberCorrections NonClassMemberCorrections `yaml:"nonClassMemberCorrections"`
	StandardCorrections       StandardCorrections       `yaml:"standardCorrections"`
	UnnamedClasses            UnnamedClassCorrections   `yaml:"unnamedClasses"`
}

// Plus layers other on top of c section by section.
func (c Configuration) Plus(other Configuration) Configuration {
	return Configuration{
		EnumCorrections:           c.EnumCorrections.Plus(other.EnumCorrections),
		NonClassMemberCorrections: c.NonClassMemberCorrections.Plus(other.NonClassMemberCorrections),
		StandardCorrections:       c.StandardCorrections.Plus(other.StandardCorrections),
		UnnamedClasses:            c.UnnamedClasses.Plus(other.UnnamedClasses),
	}
}

// Resolve layers cfg over a baseline. A section equal to the baseline's section
// is taken as is; any other section is unioned on top of the baseline's.
func Resolve(cfg, baseline Configuration) Configuration {
	return Configuration{
		EnumCorrections:           resolveSection(cfg.EnumCorrections, baseline.EnumCorrections),
		NonClassMemberCorrections: resolveSection(cfg.NonClassMemberCorrections, baseline.NonClassMemberCorrections),
		StandardCorrections:       resolveSection(cfg.StandardCorrections, baseline.StandardCorrections),
		UnnamedClasses:            resolveSection(cfg.UnnamedClasses, baseline.UnnamedClasses),
	}
}

type section[T any] interface {
	Plus(T) T
}

func resolveSection[T section[T]](s, base T) T {
	if reflect.DeepEqual(s, base) {
		return s
	}

	return base.Plus(s)
}

// ClassRules returns the class rules of every section that has them, in
// enum, standard, unnamed order.
func (c Configuration) ClassRules() []ClassCorrection {
	out := make([]ClassCorrection, 0,
		len(c.EnumCorrections.Classes)+len(c.StandardCorrections.Classes)+len(c.UnnamedClasses.Classes))

	out = append(out, c.EnumCorrections.Classes...)
	out = append(out, c.StandardCorrections.Classes...)
	out = append(out, c.UnnamedClasses.Classes...)

	return out
}

// DeletedClasses returns the original names of every class any section marks
// for deletion.
func (c Configuration) DeletedClasses() []string {
	return NewClassIndex(c.ClassRules()).Deleted()
}
