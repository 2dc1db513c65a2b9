package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders_IncludeIgnoresOtherTargets(t *testing.T) {
	f := NewFunction("a", "").Rename("x").
		Include(FunctionCorrection{Name: "b", NewName: "y"}).
		Include(FunctionCorrection{Name: "a", NewReturnType: "Int"}).
		Build()

	assert.Equal(t, "x", f.NewName)
	assert.Equal(t, "Int", f.NewReturnType)

	p := NewProperty("p", "").
		Include(PropertyCorrection{Name: "q", NewName: "nope"}).
		Build()

	assert.Empty(t, p.NewName)
}

func TestBuild_AllSections(t *testing.T) {
	cfg := Build(func(b *ConfigurationBuilder) {
		b.Enums(func(e *EnumBuilder) {
			e.Class("ESpawnActorCollisionHandlingMethod", func(c *ClassBuilder) {
				c.Rename("SpawnCollisionHandling")
			})
		})
		b.NonClassMembers(func(n *NonClassMemberBuilder) {
			n.RenameTypeAlias("timeout_handle", "TimeoutHandle")
		})
		b.UnnamedClasses(func(u *UnnamedClassBuilder) {
			u.RenameClass("T$12", "ActorSpawnOptions")
		})
		b.Standard(func(s *StandardBuilder) {
			s.Class("Foo", func(c *ClassBuilder) { c.Delete() })
			s.Function("toString", "String", func(f *FunctionBuilder) { f.ShouldOverride(true) })
			s.Property("process", "", func(p *PropertyBuilder) { p.Rename("gProcess") })
			s.RenameMember("K2_A", "a")
			s.IgnoreProperties("Root")
		})
	})

	assert.Equal(t, map[string]string{"ESpawnActorCollisionHandlingMethod": "SpawnCollisionHandling"},
		cfg.EnumCorrections.Index().Renames())
	assert.Equal(t, "TimeoutHandle", cfg.NonClassMemberCorrections.TypeAliasRenames["timeout_handle"])
	assert.Equal(t, map[string]string{"T$12": "ActorSpawnOptions"}, cfg.UnnamedClasses.Index().Renames())
	assert.Equal(t, []string{"Foo"}, cfg.DeletedClasses())
	assert.Equal(t, map[string]string{"process": "gProcess"}, cfg.StandardCorrections.PropertyRenames())
	assert.Equal(t, map[string]string{"K2_A": "a"}, cfg.StandardCorrections.MemberRenames())
	assert.Empty(t, cfg.StandardCorrections.FunctionRenames())

	rules := cfg.StandardCorrections.FunctionRules("toString")
	require.Len(t, rules, 1)
	assert.Equal(t, "String", rules[0].ReturnType)

	again := Build(func(b *ConfigurationBuilder) { b.Include(cfg) })
	assert.Equal(t, cfg, again)
}
