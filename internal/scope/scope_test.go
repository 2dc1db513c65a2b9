package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"declaration-corrector/internal/decl"
	"declaration-corrector/internal/rules"
)

func newActor() *decl.Class {
	c := decl.NewClass("Actor")

	tick := decl.NewFunction("ReceiveTick")
	tick.AddParameter("DeltaSeconds", decl.ParseTypeName("Double"))
	tick.AddParameter("fn", decl.ParseTypeName("() -> Unit"))
	c.AddFunction(tick)

	c.AddFunction(decl.NewFunction("K2_DestroyActor"))
	c.AddProperty(decl.NewProperty("bHidden", decl.ParseTypeName("Boolean")))
	c.AddProperty(decl.NewProperty("RootComponent", decl.ParseTypeName("SceneComponent")))
	c.AddClass(decl.NewClass("Inner"))

	return c
}

func TestClass_FindUsesCurrentName(t *testing.T) {
	c := newActor()
	c.Function("K2_DestroyActor").Rename("test", "destroyActor")

	s := NewClass(c, nil)

	assert.Nil(t, s.FindFunction("K2_DestroyActor"))
	require.NotNil(t, s.FindFunction("destroyActor"))
	assert.NotNil(t, s.FindProperty("bHidden"))
	assert.NotNil(t, s.FindClass("Inner"))
	assert.True(t, s.HasMember("RootComponent"))
	assert.False(t, s.HasMember("Nope"))

	_, isClass := s.FindMember("Inner").(*Class)
	assert.True(t, isClass)
	assert.Same(t, s, s.FindClass("Inner").Parent())
}

func TestClass_OnMembers(t *testing.T) {
	c := newActor()
	s := NewClass(c, nil)

	n := s.OnMembers(rules.MemberCorrection{Name: "bHidden", NewName: "hidden"}, nil)
	assert.Equal(t, 1, n)
	assert.Equal(t, "bHidden", c.Property("hidden").OriginalName())

	n = s.OnMembers(rules.FunctionCorrection{Name: "ReceiveTick", ShouldOverride: rules.Bool(true)},
		func(sc Scope) bool { return sc.Named().Name() != "ReceiveTick" })
	assert.Zero(t, n, "filter rejects the only target")

	n = s.OnMembers(rules.FunctionCorrection{Name: "ReceiveTick", ShouldOverride: rules.Bool(true)}, nil)
	assert.Equal(t, 1, n)
	assert.True(t, c.Function("ReceiveTick").IsOverride())

	n = s.OnMembers(rules.ClassCorrection{Name: "Inner", NewName: "ActorInner"}, nil)
	assert.Equal(t, 1, n)
	assert.Equal(t, "ActorInner", c.Classes()[0].Name())
}

func TestClass_OnNamed(t *testing.T) {
	s := NewClass(newActor(), nil)

	assert.True(t, s.OnProperty("RootComponent", rules.PropertyCorrection{Name: "RootComponent", NewName: "root"}))
	assert.False(t, s.OnProperty("Missing", rules.PropertyCorrection{Name: "Missing"}))
	assert.True(t, s.OnFunction("K2_DestroyActor", rules.FunctionCorrection{Name: "K2_DestroyActor", NewName: "destroy"}))
	assert.False(t, s.OnClass("Missing", rules.ClassCorrection{Name: "Missing"}))
	assert.Equal(t, 1, s.OnProperties(rules.PropertyCorrection{Name: "bHidden", NewName: "hidden"}, nil))
}

func TestFunction_Parameters(t *testing.T) {
	s := NewClass(newActor(), nil)
	tick := s.FindFunction("ReceiveTick")
	require.NotNil(t, tick)

	assert.True(t, tick.OnParameter("fn", SetName("function")))
	assert.NotNil(t, tick.FindParameter("function"))
	assert.Same(t, tick, tick.FindParameter("function").Parent())

	n := tick.OnParameters(SetNameIf{Name: "deltaSeconds", Cond: func(d decl.Named) bool {
		return d.Name() == "DeltaSeconds"
	}})
	assert.Equal(t, 1, n)
	assert.True(t, tick.Decl().Parameter("deltaSeconds").IsRenamingLocked())
}

func TestUse_StagesAndLocks(t *testing.T) {
	p := decl.NewProperty("Value", decl.ParseTypeName("Int"))
	s := NewProperty(p)

	assert.Equal(t, NoOp, s.NameCorrection())
	assert.False(t, s.Apply())

	s.Use(SetName("first"), false)
	s.Use(SetName("second"), true)
	s.Use(SetName("third"), true)

	assert.True(t, s.IsNameCorrectionLocked())
	assert.True(t, s.Apply())
	assert.Equal(t, "second", p.Name())
	assert.True(t, p.IsRenamingLocked())

	assert.False(t, s.Apply(), "same name is a no-op")
}

func TestApplyName(t *testing.T) {
	a := decl.NewTypeAlias("timeout_handle", decl.ParseTypeName("Int"))

	assert.False(t, ApplyName(a, NoOp))
	assert.False(t, ApplyName(a, SetNameIf{Name: "x", Cond: func(decl.Named) bool { return false }}))
	assert.True(t, ApplyName(a, NameFunc(func(d decl.Named) string { return d.Name() + "2" })))
	assert.Equal(t, "timeout_handle2", a.Name())

	assert.False(t, ApplyName(a, SetName("other")), "locked by the previous correction")

	ta := NewTypeAlias(a)
	a.UnlockRenaming("test")
	ta.Use(SetName("TimeoutHandle"), true)
	assert.True(t, ta.Apply())
	assert.Equal(t, "TimeoutHandle", ta.Decl().Name())
}

func TestNewFunction_FileLevel(t *testing.T) {
	f := decl.NewFunction("setTimeout")
	f.AddParameter("fn", decl.ParseTypeName("() -> Unit"))

	s := NewFunction(f)
	assert.Nil(t, s.Parent())
	assert.Equal(t, 1, s.OnParameters(SetNameIf{Name: "function", Cond: func(d decl.Named) bool {
		return d.Name() == "fn"
	}}))
	assert.Equal(t, "function", f.Parameters()[0].Name())
}
