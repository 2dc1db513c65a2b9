package rules

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"declaration-corrector/internal/decl"
)

func newFunction(name, ret string, params ...string) *decl.Function {
	f := decl.NewFunction(name)
	if ret != "" {
		t := decl.ParseTypeName(ret)
		f.ReturnType = &t
	}

	for _, p := range params {
		f.AddParameter(p, decl.ParseTypeName("String"))
	}

	return f
}

func paramNames(f *decl.Function) []string {
	var out []string
	for _, p := range f.Parameters() {
		out = append(out, p.Name())
	}

	return out
}

func TestFunctionCorrection_ShouldOverride(t *testing.T) {
	f := newFunction("getName", "String")
	f.SetForeignName("GetName")

	rule := NewFunction("getName", "").ShouldOverride(true).Build()

	require.True(t, rule.Correct(f, nil))
	assert.True(t, f.IsOverride())
	_, hasForeign := f.ForeignName()
	assert.False(t, hasForeign, "marking as override clears the foreign name")

	before := f.Modifiers()
	f.SetForeignName("GetName")

	require.True(t, rule.Correct(f, nil))
	assert.Equal(t, before, f.Modifiers(), "second application adds nothing")
	_, hasForeign = f.ForeignName()
	assert.True(t, hasForeign, "already-override functions keep their binding")
}

func TestFunctionCorrection_ClearOverride(t *testing.T) {
	f := newFunction("tick", "")
	f.AddModifier(decl.ModifierOverride)

	NewFunction("tick", "").ShouldOverride(false).Build().Correct(f, nil)

	assert.False(t, f.IsOverride())
}

func TestFunctionCorrection_Matching(t *testing.T) {
	tests := []struct {
		name  string
		rule  FunctionCorrection
		fn    *decl.Function
		match bool
	}{
		{"name only", FunctionCorrection{Name: "f"}, newFunction("f", "Int"), true},
		{"other name", FunctionCorrection{Name: "g"}, newFunction("f", "Int"), false},
		{"return type matches", FunctionCorrection{Name: "f", ReturnType: "Int"}, newFunction("f", "kotlin.Int"), true},
		{"return type differs", FunctionCorrection{Name: "f", ReturnType: "Double"}, newFunction("f", "Int"), false},
		{"return type missing", FunctionCorrection{Name: "f", ReturnType: "Int"}, newFunction("f", ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, tt.rule.Matches(tt.fn))
		})
	}
}

func TestFunctionCorrection_MatchesOriginalNameAfterRename(t *testing.T) {
	f := newFunction("K2_GetActor", "")
	f.Rename("test", "getActor")

	rule := FunctionCorrection{Name: "K2_GetActor", NewName: "actor"}

	require.True(t, rule.Correct(f, nil))
	assert.Equal(t, "actor", f.Name())
	assert.Equal(t, "K2_GetActor", f.OriginalName())
	assert.True(t, f.IsRenamingLocked())
}

func TestFunctionCorrection_Parameters(t *testing.T) {
	f := newFunction("bind", "", "fn", "Target", "unused")
	f.TypeVariables = []string{"T"}
	f.AddParameter("value", decl.ParseTypeName("T"))

	rule := NewFunction("bind", "").
		RenameParameter("Target", "target").
		RenameParameter("missing", "x").
		RemoveParameter("unused").
		RemoveParameter("alsoMissing").
		AddParameter("options", "ue.BindOptions?").
		AddParameter("fn", "Int").
		ChangeReturnType("kotlin.Boolean").
		RemoveTypeVariables().
		Build()

	require.True(t, rule.Correct(f, nil))

	assert.Equal(t, []string{"fn", "target", "value", "options"}, paramNames(f))
	assert.True(t, f.Parameter("target").IsRenamingLocked())
	assert.Equal(t, "String", f.Parameter("fn").Type.String(), "adding an existing parameter is a no-op")
	assert.Equal(t, "ue.BindOptions?", f.Parameter("options").Type.String())
	assert.Equal(t, decl.Dynamic, f.Parameter("value").Type.Name)
	assert.False(t, f.HasTypeVariables())
	require.NotNil(t, f.ReturnType)
	assert.Equal(t, "kotlin.Boolean", f.ReturnType.String())
}

func TestPropertyCorrection_Correct(t *testing.T) {
	p := decl.NewProperty("bHidden", decl.ParseTypeName("Boolean"))

	assert.False(t, PropertyCorrection{Name: "bHidden", Type: "Int"}.Correct(p, nil))
	assert.Equal(t, "bHidden", p.Name())

	rule := NewProperty("bHidden", "Boolean").Rename("hidden").ChangeType("kotlin.Boolean").ShouldOverride(true).Build()
	require.True(t, rule.Correct(p, nil))

	assert.Equal(t, "hidden", p.Name())
	assert.Equal(t, "kotlin.Boolean", p.Type.String())
	assert.True(t, p.IsOverride())
	assert.True(t, p.IsRenamingLocked())
}

func TestMemberCorrection_Correct(t *testing.T) {
	p := decl.NewProperty("K2_Value", decl.ParseTypeName("Int"))

	assert.False(t, MemberCorrection{Name: "Other", NewName: "x"}.Correct(p))
	assert.True(t, MemberCorrection{Name: "K2_Value", NewName: "value"}.Correct(p))
	assert.Equal(t, "value", p.Name())

	assert.True(t, MemberCorrection{Name: "K2_Value", NewName: "again"}.Correct(p))
	assert.Equal(t, "value", p.Name(), "locked by the first rule")
}

func TestClassCorrection_Correct(t *testing.T) {
	c := decl.NewClass("UActor")
	super := decl.ParseTypeName("UObject")
	c.Superclass = &super
	c.Superinterfaces = []decl.TypeName{decl.ParseTypeName("Tickable")}

	fn := newFunction("K2_Destroy", "")
	c.AddFunction(fn)

	prop := decl.NewProperty("bHidden", decl.ParseTypeName("Boolean"))
	c.AddProperty(prop)

	rule := NewClass("UActor").
		Rename("Actor").
		RemoveSupertype("UObject", "Missing").
		AddSupertype("Replicated", "Tickable").
		RenameMember("K2_Destroy", "destroy").
		Function("K2_Destroy", "", func(f *FunctionBuilder) { f.ShouldOverride(true) }).
		Property("bHidden", "Boolean", func(p *PropertyBuilder) { p.Rename("hidden") }).
		Build()

	require.True(t, rule.Correct(c, nil))

	assert.Equal(t, "Actor", c.Name())
	assert.True(t, c.IsRenamingLocked())
	assert.Nil(t, c.Superclass)

	var supers []string
	for _, s := range c.Supertypes() {
		supers = append(supers, s.String())
	}

	assert.Equal(t, []string{"Tickable", "Replicated"}, supers)
	assert.Equal(t, "destroy", fn.Name())
	assert.True(t, fn.IsOverride())
	assert.Equal(t, "hidden", prop.Name())
}

func TestClassCorrection_MismatchIsLoggedAndSkipped(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := decl.NewClass("Other")
	rule := ClassCorrection{Name: "Actor", NewName: "A"}

	assert.False(t, rule.Correct(c, logger))
	assert.Equal(t, "Other", c.Name())
	assert.Contains(t, buf.String(), "rule=Actor")
	assert.Contains(t, buf.String(), "target=Other")
}

func TestMemberRules_MismatchIsLoggedAndSkipped(t *testing.T) {
	tests := []struct {
		name    string
		correct func(*slog.Logger) bool
		reason  string
	}{
		{
			name: "function name",
			correct: func(l *slog.Logger) bool {
				return FunctionCorrection{Name: "g", NewName: "x"}.Correct(newFunction("f", "Int"), l)
			},
			reason: "name differs",
		},
		{
			name: "function return type",
			correct: func(l *slog.Logger) bool {
				return FunctionCorrection{Name: "f", ReturnType: "Double"}.Correct(newFunction("f", "Int"), l)
			},
			reason: "return type is not Double",
		},
		{
			name: "property type",
			correct: func(l *slog.Logger) bool {
				p := decl.NewProperty("f", decl.ParseTypeName("Int"))
				return PropertyCorrection{Name: "f", Type: "Boolean"}.Correct(p, l)
			},
			reason: "type is not Boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			assert.False(t, tt.correct(logger))
			assert.Contains(t, buf.String(), "rule does not apply")
			assert.Contains(t, buf.String(), "target=f")
			assert.Contains(t, buf.String(), tt.reason)
		})
	}
}

func TestClassCorrection_MatchBySupertype(t *testing.T) {
	file := decl.NewFile("ue", "ue")
	base := decl.NewClass("MediaSource")
	mid := decl.NewClass("BaseMediaSource")
	midSuper := decl.ParseTypeName("MediaSource")
	mid.Superclass = &midSuper
	leaf := decl.NewClass("FileMediaSource")
	leafSuper := decl.ParseTypeName("BaseMediaSource")
	leaf.Superclass = &leafSuper

	file.Add(base)
	file.Add(mid)
	file.Add(leaf)
	decl.NewPackage("ue", file)

	rule := NewClassWithSupertype("MediaSource").Build()

	assert.True(t, rule.Matches(leaf))
	assert.True(t, rule.Matches(mid))
	assert.False(t, rule.Matches(base))
}

func TestClassCorrection_IdempotentOnNewName(t *testing.T) {
	c := decl.NewClass("Vector")
	rule := ClassCorrection{Name: "FVector", NewName: "Vector"}

	assert.True(t, rule.Matches(c))
}
