package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameLock(t *testing.T) {
	t.Parallel()

	c := NewClass("FVector")
	assert.Equal(t, LockUnset, c.LockState())

	assert.True(t, c.Rename("first", "Vector"))
	assert.False(t, c.Rename("same", "Vector"))
	assert.False(t, c.Rename("empty", ""))

	c.LockRenaming()
	assert.True(t, c.IsRenamingLocked())
	assert.False(t, c.Rename("locked", "Other"))
	assert.Equal(t, "Vector", c.Name())

	c.UnlockRenaming("shared name")
	assert.Equal(t, LockReopened, c.LockState())
	assert.Equal(t, "shared name", c.ReopenReason())
	assert.True(t, c.Rename("reopened", "VectorDouble"))

	assert.Equal(t, "FVector", c.OriginalName())
	assert.Equal(t, []RenameEvent{
		{Source: "first", From: "FVector", To: "Vector"},
		{Source: "reopened", From: "Vector", To: "VectorDouble"},
	}, c.RenameHistory())
}

func TestUnlockRenaming_OnlyReopensLocked(t *testing.T) {
	t.Parallel()

	p := NewProperty("x", ParseTypeName("Double"))
	p.UnlockRenaming("ignored")

	assert.Equal(t, LockUnset, p.LockState())
	assert.Empty(t, p.ReopenReason())
	assert.Equal(t, "Reopened", LockReopened.String())
}

func TestIDsAreUnique(t *testing.T) {
	t.Parallel()

	a, b := NewClass("A"), NewClass("A")
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestParseTypeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		pkg      string
		name     string
		args     int
		nullable bool
		str      string
	}{
		{in: "Double", name: "Double", str: "Double"},
		{in: "ue.Vector?", pkg: "ue", name: "Vector", nullable: true, str: "ue.Vector?"},
		{in: "kotlin.Array<Map<K, V>>", pkg: "kotlin", name: "Array", args: 1, str: "kotlin.Array<Map<K, V>>"},
		{in: " Pair<A,B> ", name: "Pair", args: 2, str: "Pair<A, B>"},
		{in: "(Int) -> Unit", name: "(Int) -> Unit", str: "(Int) -> Unit"},
		{in: "", str: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got := ParseTypeName(tt.in)
			assert.Equal(t, tt.pkg, got.Package)
			assert.Equal(t, tt.name, got.Name)
			assert.Len(t, got.Args, tt.args)
			assert.Equal(t, tt.nullable, got.Nullable)
			assert.Equal(t, tt.str, got.String())
		})
	}
}

func TestTypeName_Names(t *testing.T) {
	t.Parallel()

	tn := ParseTypeName("kotlin.Array<ue.Vector>")

	assert.Equal(t, []string{"kotlin", "Array", "ue", "Vector"}, tn.AllNames())
	assert.Equal(t, []string{"Array", "Vector"}, tn.ReferencedNames())
	assert.True(t, tn.IsName("Array"))
	assert.True(t, tn.IsName("kotlin.Array"))
	assert.False(t, tn.IsName("Vector"))
}

func samplePackage() (*Package, *Class, *Class) {
	f := NewFile("ue", "ue")

	base := NewClass("UObject")
	actor := NewClass("AActor")
	actor.Superclass = &TypeName{Name: "UObject"}
	actor.AddProperty(NewProperty("Owner", ParseTypeName("AActor?")))

	fn := NewFunction("GetOuter")
	fn.ReturnType = &TypeName{Name: "UObject"}
	fn.AddParameter("Other", ParseTypeName("AActor"))
	actor.AddFunction(fn)

	nested := NewClass("Companion")
	nested.Companion = true
	actor.AddClass(nested)

	f.Add(base)
	f.Add(actor)

	return NewPackage("ue", f), base, actor
}

func TestPackage_Link(t *testing.T) {
	t.Parallel()

	pkg, base, actor := samplePackage()

	assert.Len(t, pkg.TopLevelClasses(), 2)
	assert.Len(t, pkg.AllClasses(), 3)

	require.NotNil(t, actor.Superclass)
	assert.Same(t, base, actor.Superclass.Class())

	actor.Rename("test", "Actor")
	base.Rename("test", "Object")

	assert.Equal(t, "Actor?", actor.Properties()[0].Type.String())
	assert.Equal(t, "Object", actor.Functions()[0].ReturnType.String())
	assert.True(t, actor.HasSuperType("UObject"))
	assert.True(t, actor.HasSuperType("Object"))
	assert.ElementsMatch(t, []string{"Object", "Actor", "Object", "Actor"}, actor.ReferencedNames())
}

func TestPackage_RetargetAndRemove(t *testing.T) {
	t.Parallel()

	pkg, base, actor := samplePackage()

	replacement := NewClass("UBase")
	pkg.Files()[0].Add(replacement)
	pkg.Refresh()

	pkg.Retarget(base, replacement)
	assert.Same(t, replacement, actor.Superclass.Class())
	assert.Equal(t, "UBase", actor.Functions()[0].ReturnType.String())

	assert.True(t, pkg.RemoveClass(base))
	assert.False(t, pkg.RemoveClass(base))
	assert.Len(t, pkg.TopLevelClasses(), 2)
}

func TestFunction_Parameters(t *testing.T) {
	t.Parallel()

	f := NewFunction("Bind")
	assert.True(t, f.AddParameter("fn", ParseTypeName("() -> Unit")))
	assert.False(t, f.AddParameter("fn", ParseTypeName("Int")))
	assert.True(t, f.AddParameter("Target", ParseTypeName("T")))

	assert.True(t, f.RenameParameter("test", "fn", "function"))
	assert.True(t, f.Parameter("function").IsRenamingLocked())
	assert.False(t, f.RenameParameter("test", "missing", "x"))

	assert.True(t, f.ChangeParameterType("Target", ParseTypeName("Actor")))
	assert.Equal(t, "Actor", f.Parameter("Target").Type.String())

	assert.True(t, f.DeleteParameter("function"))
	assert.False(t, f.DeleteParameter("function"))
	require.Len(t, f.Parameters(), 1)
	assert.Same(t, f, f.Parameters()[0].Function())
}

func TestFunction_RemoveTypeVariables(t *testing.T) {
	t.Parallel()

	f := NewFunction("Get")
	f.TypeVariables = []string{"T"}
	f.ReturnType = &TypeName{Name: "T", Variable: true}
	f.AddParameter("Default", TypeName{Name: "Array", Args: []TypeName{{Name: "T", Variable: true}}})

	require.True(t, f.HasTypeVariables())
	f.RemoveTypeVariables()

	assert.False(t, f.HasTypeVariables())
	assert.Equal(t, Dynamic, f.ReturnType.String())
	assert.Equal(t, "Array<dynamic>", f.Parameters()[0].Type.String())
}

func TestModifiersAndForeignName(t *testing.T) {
	t.Parallel()

	p := NewProperty("Name", ParseTypeName("String"))

	assert.True(t, p.AddModifier(ModifierOverride))
	assert.False(t, p.AddModifier(ModifierOverride))
	assert.True(t, p.IsOverride())
	assert.True(t, p.RemoveModifier(ModifierOverride))
	assert.False(t, p.IsOverride())

	_, ok := p.ForeignName()
	assert.False(t, ok)

	p.SetForeignName("Name")
	name, ok := p.ForeignName()
	assert.True(t, ok)
	assert.Equal(t, "Name", name)

	p.RemoveForeignName()
	_, ok = p.ForeignName()
	assert.False(t, ok)
}

func TestAllMembers(t *testing.T) {
	t.Parallel()

	pkg, _, _ := samplePackage()

	kinds := make(map[Kind]int)
	for _, m := range AllMembers(pkg) {
		kinds[m.Kind()]++
	}

	assert.Equal(t, 1, kinds[KindFile])
	assert.Equal(t, 3, kinds[KindClass])
	assert.Equal(t, 1, kinds[KindFunction])
	assert.Equal(t, 1, kinds[KindProperty])
	assert.Equal(t, 1, kinds[KindParameter])
}

func TestClass_Supertypes(t *testing.T) {
	t.Parallel()

	c := NewClass("Widget")
	c.Superclass = &TypeName{Name: "UObject"}

	assert.True(t, c.AddSuperinterface(ParseTypeName("Visual")))
	assert.False(t, c.AddSuperinterface(ParseTypeName("Visual")))
	assert.Len(t, c.Supertypes(), 2)

	assert.True(t, c.RemoveSupertype("UObject"))
	assert.Nil(t, c.Superclass)
	assert.True(t, c.RemoveSupertype("Visual"))
	assert.False(t, c.RemoveSupertype("Visual"))
	assert.Empty(t, c.Supertypes())
}
