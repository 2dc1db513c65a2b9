package closure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"declaration-corrector/internal/common"
	"declaration-corrector/internal/decl"
)

func TestClosure_Cycle(t *testing.T) {
	g := NewGraph()
	g.Add("A", "B")
	g.Add("B", "C")
	g.Add("C", "A")
	g.Add("D", "A")

	assert.Equal(t, []string{"A", "B", "C"}, common.Sorted(g.Closure("A")))
	assert.Equal(t, []string{"D"}, g.Unreachable("A"))
}

func TestClosure(t *testing.T) {
	tests := []struct {
		name  string
		edges map[string][]string
		roots []string
		want  []string
	}{
		{
			name:  "empty roots",
			edges: map[string][]string{"A": {"B"}},
			want:  []string{},
		},
		{
			name:  "unknown root kept",
			edges: map[string][]string{"A": {"B"}},
			roots: []string{"Z"},
			want:  []string{"Z"},
		},
		{
			name:  "diamond",
			edges: map[string][]string{"A": {"B", "C"}, "B": {"D"}, "C": {"D"}, "E": {"A"}},
			roots: []string{"A"},
			want:  []string{"A", "B", "C", "D"},
		},
		{
			name:  "self reference",
			edges: map[string][]string{"A": {"A", ""}},
			roots: []string{"A"},
			want:  []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			for name, refs := range tt.edges {
				g.Add(name, refs...)
			}

			assert.Equal(t, tt.want, common.Sorted(g.Closure(tt.roots...)))
		})
	}
}

func TestFromPackage(t *testing.T) {
	file := decl.NewFile("ue", "ue")

	actor := decl.NewClass("Actor")
	super := decl.ParseTypeName("UObject")
	actor.Superclass = &super
	actor.AddProperty(decl.NewProperty("root", decl.ParseTypeName("kotlin.Array<SceneComponent>")))

	scene := decl.NewClass("SceneComponent")
	getOwner := decl.NewFunction("getOwner")
	owner := decl.ParseTypeName("Actor")
	getOwner.ReturnType = &owner
	scene.AddFunction(getOwner)

	uobject := decl.NewClass("UObject")
	unused := decl.NewClass("Unused")
	unused.AddProperty(decl.NewProperty("x", decl.ParseTypeName("Actor")))

	for _, c := range []*decl.Class{actor, scene, uobject, unused} {
		file.Add(c)
	}

	pkg := decl.NewPackage("ue", file)
	actor.Rename("test", "BaseActor")

	g := FromPackage(pkg)

	assert.Equal(t, []string{"Array", "SceneComponent", "UObject"}, g.References("BaseActor"))
	assert.Equal(t, []string{"BaseActor"}, g.References("SceneComponent"), "references follow renames")
	assert.Equal(t, []string{"Unused"}, g.Unreachable("BaseActor"))
}
