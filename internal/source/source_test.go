package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"declaration-corrector/internal/decl"
)

const actorDocument = `
name: ue
imports: [kotlin.js.Promise]
typeAliases:
  - name: FOnEvent
    type: "() -> Unit"
classes:
  - name: Actor
    superclass: UObject
    typeVariables: [T]
    properties:
      - name: RootComponent
        type: SceneComponent?
        mutable: true
    functions:
      - name: GetComponent
        returnType: T
        jsName: GetComponent
        modifiers: [open]
        parameters:
          - name: Class
            type: kotlin.Array<T>
    classes:
      - name: Companion
        kind: object
  - name: UObject
    kind: class
functions:
  - name: setTimeout
    parameters:
      - name: fn
        type: "() -> Unit"
properties:
  - name: Root
    type: dynamic
`

func TestParse(t *testing.T) {
	d, err := Parse(strings.NewReader(actorDocument), "fallback")
	require.NoError(t, err)

	assert.Equal(t, "ue", d.Name)
	require.Len(t, d.Classes, 2)
	assert.Equal(t, decl.ClassKindObject, d.Classes[0].Classes[0].Kind)

	f := d.File()
	assert.Equal(t, []string{"kotlin.js.Promise"}, f.Imports)
	require.Len(t, f.TypeAliases(), 1)
	require.Len(t, f.Functions(), 1)
	require.Len(t, f.Properties(), 1)

	actor := f.Classes()[0]
	assert.Equal(t, "Actor", actor.Name())
	require.NotNil(t, actor.Superclass)
	assert.Equal(t, "UObject", actor.Superclass.Name)
	assert.True(t, actor.Properties()[0].Type.Nullable)
	assert.True(t, actor.Properties()[0].Mutable)
	require.Len(t, actor.Classes(), 1)

	fn := actor.Functions()[0]
	assert.True(t, fn.ReturnType.Variable)
	assert.True(t, fn.Parameters()[0].Type.Args[0].Variable)
	assert.False(t, fn.Parameters()[0].Type.Variable)
	assert.Equal(t, decl.Modifiers{decl.ModifierOpen}, fn.Modifiers())

	foreign, ok := fn.ForeignName()
	assert.True(t, ok)
	assert.Equal(t, "GetComponent", foreign)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader("name: ue\nclases: []\n"), "x")
	assert.Error(t, err)

	d, err := Parse(strings.NewReader(""), "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", d.Name)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ue.yml"), []byte(actorDocument), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_part_0_ue.yaml"), []byte(`
classes:
  - name: Pawn
    superclass: Actor
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	pkg, err := Load(context.Background(), dir, "ue", 2, nil)
	require.NoError(t, err)

	files := pkg.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "_part_0_ue", files[0].Name)
	assert.Equal(t, "ue", files[1].Name)

	pawn, actor := classNamed(pkg, "Pawn"), classNamed(pkg, "Actor")
	require.NotNil(t, pawn)
	require.NotNil(t, actor)
	assert.Same(t, actor, pawn.Superclass.Class())
	assert.True(t, pawn.HasSuperType("UObject"))
}

func classNamed(pkg *decl.Package, name string) *decl.Class {
	for _, c := range pkg.AllClasses() {
		if c.OriginalName() == name {
			return c
		}
	}

	return nil
}

func TestLoad_PackageFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yml"), []byte("classes:\n  - name: A\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"),
		[]byte("package: tsstdlib\nclasses:\n  - name: B\n"), 0o644))

	pkg, err := Load(context.Background(), dir, "ue", 1, nil)
	require.NoError(t, err)

	files := pkg.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "ue", files[0].PackageName)
	assert.Equal(t, "tsstdlib", files[1].PackageName)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing"), "ue", 1, nil)
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ue.yml"), []byte("classes: {\n"), 0o644))

	_, err = Load(context.Background(), dir, "ue", 1, nil)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ok, "ue.yml"), []byte(actorDocument), 0o644))

	_, err = Load(ctx, ok, "ue", 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
