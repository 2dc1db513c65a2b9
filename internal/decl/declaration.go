package decl

import "sync/atomic"

// ID is a stable, process-unique declaration identifier.
type ID int64

var lastID atomic.Int64

func nextID() ID {
	return ID(lastID.Add(1))
}

// Declaration is any syntactic unit in the model.
type Declaration interface {
	ID() ID
	Kind() Kind
	// Members returns the direct children of the declaration.
	Members() []Declaration
	// Refresh recomputes cached child state after structural edits. It is safe
	// to call any number of times.
	Refresh()
}

// Named is a declaration with an original name, a current name and a rename lock.
type Named interface {
	Declaration
	Name() string
	OriginalName() string
	Rename(source, newName string) bool
	LockRenaming()
	UnlockRenaming(reason string)
	IsRenamingLocked() bool
	LockState() LockState
}

// AllMembers returns every transitive member of d in depth-first order.
// d itself is not included.
func AllMembers(d Declaration) []Declaration {
	var out []Declaration

	var walk func(Declaration)
	walk = func(cur Declaration) {
		for _, m := range cur.Members() {
			out = append(out, m)
			walk(m)
		}
	}
	walk(d)

	return out
}

//go:generate go tool stringer -type=LockState -trimprefix=Lock -output=lockstate_string.go

// LockState is the rename latch of a named declaration.
type LockState int

const (
	// LockUnset means the name has never been locked.
	LockUnset LockState = iota
	// LockLocked rejects every rename.
	LockLocked
	// LockReopened means the lock was explicitly released; see ReopenReason.
	LockReopened
)

// RenameEvent records one accepted rename.
type RenameEvent struct {
	Source string
	From   string
	To     string
}

type nameState struct {
	id           ID
	name         string
	originalName string
	lock         LockState
	reopenReason string
	history      []RenameEvent
}

func newNameState(name string) nameState {
	return nameState{id: nextID(), name: name, originalName: name}
}

func (n *nameState) ID() ID               { return n.id }
func (n *nameState) Name() string         { return n.name }
func (n *nameState) OriginalName() string { return n.originalName }
func (n *nameState) LockState() LockState { return n.lock }

// Rename changes the current name unless the lock is set. The source tag is
// kept in the rename history. It reports whether the name changed.
func (n *nameState) Rename(source, newName string) bool {
	if n.lock == LockLocked || newName == "" || newName == n.name {
		return false
	}

	n.history = append(n.history, RenameEvent{Source: source, From: n.name, To: newName})
	n.name = newName

	return true
}

// LockRenaming sets the lock.
func (n *nameState) LockRenaming() {
	n.lock = LockLocked
}

// UnlockRenaming reopens a locked name. The reason is kept for auditing.
func (n *nameState) UnlockRenaming(reason string) {
	if n.lock != LockLocked {
		return
	}

	n.lock = LockReopened
	n.reopenReason = reason
}

func (n *nameState) IsRenamingLocked() bool {
	return n.lock == LockLocked
}

// ReopenReason returns why the lock was last released, if it was.
func (n *nameState) ReopenReason() string {
	return n.reopenReason
}

// RenameHistory returns the accepted renames in order.
func (n *nameState) RenameHistory() []RenameEvent {
	return append([]RenameEvent(nil), n.history...)
}

// Modifier is a declaration modifier keyword.
type Modifier string

const (
	ModifierOverride Modifier = "override"
	ModifierOpen     Modifier = "open"
	ModifierAbstract Modifier = "abstract"
	ModifierExternal Modifier = "external"
	ModifierSealed   Modifier = "sealed"
)

// Modifiers is an ordered modifier set.
type Modifiers []Modifier

// Has reports whether m is present.
func (ms Modifiers) Has(m Modifier) bool {
	for _, cur := range ms {
		if cur == m {
			return true
		}
	}

	return false
}

func (ms *Modifiers) add(m Modifier) bool {
	if ms.Has(m) {
		return false
	}

	*ms = append(*ms, m)

	return true
}

func (ms *Modifiers) remove(m Modifier) bool {
	for i, cur := range *ms {
		if cur == m {
			*ms = append((*ms)[:i], (*ms)[i+1:]...)
			return true
		}
	}

	return false
}

// member is the state shared by functions and properties.
type member struct {
	nameState
	modifiers   Modifiers
	foreignName string
	hasForeign  bool
	parent      Declaration
}

// Modifiers returns a copy of the modifier set.
func (m *member) Modifiers() Modifiers { return append(Modifiers(nil), m.modifiers...) }

// AddModifier adds mod if absent and reports whether it was added.
func (m *member) AddModifier(mod Modifier) bool { return m.modifiers.add(mod) }

// RemoveModifier removes mod if present and reports whether it was removed.
func (m *member) RemoveModifier(mod Modifier) bool { return m.modifiers.remove(mod) }

// IsOverride reports whether the override modifier is present.
func (m *member) IsOverride() bool { return m.modifiers.Has(ModifierOverride) }

// ForeignName returns the external wire-format name binding, if any.
func (m *member) ForeignName() (string, bool) { return m.foreignName, m.hasForeign }

// SetForeignName binds the declaration to an external name.
func (m *member) SetForeignName(name string) {
	m.foreignName = name
	m.hasForeign = true
}

// RemoveForeignName clears the external name binding.
func (m *member) RemoveForeignName() {
	m.foreignName = ""
	m.hasForeign = false
}

// Parent returns the owning class or file.
func (m *member) Parent() Declaration { return m.parent }
