package scope

import "declaration-corrector/internal/decl"

// SourceNameCorrection is the rename source recorded by name corrections.
const SourceNameCorrection = "nameCorrection"

// NameCorrection computes a replacement name for a declaration.
type NameCorrection interface {
	// NameFor returns the desired name of d and whether d should be renamed.
	NameFor(d decl.Named) (string, bool)
}

// SetName renames to a fixed name.
type SetName string

func (s SetName) NameFor(decl.Named) (string, bool) { return string(s), true }

// SetNameIf renames to Name when Cond accepts the declaration.
type SetNameIf struct {
	Name string
	Cond func(decl.Named) bool
}

func (s SetNameIf) NameFor(d decl.Named) (string, bool) {
	if s.Cond != nil && !s.Cond(d) {
		return "", false
	}

	return s.Name, true
}

// NameFunc derives the new name from the declaration.
type NameFunc func(decl.Named) string

func (f NameFunc) NameFor(d decl.Named) (string, bool) { return f(d), true }

type noOp struct{}

func (noOp) NameFor(decl.Named) (string, bool) { return "", false }

// NoOp leaves names untouched.
var NoOp NameCorrection = noOp{}

// ApplyName renames d per c and locks it. A correction yielding the current
// name, an empty name, or nothing changes nothing. It reports whether d was
// renamed.
func ApplyName(d decl.Named, c NameCorrection) bool {
	name, ok := c.NameFor(d)
	if !ok || name == "" || name == d.Name() {
		return false
	}

	if !d.Rename(SourceNameCorrection, name) {
		return false
	}

	d.LockRenaming()

	return true
}

// staged holds the name correction staged on a scope.
type staged struct {
	correction NameCorrection
	locked     bool
}

// Use stages c. With lock set, later Use calls are ignored.
func (s *staged) Use(c NameCorrection, lock bool) {
	if s.locked {
		return
	}

	s.correction = c
	s.locked = lock
}

// NameCorrection returns the staged correction, NoOp when none.
func (s *staged) NameCorrection() NameCorrection {
	if s.correction == nil {
		return NoOp
	}

	return s.correction
}

// IsNameCorrectionLocked reports whether the staged correction is final.
func (s *staged) IsNameCorrectionLocked() bool { return s.locked }
