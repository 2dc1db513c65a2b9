package engine

import (
	"strconv"

	"declaration-corrector/internal/common"
)

// newStem creates a suffix generator for base. The number goes between base
// and suffix. Names already in taken are skipped; a nil taken set is treated
// as empty.
func newStem(base, suffix string, taken common.Set[string]) *stem {
	if taken == nil {
		taken = common.NewSet[string]()
	}

	return &stem{taken: taken, base: base, suffix: suffix}
}

type stem struct {
	taken  common.Set[string]
	base   string
	suffix string
	last   int
}

// Next returns the next free numbered name and marks it taken.
func (s *stem) Next() string {
	for {
		s.last++
		name := s.base + strconv.Itoa(s.last) + s.suffix

		if s.taken.Add(name) {
			return name
		}
	}
}
