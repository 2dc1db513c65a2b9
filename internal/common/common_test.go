package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := NewSet("b", "a")
	assert.True(t, s.Add("c"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("z"))
	assert.Equal(t, []string{"a", "b", "c"}, Sorted(s))
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, SortedKeys(map[int]bool{3: true, 1: true, 2: false}))
}
