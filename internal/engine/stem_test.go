package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"declaration-corrector/internal/common"
)

func TestStem(t *testing.T) {
	t.Parallel()

	st := newStem("Vector", "", nil)
	assert.Equal(t, []string{"Vector1", "Vector2", "Vector3"}, []string{st.Next(), st.Next(), st.Next()})

	taken := common.NewSet("Value2")
	st = newStem("Value", "", taken)
	assert.Equal(t, []string{"Value1", "Value3", "Value4"}, []string{st.Next(), st.Next(), st.Next()})
	assert.True(t, taken.Has("Value3"))
}

func TestStem_Suffix(t *testing.T) {
	t.Parallel()

	st := newStem("ValueDouble", "Provider", common.NewSet("ValueDouble1Provider"))
	assert.Equal(t, []string{"ValueDouble2Provider", "ValueDouble3Provider"}, []string{st.Next(), st.Next()})
}
