package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
)

func TestRationalLeafParseValue(t *testing.T) {
	s := NewState("1%3 rest")
	v, ok := RationalLeaf.ParseValue(s)
	require.True(t, ok)
	assert.True(t, rat.Eq(v, rat.New(1, 3)))
	assert.Equal(t, 3, s.pos)
}

func TestRatFromTo(t *testing.T) {
	out := ratFromTo(rat.FromInt(0), rat.FromInt(2))
	require.Len(t, out, 3)
	assert.True(t, rat.Eq(out[0], rat.FromInt(0)))
	assert.True(t, rat.Eq(out[2], rat.FromInt(2)))
}

func TestRationalLeafHasNoChordHook(t *testing.T) {
	assert.Nil(t, RationalLeaf.ChordRoot)
	assert.Nil(t, RationalLeaf.InjectFromFloat)
}
