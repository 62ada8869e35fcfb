package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntLeafParseValue(t *testing.T) {
	s := NewState("42 rest")
	v, ok := IntLeaf.ParseValue(s)
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, s.pos)
}

func TestIntLeafRejectsFraction(t *testing.T) {
	s := NewState("1%3")
	_, ok := IntLeaf.ParseValue(s)
	assert.False(t, ok)
}

func TestIntFromTo(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, intFromTo(0, 3))
	assert.Equal(t, []int{3, 2, 1}, intFromTo(3, 1))
}

func TestIntFromThenTo(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4, 6}, intFromThenTo(0, 2, 6))
}

func TestIntLeafHasNoChordHook(t *testing.T) {
	assert.Nil(t, IntLeaf.ChordRoot)
	assert.Nil(t, IntLeaf.InjectFromFloat)
}
