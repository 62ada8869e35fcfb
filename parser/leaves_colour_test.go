package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColourLeafParseValue(t *testing.T) {
	s := NewState("red blue")
	v, ok := ColourLeaf.ParseValue(s)
	require.True(t, ok)
	assert.Equal(t, 0xFF0000, v)
	assert.Equal(t, 3, s.pos)
}

func TestColourLeafUnknownNameDefaultsZero(t *testing.T) {
	s := NewState("nosuchcolour")
	v, ok := ColourLeaf.ParseValue(s)
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestColourLeafRejectsNonLetter(t *testing.T) {
	s := NewState("123")
	_, ok := ColourLeaf.ParseValue(s)
	assert.False(t, ok)
}
