package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
)

func TestSkipSpace(t *testing.T) {
	assert.Equal(t, 2, SkipSpace("  a", 0))
	assert.Equal(t, 0, SkipSpace("a", 0))
}

func TestNatural(t *testing.T) {
	text, pos, ok := Natural("123abc", 0)
	require.True(t, ok)
	assert.Equal(t, "123", text)
	assert.Equal(t, 3, pos)

	_, _, ok = Natural("abc", 0)
	assert.False(t, ok)
}

func TestVocable(t *testing.T) {
	text, pos, ok := Vocable("bd:3 sn", 0)
	require.True(t, ok)
	assert.Equal(t, "bd:3", text)
	assert.Equal(t, 4, pos)
}

func TestRationalWithDurationLetter(t *testing.T) {
	v, pos, ok := Rational("3q rest", 0)
	require.True(t, ok)
	assert.Equal(t, 2, pos)
	assert.True(t, rat.Eq(v, rat.New(3, 4)))
}

func TestRationalWithDenominator(t *testing.T) {
	v, pos, ok := Rational("1%3", 0)
	require.True(t, ok)
	assert.Equal(t, 3, pos)
	assert.True(t, rat.Eq(v, rat.New(1, 3)))
}

func TestRationalNegative(t *testing.T) {
	v, _, ok := Rational("-0.5", 0)
	require.True(t, ok)
	assert.True(t, rat.Eq(v, rat.New(-1, 2)))
}
