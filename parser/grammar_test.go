package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/patterncore-go/ast"
)

func parseTopString(t *testing.T, input string) ast.TPat[string] {
	t.Helper()
	s := NewState(input)
	node, ok := ParseTop(s, StringLeaf)
	require.True(t, ok, "expected %q to parse", input)
	return node
}

func TestParseTopSimpleSequence(t *testing.T) {
	node := parseTopString(t, "a b c d")
	seq, ok := node.(ast.Seq[string])
	require.True(t, ok)
	assert.Len(t, seq.Children, 4)
}

func TestParseTopRests(t *testing.T) {
	node := parseTopString(t, "a ~ b ~")
	seq, ok := node.(ast.Seq[string])
	require.True(t, ok)
	require.Len(t, seq.Children, 4)
	_, isSilence := seq.Children[1].(ast.Silence[string])
	assert.True(t, isSilence)
}

func TestParseTopStack(t *testing.T) {
	node := soleChild[string](t, parseTopString(t, "[a b, c d e]"))
	stack, ok := node.(ast.Stack[string])
	require.True(t, ok)
	require.Len(t, stack.Children, 2)
	layer1 := stack.Children[0].(ast.Seq[string])
	layer2 := stack.Children[1].(ast.Seq[string])
	assert.Len(t, layer1.Children, 2)
	assert.Len(t, layer2.Children, 3)
}

func soleChild[T any](t *testing.T, node ast.TPat[T]) ast.TPat[T] {
	t.Helper()
	seq, ok := node.(ast.Seq[T])
	require.True(t, ok)
	require.Len(t, seq.Children, 1)
	return seq.Children[0]
}

func TestParseTopFast(t *testing.T) {
	node := soleChild[string](t, parseTopString(t, "a*2"))
	fast, ok := node.(ast.Fast[string])
	require.True(t, ok)
	_, isAtom := fast.Inner.(ast.Atom[string])
	assert.True(t, isAtom)
}

func TestParseTopRepeat(t *testing.T) {
	node := soleChild[string](t, parseTopString(t, "a!3"))
	rep, ok := node.(ast.Repeat[string])
	require.True(t, ok)
	assert.Equal(t, 3, rep.N)
}

func TestParseTopEuclid(t *testing.T) {
	node := soleChild[string](t, parseTopString(t, "bd(3,8)"))
	euc, ok := node.(ast.Euclid[string])
	require.True(t, ok)
	pulses := soleChild[int](t, euc.Pulses).(ast.Atom[int])
	steps := soleChild[int](t, euc.Steps).(ast.Atom[int])
	assert.Equal(t, 3, pulses.Value)
	assert.Equal(t, 8, steps.Value)
	rot := euc.Rotation.(ast.Atom[int])
	assert.Equal(t, 0, rot.Value)
}

func TestParseTopEnumeration(t *testing.T) {
	s := NewState("0 .. 3")
	node, ok := ParseTop(s, IntLeaf)
	require.True(t, ok)
	enum, ok := soleChild[int](t, node).(ast.EnumFromTo[int])
	require.True(t, ok)
	from := enum.From.(ast.Atom[int])
	to := enum.To.(ast.Atom[int])
	assert.Equal(t, 0, from.Value)
	assert.Equal(t, 3, to.Value)
}

func TestParseTopChordSuffix(t *testing.T) {
	s := NewState("c'maj")
	node, ok := ParseTop(s, DoubleLeaf)
	require.True(t, ok)
	chord, ok := soleChild[float64](t, node).(ast.Chord[float64])
	require.True(t, ok)
	name := chord.Name.(ast.Atom[string])
	assert.Equal(t, "maj", name.Value)
}

func TestParseTopNoFootLeaks(t *testing.T) {
	node := parseTopString(t, "[a . b c]")
	outer, ok := node.(ast.Seq[string])
	require.True(t, ok)
	for _, c := range outer.Children {
		assert.False(t, ast.HasFoot[string](c))
	}
}

func TestParseTopSeedsAllocatedLeftToRight(t *testing.T) {
	s := NewState("a? b?")
	node, ok := ParseTop(s, StringLeaf)
	require.True(t, ok)
	seq := node.(ast.Seq[string])
	require.Len(t, seq.Children, 2)
	d1 := seq.Children[0].(ast.DegradeBy[string])
	d2 := seq.Children[1].(ast.DegradeBy[string])
	assert.Equal(t, 0, d1.Seed)
	assert.Equal(t, 1, d2.Seed)
}

func TestParseTopRejectsTrailingGarbage(t *testing.T) {
	s := NewState("a ]")
	_, ok := ParseTop(s, StringLeaf)
	assert.False(t, ok)
}
