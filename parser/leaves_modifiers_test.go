package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/patterncore-go/ast"
)

func TestParseModifierGroupInvertRun(t *testing.T) {
	s := NewState("ii rest")
	mods, ok := parseModifierGroup(s)
	require.True(t, ok)
	assert.Equal(t, []ast.Modifier{{Kind: ast.ModInvert}, {Kind: ast.ModInvert}}, mods)
}

func TestParseModifierGroupOpenRun(t *testing.T) {
	s := NewState("o")
	mods, ok := parseModifierGroup(s)
	require.True(t, ok)
	assert.Equal(t, []ast.Modifier{{Kind: ast.ModOpen}}, mods)
}

func TestParseModifierGroupRange(t *testing.T) {
	s := NewState("2")
	mods, ok := parseModifierGroup(s)
	require.True(t, ok)
	assert.Equal(t, []ast.Modifier{{Kind: ast.ModRange, N: 2}}, mods)
}

func TestParseModifierGroupDrop(t *testing.T) {
	s := NewState("-1")
	mods, ok := parseModifierGroup(s)
	require.True(t, ok)
	assert.Equal(t, []ast.Modifier{{Kind: ast.ModDrop, N: 1}}, mods)
}

func TestModifiersLeafParsesRunOfGroups(t *testing.T) {
	s := NewState("i2")
	mods, ok := ModifiersLeaf.ParseValue(s)
	require.True(t, ok)
	assert.Equal(t, []ast.Modifier{{Kind: ast.ModInvert}, {Kind: ast.ModRange, N: 2}}, mods)
}
