package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Conceptual-Machines/patterncore-go/ast"
)

func TestExpandMajorTriad(t *testing.T) {
	got := Expand(60, "maj", nil, 128)
	assert.Equal(t, []int{60, 64, 67}, got)
}

func TestExpandUnknownDefaultsToRoot(t *testing.T) {
	got := Expand(60, "notachord", nil, 128)
	assert.Equal(t, []int{60}, got)
}

func TestInvertDropsFirstRaisesOctave(t *testing.T) {
	got := invertModifier([]int{60, 64, 67})
	assert.Equal(t, []int{64, 67, 72}, got)
}

func TestRangeModifierWrapsOctaves(t *testing.T) {
	got := rangeModifier([]int{0, 4, 7}, 5, 128)
	assert.Equal(t, []int{0, 4, 7, 12, 16}, got)
}

func TestOpenModifierReorders(t *testing.T) {
	got := openModifier([]int{0, 4, 7})
	assert.Equal(t, []int{-12, -5, 4}, got)
}

func TestExpandFoldsModifiersLeftToRight(t *testing.T) {
	got := Expand(0, "maj", []ast.Modifier{{Kind: ast.ModInvert}, {Kind: ast.ModOpen}}, 128)
	assert.Equal(t, []int{-8, 0, 7}, got)
}
