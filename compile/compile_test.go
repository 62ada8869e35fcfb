package compile

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/patterncore-go/parser"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

func sampleCycleString(t *testing.T, input string) []pattern.Event[string] {
	t.Helper()
	s := parser.NewState(input)
	node, ok := parser.ParseTop(s, parser.StringLeaf)
	require.True(t, ok, "parse %q", input)
	pat := ToPat(node, parser.StringLeaf, 128)
	return pat(pattern.Interval{Begin: big.NewRat(0, 1), End: big.NewRat(1, 1)})
}

func TestCompileSimpleSequence(t *testing.T) {
	evs := sampleCycleString(t, "a b c d")
	require.Len(t, evs, 4)
	wantValues := []string{"a", "b", "c", "d"}
	wantBegins := []*big.Rat{big.NewRat(0, 1), big.NewRat(1, 4), big.NewRat(1, 2), big.NewRat(3, 4)}
	for i, e := range evs {
		assert.Equal(t, wantValues[i], e.Value)
		assert.Zero(t, e.Part.Begin.Cmp(wantBegins[i]))
	}
}

func TestCompileRests(t *testing.T) {
	evs := sampleCycleString(t, "a ~ b ~")
	require.Len(t, evs, 2)
	assert.Equal(t, "a", evs[0].Value)
	assert.Equal(t, "b", evs[1].Value)
	assert.Zero(t, evs[1].Part.Begin.Cmp(big.NewRat(1, 2)))
}

func TestCompileFast(t *testing.T) {
	evs := sampleCycleString(t, "a*2")
	require.Len(t, evs, 2)
	assert.Zero(t, evs[0].Part.Begin.Cmp(big.NewRat(0, 1)))
	assert.Zero(t, evs[0].Part.End.Cmp(big.NewRat(1, 2)))
	assert.Zero(t, evs[1].Part.Begin.Cmp(big.NewRat(1, 2)))
	assert.Zero(t, evs[1].Part.End.Cmp(big.NewRat(1, 1)))
}

func TestCompileRepeat(t *testing.T) {
	evs := sampleCycleString(t, "a!3")
	require.Len(t, evs, 3)
	assert.Zero(t, evs[0].Part.End.Cmp(big.NewRat(1, 3)))
	assert.Zero(t, evs[1].Part.Begin.Cmp(big.NewRat(1, 3)))
	assert.Zero(t, evs[2].Part.End.Cmp(big.NewRat(1, 1)))
}

func TestCompileStack(t *testing.T) {
	evs := sampleCycleString(t, "[a b, c d e]")
	var layer1, layer2 int
	for _, e := range evs {
		switch e.Value {
		case "a", "b":
			layer1++
		case "c", "d", "e":
			layer2++
		}
	}
	assert.Equal(t, 2, layer1)
	assert.Equal(t, 3, layer2)
}

func TestCompileEuclid(t *testing.T) {
	s := parser.NewState("t(3,8)")
	node, ok := parser.ParseTop(s, parser.BoolLeaf)
	require.True(t, ok)
	pat := ToPat(node, parser.BoolLeaf, 128)
	evs := pat(pattern.Interval{Begin: big.NewRat(0, 1), End: big.NewRat(1, 1)})
	var onsets int
	for _, e := range evs {
		if e.Value {
			onsets++
		}
	}
	assert.Equal(t, 3, onsets)
}

func TestCompileEnumeration(t *testing.T) {
	s := parser.NewState("0 .. 3")
	node, ok := parser.ParseTop(s, parser.IntLeaf)
	require.True(t, ok)
	pat := ToPat(node, parser.IntLeaf, 128)
	evs := pat(pattern.Interval{Begin: big.NewRat(0, 1), End: big.NewRat(1, 1)})
	require.Len(t, evs, 4)
	want := []int{0, 1, 2, 3}
	for i, e := range evs {
		assert.Equal(t, want[i], e.Value)
	}
}

func TestCompileChordExpandsToSimultaneousNotes(t *testing.T) {
	s := parser.NewState("c'maj")
	node, ok := parser.ParseTop(s, parser.DoubleLeaf)
	require.True(t, ok)
	pat := ToPat(node, parser.DoubleLeaf, 128)
	evs := pat(pattern.Interval{Begin: big.NewRat(0, 1), End: big.NewRat(1, 1)})
	require.Len(t, evs, 3)
	var vals []float64
	for _, e := range evs {
		vals = append(vals, e.Value)
		assert.Zero(t, e.Part.Begin.Cmp(big.NewRat(0, 1)))
		assert.Zero(t, e.Part.End.Cmp(big.NewRat(1, 1)))
	}
	assert.ElementsMatch(t, []float64{0, 4, 7}, vals)
}
