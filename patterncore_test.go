package patterncore

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/patterncore-go/parser"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

func fullCycle() pattern.Interval {
	return pattern.Interval{Begin: big.NewRat(0, 1), End: big.NewRat(1, 1)}
}

func TestParseBPStringHappyPath(t *testing.T) {
	pat, err := ParseBPString("a b c d")
	require.Nil(t, err)
	evs := pat(fullCycle())
	require.Len(t, evs, 4)
	assert.Equal(t, "a", evs[0].Value)
	assert.Equal(t, "d", evs[3].Value)
}

func TestParseBPStringReportsFurthestFailure(t *testing.T) {
	_, err := ParseBPString("a ]")
	require.NotNil(t, err)
	assert.Contains(t, err.Display(), "^")
}

func TestParseBPRepeatsAreDeterministic(t *testing.T) {
	pat1, err1 := ParseBPString("a? b?")
	pat2, err2 := ParseBPString("a? b?")
	require.Nil(t, err1)
	require.Nil(t, err2)
	assert.Equal(t, pat1(fullCycle()), pat2(fullCycle()))
}

func TestParseBPENormalReturnsPattern(t *testing.T) {
	pat := ParseBPE(parser.StringLeaf, "a b")
	evs := pat(fullCycle())
	assert.Len(t, evs, 2)
}

func TestParseBPEPanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		ParseBPE(parser.StringLeaf, "a ]")
	})
}

func TestParseBPIntEnumeration(t *testing.T) {
	pat, err := ParseBPInt("0 .. 3")
	require.Nil(t, err)
	evs := pat(fullCycle())
	require.Len(t, evs, 4)
	for i, e := range evs {
		assert.Equal(t, i, e.Value)
	}
}

func TestParseBPIntegerAliasesInt(t *testing.T) {
	pat, err := ParseBPInteger("1 2 3")
	require.Nil(t, err)
	evs := pat(fullCycle())
	require.Len(t, evs, 3)
	assert.Equal(t, 2, evs[1].Value)
}

func TestParseBPColourLooksUpNamedColour(t *testing.T) {
	pat, err := ParseBPColour("red")
	require.Nil(t, err)
	evs := pat(fullCycle())
	require.Len(t, evs, 1)
	assert.Equal(t, 0xFF0000, evs[0].Value)
}
