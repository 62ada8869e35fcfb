package controls

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

func oneCycle() pattern.Interval {
	return pattern.Interval{Begin: big.NewRat(0, 1), End: big.NewRat(1, 1)}
}

func TestStringChannelFallsBackToSilenceWhenUnregistered(t *testing.T) {
	evs := StringChannel("nosuchcontrol")(oneCycle())
	assert.Empty(t, evs)
}

func TestRegisterStringMatchesGlob(t *testing.T) {
	RegisterString("bd*", func(name string) pattern.Pattern[string] {
		return pattern.Pure(name)
	})

	evs := StringChannel("bd:3")(oneCycle())
	require.Len(t, evs, 1)
	assert.Equal(t, "bd:3", evs[0].Value)

	assert.Empty(t, StringChannel("sn:1")(oneCycle()))
}

func TestRegisterDoubleMatchesGlob(t *testing.T) {
	RegisterDouble("speed:*", func(name string) pattern.Pattern[float64] {
		return pattern.Pure(1.5)
	})

	evs := DoubleChannel("speed:up")(oneCycle())
	require.Len(t, evs, 1)
	assert.Equal(t, 1.5, evs[0].Value)
}
