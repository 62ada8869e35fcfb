package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
)

func oneCycle() Interval { return NewInterval(rat.Zero(), rat.One()) }

func values[T any](evs []Event[T]) []T {
	out := make([]T, len(evs))
	for i, e := range evs {
		out[i] = e.Value
	}
	return out
}

func TestPureOneCycle(t *testing.T) {
	p := Pure("bd")
	evs := p(oneCycle())
	require.Len(t, evs, 1)
	assert.Equal(t, "bd", evs[0].Value)
	assert.True(t, evs[0].HasOnset())
}

func TestFastFromListSteps(t *testing.T) {
	p := FastFromList([]string{"bd", "sn", "hh", "cp"})
	evs := p(oneCycle())
	require.Len(t, evs, 4)
	assert.Equal(t, []string{"bd", "sn", "hh", "cp"}, values(evs))
	assert.True(t, rat.Eq(evs[0].Part.Begin, rat.Zero()))
	assert.True(t, rat.Eq(evs[3].Part.End, rat.One()))
}

func TestStackLayers(t *testing.T) {
	p := Stack(Pure("bd"), Pure("hh"))
	evs := p(oneCycle())
	require.Len(t, evs, 2)
}

func TestFastSpeedsUp(t *testing.T) {
	p := Fast(rat.FromInt(2), Pure("bd"))
	evs := p(oneCycle())
	require.Len(t, evs, 2)
}

func TestFastNonPositiveIsSilence(t *testing.T) {
	p := Fast(rat.Zero(), Pure("bd"))
	evs := p(oneCycle())
	assert.Empty(t, evs)
}

func TestTimeCatWeights(t *testing.T) {
	p := TimeCat([]WeightedPattern[string]{
		{Weight: rat.One(), Pat: Pure("a")},
		{Weight: rat.FromInt(3), Pat: Pure("b")},
	})
	evs := p(oneCycle())
	require.Len(t, evs, 2)
	assert.Equal(t, "a", evs[0].Value)
	assert.True(t, rat.Eq(evs[0].Part.End, rat.New(1, 4)))
	assert.Equal(t, "b", evs[1].Value)
	assert.True(t, rat.Eq(evs[1].Part.Begin, rat.New(1, 4)))
}

func TestBjorklundCanonical(t *testing.T) {
	bits := Bjorklund(3, 8)
	require.Len(t, bits, 8)
	var hits []int
	for i, b := range bits {
		if b {
			hits = append(hits, i)
		}
	}
	assert.Equal(t, []int{0, 3, 6}, hits)
}

func TestDoEuclidGatesValues(t *testing.T) {
	p := DoEuclid(3, 8, 0, Pure("bd"))
	evs := p(oneCycle())
	require.Len(t, evs, 3)
	for _, e := range evs {
		assert.Equal(t, "bd", e.Value)
	}
}

func TestCollectUncollectRoundTrip(t *testing.T) {
	evs := FastFromList([]int{1, 1, 2, 2})(oneCycle())
	// group manually: pair up equal adjacent parts by constructing same Whole/Part
	grouped := Collect([]Event[int]{
		{Whole: evs[0].Whole, Part: evs[0].Part, Value: 1},
		{Whole: evs[0].Whole, Part: evs[0].Part, Value: 7},
	})
	require.Len(t, grouped, 1)
	assert.Equal(t, []int{1, 7}, grouped[0].Value)

	back := Uncollect(grouped)
	require.Len(t, back, 2)
	assert.Equal(t, 1, back[0].Value)
	assert.Equal(t, 7, back[1].Value)
}

func TestDegradeByKeepsHighRandValues(t *testing.T) {
	always := func(v float64) Pattern[float64] {
		return func(span Interval) []Event[float64] {
			return []Event[float64]{{Whole: &span, Part: span, Value: v}}
		}
	}
	kept := DegradeByUsing(always(0.9), 0.5, Pure("bd"))(oneCycle())
	assert.Len(t, kept, 1)

	dropped := DegradeByUsing(always(0.1), 0.5, Pure("bd"))(oneCycle())
	assert.Empty(t, dropped)
}
