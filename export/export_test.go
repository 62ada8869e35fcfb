package export_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	patterncore "github.com/Conceptual-Machines/patterncore-go"
	"github.com/Conceptual-Machines/patterncore-go/export"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

// goldenFixtures pins two of spec 8's end-to-end scenarios as data, so the
// compiled output is checked against JSON fixture data rather than
// duplicated Go literals.
const goldenFixtures = `[
  {"input": "a b c d", "events": [
    {"begin": "0", "end": "1/4", "value": "a"},
    {"begin": "1/4", "end": "1/2", "value": "b"},
    {"begin": "1/2", "end": "3/4", "value": "c"},
    {"begin": "3/4", "end": "1", "value": "d"}
  ]},
  {"input": "a ~ b ~", "events": [
    {"begin": "0", "end": "1/4", "value": "a"},
    {"begin": "1/2", "end": "3/4", "value": "b"}
  ]}
]`

func TestGoldenFixturesMatchCompiledEvents(t *testing.T) {
	fixtures := export.ParseFixtures(goldenFixtures)
	require.Len(t, fixtures, 2)

	cycle := pattern.Interval{Begin: big.NewRat(0, 1), End: big.NewRat(1, 1)}
	for _, f := range fixtures {
		pat, err := patterncore.ParseBPString(f.Input)
		require.Nil(t, err, "parse %q", f.Input)
		evs := pat(cycle)
		require.Len(t, evs, len(f.Events), "input %q", f.Input)
		for i, want := range f.Events {
			wantBegin, ok := new(big.Rat).SetString(want.Begin)
			require.True(t, ok)
			wantEnd, ok := new(big.Rat).SetString(want.End)
			require.True(t, ok)
			assert.Zero(t, evs[i].Part.Begin.Cmp(wantBegin), "input %q event %d begin", f.Input, i)
			assert.Zero(t, evs[i].Part.End.Cmp(wantEnd), "input %q event %d end", f.Input, i)
			assert.Equal(t, want.Value, evs[i].Value)
		}
	}
}

// TestEventsJSONReadableByParseFixtures checks that EventsJSON's output and
// ParseFixtures' input agree on shape: rendering a sampled stream and
// reading it back names the same events.
func TestEventsJSONReadableByParseFixtures(t *testing.T) {
	pat, err := patterncore.ParseBPString("a b")
	require.Nil(t, err)
	evs := pat(pattern.Interval{Begin: big.NewRat(0, 1), End: big.NewRat(1, 1)})

	js, jerr := export.EventsJSON(evs, func(v string) string { return v })
	require.NoError(t, jerr)

	wrapped := `[{"input":"a b","events":` + js + `}]`
	fixtures := export.ParseFixtures(wrapped)
	require.Len(t, fixtures, 1)
	assert.Equal(t, "a b", fixtures[0].Input)
	require.Len(t, fixtures[0].Events, 2)
	assert.Equal(t, "a", fixtures[0].Events[0].Value)
	assert.Equal(t, "b", fixtures[0].Events[1].Value)
}
