package pattern

import (
	"math/big"
	"math/rand"

	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
)

// Rand samples a fresh pseudo-random float64 in [0,1) once per query,
// seeded deterministically from the query's own midpoint cycle position
// (TidalCycles' timeToRand), so the same span always reproduces the same
// draw regardless of when it's evaluated.
func Rand() Pattern[float64] {
	return func(span Interval) []Event[float64] {
		mid := rat.Quo(rat.Add(span.Begin, span.End), rat.FromInt(2))
		v := timeToRand(mid)
		whole := span
		return []Event[float64]{{Whole: &whole, Part: span, Value: v}}
	}
}

// timeToRand turns a cycle position into a reproducible float64 draw by
// seeding a fresh math/rand source from the fractional position scaled into
// an int64, matching TidalCycles' timeToRand.
func timeToRand(t *big.Rat) float64 {
	frac := rat.CyclePos(t)
	scaled := rat.ToFloat64(frac) * 536870912.0
	src := rand.New(rand.NewSource(int64(scaled)))
	return src.Float64()
}
