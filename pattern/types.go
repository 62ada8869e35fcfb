// Package pattern supplies the external Pattern algebra spec.md treats as a
// fixed collaborator library: fast, slow, stack, timeCat, silence,
// degradeByUsing, chooseBy, fastFromList, segment, rand, rotL, withEvents,
// innerJoin, the Bjorklund Euclidean rhythm, and event collect/uncollect.
// The compiler (package compile) folds the mini-notation AST into these
// primitives; nothing in this package knows the grammar exists.
package pattern

import (
	"math/big"

	"github.com/Conceptual-Machines/patterncore-go/ast"
	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
)

// Interval is a half-open time span [Begin, End).
type Interval struct {
	Begin, End *big.Rat
}

// NewInterval builds an Interval, matching spec.md's whole/part shape.
func NewInterval(begin, end *big.Rat) Interval {
	return Interval{Begin: begin, End: end}
}

// Width returns End-Begin.
func (i Interval) Width() *big.Rat { return rat.Sub(i.End, i.Begin) }

// Sect returns the intersection of i and j, which may be empty (Begin>End).
func (i Interval) Sect(j Interval) Interval {
	return Interval{Begin: rat.Max(i.Begin, j.Begin), End: rat.Min(i.End, j.End)}
}

// SectNonEmpty intersects i and j, reporting false if the result is empty.
// A zero-width intersection is kept only when i itself was zero-width, so
// instant queries at a boundary still see the event they land on.
func (i Interval) SectNonEmpty(j Interval) (Interval, bool) {
	s := i.Sect(j)
	if rat.Lt(s.Begin, s.End) {
		return s, true
	}
	if rat.Eq(s.Begin, s.End) && rat.Eq(i.Begin, i.End) {
		return s, true
	}
	return s, false
}

// CycleArcs splits i at every integer cycle boundary it crosses.
func (i Interval) CycleArcs() []Interval {
	if rat.Gte(i.Begin, i.End) {
		if rat.Eq(i.Begin, i.End) {
			return []Interval{i}
		}
		return nil
	}
	var out []Interval
	b := i.Begin
	for rat.Lt(b, i.End) {
		nextSam := rat.Add(rat.Sam(b), rat.One())
		e := rat.Min(nextSam, i.End)
		out = append(out, Interval{Begin: b, End: e})
		b = e
	}
	return out
}

// Event is a timed value: an optional logical Whole extent, the Part of it
// actually visible in the sampled window, the Value itself, and the source
// locations (Context) it can be attributed to.
type Event[T any] struct {
	Whole   *Interval
	Part    Interval
	Value   T
	Context []ast.Span
}

// HasOnset reports whether this event's part begins exactly where its whole
// does - i.e. whether the sampled window actually caught the note's attack.
func (e Event[T]) HasOnset() bool {
	return e.Whole != nil && rat.Eq(e.Whole.Begin, e.Part.Begin)
}

// Pattern is a pure function from a query window to the events active in it.
type Pattern[T any] func(Interval) []Event[T]

// WeightedPattern pairs a compiled child with its resolved step weight, the
// currency TimeCat and the polyrhythm folder both work in.
type WeightedPattern[T any] struct {
	Weight *big.Rat
	Pat    Pattern[T]
}
