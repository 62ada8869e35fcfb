package pattern

import (
	"math/big"

	"github.com/Conceptual-Machines/patterncore-go/ast"
	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
)

// Pure repeats v once per cycle.
func Pure[T any](v T) Pattern[T] {
	return func(span Interval) []Event[T] {
		var out []Event[T]
		for _, cyc := range span.CycleArcs() {
			whole := Interval{Begin: rat.Sam(cyc.Begin), End: rat.Add(rat.Sam(cyc.Begin), rat.One())}
			out = append(out, Event[T]{Whole: &whole, Part: cyc, Value: v})
		}
		return out
	}
}

// Silence is the empty pattern.
func Silence[T any]() Pattern[T] {
	return func(Interval) []Event[T] { return nil }
}

// WithQueryTime rewrites the query window's endpoints before delegating.
func WithQueryTime[T any](f func(*big.Rat) *big.Rat, pat Pattern[T]) Pattern[T] {
	return func(span Interval) []Event[T] {
		return pat(Interval{Begin: f(span.Begin), End: f(span.End)})
	}
}

// WithResultTime rewrites every returned event's whole/part endpoints.
func WithResultTime[T any](f func(*big.Rat) *big.Rat, pat Pattern[T]) Pattern[T] {
	return func(span Interval) []Event[T] {
		evs := pat(span)
		out := make([]Event[T], len(evs))
		for i, e := range evs {
			var w *Interval
			if e.Whole != nil {
				nw := Interval{Begin: f(e.Whole.Begin), End: f(e.Whole.End)}
				w = &nw
			}
			out[i] = Event[T]{
				Whole:   w,
				Part:    Interval{Begin: f(e.Part.Begin), End: f(e.Part.End)},
				Value:   e.Value,
				Context: e.Context,
			}
		}
		return out
	}
}

// WithEvents post-processes the whole event list a query produces, letting
// callers reshape (map, filter, regroup) without touching query semantics.
func WithEvents[T, U any](pat Pattern[T], f func([]Event[T]) []Event[U]) Pattern[U] {
	return func(span Interval) []Event[U] { return f(pat(span)) }
}

// SplitQueries guarantees the wrapped pattern only ever sees a query that
// lies within a single cycle.
func SplitQueries[T any](pat Pattern[T]) Pattern[T] {
	return func(span Interval) []Event[T] {
		var out []Event[T]
		for _, c := range span.CycleArcs() {
			out = append(out, pat(c)...)
		}
		return out
	}
}

// RotL shifts a pattern earlier by t cycles: queries are pushed later by t,
// results pulled back earlier by t.
func RotL[T any](t *big.Rat, pat Pattern[T]) Pattern[T] {
	return WithResultTime(func(x *big.Rat) *big.Rat { return rat.Sub(x, t) },
		WithQueryTime(func(x *big.Rat) *big.Rat { return rat.Add(x, t) }, pat))
}

// RotR shifts a pattern later by t cycles.
func RotR[T any](t *big.Rat, pat Pattern[T]) Pattern[T] {
	return RotL(rat.Neg(t), pat)
}

// Fast speeds a pattern up by factor. A zero or negative factor collapses to
// silence: negative-rate reversal (Tidal's `rev`) is not part of the
// external algebra spec.md names, so it is out of scope here.
func Fast[T any](factor *big.Rat, pat Pattern[T]) Pattern[T] {
	if factor.Sign() <= 0 {
		return Silence[T]()
	}
	return WithResultTime(func(t *big.Rat) *big.Rat { return rat.Quo(t, factor) },
		WithQueryTime(func(t *big.Rat) *big.Rat { return rat.Mul(t, factor) }, pat))
}

// Slow slows a pattern down by factor; Slow(r, p) == Fast(1/r, p).
func Slow[T any](factor *big.Rat, pat Pattern[T]) Pattern[T] {
	if factor.Sign() == 0 {
		return Silence[T]()
	}
	return Fast(rat.Quo(rat.One(), factor), pat)
}

// Stack layers patterns simultaneously.
func Stack[T any](pats ...Pattern[T]) Pattern[T] {
	return func(span Interval) []Event[T] {
		var out []Event[T]
		for _, p := range pats {
			out = append(out, p(span)...)
		}
		return out
	}
}

// FastGap squeezes pat into the first 1/r of every cycle, leaving the rest
// silent, rather than repeating it r times the way Fast does.
func FastGap[T any](r *big.Rat, pat Pattern[T]) Pattern[T] {
	if r.Sign() <= 0 {
		return Silence[T]()
	}
	rPrime := rat.Max(r, rat.One())
	perCycle := func(span Interval) []Event[T] {
		sam := rat.Sam(span.Begin)
		munge := func(t *big.Rat) *big.Rat {
			cp := rat.Sub(t, sam)
			scaled := rat.Min(rat.Mul(rPrime, cp), rat.One())
			return rat.Add(sam, scaled)
		}
		qb := munge(span.Begin)
		qe := munge(span.End)
		if rat.Eq(qb, rat.Add(sam, rat.One())) {
			return nil
		}
		resultTime := func(t *big.Rat) *big.Rat {
			return rat.Add(sam, rat.Quo(rat.Sub(t, sam), rPrime))
		}
		inner := pat(Interval{Begin: qb, End: qe})
		out := make([]Event[T], len(inner))
		for i, e := range inner {
			var w *Interval
			if e.Whole != nil {
				nw := Interval{Begin: resultTime(e.Whole.Begin), End: resultTime(e.Whole.End)}
				w = &nw
			}
			out[i] = Event[T]{
				Whole:   w,
				Part:    Interval{Begin: resultTime(e.Part.Begin), End: resultTime(e.Part.End)},
				Value:   e.Value,
				Context: e.Context,
			}
		}
		return out
	}
	return SplitQueries(perCycle)
}

// CompressArc squeezes pat into just the [Begin,End) sub-window of every
// cycle. Begin and End must both lie in [0,1] with Begin<=End; anything else
// (spanning past the cycle boundary, or negative) yields silence.
func CompressArc[T any](arc Interval, pat Pattern[T]) Pattern[T] {
	if rat.Gt(arc.Begin, arc.End) || arc.Begin.Sign() < 0 || arc.End.Sign() < 0 ||
		rat.Gt(arc.Begin, rat.One()) || rat.Gt(arc.End, rat.One()) {
		return Silence[T]()
	}
	width := rat.Sub(arc.End, arc.Begin)
	if width.Sign() == 0 {
		return Silence[T]()
	}
	return RotR(arc.Begin, FastGap(rat.Quo(rat.One(), width), pat))
}

// TimeCat concatenates weighted children sequentially, each occupying its
// share of the cycle proportional to its weight over the total.
func TimeCat[T any](items []WeightedPattern[T]) Pattern[T] {
	total := rat.Zero()
	for _, it := range items {
		total = rat.Add(total, it.Weight)
	}
	if total.Sign() <= 0 {
		return Silence[T]()
	}
	pats := make([]Pattern[T], 0, len(items))
	cum := rat.Zero()
	for _, it := range items {
		b := rat.Quo(cum, total)
		cum = rat.Add(cum, it.Weight)
		e := rat.Quo(cum, total)
		pats = append(pats, CompressArc(Interval{Begin: b, End: e}, it.Pat))
	}
	return Stack(pats...)
}

// FastFromList spreads xs evenly across a single cycle, one per step.
func FastFromList[T any](xs []T) Pattern[T] {
	items := make([]WeightedPattern[T], len(xs))
	for i, x := range xs {
		items[i] = WeightedPattern[T]{Weight: rat.One(), Pat: Pure(x)}
	}
	return TimeCat(items)
}

// Segment discretizes pat into n even slots per cycle: structure comes from
// the slots, values are sampled from pat within each slot. n must be a
// positive integer-valued rational (the only call site in this module is
// Segment(1, ...) for cycle-choose).
func Segment[T any](n *big.Rat, pat Pattern[T]) Pattern[T] {
	structure := Fast(n, Pure(struct{}{}))
	return func(span Interval) []Event[T] {
		var out []Event[T]
		for _, se := range structure(span) {
			queryArc := se.Part
			if se.Whole != nil {
				queryArc = *se.Whole
			}
			for _, ie := range pat(queryArc) {
				part, ok := se.Part.SectNonEmpty(ie.Part)
				if !ok {
					continue
				}
				ctx := append(append([]ast.Span{}, ie.Context...), se.Context...)
				out = append(out, Event[T]{Whole: se.Whole, Part: part, Value: ie.Value, Context: ctx})
			}
		}
		return out
	}
}

// DegradeByUsing drops events of pat whose paired sample from randPat falls
// below amount. amount is in [0,1]; higher amount drops more.
func DegradeByUsing[T any](randPat Pattern[float64], amount float64, pat Pattern[T]) Pattern[T] {
	return func(span Interval) []Event[T] {
		var out []Event[T]
		for _, e := range pat(span) {
			queryArc := e.Part
			if e.Whole != nil {
				queryArc = *e.Whole
			}
			keep := false
			for _, r := range randPat(queryArc) {
				if _, ok := e.Part.SectNonEmpty(r.Part); ok {
					keep = r.Value >= amount
					break
				}
			}
			if keep {
				out = append(out, e)
			}
		}
		return out
	}
}

// ChooseBy samples randPat once per event and uses it to index into pats,
// yielding a pattern of patterns (flatten with Unwrap). An empty pats
// yields silence.
func ChooseBy[T any](randPat Pattern[float64], pats []Pattern[T]) Pattern[Pattern[T]] {
	if len(pats) == 0 {
		return Silence[Pattern[T]]()
	}
	return func(span Interval) []Event[Pattern[T]] {
		var out []Event[Pattern[T]]
		for _, r := range randPat(span) {
			idx := int(r.Value * float64(len(pats)))
			if idx >= len(pats) {
				idx = len(pats) - 1
			}
			if idx < 0 {
				idx = 0
			}
			out = append(out, Event[Pattern[T]]{Whole: r.Whole, Part: r.Part, Value: pats[idx], Context: r.Context})
		}
		return out
	}
}

// Unwrap flattens a pattern of patterns, intersecting each inner event's
// whole/part with its outer event's, as TidalCycles' monadic join does.
func Unwrap[T any](pp Pattern[Pattern[T]]) Pattern[T] {
	return func(span Interval) []Event[T] {
		var out []Event[T]
		for _, oe := range pp(span) {
			for _, ie := range oe.Value(oe.Part) {
				w, ok := subMaybeArc(oe.Whole, ie.Whole)
				if !ok {
					continue
				}
				p, ok2 := oe.Part.SectNonEmpty(ie.Part)
				if !ok2 {
					continue
				}
				ctx := append(append([]ast.Span{}, ie.Context...), oe.Context...)
				out = append(out, Event[T]{Whole: w, Part: p, Value: ie.Value, Context: ctx})
			}
		}
		return out
	}
}

// InnerJoin flattens a pattern of patterns using the inner pattern's own
// whole/part, clipped to the outer query window - useful when the outer
// pattern only exists to select which inner pattern structures a slot.
func InnerJoin[T any](pp Pattern[Pattern[T]]) Pattern[T] {
	return func(span Interval) []Event[T] {
		var out []Event[T]
		for _, oe := range pp(span) {
			for _, ie := range oe.Value(oe.Part) {
				p, ok := span.SectNonEmpty(ie.Part)
				if !ok {
					continue
				}
				ctx := append(append([]ast.Span{}, ie.Context...), oe.Context...)
				out = append(out, Event[T]{Whole: ie.Whole, Part: p, Value: ie.Value, Context: ctx})
			}
		}
		return out
	}
}

func subMaybeArc(a, b *Interval) (*Interval, bool) {
	if a != nil && b != nil {
		s, ok := a.SectNonEmpty(*b)
		if !ok {
			return nil, false
		}
		return &s, true
	}
	return nil, true
}
