package pattern

import "github.com/Conceptual-Machines/patterncore-go/ast"

// Collect groups events that share the same (Whole, Part) span into a single
// list-valued event, preserving first-occurrence order and concatenating
// the members' contexts in the same order - the inverse of
// Uncollect, and the shape a chord's expanded notes arrive in before the
// rest of the pipeline can treat a chord voicing as one stacked event.
func Collect[T any](evs []Event[T]) []Event[[]T] {
	type group struct {
		whole *Interval
		part  Interval
		vals  []T
		ctx   []ast.Span
	}

	var order []string
	groups := map[string]*group{}

	keyFor := func(whole *Interval, part Interval) string {
		wb, we := "nil", "nil"
		if whole != nil {
			wb = whole.Begin.RatString()
			we = whole.End.RatString()
		}
		return wb + "|" + we + "|" + part.Begin.RatString() + "|" + part.End.RatString()
	}

	for _, e := range evs {
		k := keyFor(e.Whole, e.Part)
		g, ok := groups[k]
		if !ok {
			g = &group{whole: e.Whole, part: e.Part}
			groups[k] = g
			order = append(order, k)
		}
		g.vals = append(g.vals, e.Value)
		g.ctx = append(g.ctx, e.Context...)
	}

	out := make([]Event[[]T], 0, len(order))
	for _, k := range order {
		g := groups[k]
		out = append(out, Event[[]T]{Whole: g.whole, Part: g.part, Value: g.vals, Context: g.ctx})
	}
	return out
}

// Uncollect is Collect's inverse: each list-valued event becomes len(Value)
// separate events sharing the same Whole/Part, one per element, in order.
// A short Context slice is distributed positionally; missing entries are
// left empty rather than erroring.
func Uncollect[T any](evs []Event[[]T]) []Event[T] {
	var out []Event[T]
	for _, e := range evs {
		for i, v := range e.Value {
			out = append(out, Event[T]{Whole: e.Whole, Part: e.Part, Value: v, Context: contextAt(e.Context, i)})
		}
	}
	return out
}

// contextAt returns the i-th entry of ctx as a singleton slice, or nil if
// ctx is too short - a missing context is an empty one, never an error.
func contextAt(ctx []ast.Span, i int) []ast.Span {
	if i < 0 || i >= len(ctx) {
		return nil
	}
	return []ast.Span{ctx[i]}
}
