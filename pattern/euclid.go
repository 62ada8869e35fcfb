package pattern

import (
	"github.com/Conceptual-Machines/patterncore-go/ast"
)

// Bjorklund distributes pulses hits as evenly as possible over steps slots,
// using Bjorklund's bucket-merging algorithm (the same one TidalCycles and
// most other live-coding Euclidean-rhythm implementations use). pulses<=0 or
// steps<=0 or pulses>=steps falls back to simple cases rather than panicking,
// since the three arguments all come from compiled sub-patterns and can take
// on out-of-range values at runtime.
func Bjorklund(pulses, steps int) []bool {
	if steps <= 0 {
		return nil
	}
	if pulses <= 0 {
		return make([]bool, steps)
	}
	if pulses >= steps {
		out := make([]bool, steps)
		for i := range out {
			out[i] = true
		}
		return out
	}

	a := make([][]bool, pulses)
	for i := range a {
		a[i] = []bool{true}
	}
	b := make([][]bool, steps-pulses)
	for i := range b {
		b[i] = []bool{false}
	}

	for len(b) > 1 {
		m := len(a)
		if len(b) < m {
			m = len(b)
		}
		newA := make([][]bool, m)
		for i := 0; i < m; i++ {
			g := make([]bool, 0, len(a[i])+len(b[i]))
			g = append(g, a[i]...)
			g = append(g, b[i]...)
			newA[i] = g
		}
		var newB [][]bool
		if len(a) > m {
			newB = a[m:]
		} else {
			newB = b[m:]
		}
		a, b = newA, newB
	}

	out := make([]bool, 0, steps)
	for _, g := range a {
		out = append(out, g...)
	}
	for _, g := range b {
		out = append(out, g...)
	}
	return out
}

// rotateBools rotates bits left by n slots (wrapping): a positive rotation
// moves every hit n steps earlier, and hits that pass the start wrap round
// to the end of the step list.
func rotateBools(bits []bool, n int) []bool {
	if len(bits) == 0 {
		return bits
	}
	n = ((n % len(bits)) + len(bits)) % len(bits)
	if n == 0 {
		return bits
	}
	out := make([]bool, len(bits))
	for i := range bits {
		out[i] = bits[(i+n)%len(bits)]
	}
	return out
}

// DoEuclid gates pat by a Bjorklund boolean structure: only slots marked
// true in the pattern sample their corresponding value from pat.
func DoEuclid[T any](pulses, steps, rotation int, pat Pattern[T]) Pattern[T] {
	bits := rotateBools(Bjorklund(pulses, steps), rotation)
	boolPat := FastFromList(bits)
	return func(span Interval) []Event[T] {
		var out []Event[T]
		for _, be := range boolPat(span) {
			if !be.Value {
				continue
			}
			queryArc := be.Part
			if be.Whole != nil {
				queryArc = *be.Whole
			}
			for _, ve := range pat(queryArc) {
				part, ok := be.Part.SectNonEmpty(ve.Part)
				if !ok {
					continue
				}
				ctx := append(append([]ast.Span{}, ve.Context...), be.Context...)
				out = append(out, Event[T]{Whole: be.Whole, Part: part, Value: ve.Value, Context: ctx})
			}
		}
		return out
	}
}

// DoEuclidBool is DoEuclid specialised to bool patterns and behaves
// identically: off steps produce no event, not a false one. compile.ToPat
// does not call it; Euclid nodes of every leaf type, bool included, compile
// through DoEuclid.
func DoEuclidBool(pulses, steps, rotation int, pat Pattern[bool]) Pattern[bool] {
	return DoEuclid(pulses, steps, rotation, pat)
}
