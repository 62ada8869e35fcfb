package parser

import (
	"github.com/Conceptual-Machines/patterncore-go/lex"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

// IntLeaf parses an integral numeric literal: the same rational lexer as
// RationalLeaf, but rejecting any value with a non-trivial denominator
// (spec 4.1: "rejects if not integral-valued"). Spec 6 lists "int" and
// "integer" as two separate supported leaf types with no observable
// difference between them anywhere else in the spec; this module
// implements them as one Go type (int) with IntLeaf serving both entry
// points (see DESIGN.md).
var IntLeaf = Leaf[int]{
	Name: "int",
	ParseValue: func(s *State) (int, bool) {
		v, pos, ok := lex.Rational(s.src, s.pos)
		if !ok || !v.IsInt() {
			s.fail("integer")
			return 0, false
		}
		s.pos = pos
		return int(v.Num().Int64()), true
	},
	FromTo:     intFromTo,
	FromThenTo: intFromThenTo,
	Control:    func(string) pattern.Pattern[int] { return pattern.Silence[int]() },
	// Chord suffixes only attach to the Double/Note leaf grammar (spec 4.1);
	// ChordRoot/InjectFromFloat stay nil so the grammar never attempts one
	// here, even though Euclid/mult sub-patterns reuse this leaf type.
}

func intFromTo(a, b int) []int {
	if a <= b {
		out := make([]int, 0, b-a+1)
		for v := a; v <= b; v++ {
			out = append(out, v)
		}
		return out
	}
	out := make([]int, 0, a-b+1)
	for v := a; v >= b; v-- {
		out = append(out, v)
	}
	return out
}

func intFromThenTo(a, b, c int) []int {
	step := b - a
	if step == 0 {
		return []int{a, b, c}
	}
	var out []int
	if step > 0 {
		for v := a; v <= c; v += step {
			out = append(out, v)
		}
	} else {
		for v := a; v >= c; v += step {
			out = append(out, v)
		}
	}
	return out
}
