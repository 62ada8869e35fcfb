package parser

import (
	"github.com/Conceptual-Machines/patterncore-go/colour"
	"github.com/Conceptual-Machines/patterncore-go/lex"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

// ColourLeaf parses a bare alphabetic name and resolves it against the
// colour table (spec 4.1), defaulting to black for an unknown name - the
// same "unresolvable name is not an error" treatment spec 7 gives chords.
var ColourLeaf = Leaf[int]{
	Name: "colour",
	ParseValue: func(s *State) (int, bool) {
		start := s.pos
		p := s.pos
		for p < len(s.src) && lex.IsLetter(s.src[p]) {
			p++
		}
		if p == start {
			s.fail("colour name")
			return 0, false
		}
		name := s.src[start:p]
		s.pos = p
		v, ok := colour.Lookup(name)
		if !ok {
			return 0, true
		}
		return v, true
	},
	FromTo:     func(a, b int) []int { return []int{a, b} },
	FromThenTo: func(a, b, c int) []int { return []int{a, b, c} },
	Control:    func(string) pattern.Pattern[int] { return pattern.Silence[int]() },
}
