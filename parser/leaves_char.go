package parser

import (
	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

// CharLeaf parses a single letter-or-digit rune. Chars have no numeric
// ordering worth extending past the two endpoints, no chord suffix, and no
// control channel (spec doesn't name one for bare characters).
var CharLeaf = Leaf[rune]{
	Name: "char",
	ParseValue: func(s *State) (rune, bool) {
		c := s.peek()
		if !(isLetter(c) || isDigit(c)) {
			s.fail("character")
			return 0, false
		}
		s.pos++
		return rune(c), true
	},
	FromTo:     func(a, b rune) []rune { return []rune{a, b} },
	FromThenTo: func(a, b, c rune) []rune { return []rune{a, b, c} },
	Control:    func(string) pattern.Pattern[rune] { return pattern.Silence[rune]() },
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
