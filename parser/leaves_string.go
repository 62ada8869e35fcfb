package parser

import (
	"github.com/Conceptual-Machines/patterncore-go/lex"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
	"github.com/Conceptual-Machines/patterncore-go/parser/controls"
)

// StringLeaf parses a vocable: a symbolic sample or note name, the most
// common leaf type in the surface notation ("bd sn hh"). Vocables have no
// numeric ordering, so enumeration degenerates to the endpoints.
var StringLeaf = Leaf[string]{
	Name: "string",
	ParseValue: func(s *State) (string, bool) {
		text, pos, ok := lex.Vocable(s.src, s.pos)
		if !ok {
			s.fail("vocable")
			return "", false
		}
		s.pos = pos
		return text, true
	},
	FromTo:     func(a, b string) []string { return []string{a, b} },
	FromThenTo: func(a, b, c string) []string { return []string{a, b, c} },
	Control: func(name string) pattern.Pattern[string] {
		return controls.StringChannel(name)
	},
}
