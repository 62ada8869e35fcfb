package parser

import "github.com/Conceptual-Machines/patterncore-go/pattern"

// BoolLeaf parses t/1 as true and f/0 as false (spec 4.1). Booleans have no
// numeric ordering; enumeration degenerates to the endpoints. This is also
// the leaf type DoEuclidBool operates over once a Euclid node's structure is
// realised as a boolean gate.
var BoolLeaf = Leaf[bool]{
	Name: "bool",
	ParseValue: func(s *State) (bool, bool) {
		switch s.peek() {
		case 't', '1':
			s.pos++
			return true, true
		case 'f', '0':
			s.pos++
			return false, true
		default:
			s.fail("boolean")
			return false, false
		}
	},
	FromTo:     func(a, b bool) []bool { return []bool{a, b} },
	FromThenTo: func(a, b, c bool) []bool { return []bool{a, b, c} },
	Control:    func(string) pattern.Pattern[bool] { return pattern.Silence[bool]() },
}
