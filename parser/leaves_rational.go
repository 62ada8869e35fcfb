package parser

import (
	"math/big"

	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
	"github.com/Conceptual-Machines/patterncore-go/lex"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

// RationalLeaf parses the exact-time literal grammar (spec 4.1): an optional
// sign, a decimal literal, an optional "%denominator", and an optional
// musical duration letter, all combined multiplicatively. This is also the
// leaf type the `*`/`/` speed suffix and the `{...}%r` polyrhythm step-rate
// parse their sub-patterns against.
var RationalLeaf = Leaf[*big.Rat]{
	Name: "rational",
	ParseValue: func(s *State) (*big.Rat, bool) {
		v, pos, ok := lex.Rational(s.src, s.pos)
		if !ok {
			s.fail("rational")
			return nil, false
		}
		s.pos = pos
		return v, true
	},
	FromTo:     ratFromTo,
	FromThenTo: ratFromThenTo,
	Control:    func(string) pattern.Pattern[*big.Rat] { return pattern.Silence[*big.Rat]() },
	// Chord suffixes only attach to the Double/Note leaf grammar (spec 4.1);
	// ChordRoot/InjectFromFloat stay nil here too.
}

func ratFromTo(a, b *big.Rat) []*big.Rat {
	if rat.Lte(a, b) {
		var out []*big.Rat
		for v := new(big.Rat).Set(a); rat.Lte(v, b); v = rat.Add(v, rat.One()) {
			out = append(out, v)
		}
		return out
	}
	var out []*big.Rat
	for v := new(big.Rat).Set(a); rat.Gte(v, b); v = rat.Sub(v, rat.One()) {
		out = append(out, v)
	}
	return out
}

func ratFromThenTo(a, b, c *big.Rat) []*big.Rat {
	step := rat.Sub(b, a)
	if step.Sign() == 0 {
		return []*big.Rat{a, b, c}
	}
	var out []*big.Rat
	if step.Sign() > 0 {
		for v := new(big.Rat).Set(a); rat.Lte(v, c); v = rat.Add(v, step) {
			out = append(out, v)
		}
	} else {
		for v := new(big.Rat).Set(a); rat.Gte(v, c); v = rat.Add(v, step) {
			out = append(out, v)
		}
	}
	return out
}
