// Package rat provides small pure-functional helpers over math/big.Rat so the
// rest of patterncore never has to worry about mutating a shared receiver.
// Time, in this module, is always an exact rational: no duration is ever a
// float.
package rat

import "math/big"

// DurationLetters maps the musical duration-letter suffixes recognised by the
// rational leaf parser to their value in cycles.
var DurationLetters = map[byte]*big.Rat{
	'w': big.NewRat(1, 1),
	'h': big.NewRat(1, 2),
	'q': big.NewRat(1, 4),
	'e': big.NewRat(1, 8),
	's': big.NewRat(1, 16),
	't': big.NewRat(1, 3),
	'f': big.NewRat(1, 5),
	'x': big.NewRat(1, 6),
}

// New returns num/den as a fresh *big.Rat.
func New(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

// FromInt returns n/1 as a fresh *big.Rat.
func FromInt(n int) *big.Rat {
	return big.NewRat(int64(n), 1)
}

// Zero, One are convenience constants; callers must not mutate the result.
func Zero() *big.Rat { return big.NewRat(0, 1) }
func One() *big.Rat  { return big.NewRat(1, 1) }

// Add returns a+b without mutating either argument.
func Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a-b without mutating either argument.
func Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a*b without mutating either argument.
func Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Quo returns a/b without mutating either argument. Panics on division by
// zero, same as big.Rat.Quo - callers sampling user patterns should guard.
func Quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

// Neg returns -a.
func Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Min returns whichever of a, b compares smaller.
func Min(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns whichever of a, b compares larger.
func Max(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Floor returns the greatest integer <= r, as a *big.Rat.
func Floor(r *big.Rat) *big.Rat {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m)
	return new(big.Rat).SetInt(q)
}

// Sam returns the start of the cycle containing t (i.e. floor(t)).
func Sam(t *big.Rat) *big.Rat { return Floor(t) }

// CyclePos returns t's position within its own cycle: t - Sam(t), in [0,1).
func CyclePos(t *big.Rat) *big.Rat { return Sub(t, Sam(t)) }

// Lt, Lte, Gt, Gte, Eq are small readability wrappers over Cmp.
func Lt(a, b *big.Rat) bool  { return a.Cmp(b) < 0 }
func Lte(a, b *big.Rat) bool { return a.Cmp(b) <= 0 }
func Gt(a, b *big.Rat) bool  { return a.Cmp(b) > 0 }
func Gte(a, b *big.Rat) bool { return a.Cmp(b) >= 0 }
func Eq(a, b *big.Rat) bool  { return a.Cmp(b) == 0 }

// ToFloat64 is used only at the edges (random-seed phase arithmetic, debug
// rendering) where spec.md explicitly allows floats - never for time itself.
func ToFloat64(r *big.Rat) float64 {
	f, _ := new(big.Float).SetRat(r).Float64()
	return f
}
