package ast

import "math/big"

// HasFoot reports whether node or any descendant is a Foot. A successfully
// foot-resolved tree must never answer true - see resolve.Feet.
func HasFoot[T any](node TPat[T]) bool {
	switch n := node.(type) {
	case Foot[T]:
		return true
	case Fast[T]:
		return HasFoot[*big.Rat](n.Factor) || HasFoot[T](n.Inner)
	case Slow[T]:
		return HasFoot[*big.Rat](n.Factor) || HasFoot[T](n.Inner)
	case DegradeBy[T]:
		return HasFoot[T](n.Inner)
	case CycleChoose[T]:
		return anyHasFoot[T](n.Children)
	case Euclid[T]:
		return HasFoot[int](n.Pulses) || HasFoot[int](n.Steps) || HasFoot[int](n.Rotation) || HasFoot[T](n.Inner)
	case Stack[T]:
		return anyHasFoot[T](n.Children)
	case Polyrhythm[T]:
		return (n.StepRate != nil && HasFoot[*big.Rat](*n.StepRate)) || anyHasFoot[T](n.Children)
	case Seq[T]:
		return anyHasFoot[T](n.Children)
	case Elongate[T]:
		return HasFoot[T](n.Inner)
	case Repeat[T]:
		return HasFoot[T](n.Inner)
	case EnumFromTo[T]:
		return HasFoot[T](n.From) || HasFoot[T](n.To)
	case Chord[T]:
		return HasFoot[float64](n.Root) || HasFoot[string](n.Name) || hasFootMods(n.Mods)
	default:
		return false
	}
}

func anyHasFoot[T any](nodes []TPat[T]) bool {
	for _, n := range nodes {
		if HasFoot[T](n) {
			return true
		}
	}
	return false
}

func hasFootMods(node TPat[[]Modifier]) bool {
	return HasFoot[[]Modifier](node)
}

// PositiveRatio and PositiveCount state the strict-positivity invariants on
// Elongate ratios and Repeat counts (spec.md 3) as predicates; nothing else
// in this module calls them.
func PositiveRatio(r *big.Rat) bool { return r.Sign() > 0 }
func PositiveCount(n int) bool      { return n >= 1 }
