// Package resolve normalises a parsed Seq's children: Feet splits a flat
// child list at Foot markers into a Seq of sub-Seqs, and Sizes expands
// Elongate/Repeat wrappers into (weight, child) pairs ready for timeCat.
package resolve

import (
	"math/big"

	"github.com/Conceptual-Machines/patterncore-go/ast"
	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
)

// Feet splits children at ast.Foot markers (spec 4.2). A child list with no
// Foot produces a flat Seq; one with N Foot markers produces a Seq of N+1
// sub-Seqs, each holding one foot group. The returned tree never contains a
// Foot node.
func Feet[T any](children []ast.TPat[T]) ast.TPat[T] {
	var groups [][]ast.TPat[T]
	cur := []ast.TPat[T]{}
	hasFoot := false
	for _, c := range children {
		if _, isFoot := c.(ast.Foot[T]); isFoot {
			hasFoot = true
			groups = append(groups, cur)
			cur = []ast.TPat[T]{}
			continue
		}
		cur = append(cur, c)
	}
	groups = append(groups, cur)

	if !hasFoot {
		return ast.Seq[T]{Children: children}
	}
	subSeqs := make([]ast.TPat[T], len(groups))
	for i, g := range groups {
		subSeqs[i] = ast.Seq[T]{Children: g}
	}
	return ast.Seq[T]{Children: subSeqs}
}

// WeightedChild pairs a Seq child with its resolved step weight.
type WeightedChild[T any] struct {
	Weight *big.Rat
	Child  ast.TPat[T]
}

// Sizes implements spec 4.3's size resolver: Elongate contributes its own
// ratio as a single pair, Repeat(n) contributes n unit-weight pairs (one
// per emitted copy), and anything else contributes a single unit-weight
// pair around itself.
func Sizes[T any](children []ast.TPat[T]) []WeightedChild[T] {
	var out []WeightedChild[T]
	for _, c := range children {
		switch n := c.(type) {
		case ast.Elongate[T]:
			out = append(out, WeightedChild[T]{Weight: n.Ratio, Child: n.Inner})
		case ast.Repeat[T]:
			for i := 0; i < n.N; i++ {
				out = append(out, WeightedChild[T]{Weight: rat.One(), Child: n.Inner})
			}
		default:
			out = append(out, WeightedChild[T]{Weight: rat.One(), Child: c})
		}
	}
	return out
}

// TotalWeight sums every pair's weight - the denominator timeCat divides by.
func TotalWeight[T any](sized []WeightedChild[T]) *big.Rat {
	total := rat.Zero()
	for _, w := range sized {
		total = rat.Add(total, w.Weight)
	}
	return total
}
