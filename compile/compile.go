// Package compile folds a parsed TPat tree into the compiled Pattern algebra
// (spec 4.4's toPat): the grammar's job ends at a typed AST, this package's
// job is turning that AST into something a scheduler can sample.
package compile

import (
	"math/big"

	"github.com/Conceptual-Machines/patterncore-go/ast"
	"github.com/Conceptual-Machines/patterncore-go/chord"
	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
	"github.com/Conceptual-Machines/patterncore-go/parser"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
	"github.com/Conceptual-Machines/patterncore-go/resolve"
)

// seedPhase turns a DegradeBy/CycleChoose seed into the exact rational phase
// rotL shifts the shared rand pattern by - the 0.0001 multiplier is fixed by
// spec 4.4.
func seedPhase(seed int) *big.Rat {
	return rat.Mul(rat.FromInt(seed), rat.New(1, 10000))
}

// ToPat folds node into a compiled Pattern. leaf supplies this node's leaf
// type's enumeration (FromTo) and named-control resolution (Control);
// maxRange bounds the chord Range modifier (spec 9).
func ToPat[T any](node ast.TPat[T], leaf parser.Leaf[T], maxRange int) pattern.Pattern[T] {
	switch n := node.(type) {
	case ast.Atom[T]:
		return pattern.Pure(n.Value)

	case ast.Silence[T]:
		return pattern.Silence[T]()

	case ast.Fast[T]:
		factor := ToPat(n.Factor, parser.RationalLeaf, maxRange)
		return tParamRat(factor, ToPat(n.Inner, leaf, maxRange), pattern.Fast[T])

	case ast.Slow[T]:
		factor := ToPat(n.Factor, parser.RationalLeaf, maxRange)
		return tParamRat(factor, ToPat(n.Inner, leaf, maxRange), pattern.Slow[T])

	case ast.DegradeBy[T]:
		randPat := pattern.RotL(seedPhase(n.Seed), pattern.Rand())
		return pattern.DegradeByUsing(randPat, n.Amount, ToPat(n.Inner, leaf, maxRange))

	case ast.CycleChoose[T]:
		randPat := pattern.RotL(seedPhase(n.Seed), pattern.Rand())
		pats := make([]pattern.Pattern[T], len(n.Children))
		for i, c := range n.Children {
			pats[i] = ToPat(c, leaf, maxRange)
		}
		return pattern.Unwrap(pattern.Segment(rat.One(), pattern.ChooseBy(randPat, pats)))

	case ast.Euclid[T]:
		pulsesP := ToPat(n.Pulses, parser.IntLeaf, maxRange)
		stepsP := ToPat(n.Steps, parser.IntLeaf, maxRange)
		rotP := ToPat(n.Rotation, parser.IntLeaf, maxRange)
		return euclidJoin(pulsesP, stepsP, rotP, ToPat(n.Inner, leaf, maxRange))

	case ast.Stack[T]:
		pats := make([]pattern.Pattern[T], len(n.Children))
		for i, c := range n.Children {
			pats[i] = ToPat(c, leaf, maxRange)
		}
		return pattern.Stack(pats...)

	case ast.Polyrhythm[T]:
		return compilePolyrhythm(n, leaf, maxRange)

	case ast.Seq[T]:
		return compileSeq(n, leaf, maxRange)

	case ast.Foot[T]:
		panic("compile: Foot node reached toPat, foot resolution was not applied")

	case ast.Elongate[T]:
		return pattern.Silence[T]()

	case ast.Repeat[T]:
		return pattern.Silence[T]()

	case ast.EnumFromTo[T]:
		aP := ToPat(n.From, leaf, maxRange)
		bP := ToPat(n.To, leaf, maxRange)
		return enumJoin(aP, bP, leaf.FromTo)

	case ast.Var[T]:
		if leaf.Control == nil {
			return pattern.Silence[T]()
		}
		return leaf.Control(n.Name)

	case ast.Chord[T]:
		return compileChord(n, maxRange)

	default:
		return pattern.Silence[T]()
	}
}

// tParamRat lifts a rational-valued parameter pattern into a transform on
// pat, joining per TidalCycles' tParam idiom: the factor is sampled per
// event and applied with innerJoin, so "a*<2 3>" varies speed cycle by
// cycle instead of needing a single constant factor.
func tParamRat[T any](factorPat pattern.Pattern[*big.Rat], pat pattern.Pattern[T], apply func(*big.Rat, pattern.Pattern[T]) pattern.Pattern[T]) pattern.Pattern[T] {
	pp := pattern.WithEvents(factorPat, func(evs []pattern.Event[*big.Rat]) []pattern.Event[pattern.Pattern[T]] {
		out := make([]pattern.Event[pattern.Pattern[T]], len(evs))
		for i, e := range evs {
			out[i] = pattern.Event[pattern.Pattern[T]]{Whole: e.Whole, Part: e.Part, Value: apply(e.Value, pat), Context: e.Context}
		}
		return out
	})
	return pattern.InnerJoin(pp)
}

// euclidJoin samples pulses/steps/rotation jointly, per query window, and
// gates inner with the resulting Bjorklund structure for each overlap -
// pattern.DoEuclid itself only knows constant ints, so this is the glue
// spec 4.4's "doEuclid(toPat n, toPat k, toPat s, toPat x)" needs when n, k
// or s are themselves sub-patterns rather than bare literals.
func euclidJoin[T any](pulsesP, stepsP, rotP pattern.Pattern[int], inner pattern.Pattern[T]) pattern.Pattern[T] {
	return func(span pattern.Interval) []pattern.Event[T] {
		var out []pattern.Event[T]
		for _, pe := range pulsesP(span) {
			pArc := pe.Part
			if pe.Whole != nil {
				pArc = *pe.Whole
			}
			for _, se := range stepsP(pArc) {
				sArc := se.Part
				if se.Whole != nil {
					sArc = *se.Whole
				}
				for _, re := range rotP(sArc) {
					p1, ok := pe.Part.SectNonEmpty(se.Part)
					if !ok {
						continue
					}
					p2, ok2 := p1.SectNonEmpty(re.Part)
					if !ok2 {
						continue
					}
					gated := pattern.DoEuclid(pe.Value, se.Value, re.Value, inner)
					out = append(out, gated(p2)...)
				}
			}
		}
		return out
	}
}

// enumJoin samples a and b jointly, expands each pair through fromTo, and
// spreads the resulting list evenly across the joint event's slot - spec
// 4.4's "unwrap (fromTo <$> toPat a <*> toPat b)".
func enumJoin[T any](aP, bP pattern.Pattern[T], fromTo func(a, b T) []T) pattern.Pattern[T] {
	pp := func(span pattern.Interval) []pattern.Event[pattern.Pattern[T]] {
		var out []pattern.Event[pattern.Pattern[T]]
		for _, ae := range aP(span) {
			aArc := ae.Part
			if ae.Whole != nil {
				aArc = *ae.Whole
			}
			for _, be := range bP(aArc) {
				p, ok := ae.Part.SectNonEmpty(be.Part)
				if !ok {
					continue
				}
				ctx := append(append([]ast.Span{}, be.Context...), ae.Context...)
				vals := fromTo(ae.Value, be.Value)
				out = append(out, pattern.Event[pattern.Pattern[T]]{
					Whole:   be.Whole,
					Part:    p,
					Value:   pattern.FastFromList(vals),
					Context: ctx,
				})
			}
		}
		return out
	}
	return pattern.Unwrap(pp)
}

// compileSeq size-resolves the children and lays them out with TimeCat, each
// occupying its weight's share of the cycle (spec 4.3/4.4).
func compileSeq[T any](n ast.Seq[T], leaf parser.Leaf[T], maxRange int) pattern.Pattern[T] {
	sized := resolve.Sizes(n.Children)
	items := make([]pattern.WeightedPattern[T], len(sized))
	for i, w := range sized {
		items[i] = pattern.WeightedPattern[T]{Weight: w.Weight, Pat: ToPat(w.Child, leaf, maxRange)}
	}
	return pattern.TimeCat(items)
}

// stepCount is a child's step count as the polyrhythm folder sees it: a Seq
// child's total resolved weight, or 1 for anything else (a bare single part
// is one step).
func stepCount[T any](node ast.TPat[T]) *big.Rat {
	if seq, ok := node.(ast.Seq[T]); ok {
		return resolve.TotalWeight(resolve.Sizes(seq.Children))
	}
	return rat.One()
}

// compilePolyrhythm implements spec 4.4: baseSize is the first child's step
// count, stepRate defaults to baseSize (or is taken from the explicit
// "%r"/angle-bracket form), and every child is fast'd by stepRate/childSize
// before stacking. An explicit step-rate sub-pattern is sampled once, at
// cycle zero - polyrhythm layouts are not expected to vary cycle by cycle.
func compilePolyrhythm[T any](n ast.Polyrhythm[T], leaf parser.Leaf[T], maxRange int) pattern.Pattern[T] {
	if len(n.Children) == 0 {
		return pattern.Silence[T]()
	}
	baseSize := stepCount[T](n.Children[0])
	stepRate := baseSize
	if n.StepRate != nil {
		stepRate = sampleConstRat(*n.StepRate, maxRange)
	}
	pats := make([]pattern.Pattern[T], len(n.Children))
	for i, c := range n.Children {
		childSize := stepCount[T](c)
		compiled := ToPat(c, leaf, maxRange)
		if childSize.Sign() == 0 {
			pats[i] = pattern.Silence[T]()
			continue
		}
		pats[i] = pattern.Fast(rat.Quo(stepRate, childSize), compiled)
	}
	return pattern.Stack(pats...)
}

// sampleConstRat reads a rational sub-pattern's first event over cycle zero,
// defaulting to 1 if it produces nothing.
func sampleConstRat(node ast.TPat[*big.Rat], maxRange int) *big.Rat {
	pat := ToPat(node, parser.RationalLeaf, maxRange)
	evs := pat(pattern.NewInterval(rat.Zero(), rat.One()))
	if len(evs) == 0 {
		return rat.One()
	}
	return evs[0].Value
}

// compileChord implements spec 4.5: sample root, name and modifiers jointly,
// expand the chord, inject each resulting semitone back into T, and
// uncollect the list-valued event stream into scalar events.
func compileChord[T any](n ast.Chord[T], maxRange int) pattern.Pattern[T] {
	rootP := ToPat(n.Root, parser.DoubleLeaf, maxRange)
	nameP := ToPat(n.Name, parser.StringLeaf, maxRange)
	modsP := ToPat(n.Mods, parser.ModifiersLeaf, maxRange)

	return func(span pattern.Interval) []pattern.Event[T] {
		var listEvs []pattern.Event[[]T]
		for _, re := range rootP(span) {
			rootArc := re.Part
			if re.Whole != nil {
				rootArc = *re.Whole
			}
			for _, ne := range nameP(rootArc) {
				nameArc := ne.Part
				if ne.Whole != nil {
					nameArc = *ne.Whole
				}
				for _, me := range modsP(nameArc) {
					p1, ok := re.Part.SectNonEmpty(ne.Part)
					if !ok {
						continue
					}
					p2, ok2 := p1.SectNonEmpty(me.Part)
					if !ok2 {
						continue
					}
					semis := chord.Expand(int(re.Value), ne.Value, me.Value, maxRange)
					vals := make([]T, len(semis))
					for i, sm := range semis {
						vals[i] = n.Inject(float64(sm))
					}
					ctx := append(append(append([]ast.Span{}, me.Context...), ne.Context...), re.Context...)
					listEvs = append(listEvs, pattern.Event[[]T]{Whole: me.Whole, Part: p2, Value: vals, Context: ctx})
				}
			}
		}
		return pattern.Uncollect(listEvs)
	}
}
