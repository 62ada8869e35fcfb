package parser

import (
	"math/big"
	"strconv"

	"github.com/Conceptual-Machines/patterncore-go/ast"
	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
	"github.com/Conceptual-Machines/patterncore-go/lex"
	"github.com/Conceptual-Machines/patterncore-go/resolve"
)

// ParseTop parses the whole of s's source as a single top-level sequence,
// requiring every byte to be consumed (spec 4.1's top-level entry point).
func ParseTop[T any](s *State, leaf Leaf[T]) (ast.TPat[T], bool) {
	node, ok := parseSequence(s, leaf)
	if !ok {
		return nil, false
	}
	skipSpaceOpt(s)
	if !s.eof() {
		s.fail("end of input")
		return nil, false
	}
	return node, true
}

// parseSequence recognises a whitespace-separated run of items and foot
// markers, then foot-resolves the result (spec 4.1/4.2). An empty sequence
// (e.g. the contents of "[]") compiles to Silence.
func parseSequence[T any](s *State, leaf Leaf[T]) (ast.TPat[T], bool) {
	skipSpaceOpt(s)
	var children []ast.TPat[T]
	for {
		if len(children) > 0 {
			save := s.mark()
			if !skipSpace1(s) {
				s.reset(save)
				break
			}
		}
		if isBareDot(s) {
			s.pos++
			children = append(children, ast.Foot[T]{})
			continue
		}
		item, ok := attempt(s, func(s *State) (ast.TPat[T], bool) { return parseItem(s, leaf) })
		if !ok {
			break
		}
		children = append(children, item)
	}
	if len(children) == 0 {
		return ast.Silence[T]{}, true
	}
	return resolve.Feet(children), true
}

// isBareDot reports a lone "." (a Foot token), distinct from the leading ".."
// of an enumeration, which parseItem consumes itself.
func isBareDot(s *State) bool {
	if s.peek() != '.' {
		return false
	}
	return !(s.pos+1 < len(s.src) && s.src[s.pos+1] == '.')
}

// parseItem parses one part, then an optional ".." enumeration continuation
// or an elongate/repeat suffix (spec 4.1's sequence production).
func parseItem[T any](s *State, leaf Leaf[T]) (ast.TPat[T], bool) {
	first, ok := parsePart(s, leaf)
	if !ok {
		return nil, false
	}

	save := s.mark()
	skipSpaceOpt(s)
	if consumeDotDot(s) {
		skipSpaceOpt(s)
		if second, ok := parsePart(s, leaf); ok {
			return ast.EnumFromTo[T]{From: first, To: second}, true
		}
	}
	s.reset(save)

	if r, ok := parseElongateSuffix(s); ok {
		return ast.Elongate[T]{Ratio: r, Inner: first}, true
	}
	if n, ok := parseRepeatSuffix(s); ok {
		return ast.Repeat[T]{N: n, Inner: first}, true
	}
	return first, true
}

func consumeDotDot(s *State) bool {
	if s.pos+1 < len(s.src) && s.src[s.pos] == '.' && s.src[s.pos+1] == '.' {
		s.pos += 2
		return true
	}
	return false
}

// parseElongateSuffix matches "@r" or "_r", defaulting r to 1 (spec 6).
func parseElongateSuffix(s *State) (*big.Rat, bool) {
	c := s.peek()
	if c != '@' && c != '_' {
		return nil, false
	}
	save := s.mark()
	s.pos++
	if v, pos, ok := lex.Rational(s.src, s.pos); ok {
		s.pos = pos
		return v, true
	}
	_ = save
	return rat.One(), true
}

// parseRepeatSuffix matches "!n", defaulting to 2 (one extra copy) when no
// digits follow (spec 6).
func parseRepeatSuffix(s *State) (int, bool) {
	if s.peek() != '!' {
		return 0, false
	}
	s.pos++
	if text, pos, ok := lex.Natural(s.src, s.pos); ok {
		s.pos = pos
		return atoiUnsafe(text), true
	}
	return 2, true
}

// parsePart recognises single | polyIn | polyOut | var, then loops applying
// any Euclid-paren and rand wraps found immediately after (spec 4.1).
func parsePart[T any](s *State, leaf Leaf[T]) (ast.TPat[T], bool) {
	base, ok := choice(s,
		func(s *State) (ast.TPat[T], bool) { return parsePolyIn(s, leaf) },
		func(s *State) (ast.TPat[T], bool) { return parsePolyOut(s, leaf) },
		func(s *State) (ast.TPat[T], bool) { return parseVar(s, leaf) },
		func(s *State) (ast.TPat[T], bool) { return parseSingle(s, leaf) },
	)
	if !ok {
		return nil, false
	}
	for {
		if wrapped, ok := wrapEuclid[T](s, base); ok {
			base = wrapped
			continue
		}
		if wrapped, ok := wrapRand[T](s, base); ok {
			base = wrapped
			continue
		}
		break
	}
	return base, true
}

// parseSingle recognises a leaf atom (or "~"), then loops applying any rand
// and mult wraps found immediately after (spec 4.1).
func parseSingle[T any](s *State, leaf Leaf[T]) (ast.TPat[T], bool) {
	base, ok := parseSingleBase(s, leaf)
	if !ok {
		return nil, false
	}
	for {
		if wrapped, ok := wrapRand[T](s, base); ok {
			base = wrapped
			continue
		}
		if wrapped, ok := wrapMult[T](s, base); ok {
			base = wrapped
			continue
		}
		break
	}
	return base, true
}

// parseSingleBase parses "~" as Silence, or a leaf atom optionally followed
// by a chord suffix.
func parseSingleBase[T any](s *State, leaf Leaf[T]) (ast.TPat[T], bool) {
	if s.peek() == '~' {
		s.pos++
		return ast.Silence[T]{}, true
	}
	atomNode, ok := parseAtom(s, leaf)
	if !ok {
		return nil, false
	}
	if chordNode, ok := wrapChord(s, leaf, atomNode); ok {
		return chordNode, true
	}
	return atomNode, true
}

// wrapChord parses a "'name['mods]*" chord suffix onto a just-parsed atom
// (spec 4.1/4.5). Chord suffixes only attach to leaf types whose ChordRoot
// and InjectFromFloat are non-nil (Double and Note); every other leaf type
// leaves the grammar unable to attempt one at all.
func wrapChord[T any](s *State, leaf Leaf[T], atomNode ast.TPat[T]) (ast.TPat[T], bool) {
	if leaf.ChordRoot == nil || leaf.InjectFromFloat == nil {
		return nil, false
	}
	at, isAtom := atomNode.(ast.Atom[T])
	if !isAtom {
		return nil, false
	}
	rootVal, ok := leaf.ChordRoot(at.Value)
	if !ok {
		return nil, false
	}
	save := s.mark()
	if s.peek() != '\'' {
		return nil, false
	}
	s.pos++
	nameNode, ok := parseAtom(s, StringLeaf)
	if !ok {
		s.reset(save)
		return nil, false
	}
	var flatMods []ast.Modifier
	for {
		save2 := s.mark()
		if s.peek() != '\'' {
			break
		}
		s.pos++
		group, ok := parseModifierGroup(s)
		if !ok {
			s.reset(save2)
			break
		}
		flatMods = append(flatMods, group...)
	}
	rootNode := ast.Atom[float64]{Loc: at.Loc, Value: rootVal}
	modsNode := ast.Atom[[]ast.Modifier]{Value: flatMods}
	return ast.Chord[T]{Root: rootNode, Name: nameNode, Mods: modsNode, Inject: leaf.InjectFromFloat}, true
}

// wrapRand matches "?" [float] and allocates a fresh seed on success - the
// only point in the grammar that consumes a seed besides cycle-choose (spec
// 5). ok=false leaves s untouched.
func wrapRand[T any](s *State, inner ast.TPat[T]) (ast.TPat[T], bool) {
	save := s.mark()
	if s.peek() != '?' {
		return inner, false
	}
	s.pos++
	amount := 0.5
	if f, ok := attempt(s, parseFloatLiteral); ok {
		amount = f
	}
	_ = save
	seed := s.nextSeed()
	return ast.DegradeBy[T]{Seed: seed, Amount: amount, Inner: inner}, true
}

func parseFloatLiteral(s *State) (float64, bool) {
	text, pos, ok := lex.SignedFloat(s.src, s.pos)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	s.pos = pos
	return f, true
}

// wrapMult matches "*r" or "/r", where r is itself a rational sub-pattern
// (spec 6). ok=false leaves s untouched.
func wrapMult[T any](s *State, inner ast.TPat[T]) (ast.TPat[T], bool) {
	save := s.mark()
	c := s.peek()
	if c != '*' && c != '/' {
		return inner, false
	}
	s.pos++
	factor, ok := parsePart(s, RationalLeaf)
	if !ok {
		s.reset(save)
		return inner, false
	}
	if c == '*' {
		return ast.Fast[T]{Factor: factor, Inner: inner}, true
	}
	return ast.Slow[T]{Factor: factor, Inner: inner}, true
}

// wrapEuclid matches "(" seq(Int) "," seq(Int) ["," seq(Int)] ")", the third
// argument defaulting to 0 (spec 4.1). ok=false leaves s untouched.
func wrapEuclid[T any](s *State, inner ast.TPat[T]) (ast.TPat[T], bool) {
	save := s.mark()
	if s.peek() != '(' {
		return inner, false
	}
	s.pos++
	skipSpaceOpt(s)
	pulses, ok := parseSequence(s, IntLeaf)
	if !ok {
		s.reset(save)
		return inner, false
	}
	skipSpaceOpt(s)
	if !lit(s, ',', "','") {
		s.reset(save)
		return inner, false
	}
	skipSpaceOpt(s)
	steps, ok := parseSequence(s, IntLeaf)
	if !ok {
		s.reset(save)
		return inner, false
	}
	var rotation ast.TPat[int] = ast.Atom[int]{Value: 0}
	save2 := s.mark()
	skipSpaceOpt(s)
	if lit(s, ',', "','") {
		skipSpaceOpt(s)
		if r, ok := parseSequence(s, IntLeaf); ok {
			rotation = r
		} else {
			s.reset(save2)
		}
	} else {
		s.reset(save2)
	}
	skipSpaceOpt(s)
	if !lit(s, ')', "')'") {
		s.reset(save)
		return inner, false
	}
	return ast.Euclid[T]{Pulses: pulses, Steps: steps, Rotation: rotation, Inner: inner}, true
}

// parseVar matches "^identifier" (spec 6).
func parseVar[T any](s *State, leaf Leaf[T]) (ast.TPat[T], bool) {
	if s.peek() != '^' {
		return nil, false
	}
	save := s.mark()
	s.pos++
	text, pos, ok := lex.Identifier(s.src, s.pos)
	if !ok {
		s.reset(save)
		s.fail("identifier")
		return nil, false
	}
	s.pos = pos
	return ast.Var[T]{Name: text}, true
}

// parsePolyIn matches "[" sequence ( ("," sequence)+ | ("|" sequence)+ )? "]"
// (spec 4.1). A bare "[seq]" with no separators just returns seq unwrapped.
func parsePolyIn[T any](s *State, leaf Leaf[T]) (ast.TPat[T], bool) {
	save := s.mark()
	if !lit(s, '[', "'['") {
		return nil, false
	}
	first, ok := parseSequence(s, leaf)
	if !ok {
		s.reset(save)
		return nil, false
	}
	groups := []ast.TPat[T]{first}
	mode := 0
	for {
		skipSpaceOpt(s)
		c := s.peek()
		if c == ',' && mode != 2 {
			mode = 1
		} else if c == '|' && mode != 1 {
			mode = 2
		} else {
			break
		}
		s.pos++
		skipSpaceOpt(s)
		g, ok := parseSequence(s, leaf)
		if !ok {
			s.reset(save)
			return nil, false
		}
		groups = append(groups, g)
	}
	skipSpaceOpt(s)
	if !lit(s, ']', "']'") {
		s.reset(save)
		return nil, false
	}
	switch mode {
	case 2:
		return ast.CycleChoose[T]{Seed: s.nextSeed(), Children: groups}, true
	case 1:
		return ast.Stack[T]{Children: groups}, true
	default:
		return groups[0], true
	}
}

// parsePolyOut matches "{" sequence ("," sequence)* "}" ["%" rational], or
// "<" sequence ("," sequence)* ">" (step-rate fixed to 1) - spec 4.1/6.
func parsePolyOut[T any](s *State, leaf Leaf[T]) (ast.TPat[T], bool) {
	save := s.mark()
	var closeCh byte
	angleForm := false
	switch s.peek() {
	case '{':
		closeCh = '}'
	case '<':
		closeCh = '>'
		angleForm = true
	default:
		return nil, false
	}
	s.pos++
	skipSpaceOpt(s)
	seqs, ok := sepByComma(s, leaf)
	if !ok {
		s.reset(save)
		return nil, false
	}
	skipSpaceOpt(s)
	if !lit(s, closeCh, string(rune(closeCh))) {
		s.reset(save)
		return nil, false
	}
	var stepRate *ast.TPat[*big.Rat]
	if angleForm {
		one := ast.TPat[*big.Rat](ast.Atom[*big.Rat]{Value: rat.One()})
		stepRate = &one
	} else if s.peek() == '%' {
		s.pos++
		r, ok := parsePart(s, RationalLeaf)
		if !ok {
			s.reset(save)
			return nil, false
		}
		stepRate = &r
	}
	return ast.Polyrhythm[T]{StepRate: stepRate, Children: seqs}, true
}

func sepByComma[T any](s *State, leaf Leaf[T]) ([]ast.TPat[T], bool) {
	first, ok := parseSequence(s, leaf)
	if !ok {
		return nil, false
	}
	out := []ast.TPat[T]{first}
	for {
		save := s.mark()
		skipSpaceOpt(s)
		if s.peek() != ',' {
			s.reset(save)
			break
		}
		s.pos++
		skipSpaceOpt(s)
		g, ok := parseSequence(s, leaf)
		if !ok {
			s.reset(save)
			break
		}
		out = append(out, g)
	}
	return out, true
}
