package parser

import (
	"github.com/Conceptual-Machines/patterncore-go/ast"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

// Leaf is the type-directed dispatch capability spec 9 describes as
// ParseableLeaf[T]/EnumerableLeaf[T]. Go has no generic methods, so the
// capability is carried as a record of closures rather than an interface
// implemented per T - the same "pick the implementation by name at the
// entry point" shape as the teacher's llm.ProviderFactory, just selected by
// Go's type system instead of a string.
type Leaf[T any] struct {
	// Name identifies the leaf kind for error messages and control-channel
	// namespacing (e.g. "double", "note").
	Name string

	// ParseValue scans one literal leaf value at s.pos, advancing s on
	// success. It does not know about chord suffixes, Euclid parens, or any
	// other structural wrapping - those are handled generically in grammar.go.
	ParseValue Rule[T]

	// FromTo and FromThenTo implement inclusive enumeration. For leaf types
	// without a numeric ordering they degenerate to the two/three-element
	// literal list, per spec 4.4.
	FromTo     func(a, b T) []T
	FromThenTo func(a, b, c T) []T

	// Control resolves a named control-channel reference ("^name"); returns
	// silence if this leaf type has no control channels.
	Control func(name string) pattern.Pattern[T]

	// ChordRoot samples a numeric root in semitones from a leaf value;
	// ok=false means chord suffixes can't attach to this leaf type at all,
	// so the grammar never attempts to parse one.
	ChordRoot func(v T) (float64, bool)

	// InjectFromFloat is ChordRoot's inverse, used to build the ast.Chord
	// node's Inject closure once a chord's intervals are computed as floats.
	InjectFromFloat func(f float64) T
}

// parseAtom wraps ParseValue into an ast.Atom carrying its source span.
func parseAtom[T any](s *State, leaf Leaf[T]) (ast.TPat[T], bool) {
	begin := s.mark()
	v, ok := leaf.ParseValue(s)
	if !ok {
		return nil, false
	}
	sp := s.span(begin)
	return ast.Atom[T]{Loc: &sp, Value: v}, true
}
