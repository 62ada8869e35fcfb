// Package parser implements the backtracking combinator grammar recogniser:
// it turns a mini-notation source string into a typed ast.TPat[T] tree.
// Nothing here knows about the compiled Pattern algebra - that is package
// compile's job.
package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Conceptual-Machines/patterncore-go/ast"
)

// State is the single piece of mutable state a parse owns: the source text,
// a byte offset into it, a monotone seed counter for DegradeBy/CycleChoose,
// and the furthest-reached failure position with its expectation set (for
// Parsec-style error messages).
type State struct {
	src      string
	pos      int
	seed     int
	maxPos   int
	expected map[string]bool
}

// NewState begins a parse of src at offset 0.
func NewState(src string) *State {
	return &State{src: src, expected: map[string]bool{}}
}

func (s *State) eof() bool { return s.pos >= len(s.src) }

func (s *State) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

// mark/reset implement backtracking: every alternative saves its starting
// position and rewinds to it on failure. The seed counter is never part of
// this snapshot - it only ever advances on successful consumption of a `?`
// or `|`, per spec 5.
func (s *State) mark() int      { return s.pos }
func (s *State) reset(p int)    { s.pos = p }
func (s *State) nextSeed() int  { v := s.seed; s.seed++; return v }

// SeedCount reports how many seeds this parse has allocated so far, for
// callers that report it as a metric (patterncore.ParseBP's compile span).
func (s *State) SeedCount() int { return s.seed }

// fail records an expectation at the current position, keeping only the
// expectations seen at the furthest position reached so far.
func (s *State) fail(label string) {
	if s.pos > s.maxPos {
		s.maxPos = s.pos
		s.expected = map[string]bool{}
	}
	if s.pos == s.maxPos {
		s.expected[label] = true
	}
}

// locAt converts a byte offset into a 1-based (line, column) pair.
func locAt(src string, pos int) ast.SourceLoc {
	line, col := 1, 1
	if pos > len(src) {
		pos = len(src)
	}
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return ast.SourceLoc{Line: line, Column: col}
}

// span returns an ast.Span covering [begin, s.pos) in the state's source.
func (s *State) span(begin int) ast.Span {
	return ast.Span{Begin: locAt(s.src, begin), End: locAt(s.src, s.pos)}
}

// ParseError is the single error kind the parser emits: the furthest column
// reached, the set of labels expected there, and the original source text
// for the caret-rendered Display().
type ParseError struct {
	Source   string
	Pos      int
	Expected []string
}

func (e *ParseError) Error() string {
	loc := locAt(e.Source, e.Pos)
	exp := strings.Join(e.Expected, ", ")
	if exp == "" {
		return fmt.Sprintf("parse error at line %d, column %d", loc.Line, loc.Column)
	}
	return fmt.Sprintf("parse error at line %d, column %d: expecting %s", loc.Line, loc.Column, exp)
}

// Display renders the source on one line, a caret under the failing column
// on the next, then the expecting-message set, per spec 4.7/7.
func (e *ParseError) Display() string {
	loc := locAt(e.Source, e.Pos)
	lines := strings.Split(e.Source, "\n")
	lineIdx := loc.Line - 1
	var lineText string
	if lineIdx >= 0 && lineIdx < len(lines) {
		lineText = lines[lineIdx]
	}
	caret := strings.Repeat(" ", max0(loc.Column-1)) + "^"
	return fmt.Sprintf("%s\n%s\n%s", lineText, caret, e.Error())
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Err reports the furthest parse failure reached so far, for callers that
// need a ParseError after a top-level parse returns ok=false.
func (s *State) Err() *ParseError {
	return s.errorAt()
}

func (s *State) errorAt() *ParseError {
	labels := make([]string, 0, len(s.expected))
	for l := range s.expected {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return &ParseError{Source: s.src, Pos: s.maxPos, Expected: labels}
}
