package parser

import (
	"strconv"

	"github.com/Conceptual-Machines/patterncore-go/lex"
	"github.com/Conceptual-Machines/patterncore-go/parser/controls"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

var noteSemitones = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// parseNumericOrNote implements the shared Double/Note leaf grammar (spec
// 4.1): a signed numeric literal, or a named pitch letter with optional
// sharp/flat/natural modifiers and an optional octave (default 5).
func parseNumericOrNote(s *State) (float64, bool) {
	if noteVal, ok := parseNoteLiteral(s); ok {
		return noteVal, true
	}
	text, pos, ok := lex.SignedFloat(s.src, s.pos)
	if !ok {
		s.fail("number")
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.fail("number")
		return 0, false
	}
	s.pos = pos
	return f, true
}

func parseNoteLiteral(s *State) (float64, bool) {
	c := s.peek()
	if c < 'a' || c > 'g' {
		return 0, false
	}
	semitone := noteSemitones[c]
	s.pos++
	for {
		switch s.peek() {
		case 's':
			semitone++
			s.pos++
		case 'f':
			semitone--
			s.pos++
		case 'n':
			s.pos++
		default:
			goto doneMods
		}
	}
doneMods:
	octave := 5
	if text, pos, ok := lex.Natural(s.src, s.pos); ok {
		n, err := strconv.Atoi(text)
		if err == nil {
			octave = n
			s.pos = pos
		}
	}
	return float64(semitone + (octave-5)*12), true
}

// DoubleLeaf parses a plain numeric-or-note value with no distinct control
// channel namespace of its own.
var DoubleLeaf = Leaf[float64]{
	Name:       "double",
	ParseValue: parseNumericOrNote,
	FromTo:     doubleFromTo,
	FromThenTo: doubleFromThenTo,
	Control: func(name string) pattern.Pattern[float64] {
		return controls.DoubleChannel(name)
	},
	ChordRoot:       func(v float64) (float64, bool) { return v, true },
	InjectFromFloat: func(f float64) float64 { return f },
}

// NoteLeaf shares Double's numeric grammar but resolves control references
// against the "note"-namespaced channel registry instead (spec 6: "note
// (double-valued with distinct control channel)").
var NoteLeaf = Leaf[float64]{
	Name:       "note",
	ParseValue: parseNumericOrNote,
	FromTo:     doubleFromTo,
	FromThenTo: doubleFromThenTo,
	Control: func(name string) pattern.Pattern[float64] {
		return controls.DoubleChannel("note:" + name)
	},
	ChordRoot:       func(v float64) (float64, bool) { return v, true },
	InjectFromFloat: func(f float64) float64 { return f },
}

func doubleFromTo(a, b float64) []float64 {
	if a <= b {
		out := make([]float64, 0, int(b-a)+1)
		for v := a; v <= b; v++ {
			out = append(out, v)
		}
		return out
	}
	out := make([]float64, 0, int(a-b)+1)
	for v := a; v >= b; v-- {
		out = append(out, v)
	}
	return out
}

func doubleFromThenTo(a, b, c float64) []float64 {
	step := b - a
	if step == 0 {
		return []float64{a, b, c}
	}
	var out []float64
	if step > 0 {
		for v := a; v <= c; v += step {
			out = append(out, v)
		}
	} else {
		for v := a; v >= c; v += step {
			out = append(out, v)
		}
	}
	return out
}
