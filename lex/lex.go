// Package lex provides the pure, position-based scanning primitives the
// parser builds on: whitespace, naturals, floats, signed numbers, rationals
// with musical duration letters, identifiers and vocables. Every scanner
// here takes a source string and a byte offset and returns how far it
// matched, never mutating shared state - backtracking is the caller's job.
package lex

import (
	"math/big"
	"strconv"

	"github.com/Conceptual-Machines/patterncore-go/internal/rat"
)

func IsDigit(c byte) bool  { return c >= '0' && c <= '9' }
func IsLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func IsSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

// SkipSpace returns the offset of the first non-whitespace byte at or after
// pos. Newlines count as whitespace, per spec.
func SkipSpace(src string, pos int) int {
	for pos < len(src) && IsSpace(src[pos]) {
		pos++
	}
	return pos
}

// Natural matches one or more ASCII digits, returning the matched text and
// the position just past it.
func Natural(src string, pos int) (string, int, bool) {
	start := pos
	for pos < len(src) && IsDigit(src[pos]) {
		pos++
	}
	if pos == start {
		return "", start, false
	}
	return src[start:pos], pos, true
}

// Float matches digits, optionally followed by a '.' and more digits.
func Float(src string, pos int) (string, int, bool) {
	start := pos
	_, p, ok := Natural(src, pos)
	if !ok {
		return "", start, false
	}
	pos = p
	if pos < len(src) && src[pos] == '.' && pos+1 < len(src) && IsDigit(src[pos+1]) {
		pos++
		for pos < len(src) && IsDigit(src[pos]) {
			pos++
		}
	}
	return src[start:pos], pos, true
}

// SignedFloat matches an optional leading '-' or '+' followed by Float.
func SignedFloat(src string, pos int) (string, int, bool) {
	start := pos
	if pos < len(src) && (src[pos] == '-' || src[pos] == '+') {
		pos++
	}
	_, p, ok := Float(src, pos)
	if !ok {
		return "", start, false
	}
	return src[start:p], p, true
}

// Identifier matches a letter/digit run that may also contain ':' '.' '-'
// '_', used for control-channel names (after '^').
func Identifier(src string, pos int) (string, int, bool) {
	start := pos
	for pos < len(src) {
		c := src[pos]
		if IsLetter(c) || IsDigit(c) || c == ':' || c == '.' || c == '-' || c == '_' {
			pos++
			continue
		}
		break
	}
	if pos == start {
		return "", start, false
	}
	return src[start:pos], pos, true
}

// Vocable matches a leading letter-or-digit then the same extended
// character class as Identifier (spec 4.1's String/vocable leaf).
func Vocable(src string, pos int) (string, int, bool) {
	start := pos
	if pos >= len(src) || !(IsLetter(src[pos]) || IsDigit(src[pos])) {
		return "", start, false
	}
	pos++
	for pos < len(src) {
		c := src[pos]
		if IsLetter(c) || IsDigit(c) || c == ':' || c == '.' || c == '-' || c == '_' {
			pos++
			continue
		}
		break
	}
	return src[start:pos], pos, true
}

// RunOf matches one or more consecutive occurrences of ch.
func RunOf(src string, pos int, ch byte) (string, int, bool) {
	start := pos
	for pos < len(src) && src[pos] == ch {
		pos++
	}
	if pos == start {
		return "", start, false
	}
	return src[start:pos], pos, true
}

// Rational matches [sign] digits ['.' digits] ['%' digits] [duration-letter],
// combining a decimal literal, an optional explicit denominator and an
// optional musical duration letter multiplicatively.
func Rational(src string, pos int) (*big.Rat, int, bool) {
	start := pos
	neg := false
	if pos < len(src) && (src[pos] == '-' || src[pos] == '+') {
		neg = src[pos] == '-'
		pos++
	}
	numText, p, ok := Float(src, pos)
	if !ok {
		return nil, start, false
	}
	pos = p

	value := parseDecimal(numText)

	if pos < len(src) && src[pos] == '%' {
		denText, p2, ok2 := Natural(src, pos+1)
		if ok2 {
			den, _ := strconv.ParseInt(denText, 10, 64)
			if den != 0 {
				pos = p2
				value = rat.Quo(value, rat.FromInt(int(den)))
			}
		}
	}

	if pos < len(src) {
		if letter, ok3 := rat.DurationLetters[src[pos]]; ok3 {
			value = rat.Mul(value, letter)
			pos++
		}
	}

	if neg {
		value = rat.Neg(value)
	}
	return value, pos, true
}

func parseDecimal(s string) *big.Rat {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart := s[:i]
			fracPart := s[i+1:]
			num := intPart + fracPart
			n, _ := strconv.ParseInt(num, 10, 64)
			d := int64(1)
			for range fracPart {
				d *= 10
			}
			return rat.New(n, d)
		}
	}
	n, _ := strconv.ParseInt(s, 10, 64)
	return rat.FromInt(int(n))
}
