// Package controls resolves "^name" variable references to a Pattern by
// matching name against a table of glob patterns, so one handler can answer
// a whole family of control names (e.g. "bd*" covering every drum control).
// Grounded on the teacher's factory-by-name dispatch
// (llm/provider_factory.go), generalised from string equality to glob
// matching via github.com/tidwall/match, one of the teacher's own
// (indirect) dependencies.
//
// The registry ships empty: nothing in this module calls RegisterString or
// RegisterDouble on its own behalf, since the mini-notation compiler itself
// has no fixed set of control names to offer, only the mechanism for
// resolving one. A host embedding this compiler registers its own control
// names (sample banks, synth parameters) at startup; until then, spec 4.4's
// "silence if the type has no control channels" is exactly what every
// Var lookup gets.
package controls

import (
	"sync"

	"github.com/tidwall/match"

	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

// stringHandlers holds every registered string-control glob and its
// constructor, in registration order (first match wins).
var (
	mu              sync.RWMutex
	stringHandlers  []stringEntry
	doubleHandlers  []doubleEntry
)

type stringEntry struct {
	glob string
	fn   func(name string) pattern.Pattern[string]
}

type doubleEntry struct {
	glob string
	fn   func(name string) pattern.Pattern[float64]
}

// RegisterString binds a glob pattern (e.g. "bd*", "sample:*") to a
// constructor producing that control's Pattern.
func RegisterString(glob string, fn func(name string) pattern.Pattern[string]) {
	mu.Lock()
	defer mu.Unlock()
	stringHandlers = append(stringHandlers, stringEntry{glob: glob, fn: fn})
}

// RegisterDouble is RegisterString's numeric-control counterpart (speed,
// gain, pan, and similar named parameters).
func RegisterDouble(glob string, fn func(name string) pattern.Pattern[float64]) {
	mu.Lock()
	defer mu.Unlock()
	doubleHandlers = append(doubleHandlers, doubleEntry{glob: glob, fn: fn})
}

// StringChannel resolves name against every registered string glob in
// order, falling back to silence if nothing matches - spec 4.4 treats an
// unresolvable control as silence, never an error.
func StringChannel(name string) pattern.Pattern[string] {
	mu.RLock()
	defer mu.RUnlock()
	for _, e := range stringHandlers {
		if match.Match(name, e.glob) {
			return e.fn(name)
		}
	}
	return pattern.Silence[string]()
}

// DoubleChannel is StringChannel's numeric-control counterpart.
func DoubleChannel(name string) pattern.Pattern[float64] {
	mu.RLock()
	defer mu.RUnlock()
	for _, e := range doubleHandlers {
		if match.Match(name, e.glob) {
			return e.fn(name)
		}
	}
	return pattern.Silence[float64]()
}
