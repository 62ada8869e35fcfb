// Package chord looks up a chord name's interval list and applies voicing
// modifiers to it. This is spec.md's chordTable external collaborator: the
// name-to-intervals mapping and the base triad/extension shapes are grown
// from the teacher's own buildChordIntervals/parseChordQuality table
// (agents/arranger/chord_to_midi.go), generalised from a symbol parser into
// a plain named lookup, and rounded out with the standard chord vocabulary
// mini-notation dictionaries carry (maj7, m7f5, dim7, add9, sus2/4, six,
// alterations).
package chord

import "github.com/Conceptual-Machines/patterncore-go/ast"

// Table maps a chord name to its semitone interval list, rooted at 0.
var Table = map[string][]int{
	"major":     {0, 4, 7},
	"maj":       {0, 4, 7},
	"M":         {0, 4, 7},
	"aug":       {0, 4, 8},
	"plus":      {0, 4, 8},
	"sharp5":    {0, 4, 8},
	"six":       {0, 4, 7, 9},
	"6":         {0, 4, 7, 9},
	"sixNine":   {0, 4, 7, 9, 14},
	"six9":      {0, 4, 7, 9, 14},
	"major7":    {0, 4, 7, 11},
	"maj7":      {0, 4, 7, 11},
	"major9":    {0, 4, 7, 11, 14},
	"maj9":      {0, 4, 7, 11, 14},
	"add9":      {0, 4, 7, 14},
	"major11":   {0, 4, 7, 11, 14, 17},
	"maj11":     {0, 4, 7, 11, 14, 17},
	"add11":     {0, 4, 7, 17},
	"major13":   {0, 4, 7, 11, 14, 21},
	"maj13":     {0, 4, 7, 11, 14, 21},
	"add13":     {0, 4, 7, 21},
	"dom7":      {0, 4, 7, 10},
	"dom9":      {0, 4, 7, 14},
	"dom11":     {0, 4, 7, 17},
	"dom13":     {0, 4, 7, 21},
	"7":         {0, 4, 7, 10},
	"9":         {0, 4, 7, 10, 14},
	"11":        {0, 4, 7, 10, 14, 17},
	"13":        {0, 4, 7, 10, 14, 17, 21},
	"7f5":       {0, 4, 6, 10},
	"7s5":       {0, 4, 8, 10},
	"7f9":       {0, 4, 7, 10, 13},
	"9s5":       {0, 4, 8, 10, 14},
	"minor":     {0, 3, 7},
	"min":       {0, 3, 7},
	"m":         {0, 3, 7},
	"diminished": {0, 3, 6},
	"dim":       {0, 3, 6},
	"minorSharp5": {0, 3, 8},
	"msharp5":   {0, 3, 8},
	"mS5":       {0, 3, 8},
	"minor6":    {0, 3, 7, 9},
	"min6":      {0, 3, 7, 9},
	"m6":        {0, 3, 7, 9},
	"minorSixNine": {0, 3, 9, 7, 14},
	"minor7flat5": {0, 3, 6, 10},
	"min7flat5": {0, 3, 6, 10},
	"m7flat5":   {0, 3, 6, 10},
	"m7f5":      {0, 3, 6, 10},
	"minor7":    {0, 3, 7, 10},
	"min7":      {0, 3, 7, 10},
	"m7":        {0, 3, 7, 10},
	"minor7sharp5": {0, 3, 8, 10},
	"m7sharp5":  {0, 3, 8, 10},
	"m7s5":      {0, 3, 8, 10},
	"minor7flat9": {0, 3, 7, 10, 13},
	"m7flat9":   {0, 3, 7, 10, 13},
	"m7f9":      {0, 3, 7, 10, 13},
	"minor7sharp9": {0, 3, 7, 10, 14},
	"m7sharp9":  {0, 3, 7, 10, 14},
	"m7s9":      {0, 3, 7, 10, 14},
	"diminished7": {0, 3, 6, 9},
	"dim7":      {0, 3, 6, 9},
	"minor9":    {0, 3, 7, 10, 14},
	"min9":      {0, 3, 7, 10, 14},
	"m9":        {0, 3, 7, 10, 14},
	"minor11":   {0, 3, 7, 10, 14, 17},
	"min11":     {0, 3, 7, 10, 14, 17},
	"m11":       {0, 3, 7, 10, 14, 17},
	"minor13":   {0, 3, 7, 10, 14, 17, 21},
	"min13":     {0, 3, 7, 10, 14, 17, 21},
	"m13":       {0, 3, 7, 10, 14, 17, 21},
	"minorMajor7": {0, 3, 7, 11},
	"minMaj7":   {0, 3, 7, 11},
	"mmaj7":     {0, 3, 7, 11},
	"one":       {0},
	"1":         {0},
	"five":      {0, 7},
	"5":         {0, 7},
	"sus2":      {0, 2, 7},
	"sus4":      {0, 5, 7},
	"sevenSus2": {0, 2, 7, 10},
	"7sus2":     {0, 2, 7, 10},
	"sevenSus4": {0, 5, 7, 10},
	"7sus4":     {0, 5, 7, 10},
	"nineSus4":  {0, 5, 7, 10, 14},
	"ninesus4":  {0, 5, 7, 10, 14},
	"9sus4":     {0, 5, 7, 10, 14},
	"sevenFlat10": {0, 4, 7, 10, 15},
	"7f10":      {0, 4, 7, 10, 15},
	"nine":      {0, 4, 7, 10, 14},
	"eleven":    {0, 4, 7, 10, 14, 17},
	"thirteen":  {0, 4, 7, 10, 14, 17, 21},
}

// Lookup returns name's base intervals, defaulting to [0] for an unknown
// name (spec 7: unresolvable names are not an error).
func Lookup(name string) []int {
	if ivs, ok := Table[name]; ok {
		out := make([]int, len(ivs))
		copy(out, ivs)
		return out
	}
	return []int{0}
}

// rangeCap is the same value as config.MaxRangeModifier's default (spec 9's
// open question). Expand and rangeModifier do not read it: they cap the
// Range prefix at their maxRange argument.
const rangeCap = 128

// Expand folds root, name and mods into the final semitone list, per spec
// 4.5: look up name, offset by root, then fold every modifier left to right.
func Expand(root int, name string, mods []ast.Modifier, maxRange int) []int {
	base := Lookup(name)
	ivs := make([]int, len(base))
	for i, d := range base {
		ivs[i] = d + root
	}
	for _, m := range mods {
		ivs = applyModifier(ivs, m, maxRange)
	}
	return ivs
}

func applyModifier(ds []int, m ast.Modifier, maxRange int) []int {
	switch m.Kind {
	case ast.ModRange:
		return rangeModifier(ds, m.N, maxRange)
	case ast.ModInvert:
		return invertModifier(ds)
	case ast.ModOpen:
		return openModifier(ds)
	case ast.ModDrop:
		return dropModifier(ds, m.N)
	default:
		return ds
	}
}

// rangeModifier takes the first i values of [d+12k | k>=0, d in ds] in
// lexicographic (k, position) order.
func rangeModifier(ds []int, n, maxRange int) []int {
	if n < 0 {
		n = 0
	}
	if n > maxRange {
		n = maxRange
	}
	if len(ds) == 0 {
		return nil
	}
	out := make([]int, 0, n)
	for k := 0; len(out) < n; k++ {
		for _, d := range ds {
			if len(out) >= n {
				break
			}
			out = append(out, d+12*k)
		}
	}
	return out
}

// invertModifier drops the first interval and appends it an octave up.
// Identity on an empty list.
func invertModifier(ds []int) []int {
	if len(ds) == 0 {
		return ds
	}
	out := make([]int, 0, len(ds))
	out = append(out, ds[1:]...)
	out = append(out, ds[0]+12)
	return out
}

// openModifier reorders [d0,d1,d2,...] as [d0-12,d2-12,d1] followed by the
// remaining tail unchanged. Identity when there are 2 or fewer intervals.
func openModifier(ds []int) []int {
	if len(ds) <= 2 {
		return ds
	}
	out := make([]int, 0, len(ds))
	out = append(out, ds[0]-12, ds[2]-12, ds[1])
	out = append(out, ds[3:]...)
	return out
}

// dropModifier drops the i-th note counted from the top: with s = len-i,
// element s moves down an octave and the element at s+1 is removed.
// Identity when len(ds) < i.
func dropModifier(ds []int, i int) []int {
	if len(ds) < i || i <= 0 {
		return ds
	}
	s := len(ds) - i
	if s < 0 || s >= len(ds) {
		return ds
	}
	out := make([]int, 0, len(ds))
	out = append(out, ds[:s]...)
	out = append(out, ds[s]-12)
	if s+1 < len(ds) {
		out = append(out, ds[s+2:]...)
	}
	return out
}
