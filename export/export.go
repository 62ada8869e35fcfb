// Package export turns sampled event streams into JSON, and reads golden
// fixture files of worked mini-notation examples (spec 8's end-to-end
// scenarios) back out of JSON, for tests and the CLI's --json flag.
package export

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

// EventsJSON renders a sampled event slice as a JSON array of
// {"begin":"num/den","end":"num/den","value":"...","onset":bool} objects.
// valueToString renders one event's value; different leaf types need
// different renderings (a vocable prints itself, a rational prints as
// "num/den", a chord's uncollected note prints its semitone value).
func EventsJSON[T any](evs []pattern.Event[T], valueToString func(T) string) (string, error) {
	out := "[]"
	for i, e := range evs {
		var err error
		prefix := fmt.Sprintf("%d", i)
		if out, err = sjson.Set(out, prefix+".begin", e.Part.Begin.RatString()); err != nil {
			return "", err
		}
		if out, err = sjson.Set(out, prefix+".end", e.Part.End.RatString()); err != nil {
			return "", err
		}
		if out, err = sjson.Set(out, prefix+".value", valueToString(e.Value)); err != nil {
			return "", err
		}
		if out, err = sjson.Set(out, prefix+".onset", e.HasOnset()); err != nil {
			return "", err
		}
	}
	return out, nil
}

// Fixture is one worked example from a golden JSON fixture file: an input
// mini-notation string and its expected (begin, end, value) event triples
// over [0,1) (spec 8's end-to-end scenarios).
type Fixture struct {
	Input  string
	Events []FixtureEvent
}

// FixtureEvent is one expected event, with begin/end kept as their
// "num/den" text form so the fixture format never needs float precision.
type FixtureEvent struct {
	Begin, End, Value string
}

// ParseFixtures reads a JSON array of
// {"input":"...","events":[{"begin":"0/1","end":"1/4","value":"a"}, ...]}
// records, letting spec 8's worked examples live as data instead of
// duplicated Go literals across test files.
func ParseFixtures(data string) []Fixture {
	var out []Fixture
	gjson.Parse(data).ForEach(func(_, item gjson.Result) bool {
		f := Fixture{Input: item.Get("input").String()}
		item.Get("events").ForEach(func(_, ev gjson.Result) bool {
			f.Events = append(f.Events, FixtureEvent{
				Begin: ev.Get("begin").String(),
				End:   ev.Get("end").String(),
				Value: ev.Get("value").String(),
			})
			return true
		})
		out = append(out, f)
		return true
	})
	return out
}
