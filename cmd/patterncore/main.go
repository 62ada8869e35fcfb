// Command patterncore parses a mini-notation string from argv, samples it
// over one cycle, and prints the resulting events as text or JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/tidwall/pretty"

	"github.com/Conceptual-Machines/patterncore-go/config"
	"github.com/Conceptual-Machines/patterncore-go/export"
	patterncore "github.com/Conceptual-Machines/patterncore-go"
	"github.com/Conceptual-Machines/patterncore-go/metrics"
	"github.com/Conceptual-Machines/patterncore-go/parser"
	"github.com/Conceptual-Machines/patterncore-go/pattern"
)

var cliConfig = config.Default()
var cliMetrics = metrics.NewSentryMetrics(cliConfig.SentryDSN)

func main() {
	if cliConfig.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cliConfig.SentryDSN}); err != nil {
			fmt.Fprintf(os.Stderr, "sentry.Init: %v\n", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	jsonOut := flag.Bool("json", false, "print events as JSON instead of text")
	leafType := flag.String("type", "string", "leaf type: string, double, note, int, bool, colour")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: patterncore [-json] [-type=string] '<pattern>'")
		os.Exit(2)
	}
	input := args[0]

	cycle := pattern.Interval{Begin: big.NewRat(0, 1), End: big.NewRat(1, 1)}

	switch *leafType {
	case "string":
		run(input, cycle, patterncore.ParseBPString, func(v string) string { return v }, *jsonOut)
	case "double":
		run(input, cycle, patterncore.ParseBPDouble, func(v float64) string { return fmt.Sprintf("%g", v) }, *jsonOut)
	case "note":
		run(input, cycle, patterncore.ParseBPNote, func(v float64) string { return fmt.Sprintf("%g", v) }, *jsonOut)
	case "int":
		run(input, cycle, patterncore.ParseBPInt, func(v int) string { return fmt.Sprintf("%d", v) }, *jsonOut)
	case "bool":
		run(input, cycle, patterncore.ParseBPBool, func(v bool) string { return fmt.Sprintf("%t", v) }, *jsonOut)
	case "colour":
		run(input, cycle, patterncore.ParseBPColour, func(v int) string { return fmt.Sprintf("#%06x", v) }, *jsonOut)
	default:
		fmt.Fprintf(os.Stderr, "unknown -type %q\n", *leafType)
		os.Exit(2)
	}
}

func run[T any](input string, cycle pattern.Interval, parse func(string) (pattern.Pattern[T], *parser.ParseError), toStr func(T) string, asJSON bool) {
	pat, err := parse(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Display())
		os.Exit(1)
	}
	evs := pat(cycle)
	cliMetrics.RecordSample(context.Background(), len(evs))

	if asJSON {
		js, jerr := export.EventsJSON(evs, toStr)
		if jerr != nil {
			fmt.Fprintln(os.Stderr, jerr)
			os.Exit(1)
		}
		fmt.Println(string(pretty.Pretty([]byte(js))))
		return
	}

	for _, e := range evs {
		onset := " "
		if e.HasOnset() {
			onset = "*"
		}
		fmt.Printf("%s %s-%s %s\n", onset, e.Part.Begin.RatString(), e.Part.End.RatString(), toStr(e.Value))
	}
}
