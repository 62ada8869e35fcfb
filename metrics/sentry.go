package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryMetrics reports parse/compile timings and outcomes as Sentry spans.
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client. dsn is the Sentry
// project DSN (config.Config.SentryDSN); an empty DSN disables span
// reporting rather than sending spans to nowhere.
func NewSentryMetrics(dsn string) *SentryMetrics {
	return &SentryMetrics{
		enabled: dsn != "",
	}
}

// RecordParse records one parseBP invocation: how long recognising the
// grammar took, and whether it succeeded.
func (m *SentryMetrics) RecordParse(ctx context.Context, input string, duration time.Duration, ok bool) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "patterncore.parse")
	defer span.Finish()

	span.SetTag("ok", fmt.Sprintf("%t", ok))
	span.SetData("input_length", len(input))
	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("ok", ok)

	if ok {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInvalidArgument
	}
	span.Description = fmt.Sprintf("parseBP (%d bytes)", len(input))
}

// RecordCompile records one toPat fold: how long turning the AST into a
// compiled Pattern took, and how many seeds the parse allocated.
func (m *SentryMetrics) RecordCompile(ctx context.Context, duration time.Duration, seedCount int) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "patterncore.compile")
	defer span.Finish()

	span.SetTag("seed_count", fmt.Sprintf("%d", seedCount))
	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("seed_count", seedCount)

	span.Status = sentry.SpanStatusOK
	span.Description = "toPat"
}

// RecordSample records how many events a single-cycle sample produced, a
// basic sanity signal for pathological patterns (e.g. runaway Range
// modifiers or deeply nested polyrhythms).
func (m *SentryMetrics) RecordSample(ctx context.Context, count int) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "patterncore.sample")
	defer span.Finish()

	span.SetData("event_count", count)
	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("sample: %d events", count)
}
