package config

import "os"

// Config contains runtime configuration for the mini-notation compiler.
type Config struct {
	MaxRangeModifier int    // cap on the chord Range modifier's prefix length (spec 9)
	SentryDSN        string // Sentry DSN for parse/compile span reporting (optional)
}

// defaultMaxRangeModifier is the chord Range modifier's prefix-length cap
// (spec 9) a caller gets unless they build their own Config.
const defaultMaxRangeModifier = 128

// Default returns the configuration patterncore.ParseBP uses when the
// caller doesn't supply its own. SentryDSN is read from the environment,
// the way the teacher's cmd/test-arranger/main.go reads OPENAI_API_KEY -
// an empty SENTRY_DSN disables span reporting rather than being treated
// as a fatal missing credential, since Sentry is observability, not a
// load-bearing dependency of the compiler.
func Default() Config {
	return Config{
		MaxRangeModifier: defaultMaxRangeModifier,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
	}
}
