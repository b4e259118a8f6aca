package passgen

import "math/rand"

// Option configures a Generator.
type Option func(*Generator)

// WithRand injects a random source, typically seeded with a fixed value for
// deterministic tests. Nil sources are ignored.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) {
		if rnd != nil {
			g.rnd = rnd
		}
	}
}

// WithSymbols replaces the symbol filler set used by Complex.
// Default is "!@#*~". Empty sets are ignored.
func WithSymbols(symbols string) Option {
	return func(g *Generator) {
		if symbols != "" {
			g.symbols = []rune(symbols)
		}
	}
}

// WithDigits replaces the digit filler set used by Complex.
// Default is "0123456789". Empty sets are ignored.
func WithDigits(digits string) Option {
	return func(g *Generator) {
		if digits != "" {
			g.digits = []rune(digits)
		}
	}
}

// WithJoinSeparator replaces the fixed separator that joins passphrase
// readings. Default is "-". Empty separators are ignored.
func WithJoinSeparator(sep string) Option {
	return func(g *Generator) {
		if sep != "" {
			g.join = sep
		}
	}
}
