package passgen

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/pinpass/pkg/pinyin"
)

const (
	defaultSymbols = "!@#*~"
	defaultDigits  = "0123456789"
	defaultJoin    = "-"

	// fillerReserve is the number of characters of the requested minimum
	// length set aside for fillers when accumulating readings in Complex.
	fillerReserve = 3

	// minPassphraseWords is the floor on the word count of any passphrase.
	minPassphraseWords = 3
)

// Generator produces secrets from a read-only catalog. The catalog is never
// mutated; the random source is guarded by a mutex, so a single Generator is
// safe for concurrent use.
type Generator struct {
	catalog *pinyin.Catalog

	mu  sync.Mutex
	rnd *rand.Rand

	symbols []rune
	digits  []rune
	join    string
}

// New creates a generator over the catalog. Options override the filler
// sets, the passphrase join separator, and the random source.
func New(catalog *pinyin.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog: catalog,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		symbols: []rune(defaultSymbols),
		digits:  []rune(defaultDigits),
		join:    defaultJoin,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// pickFiller draws one filler character: with probability 0.5 from the
// symbol set, otherwise from the digit set. Caller must hold g.mu.
func (g *Generator) pickFiller() rune {
	if g.rnd.Float64() < 0.5 {
		return g.symbols[g.rnd.Intn(len(g.symbols))]
	}
	return g.digits[g.rnd.Intn(len(g.digits))]
}

// Complex builds an interleaved password: words are sampled uniformly with
// replacement from the whole catalog until the accumulated reading length
// reaches minLength-3 (three characters are reserved for fillers), readings
// are joined by one random filler per internal boundary, and exactly two
// fillers are appended at the end. Words are never split, so the threshold
// may be overshot by one whole reading. The hint interleaves `word(reading)`
// tokens with the very same filler characters.
func (g *Generator) Complex(minLength int, capitalize bool) (Result, error) {
	if g.catalog.Len() == 0 {
		return Result{}, ErrEmptyCatalog
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	words := g.catalog.Words()
	var selected, readings []string
	total := 0
	for total < minLength-fillerReserve {
		word := words[g.rnd.Intn(len(words))]
		entry, _ := g.catalog.Entry(word)
		reading := entry.Reading
		if capitalize {
			reading = Capitalize(reading)
		}
		selected = append(selected, word)
		readings = append(readings, reading)
		total += len(reading)
	}

	seps := make([]rune, 0, len(readings))
	var secret strings.Builder
	for i, reading := range readings {
		if i > 0 {
			sep := g.pickFiller()
			seps = append(seps, sep)
			secret.WriteRune(sep)
		}
		secret.WriteString(reading)
	}
	trailing := [2]rune{g.pickFiller(), g.pickFiller()}
	secret.WriteRune(trailing[0])
	secret.WriteRune(trailing[1])

	var hint strings.Builder
	for i, word := range selected {
		if i > 0 {
			hint.WriteRune(seps[i-1])
		}
		hint.WriteString(word)
		hint.WriteByte('(')
		hint.WriteString(readings[i])
		hint.WriteByte(')')
	}
	hint.WriteRune(trailing[0])
	hint.WriteRune(trailing[1])

	return Result{Secret: secret.String(), Hint: hint.String(), Words: selected}, nil
}
