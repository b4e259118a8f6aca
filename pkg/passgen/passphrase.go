package passgen

import (
	"errors"
	"fmt"
	"strings"
)

// PassphraseN builds a passphrase from exactly max(3, wordCount) distinct
// words whose syllable count equals syllables, sampled without replacement.
// Readings are joined by the fixed join separator, and the hint joins the
// `word(reading)` tokens with the same separator.
func (g *Generator) PassphraseN(wordCount, syllables int, capitalize bool) (Result, error) {
	if g.catalog.Len() == 0 {
		return Result{}, ErrEmptyCatalog
	}

	n := wordCount
	if n < minPassphraseWords {
		n = minPassphraseWords
	}

	eligible := g.catalog.BySyllables(syllables)
	if len(eligible) == 0 {
		return Result{Hint: NoEligibleWordsHint}, ErrNoEligibleWords
	}
	if len(eligible) < n {
		return Result{}, errors.Join(ErrInsufficientDistinctWords,
			fmt.Errorf("requested %d distinct words, only %d have %d syllables", n, len(eligible), syllables))
	}

	g.mu.Lock()
	perm := g.rnd.Perm(len(eligible))
	g.mu.Unlock()

	selected := make([]string, n)
	for i := range selected {
		selected[i] = eligible[perm[i]]
	}
	return g.joinPassphrase(selected, capitalize), nil
}

// Passphrase builds a passphrase by independent single draws from the words
// whose syllable count equals syllables, until at least 3 words have been
// accumulated and their summed reading length reaches minLength. Draws may
// repeat a word; that asymmetry with PassphraseN is deliberate, the two
// modes are distinct sampling strategies.
func (g *Generator) Passphrase(minLength, syllables int, capitalize bool) (Result, error) {
	if g.catalog.Len() == 0 {
		return Result{}, ErrEmptyCatalog
	}

	eligible := g.catalog.BySyllables(syllables)
	if len(eligible) == 0 {
		return Result{Hint: NoEligibleWordsHint}, ErrNoEligibleWords
	}

	g.mu.Lock()
	var selected []string
	total := 0
	for len(selected) < minPassphraseWords || total < minLength {
		word := eligible[g.rnd.Intn(len(eligible))]
		entry, _ := g.catalog.Entry(word)
		selected = append(selected, word)
		total += len(entry.Reading)
	}
	g.mu.Unlock()

	return g.joinPassphrase(selected, capitalize), nil
}

// joinPassphrase renders the selected words into a separator-joined secret
// and the matching hint.
func (g *Generator) joinPassphrase(selected []string, capitalize bool) Result {
	readings := make([]string, len(selected))
	tokens := make([]string, len(selected))
	for i, word := range selected {
		entry, _ := g.catalog.Entry(word)
		reading := entry.Reading
		if capitalize {
			reading = Capitalize(reading)
		}
		readings[i] = reading
		tokens[i] = word + "(" + reading + ")"
	}
	return Result{
		Secret: strings.Join(readings, g.join),
		Hint:   strings.Join(tokens, g.join),
		Words:  selected,
	}
}
