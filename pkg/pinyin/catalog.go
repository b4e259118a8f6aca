package pinyin

import "sort"

// Entry holds the normalized reading of a single word.
type Entry struct {
	// Reading is the flat pinyin rendering: no tone digits, no tone marks,
	// no apostrophes, no spaces.
	Reading string

	// Syllables is the number of tone-bearing syllables in the annotated
	// source reading. Always at least 1.
	Syllables int
}

// Catalog is an immutable word-to-entry mapping. The word set is kept as a
// sorted slice alongside the map so that sampling with an injected random
// source is deterministic and uniform regardless of map iteration order.
type Catalog struct {
	entries map[string]Entry
	words   []string
}

// NewCatalog builds a catalog from a ready-made entry map. Entries with an
// empty word or reading are dropped; a syllable count below 1 is clamped to 1.
// The input map is copied, so the caller may reuse or mutate it afterwards.
func NewCatalog(entries map[string]Entry) *Catalog {
	c := &Catalog{
		entries: make(map[string]Entry, len(entries)),
		words:   make([]string, 0, len(entries)),
	}
	for word, e := range entries {
		if word == "" || e.Reading == "" {
			continue
		}
		if e.Syllables < 1 {
			e.Syllables = 1
		}
		c.entries[word] = e
		c.words = append(c.words, word)
	}
	sort.Strings(c.words)
	return c
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.words)
}

// Entry returns the entry for a word and whether the word exists.
func (c *Catalog) Entry(word string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[word]
	return e, ok
}

// Words returns all words in sorted order. The returned slice is a copy.
func (c *Catalog) Words() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// BySyllables returns, in sorted order, the words whose syllable count equals n.
func (c *Catalog) BySyllables(n int) []string {
	if c == nil {
		return nil
	}
	var out []string
	for _, word := range c.words {
		if c.entries[word].Syllables == n {
			out = append(out, word)
		}
	}
	return out
}
