package pinyin

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

// Combining marks used as pinyin tone annotations: grave, acute, macron,
// breve, and caron. The diaeresis is deliberately absent, it belongs to the
// letter ü and must survive normalization.
var toneMarks = rangetable.New('\u0300', '\u0301', '\u0304', '\u0306', '\u030C')

// flatten decomposes a reading, drops the tone marks, and recomposes what is
// left, so "nǐhǎo" becomes "nihao" while "lǜ" keeps its ü.
var flatten = transform.Chain(norm.NFD, runes.Remove(runes.In(toneMarks)), norm.NFC)

// ParseReading normalizes an annotated pinyin reading and derives its
// syllable count. Tone digits ("ni3hao3") and tone marks ("nǐhǎo") are both
// accepted. The syllable count is the number of tone digits when present,
// otherwise the number of apostrophe- or space-separated groups. Digits,
// apostrophes, spaces, and tone marks are stripped from the returned reading.
func ParseReading(annotated string) (string, int) {
	flat, _, err := transform.String(flatten, annotated)
	if err != nil {
		flat = annotated
	}

	var b strings.Builder
	digits, seps := 0, 0
	for _, r := range flat {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '\'' || r == ' ':
			seps++
		default:
			b.WriteRune(r)
		}
	}

	reading := b.String()
	if reading == "" {
		return "", 0
	}
	syllables := digits
	if syllables == 0 {
		syllables = seps + 1
	}
	return reading, syllables
}

// Parse reads a tab-separated word list (`word<TAB>annotated reading` per
// line) into a catalog. Blank lines, comment lines starting with '#', and
// malformed lines are skipped. When a word appears more than once the first
// occurrence wins.
func Parse(r io.Reader) (*Catalog, error) {
	entries := make(map[string]Entry)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, annotated, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		// Extra columns beyond the reading are ignored.
		annotated, _, _ = strings.Cut(annotated, "\t")
		word = strings.TrimSpace(word)
		reading, syllables := ParseReading(strings.TrimSpace(annotated))
		if word == "" || reading == "" {
			continue
		}
		if _, exists := entries[word]; exists {
			continue
		}
		entries[word] = Entry{Reading: reading, Syllables: syllables}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrReadWordList, err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyWordList
	}
	return NewCatalog(entries), nil
}

// LoadFile parses the word list at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadWordList, err)
	}
	defer f.Close()
	return Parse(f)
}
