// Package pinyin provides the word catalog that the password generators draw
// from: an immutable mapping from a Chinese word to its romanized (pinyin)
// reading and syllable count.
//
// Catalogs are built from tab-separated word lists (`word<TAB>reading`) where
// the reading carries tone annotations. The parser accepts both tone-digit
// form ("ni3hao3") and tone-mark form ("nǐhǎo"); either way the stored
// reading is flat ASCII-ish pinyin with digits, apostrophes, spaces, and tone
// marks removed, and the syllable count reflects the number of tone-bearing
// syllables in the annotated source.
//
// # Usage
//
// Load a custom word list:
//
//	catalog, err := pinyin.LoadFile("words.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or use the embedded default dictionary:
//
//	catalog := pinyin.Default()
//
// Catalogs are read-only after construction and safe for concurrent use by
// any number of simultaneous generation calls.
//
// # Error Handling
//
// The package defines sentinel errors comparable with errors.Is:
//
//   - ErrEmptyWordList — parsing produced no usable entries.
//   - ErrReadWordList  — the underlying reader or file failed.
//
// Malformed lines (missing tab, empty word or reading) are skipped rather
// than reported, so a word list only fails to load when nothing survives.
package pinyin
