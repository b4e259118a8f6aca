package pinyin

import "errors"

// Package-specific errors
var (
	// ErrEmptyWordList is returned when a word list yields no usable entries.
	ErrEmptyWordList = errors.New("word list contains no usable entries")

	// ErrReadWordList is returned when the word list source cannot be read.
	ErrReadWordList = errors.New("failed to read word list")
)
