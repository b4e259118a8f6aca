package passgen

import "errors"

// Package-specific errors
var (
	// ErrEmptyCatalog is returned when generation is attempted against a
	// catalog with no words; it is raised before any sampling.
	ErrEmptyCatalog = errors.New("word catalog is empty")

	// ErrNoEligibleWords is returned when the syllable-count filter leaves
	// no candidate words for a passphrase.
	ErrNoEligibleWords = errors.New("no words match the required syllable count")

	// ErrInsufficientDistinctWords is returned when a fixed-count passphrase
	// requests more distinct words than the eligible set holds. Duplicate
	// sampling is never used to satisfy the count silently.
	ErrInsufficientDistinctWords = errors.New("not enough distinct words match the required syllable count")
)
