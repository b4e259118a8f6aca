package passgen

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of a reading and leaves the rest
// unchanged. Empty input is returned as-is. Idempotent.
func Capitalize(reading string) string {
	if reading == "" {
		return reading
	}
	r, size := utf8.DecodeRuneInString(reading)
	upper := unicode.ToUpper(r)
	if upper == r {
		return reading
	}
	return string(upper) + reading[size:]
}
