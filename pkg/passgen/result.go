package passgen

// NoEligibleWordsHint is the explanatory hint carried by the Result of a
// passphrase call that failed with ErrNoEligibleWords, for callers that only
// display strings.
const NoEligibleWordsHint = "no words match the required syllable count"

// Result is the outcome of a successful generation call.
type Result struct {
	// Secret is the finished password or passphrase.
	Secret string

	// Hint pairs every selected word with its reading in `word(reading)`
	// form and reproduces the exact separator characters of Secret, in the
	// same positions, so the secret can be rebuilt from the hint by hand.
	Hint string

	// Words lists the selected words in generation order.
	Words []string
}
