package strength

import "unicode"

// Evaluation is the outcome of scoring a secret.
type Evaluation struct {
	// Score is a coarse rating from 0 (very weak) to 4 (very strong).
	Score int

	// Label is the human-readable name of the score.
	Label string

	// Suggestions lists short improvement hints for low scores.
	Suggestions []string
}

var labels = [...]string{"very weak", "weak", "fair", "strong", "very strong"}

// Score rates a secret by its length and character-class variety.
func Score(secret string) Evaluation {
	var hasLower, hasUpper, hasDigit, hasOther bool
	length := 0
	for _, r := range secret {
		length++
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
	}

	classes := 0
	for _, has := range []bool{hasLower, hasUpper, hasDigit, hasOther} {
		if has {
			classes++
		}
	}

	var score int
	var suggestions []string
	switch {
	case length >= 14 && classes >= 3:
		score = 4
	case length >= 12 && classes >= 3:
		score = 3
	case length >= 10 && classes >= 2:
		score = 2
		suggestions = []string{"add more length and mix of letters, digits, and symbols"}
	case length >= 8:
		score = 1
		suggestions = []string{"use at least 10-12 characters with mixed character types"}
	default:
		score = 0
		suggestions = []string{"use 12 or more characters with upper/lower case, digits, and symbols"}
	}

	return Evaluation{Score: score, Label: labels[score], Suggestions: suggestions}
}
