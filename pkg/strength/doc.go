// Package strength gives a coarse 0..4 score for a finished password or
// passphrase. It looks only at length and character-class variety, which is
// enough to warn about obviously weak output; it is not a crack-time
// estimator.
//
// # Usage
//
//	eval := strength.Score("Nihao7Shijie@3~")
//	fmt.Println(eval.Score, eval.Label) // e.g. 4 "very strong"
//
// The evaluator treats its input as an opaque string, so it works the same
// for secrets produced by this module and for anything else.
package strength
