// Package passgen builds human-memorable secrets from a pinyin word catalog
// and pairs every secret with a mnemonic hint that reproduces the exact
// words, separators, and order used, so the owner can reconstruct the secret
// from the words alone.
//
// Two construction styles are provided:
//
//   - Complex — words sampled with replacement from the whole catalog, their
//     readings interleaved with random symbol/digit fillers and finished with
//     two trailing fillers ("nihao7Shijie@3~").
//   - Passphrase — words of a required syllable count joined by a fixed
//     separator, either exactly N distinct words (PassphraseN) or as many
//     independent draws as needed to reach a minimum length (Passphrase).
//
// # Usage
//
//	gen := passgen.New(pinyin.Default())
//
//	res, err := gen.Complex(12, true)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(res.Secret, res.Hint)
//
// Deterministic output for tests is obtained by injecting a seeded source:
//
//	gen := passgen.New(catalog, passgen.WithRand(rand.New(rand.NewSource(1))))
//
// # Error Handling
//
// Failures are tagged by sentinel errors rather than by empty strings:
//
//   - ErrEmptyCatalog — the catalog holds no words at all.
//   - ErrNoEligibleWords — no word matches the required syllable count; the
//     returned Result still carries an explanatory hint for display.
//   - ErrInsufficientDistinctWords — PassphraseN asked for more distinct
//     words than the eligible set holds.
//
// A failed call never returns a partial secret.
//
// # Randomness
//
// The default source is math/rand seeded from the clock; generation is
// intentionally not cryptographically secure. The source is guarded by a
// mutex, so a single Generator may be shared across goroutines.
package passgen
