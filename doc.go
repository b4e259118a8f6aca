// Package pinpass generates human-memorable passwords and passphrases from a
// dictionary of Chinese words and their pinyin readings, together with a
// mnemonic hint that lets the owner reconstruct the secret from the words.
//
// The module is a small kit of focused packages:
//
//   - pkg/pinyin — the word catalog: dictionary model, reading normalization
//     (tone digits and tone marks stripped), tab-separated word list parsing,
//     and an embedded default dictionary.
//   - pkg/passgen — the generation engine: interleaved "complex password"
//     construction, multi-word passphrase construction, and the shared
//     separator and hint rules.
//   - pkg/strength — a coarse strength score for a finished secret.
//   - cmd/pinpass — a small CLI around the above.
//
// Basic Usage:
//
//	catalog := pinyin.Default()
//	gen := passgen.New(catalog)
//
//	res, err := gen.Complex(12, true)
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(res.Secret) // e.g. "Nihao7Shijie@3~"
//	fmt.Println(res.Hint)   // e.g. "你好(Nihao)7世界(Shijie)@3~"
//
// Passphrases join readings with a fixed separator instead of random fillers:
//
//	res, err := gen.PassphraseN(4, 2, false)
//	// res.Secret: "nihao-shijie-beijing-pengyou"
//	// res.Hint:   "你好(nihao)-世界(shijie)-北京(beijing)-朋友(pengyou)"
//
// Hints are lossless: the exact words, readings, separators, and order used
// to build the secret can always be read back from the hint.
package pinpass
