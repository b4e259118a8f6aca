package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/pinpass/pkg/passgen"
	"github.com/dmitrymomot/pinpass/pkg/pinyin"
	"github.com/dmitrymomot/pinpass/pkg/strength"
)

// config carries env-provided defaults; flags override them.
type config struct {
	MinLength int    `env:"PINPASS_MIN_LENGTH" envDefault:"12"`
	Words     int    `env:"PINPASS_WORDS" envDefault:"0"`
	Syllables int    `env:"PINPASS_SYLLABLES" envDefault:"2"`
	Wordlist  string `env:"PINPASS_WORDLIST"`
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// The .env file is optional.
	_ = godotenv.Load()
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Error("parsing environment", "error", err)
		os.Exit(1)
	}

	mode := flag.String("mode", "complex", "generation mode: complex or phrase")
	minLength := flag.Int("min-length", cfg.MinLength, "minimum secret length")
	words := flag.Int("words", cfg.Words, "fixed word count for phrase mode (0 = minimum-length mode)")
	syllables := flag.Int("syllables", cfg.Syllables, "required syllables per word in phrase mode")
	capitalize := flag.Bool("capitalize", false, "upper-case the first letter of every reading")
	wordlist := flag.String("wordlist", cfg.Wordlist, "path to a tab-separated word list (default: embedded)")
	qrPath := flag.String("qr", "", "write the secret as a QR code PNG to this path")
	seed := flag.Int64("seed", 0, "random seed for reproducible output (0 = time-based)")
	flag.Parse()

	catalog := pinyin.Default()
	if *wordlist != "" {
		var err error
		catalog, err = pinyin.LoadFile(*wordlist)
		if err != nil {
			log.Error("loading word list", "path", *wordlist, "error", err)
			os.Exit(1)
		}
	}

	var opts []passgen.Option
	if *seed != 0 {
		opts = append(opts, passgen.WithRand(rand.New(rand.NewSource(*seed))))
	}
	gen := passgen.New(catalog, opts...)

	var res passgen.Result
	var err error
	switch *mode {
	case "complex":
		res, err = gen.Complex(*minLength, *capitalize)
	case "phrase":
		if *words > 0 {
			res, err = gen.PassphraseN(*words, *syllables, *capitalize)
		} else {
			res, err = gen.Passphrase(*minLength, *syllables, *capitalize)
		}
	default:
		log.Error("unknown mode", "mode", *mode)
		os.Exit(1)
	}
	if err != nil {
		if res.Hint != "" {
			fmt.Fprintln(os.Stderr, res.Hint)
		}
		log.Error("generating secret", "error", err)
		os.Exit(1)
	}

	eval := strength.Score(res.Secret)
	fmt.Println("secret:  ", res.Secret)
	fmt.Println("hint:    ", res.Hint)
	fmt.Printf("strength: %d/4 (%s)\n", eval.Score, eval.Label)
	if len(eval.Suggestions) > 0 {
		fmt.Println("advice:  ", strings.Join(eval.Suggestions, "; "))
	}

	if *qrPath != "" {
		if err := qrcode.WriteFile(res.Secret, qrcode.Medium, 256, *qrPath); err != nil {
			log.Error("writing QR code", "path", *qrPath, "error", err)
			os.Exit(1)
		}
		log.Info("QR code written", "path", *qrPath)
	}
}
