package passgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pinpass/pkg/passgen"
	"github.com/dmitrymomot/pinpass/pkg/pinyin"
)

func TestPassphraseN(t *testing.T) {
	catalog := pinyin.NewCatalog(map[string]pinyin.Entry{
		"你好": {Reading: "nihao", Syllables: 2},
		"世界": {Reading: "shijie", Syllables: 2},
		"北京": {Reading: "beijing", Syllables: 2},
	})

	t.Run("uses every eligible word exactly once", func(t *testing.T) {
		gen := seededGen(catalog, 1)
		res, err := gen.PassphraseN(3, 2, false)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"你好", "世界", "北京"}, res.Words)

		parts := strings.Split(res.Secret, "-")
		assert.ElementsMatch(t, []string{"nihao", "shijie", "beijing"}, parts)

		// hint mirrors the secret order token by token
		tokens := strings.Split(res.Hint, "-")
		require.Len(t, tokens, len(parts))
		for i, reading := range parts {
			assert.Equal(t, res.Words[i]+"("+reading+")", tokens[i])
		}
	})

	t.Run("word count below three is raised to three", func(t *testing.T) {
		gen := seededGen(catalog, 2)
		res, err := gen.PassphraseN(2, 2, false)
		require.NoError(t, err)
		assert.Len(t, res.Words, 3)
	})

	t.Run("no duplicates for larger catalogs", func(t *testing.T) {
		gen := seededGen(testCatalog(), 3)
		res, err := gen.PassphraseN(4, 2, false)
		require.NoError(t, err)
		require.Len(t, res.Words, 4)

		seen := make(map[string]bool)
		for _, w := range res.Words {
			assert.False(t, seen[w], "word %q selected twice", w)
			seen[w] = true
		}
	})

	t.Run("capitalize", func(t *testing.T) {
		gen := seededGen(catalog, 4)
		res, err := gen.PassphraseN(3, 2, true)
		require.NoError(t, err)
		for _, part := range strings.Split(res.Secret, "-") {
			assert.Equal(t, passgen.Capitalize(part), part)
		}
		assert.Contains(t, res.Hint, "(" + passgen.Capitalize("nihao") + ")")
	})

	t.Run("insufficient distinct words", func(t *testing.T) {
		gen := seededGen(catalog, 5)
		_, err := gen.PassphraseN(4, 2, false)
		assert.ErrorIs(t, err, passgen.ErrInsufficientDistinctWords)
	})

	t.Run("no eligible words", func(t *testing.T) {
		gen := seededGen(catalog, 6)
		res, err := gen.PassphraseN(3, 5, false)
		assert.ErrorIs(t, err, passgen.ErrNoEligibleWords)
		assert.Empty(t, res.Secret)
		assert.Equal(t, passgen.NoEligibleWordsHint, res.Hint)
	})

	t.Run("empty catalog", func(t *testing.T) {
		gen := passgen.New(pinyin.NewCatalog(nil))
		_, err := gen.PassphraseN(3, 2, false)
		assert.ErrorIs(t, err, passgen.ErrEmptyCatalog)
	})
}

func TestPassphrase(t *testing.T) {
	catalog := testCatalog()

	t.Run("reaches minimum length with at least three words", func(t *testing.T) {
		for _, minLength := range []int{1, 10, 25, 60} {
			gen := seededGen(catalog, int64(minLength))
			res, err := gen.Passphrase(minLength, 2, false)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, len(res.Words), 3)

			sum := 0
			for _, w := range res.Words {
				entry, ok := catalog.Entry(w)
				require.True(t, ok)
				assert.Equal(t, 2, entry.Syllables)
				sum += len(entry.Reading)
			}
			assert.GreaterOrEqual(t, sum, minLength)

			parts := strings.Split(res.Secret, "-")
			require.Len(t, parts, len(res.Words))
			for i, w := range res.Words {
				entry, _ := catalog.Entry(w)
				assert.Equal(t, entry.Reading, parts[i])
			}
		}
	})

	t.Run("draws may repeat words", func(t *testing.T) {
		small := pinyin.NewCatalog(map[string]pinyin.Entry{
			"你好": {Reading: "nihao", Syllables: 2},
		})
		gen := seededGen(small, 8)
		res, err := gen.Passphrase(20, 2, false)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(res.Words), 4)
		for _, w := range res.Words {
			assert.Equal(t, "你好", w)
		}
	})

	t.Run("no eligible words discards accumulation", func(t *testing.T) {
		gen := seededGen(catalog, 9)
		res, err := gen.Passphrase(10, 7, false)
		assert.ErrorIs(t, err, passgen.ErrNoEligibleWords)
		assert.Empty(t, res.Secret)
		assert.Empty(t, res.Words)
		assert.Equal(t, passgen.NoEligibleWordsHint, res.Hint)
	})

	t.Run("empty catalog", func(t *testing.T) {
		gen := passgen.New(nil)
		_, err := gen.Passphrase(10, 2, false)
		assert.ErrorIs(t, err, passgen.ErrEmptyCatalog)
	})

	t.Run("custom join separator", func(t *testing.T) {
		gen := seededGen(catalog, 10, passgen.WithJoinSeparator("_"))
		res, err := gen.Passphrase(12, 2, false)
		require.NoError(t, err)
		assert.Contains(t, res.Secret, "_")
		assert.NotContains(t, res.Secret, "-")
		assert.Equal(t, len(res.Words)-1, strings.Count(res.Secret, "_"))
	})
}
