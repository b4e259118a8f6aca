package pinyin_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pinpass/pkg/pinyin"
)

func TestParseReading(t *testing.T) {
	tests := []struct {
		name      string
		annotated string
		reading   string
		syllables int
	}{
		{
			name:      "tone digits",
			annotated: "ni3hao3",
			reading:   "nihao",
			syllables: 2,
		},
		{
			name:      "tone digits with apostrophe",
			annotated: "xi1'an1",
			reading:   "xian",
			syllables: 2,
		},
		{
			name:      "tone marks with space",
			annotated: "nǐ hǎo",
			reading:   "nihao",
			syllables: 2,
		},
		{
			name:      "tone marks with apostrophe",
			annotated: "běi'jīng",
			reading:   "beijing",
			syllables: 2,
		},
		{
			name:      "single syllable",
			annotated: "wo3",
			reading:   "wo",
			syllables: 1,
		},
		{
			name:      "neutral tone digit",
			annotated: "hai2zi5",
			reading:   "haizi",
			syllables: 2,
		},
		{
			name:      "four syllables",
			annotated: "yi1lu4ping2an1",
			reading:   "yilupingan",
			syllables: 4,
		},
		{
			name:      "umlaut survives tone stripping",
			annotated: "lǜ",
			reading:   "lü",
			syllables: 1,
		},
		{
			name:      "unannotated reading counts one syllable",
			annotated: "nihao",
			reading:   "nihao",
			syllables: 1,
		},
		{
			name:      "empty",
			annotated: "",
			reading:   "",
			syllables: 0,
		},
		{
			name:      "digits only",
			annotated: "123",
			reading:   "",
			syllables: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, syllables := pinyin.ParseReading(tt.annotated)
			assert.Equal(t, tt.reading, reading)
			assert.Equal(t, tt.syllables, syllables)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("valid word list", func(t *testing.T) {
		input := strings.Join([]string{
			"# comment line",
			"你好\tni3hao3",
			"世界\tshi4jie4",
			"",
			"malformed line without tab",
			"北京\tbei3jing1\textra column ignored",
			"你好\twrong2dupe4",
			"\tno3word4",
			"无读音\t",
		}, "\n")

		catalog, err := pinyin.Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 3, catalog.Len())

		entry, ok := catalog.Entry("你好")
		require.True(t, ok)
		// first occurrence wins over the duplicate
		assert.Equal(t, "nihao", entry.Reading)
		assert.Equal(t, 2, entry.Syllables)

		entry, ok = catalog.Entry("北京")
		require.True(t, ok)
		assert.Equal(t, "beijing", entry.Reading)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := pinyin.Parse(strings.NewReader(""))
		assert.ErrorIs(t, err, pinyin.ErrEmptyWordList)
	})

	t.Run("only malformed lines", func(t *testing.T) {
		_, err := pinyin.Parse(strings.NewReader("no tab here\nanother bad line\n"))
		assert.ErrorIs(t, err, pinyin.ErrEmptyWordList)
	})
}

func TestLoadFileMissing(t *testing.T) {
	_, err := pinyin.LoadFile("testdata/does-not-exist.txt")
	assert.ErrorIs(t, err, pinyin.ErrReadWordList)
}
