package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLittlerazyParseHeader(t *testing.T) {
	text := "Plastic Sucks HC 130.000 ETA MEI 🌸🌸🌸 How can YOU help reduce plastic waste?"

	b := NewLittlerazyParser().Parse(text, 1)

	assert.Equal(t, "Plastic Sucks", b.Title)
	// HC stays HC at this tier; alias folding belongs to the generative tier.
	assert.Equal(t, "HC", b.Format)
	require.NotNil(t, b.PriceMain)
	assert.Equal(t, 130000, *b.PriceMain)
	assert.Equal(t, "Mei '25", b.Eta)
	assert.Equal(t, "🌸🌸🌸", b.SeparatorEmoji)
	assert.Equal(t, "Request", b.Type)
	assert.True(t, strings.HasPrefix(b.Description, "How can YOU help"))
	assert.Equal(t, text, b.RawText)
	assert.Equal(t, 1, b.MediaCount)
}

func TestLittlerazyParseTitleCasing(t *testing.T) {
	text := "THE  BIG   BOOK OF BUGS BB 85.000 ETA AGU 🌷🌷 Insects up close."

	b := NewLittlerazyParser().Parse(text, 0)

	assert.Equal(t, "The Big Book Of Bugs", b.Title)
	assert.Equal(t, "BB", b.Format)
	require.NotNil(t, b.PriceMain)
	assert.Equal(t, 85000, *b.PriceMain)
	assert.Equal(t, "Aug '25", b.Eta)
}

func TestLittlerazyParseMultilineDescription(t *testing.T) {
	text := "Garden Friends PB 99.000 ETA OKT 🌻🌻🌻\nFirst paragraph.\n\n\n\nSecond paragraph."

	b := NewLittlerazyParser().Parse(text, 0)

	assert.Equal(t, "Oct '25", b.Eta)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", b.Description)
}

func TestLittlerazySalvageWhenGrammarRejects(t *testing.T) {
	text := "The Gruffalo 🌸 special price 99.000 while stock lasts\nDM to order"

	b := NewLittlerazyParser().Parse(text, 3)

	assert.Equal(t, "The Gruffalo", b.Title)
	assert.Equal(t, "The Gruffalo", b.TitleLocalized)
	require.NotNil(t, b.PriceMain)
	assert.Equal(t, 99000, *b.PriceMain)
	assert.Equal(t, text, b.Description)
	assert.Equal(t, text, b.RawText)
	assert.Empty(t, b.Format)
	assert.Empty(t, b.Eta)
}

func TestLittlerazySalvageTruncatesLongTitle(t *testing.T) {
	text := strings.Repeat("word ", 40) + "\nno grammar here"

	b := NewLittlerazyParser().Parse(text, 0)

	assert.Len(t, []rune(b.Title), 100)
}

func TestFormatETA(t *testing.T) {
	cases := []struct {
		month string
		want  string
	}{
		{"JAN", "Jan '25"},
		{"MEI", "Mei '25"},
		{"mei", "Mei '25"},
		{"MAY", "May '25"},
		{"AGU", "Aug '25"},
		{"AUG", "Aug '25"},
		{"OKT", "Oct '25"},
		{"DES", "Dec '25"},
		{"DEC", "Dec '25"},
		{"XYZ", "XYZ '25"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatETA(tc.month, "25"), tc.month)
	}
}
