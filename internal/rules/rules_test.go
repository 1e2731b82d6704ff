package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidRegex(t *testing.T) {
	_, err := New(Table{Fields: map[string][]Rule{
		"title": {{Regex: `(unclosed`, Group: 1}},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
}

func TestNewRejectsGroupOutOfRange(t *testing.T) {
	_, err := New(Table{Fields: map[string][]Rule{
		"title": {{Regex: `(\w+)`, Group: 2}},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestNewRejectsUnknownTransform(t *testing.T) {
	_, err := New(Table{Fields: map[string][]Rule{
		"price": {{Regex: `(\d+)`, Group: 1, Transform: "to_roman_numerals"}},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transform")
}

func TestExtractStringFirstMatchingRuleWins(t *testing.T) {
	engine, err := New(Table{Fields: map[string][]Rule{
		"title": {
			{Regex: `^\*(.+?)\*\s*\((?:HC|HB|PB|BB)\)`, Group: 1},
			{Regex: `^\*([^*\n]+)\*\s*$`, Group: 1},
		},
	}})
	require.NoError(t, err)

	title, ok := engine.ExtractString("*Test Book* (HB)", "title")
	require.True(t, ok)
	assert.Equal(t, "Test Book", title)

	title, ok = engine.ExtractString("*Bare Title*", "title")
	require.True(t, ok)
	assert.Equal(t, "Bare Title", title)
}

func TestExtractStringIsCaseInsensitiveAndMultiline(t *testing.T) {
	engine, err := New(Table{Fields: map[string][]Rule{
		"close_date": {{Regex: `Close\s*:?\s*([^\n]+?)\s*$`, Group: 1}},
	}})
	require.NoError(t, err)

	date, ok := engine.ExtractString("first line\nCLOSE : 25 Des\nlast line", "close_date")
	require.True(t, ok)
	assert.Equal(t, "25 Des", date)
}

func TestExtractIntAppliesThousandsTransform(t *testing.T) {
	engine, err := New(Table{Fields: map[string][]Rule{
		"price_main": {
			{Regex: `Rp\.?\s*(\d{1,3}(?:[.,]\d{3})+)`, Group: 1, Transform: TransformStripThousands},
		},
	}})
	require.NoError(t, err)

	price, ok := engine.ExtractInt("Harga: Rp 130.000 nett", "price_main")
	require.True(t, ok)
	assert.Equal(t, 130000, price)
}

func TestExtractTransformFailureFallsToNextRule(t *testing.T) {
	engine, err := New(Table{Fields: map[string][]Rule{
		"price": {
			{Regex: `price\s+(\S+)`, Group: 1, Transform: TransformStripThousands},
			{Regex: `(\d+)`, Group: 1, Transform: TransformStripThousands},
		},
	}})
	require.NoError(t, err)

	// "TBD" captures first but fails the integer transform, so the bare
	// numeral rule is tried next.
	price, ok := engine.ExtractInt("price TBD, was 95000 before", "price")
	require.True(t, ok)
	assert.Equal(t, 95000, price)
}

func TestExtractAllPreservesOrder(t *testing.T) {
	engine, err := New(Table{Fields: map[string][]Rule{
		"tags": {{Regex: `(_[^_\n]{2,40}_)`, Group: 1, Multi: true}},
	}})
	require.NoError(t, err)

	tags := engine.ExtractAll("_Award winner_ some text _New arrival_", "tags")
	assert.Equal(t, []string{"_Award winner_", "_New arrival_"}, tags)
}

func TestExtractAllNoMatchReturnsEmptySlice(t *testing.T) {
	engine, err := New(Table{Fields: map[string][]Rule{
		"tags": {{Regex: `(_[^_\n]{2,40}_)`, Group: 1, Multi: true}},
	}})
	require.NoError(t, err)

	tags := engine.ExtractAll("no tags here", "tags")
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestSkippedFieldNeverExtracts(t *testing.T) {
	engine, err := New(Table{
		Skip: []string{"title"},
		Fields: map[string][]Rule{
			"title": {{Regex: `^\*([^*\n]+)\*\s*$`, Group: 1}},
		},
	})
	require.NoError(t, err)

	_, ok := engine.ExtractString("*Skipped Book*", "title")
	assert.False(t, ok)
}

func TestUnknownFieldReportsAbsence(t *testing.T) {
	engine := Default()
	_, ok := engine.ExtractString("anything", "no_such_field")
	assert.False(t, ok)
}

func TestStripThousands(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"130.000", 130000},
		{"85.000", 85000},
		{"1.250.000", 1250000},
		{"95,000", 95000},
		{" 42 ", 42},
	}
	for _, tc := range cases {
		got, err := StripThousands(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := StripThousands("TBD")
	assert.Error(t, err)
}

func TestLoadValidTable(t *testing.T) {
	doc := `
skip = []

[[fields.title]]
regex = '^\*([^*\n]+)\*\s*$'
group = 1

[[fields.price_main]]
regex = 'Rp\.?\s*(\d{1,3}(?:[.,]\d{3})+)'
group = 1
transform = "strip_thousands_separators"
`
	engine, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	title, ok := engine.ExtractString("*Loaded Book*", "title")
	require.True(t, ok)
	assert.Equal(t, "Loaded Book", title)

	price, ok := engine.ExtractInt("Rp 120.000", "price_main")
	require.True(t, ok)
	assert.Equal(t, 120000, price)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	doc := `
[[fields.title]]
regex = '(\w+)'
group = 1
flavour = "strawberry"
`
	_, err := Load(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestDefaultTableCompiles(t *testing.T) {
	assert.NotPanics(t, func() { Default() })
}
