package research

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/broadcast-service/internal/entity"
)

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "marketplace listing with volume and author block",
			in:   "Alley Cat Rally: 1 : Ricky Trickartt, Ricky Trickartt: Amazon.co.uk: Books",
			want: "Alley Cat Rally",
		},
		{
			name: "interview headline unwrap",
			in:   "Ricky Trickartt on Alley Cat Rally",
			want: "Alley Cat Rally",
		},
		{
			name: "amazon suffix",
			in:   "The Snail and the Whale: Amazon.co.uk: Books",
			want: "The Snail and the Whale",
		},
		{
			name: "amazon com suffix",
			in:   "Owl Babies: Amazon.com: Books",
			want: "Owl Babies",
		},
		{
			name: "descriptor sentence",
			in:   "The Gruffalo is a children's picture book by Julia Donaldson",
			want: "The Gruffalo",
		},
		{
			name: "goodreads suffix",
			in:   "Room on the Broom - Goodreads",
			want: "Room on the Broom",
		},
		{
			name: "official site suffix",
			in:   "The Highway Rat | Official Website",
			want: "The Highway Rat",
		},
		{
			name: "volume suffix",
			in:   "Hilda and the Troll: Vol. 1",
			want: "Hilda and the Troll",
		},
		{
			name: "by author",
			in:   "Zog by Julia Donaldson",
			want: "Zog",
		},
		{
			name: "dash segment keeps first part",
			in:   "Stick Man Adventure - Special Edition Info",
			want: "Stick Man Adventure",
		},
		{
			name: "two word name segment is not truncated",
			in:   "Julia Donaldson - The Smartest Giant",
			want: "Julia Donaldson - The Smartest Giant",
		},
		{
			name: "already clean",
			in:   "A Squash and a Squeeze",
			want: "A Squash and a Squeeze",
		},
		{
			name: "edge punctuation",
			in:   " : The Paper Dolls - ",
			want: "The Paper Dolls",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanTitle(tc.in))
		})
	}
}

func TestCleanTitleIsIdempotent(t *testing.T) {
	inputs := []string{
		"Alley Cat Rally: 1 : Ricky Trickartt, Ricky Trickartt: Amazon.co.uk: Books",
		"Ricky Trickartt on Alley Cat Rally",
		"The Gruffalo is a children's picture book by Julia Donaldson",
	}
	for _, in := range inputs {
		once := CleanTitle(in)
		assert.Equal(t, once, CleanTitle(once), in)
	}
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "thegruffalo", NormalizeKey("The Gruffalo!"))
	assert.Equal(t, NormalizeKey("Owl Babies"), NormalizeKey("owl babies"))
	assert.Equal(t, "", NormalizeKey("---"))
}

func TestDedupeKeepsFirstSeenPosition(t *testing.T) {
	results := []entity.BookSearchResult{
		{Title: "The Gruffalo", SourceURL: "a"},
		{Title: "Owl Babies", SourceURL: "b"},
		{Title: "the gruffalo!", SourceURL: "c"},
	}

	deduped := Dedupe(results)

	assert.Len(t, deduped, 2)
	assert.Equal(t, "The Gruffalo", deduped[0].Title)
	assert.Equal(t, "Owl Babies", deduped[1].Title)
}

func TestDedupePrefersImageBearingDuplicate(t *testing.T) {
	results := []entity.BookSearchResult{
		{Title: "The Gruffalo", SourceURL: "a"},
		{Title: "Owl Babies", SourceURL: "b"},
		{Title: "the gruffalo", SourceURL: "c", ImageURL: "https://img.example/cover.jpg"},
	}

	deduped := Dedupe(results)

	assert.Len(t, deduped, 2)
	// The duplicate with an image replaces the kept one, in place.
	assert.Equal(t, "c", deduped[0].SourceURL)
	assert.Equal(t, "https://img.example/cover.jpg", deduped[0].ImageURL)
	assert.Equal(t, "Owl Babies", deduped[1].Title)
}

func TestDedupeDoesNotReplaceWhenKeptHasImage(t *testing.T) {
	results := []entity.BookSearchResult{
		{Title: "The Gruffalo", SourceURL: "a", ImageURL: "https://img.example/first.jpg"},
		{Title: "The Gruffalo", SourceURL: "b", ImageURL: "https://img.example/second.jpg"},
	}

	deduped := Dedupe(results)

	assert.Len(t, deduped, 1)
	assert.Equal(t, "a", deduped[0].SourceURL)
}
