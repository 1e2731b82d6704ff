package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/broadcast-service/internal/entity"
)

func TestFormatPrice(t *testing.T) {
	f := New(DefaultPriceMarkup)

	assert.Equal(t, "Rp 175.000", f.FormatPrice(155000))
	assert.Equal(t, "Rp 1.000.000", f.FormatPrice(980000))
	assert.Equal(t, "Rp 20.500", f.FormatPrice(500))
}

func TestFormatPriceCustomMarkup(t *testing.T) {
	f := New(0)
	assert.Equal(t, "Rp 99.000", f.FormatPrice(99000))
}

func TestTitleLine(t *testing.T) {
	f := New(0)

	assert.Equal(t, "*The Gruffalo* | Publisher: Macmillan", f.TitleLine("The Gruffalo", "Macmillan"))
	assert.Equal(t, "*The Gruffalo*", f.TitleLine("The Gruffalo", ""))
	// Stray emphasis from parsing is not doubled up.
	assert.Equal(t, "*Owl Babies*", f.TitleLine(" *Owl Babies* ", ""))
}

func TestDateLine(t *testing.T) {
	f := New(0)

	assert.Equal(t, "PO Close 25 Des | ETA Mei '25", f.DateLine("25 Des", "Mei '25"))
	assert.Equal(t, "ETA Mei '25", f.DateLine("", "Mei '25"))
	assert.Equal(t, "PO Close 25 Des", f.DateLine("25 Des", ""))
	assert.Equal(t, "", f.DateLine("", ""))
}

func TestPriceLine(t *testing.T) {
	f := New(DefaultPriceMarkup)

	main := entity.IntPtr(95000)
	secondary := entity.IntPtr(65000)

	assert.Equal(t, "HB Rp 115.000 / PB Rp 85.000", f.PriceLine("HB", main, secondary))
	assert.Equal(t, "HB | Rp 115.000", f.PriceLine("HB", main, nil))
	assert.Equal(t, "Rp 115.000", f.PriceLine("", main, nil))
	assert.Equal(t, "", f.PriceLine("HB", nil, secondary))
}

func TestCleanInstagramLink(t *testing.T) {
	assert.Equal(t,
		"https://www.instagram.com/p/abc123",
		CleanInstagramLink("https://www.instagram.com/p/abc123/?igsh=MzRlODBiNWFlZA=="))
	assert.Equal(t,
		"https://www.instagram.com/reel/xyz",
		CleanInstagramLink("https://www.instagram.com/reel/xyz/#share"))
	// Non-Instagram URLs pass through untouched.
	assert.Equal(t,
		"https://example.com/page?keep=1",
		CleanInstagramLink("https://example.com/page?keep=1"))
}

func TestCleanYouTubeLink(t *testing.T) {
	assert.Equal(t,
		"https://youtu.be/dQw4w9WgXcQ",
		CleanYouTubeLink("https://youtu.be/dQw4w9WgXcQ?si=tracking"))
	assert.Equal(t,
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		CleanYouTubeLink("https://www.youtube.com/watch?v=dQw4w9WgXcQ&feature=share&t=10"))
	assert.Equal(t,
		"https://vimeo.com/12345",
		CleanYouTubeLink("https://vimeo.com/12345"))
}

func TestFormatPreviewLinks(t *testing.T) {
	f := New(0)

	got := f.FormatPreviewLinks([]string{
		"https://www.instagram.com/p/abc/?igsh=zz",
		`https://example.com/catalog\`,
	})

	assert.Equal(t, "- https://www.instagram.com/p/abc\n- https://example.com/catalog", got)
	assert.Equal(t, "", f.FormatPreviewLinks(nil))
}

func TestFormatBroadcast(t *testing.T) {
	f := New(DefaultPriceMarkup)
	b := &entity.ParsedBroadcast{
		Title:        "The Gruffalo",
		Publisher:    "Macmillan",
		CloseDate:    "25 Des",
		Eta:          "Mei '25",
		Format:       "HB",
		PriceMain:    entity.IntPtr(95000),
		PreviewLinks: []string{"https://youtu.be/abc"},
	}

	msg := f.FormatBroadcast(b, "A modern classic about a mouse and a monster.", "", 1)

	lines := strings.Split(msg, "\n")
	assert.Equal(t, "*The Gruffalo* | Publisher: Macmillan", lines[0])
	assert.Contains(t, msg, "PO Close 25 Des | ETA Mei '25")
	assert.Contains(t, msg, "HB | Rp 115.000")
	assert.Contains(t, msg, "A modern classic about a mouse and a monster.")
	assert.Contains(t, msg, "Preview:\n- https://youtu.be/abc")
	assert.NotContains(t, msg, "Top Pick")
}

func TestFormatBroadcastTopPick(t *testing.T) {
	f := New(0)
	b := &entity.ParsedBroadcast{Title: "Zog", PriceMain: entity.IntPtr(80000)}

	msg := f.FormatBroadcast(b, "", "", 3)

	lines := strings.Split(msg, "\n")
	assert.Equal(t, "*Zog*", lines[0])
	assert.Equal(t, "⭐ Top Pick", lines[1])
}

func TestFormatBroadcastPublisherOverride(t *testing.T) {
	f := New(0)
	b := &entity.ParsedBroadcast{Title: "Zog", Publisher: "Unknown Ltd"}

	msg := f.FormatBroadcast(b, "", "Alison Green Books", 1)

	assert.Contains(t, msg, "Publisher: Alison Green Books")
	assert.NotContains(t, msg, "Unknown Ltd")
}

func TestFormatBroadcastUntitledFallback(t *testing.T) {
	f := New(0)
	msg := f.FormatBroadcast(&entity.ParsedBroadcast{}, "", "", 1)
	assert.True(t, strings.HasPrefix(msg, "*Untitled*"))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1.000", groupThousands(1000))
	assert.Equal(t, "85.000", groupThousands(85000))
	assert.Equal(t, "1.250.000", groupThousands(1250000))
	assert.Equal(t, "-85.000", groupThousands(-85000))
}
