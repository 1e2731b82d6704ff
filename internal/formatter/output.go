package formatter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/user/broadcast-service/internal/entity"
)

// DefaultPriceMarkup is the retail markup in IDR added to supplier prices.
const DefaultPriceMarkup = 20000

// Formatter assembles the final promotional message from a parsed record and
// a review paragraph. Everything here is deterministic string work; nothing
// is delegated to the generative backend.
type Formatter struct {
	priceMarkup int
}

func New(priceMarkup int) *Formatter {
	return &Formatter{priceMarkup: priceMarkup}
}

// FormatPrice applies the markup and renders the Indonesian dot-grouped form:
// 155000 -> "Rp 175.000".
func (f *Formatter) FormatPrice(price int) string {
	return "Rp " + groupThousands(price+f.priceMarkup)
}

// TitleLine renders `*Title* | Publisher: X`, omitting the publisher part
// when unknown.
func (f *Formatter) TitleLine(title, publisher string) string {
	title = strings.TrimSpace(strings.Trim(strings.TrimSpace(title), "*"))
	if publisher != "" {
		return "*" + title + "* | Publisher: " + publisher
	}
	return "*" + title + "*"
}

// DateLine renders `PO Close <date> | ETA <eta>`, keeping whichever parts are
// present.
func (f *Formatter) DateLine(closeDate, eta string) string {
	var parts []string
	if closeDate != "" {
		parts = append(parts, "PO Close "+closeDate)
	}
	if eta != "" {
		parts = append(parts, "ETA "+eta)
	}
	return strings.Join(parts, " | ")
}

// PriceLine renders the binding/price line, with the dual-binding form when a
// secondary price exists.
func (f *Formatter) PriceLine(format string, priceMain, priceSecondary *int) string {
	if priceMain == nil {
		return ""
	}
	if priceSecondary != nil {
		return "HB " + f.FormatPrice(*priceMain) + " / PB " + f.FormatPrice(*priceSecondary)
	}
	if format != "" {
		return format + " | " + f.FormatPrice(*priceMain)
	}
	return f.FormatPrice(*priceMain)
}

// FormatPreviewLinks renders preview links as bullet points after stripping
// share/tracking parameters.
func (f *Formatter) FormatPreviewLinks(links []string) string {
	if len(links) == 0 {
		return ""
	}
	lines := make([]string, 0, len(links))
	for _, link := range links {
		link = CleanInstagramLink(link)
		link = CleanYouTubeLink(link)
		link = strings.ReplaceAll(link, `\`, "")
		lines = append(lines, "- "+link)
	}
	return strings.Join(lines, "\n")
}

// FormatBroadcast combines the parsed record and review paragraph into the
// final message. Level 3 records get the top-pick marker line.
func (f *Formatter) FormatBroadcast(b *entity.ParsedBroadcast, review, publisherOverride string, level int) string {
	publisher := publisherOverride
	if publisher == "" {
		publisher = b.Publisher
	}
	title := b.Title
	if title == "" {
		title = "Untitled"
	}

	var lines []string
	lines = append(lines, f.TitleLine(title, publisher))
	if level == 3 {
		lines = append(lines, "⭐ Top Pick")
	}
	lines = append(lines, "")

	if dateLine := f.DateLine(b.CloseDate, b.Eta); dateLine != "" {
		lines = append(lines, dateLine)
	}
	if priceLine := f.PriceLine(b.Format, b.PriceMain, b.PriceSecondary); priceLine != "" {
		lines = append(lines, priceLine)
	}
	lines = append(lines, "")

	if review != "" {
		lines = append(lines, strings.TrimSpace(review))
	}
	lines = append(lines, "")

	if len(b.PreviewLinks) > 0 {
		lines = append(lines, "Preview:", f.FormatPreviewLinks(b.PreviewLinks))
	}

	return strings.Join(lines, "\n")
}

// CleanInstagramLink strips share identifiers and query noise from Instagram
// URLs, leaving the bare post URL.
func CleanInstagramLink(raw string) string {
	if !strings.Contains(raw, "instagram.com") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.Path = strings.TrimRight(u.Path, "/")
	return u.String()
}

// CleanYouTubeLink removes tracking parameters from YouTube links, keeping
// only the video id for youtube.com watch URLs.
func CleanYouTubeLink(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	switch {
	case strings.Contains(raw, "youtu.be"):
		u.RawQuery = ""
		u.Fragment = ""
		return u.String()
	case strings.Contains(raw, "youtube.com"):
		if v := u.Query().Get("v"); v != "" {
			u.RawQuery = url.Values{"v": {v}}.Encode()
			u.Fragment = ""
		}
		return u.String()
	}
	return raw
}

// groupThousands formats an integer with '.' thousands separators.
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	if n < 0 {
		return "-" + b.String()
	}
	return b.String()
}
