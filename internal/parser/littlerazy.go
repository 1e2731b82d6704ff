package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/user/broadcast-service/internal/entity"
	"github.com/user/broadcast-service/internal/rules"
)

// defaultETAYear is the two-digit year appended to bare month tokens. The
// supplier never states a year in the header line.
const defaultETAYear = "25"

// littlerazyHeader is the fixed single-line grammar used by the Littlerazy
// supplier: title, binding code, dotted price, ETA month, flower-emoji run,
// then free-text description to end of input.
var littlerazyHeader = regexp.MustCompile(
	`(?is)^\s*` +
		`(?P<title>.+?)` +
		`\s+(?P<format>HC|HB|PB|BB)` +
		`\s+(?P<price>[\d.]+)` +
		`\s+ETA\s+(?P<eta>\w+)` +
		`\s+(?P<emoji>[\x{1F338}\x{1F33A}\x{1F337}\x{1F339}\x{1F490}\x{1F33B}\x{1F33C}]+)` +
		`\s*(?P<description>.*)$`,
)

var (
	flowerGlyphs    = regexp.MustCompile(`^[^\x{1F338}\x{1F33A}\x{1F337}\x{1F339}\x{1F490}\x{1F33B}\x{1F33C}]+`)
	dottedPrice     = regexp.MustCompile(`\b(\d{2,3})\.(\d{3})\b`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
	excessNewlines  = regexp.MustCompile(`\n{3,}`)
	inlineSpaceRuns = regexp.MustCompile(`[ \t]+`)
)

// LittlerazyParser parses the Littlerazy supplier's compact header format.
// When the fixed grammar does not match it salvages a best-effort record
// instead of failing, so Parse always returns a usable result.
type LittlerazyParser struct {
	etaYear string
}

func NewLittlerazyParser() *LittlerazyParser {
	return &LittlerazyParser{etaYear: defaultETAYear}
}

// Parse parses one Littlerazy broadcast into a structured record.
func (p *LittlerazyParser) Parse(text string, mediaCount int) *entity.ParsedBroadcast {
	b := entity.NewParsedBroadcast(text, mediaCount)

	m := littlerazyHeader.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return p.salvage(b)
	}

	group := func(name string) string {
		return m[littlerazyHeader.SubexpIndex(name)]
	}

	b.Title = cleanTitle(group("title"))
	b.TitleLocalized = b.Title
	// Binding codes are kept as written (HC is not folded into HB here); the
	// generative tier owns alias normalization.
	b.Format = strings.ToUpper(group("format"))
	if price, err := rules.StripThousands(group("price")); err == nil {
		b.PriceMain = entity.IntPtr(price)
	}
	b.Eta = FormatETA(group("eta"), p.etaYear)
	b.SeparatorEmoji = group("emoji")
	b.Description = cleanDescription(group("description"))
	// Littlerazy broadcasts are pre-order requests.
	b.Type = "Request"

	return b
}

// salvage is the loose second tier for input the fixed grammar rejects: a
// title from the first line up to any flower glyph, any dotted-numeral price,
// and the full text as description.
func (p *LittlerazyParser) salvage(b *entity.ParsedBroadcast) *entity.ParsedBroadcast {
	lines := strings.Split(strings.TrimSpace(b.RawText), "\n")
	if len(lines) > 0 {
		firstLine := strings.TrimSpace(lines[0])
		if m := flowerGlyphs.FindString(firstLine); m != "" {
			b.Title = truncateRunes(strings.TrimSpace(m), 100)
			b.TitleLocalized = b.Title
		}
	}

	if m := dottedPrice.FindStringSubmatch(b.RawText); m != nil {
		if price, err := rules.StripThousands(m[1] + m[2]); err == nil {
			b.PriceMain = entity.IntPtr(price)
		}
	}

	b.Description = b.RawText
	return b
}

// cleanTitle collapses internal whitespace and applies title casing.
func cleanTitle(title string) string {
	collapsed := strings.TrimSpace(whitespaceRun.ReplaceAllString(title, " "))
	return cases.Title(language.English).String(collapsed)
}

// cleanDescription normalizes whitespace without flattening paragraphs.
func cleanDescription(description string) string {
	description = excessNewlines.ReplaceAllString(description, "\n\n")
	description = inlineSpaceRuns.ReplaceAllString(description, " ")
	return strings.TrimSpace(description)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
