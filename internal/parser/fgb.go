package parser

import (
	"regexp"
	"strings"

	"github.com/user/broadcast-service/internal/entity"
	"github.com/user/broadcast-service/internal/rules"
)

var (
	// separatorRun marks the start of the free-text description in the FGB
	// layout. The supplier alternates between two decorative glyphs.
	separatorRun = regexp.MustCompile(`(\x{1F333}|\x{1F98A}){2,}`)
	// priceLine is the fallback start marker when no separator run exists.
	priceLine     = regexp.MustCompile(`(?m)\x{1F3F7}\x{FE0F}?[^\n]*\n?`)
	previewMarker = regexp.MustCompile(`(?i)_?Preview\s*:?_?`)
	linkMarker    = regexp.MustCompile(`\*?\s*https?://`)
	emphasisRuns  = regexp.MustCompile(`[*_]+`)
)

// FGBParser parses the FGB supplier's multi-line broadcast layout by running
// the rule engine over every canonical field and then windowing out the
// free-text description.
type FGBParser struct {
	engine *rules.Engine
}

func NewFGBParser(engine *rules.Engine) *FGBParser {
	return &FGBParser{engine: engine}
}

// Parse extracts all configured fields from an FGB broadcast.
func (p *FGBParser) Parse(text string, mediaCount int) *entity.ParsedBroadcast {
	b := entity.NewParsedBroadcast(text, mediaCount)

	b.Type, _ = p.engine.ExtractString(text, "type")
	b.Eta, _ = p.engine.ExtractString(text, "eta")
	b.CloseDate, _ = p.engine.ExtractString(text, "close_date")
	b.Title, _ = p.engine.ExtractString(text, "title")
	b.Format, _ = p.engine.ExtractString(text, "format")
	b.Publisher, _ = p.engine.ExtractString(text, "publisher")
	b.MinOrder, _ = p.engine.ExtractString(text, "min_order")
	b.SeparatorEmoji, _ = p.engine.ExtractString(text, "separator")

	if price, ok := p.engine.ExtractInt(text, "price_main"); ok {
		b.PriceMain = entity.IntPtr(price)
	}
	if price, ok := p.engine.ExtractInt(text, "price_secondary"); ok {
		b.PriceSecondary = entity.IntPtr(price)
	}

	b.Tags = p.engine.ExtractAll(text, "tags")
	b.PreviewLinks = p.engine.ExtractAll(text, "preview_links")

	b.Description = extractDescription(text)
	b.TitleLocalized = b.Title

	return b
}

// extractDescription windows the free-text description out of the broadcast.
// The start is the end of the decorative separator run, falling back to the
// end of the price line; the end is the earliest of a "Preview" marker or the
// first URL, else end of input. Emphasis punctuation is stripped and all
// whitespace runs collapse to single spaces.
func extractDescription(text string) string {
	var start int
	if loc := separatorRun.FindStringIndex(text); loc != nil {
		start = loc[1]
	} else if loc := priceLine.FindStringIndex(text); loc != nil {
		start = loc[1]
	} else {
		return ""
	}

	remaining := text[start:]

	end := len(remaining)
	if loc := previewMarker.FindStringIndex(remaining); loc != nil && loc[0] < end {
		end = loc[0]
	}
	if loc := linkMarker.FindStringIndex(remaining); loc != nil && loc[0] < end {
		end = loc[0]
	}

	description := emphasisRuns.ReplaceAllString(remaining[:end], "")
	description = whitespaceRun.ReplaceAllString(description, " ")
	return strings.TrimSpace(description)
}
