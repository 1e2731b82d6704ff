package entity

// ParsedBroadcast is the canonical structured record produced by every parser
// tier. RawText always carries the verbatim input; every other field is
// derived from it. Numeric fields are pointers so that "unknown" is null in
// JSON rather than zero.
type ParsedBroadcast struct {
	Type           string   `json:"type,omitempty"`
	Eta            string   `json:"eta,omitempty"`
	CloseDate      string   `json:"close_date,omitempty"`
	Title          string   `json:"title,omitempty"`
	TitleLocalized string   `json:"title_localized,omitempty"`
	Publisher      string   `json:"publisher,omitempty"`
	Format         string   `json:"format,omitempty"` // HB, PB, BB (or the original token)
	PriceMain      *int     `json:"price_main,omitempty"`
	PriceSecondary *int     `json:"price_secondary,omitempty"`
	MinOrder       string   `json:"min_order,omitempty"`
	Description    string   `json:"description,omitempty"`
	Tags           []string `json:"tags"`
	PreviewLinks   []string `json:"preview_links"`
	SeparatorEmoji string   `json:"separator_emoji,omitempty"`
	Pages          *int     `json:"pages,omitempty"`
	Stock          *int     `json:"stock,omitempty"`
	MediaCount     int      `json:"media_count"`
	RawText        string   `json:"raw_text"`
	AIFallback     bool     `json:"ai_fallback"`
}

// NewParsedBroadcast returns a record with the raw inputs set and the list
// fields initialised to empty slices, never nil.
func NewParsedBroadcast(rawText string, mediaCount int) *ParsedBroadcast {
	return &ParsedBroadcast{
		RawText:      rawText,
		MediaCount:   mediaCount,
		Tags:         []string{},
		PreviewLinks: []string{},
	}
}

// IntPtr is a convenience for building optional numeric fields.
func IntPtr(v int) *int {
	return &v
}
