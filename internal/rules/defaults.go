package rules

// defaultTable mirrors config/parser-rules.toml. It covers the FGB broadcast
// layout: a type/ETA header line, a close-date line, a starred title with a
// parenthesised binding code, a tag-emoji price line, optional minimum-order
// and second-binding offers, underscore-wrapped tags, and preview links.
var defaultTable = Table{
	Fields: map[string][]Rule{
		"type": {
			{Regex: `^\*?\s*(Remainder(?:book)?|Request|Ready)\b`, Group: 1},
		},
		"eta": {
			{Regex: `ETA\s*:?\s*([A-Za-z]{3,}\s*'\d{2})`, Group: 1},
		},
		"close_date": {
			{Regex: `Close\s*:?\s*([^\n]+?)\s*$`, Group: 1},
		},
		"title": {
			{Regex: `^\*(.+?)\*\s*\((?:HC|HB|PB|BB)\)`, Group: 1},
			{Regex: `^\*([^*\n]+)\*\s*$`, Group: 1},
		},
		"format": {
			{Regex: `\((HC|HB|PB|BB)\)`, Group: 1},
		},
		"publisher": {
			{Regex: `Publisher\s*:?\s*([^\n]+?)\s*$`, Group: 1},
		},
		"price_main": {
			{Regex: `Rp\.?\s*(\d{1,3}(?:[.,]\d{3})+)`, Group: 1, Transform: TransformStripThousands},
			{Regex: `\b(\d{2,3}\.\d{3})\b`, Group: 1, Transform: TransformStripThousands},
		},
		"price_secondary": {
			{Regex: `/\s*PB\s*(?:Rp\.?\s*)?(\d{1,3}(?:[.,]\d{3})+)`, Group: 1, Transform: TransformStripThousands},
		},
		"min_order": {
			{Regex: `(Min\.?\s*\d+[^\n]*)`, Group: 1},
		},
		"separator": {
			{Regex: `(\x{1F333}|\x{1F98A}){2,}`, Group: 1},
		},
		"tags": {
			{Regex: `(_[^_\n]{2,40}_)`, Group: 1, Multi: true},
		},
		"preview_links": {
			{Regex: `(https?://[^\s*_]+)`, Group: 1, Multi: true},
		},
	},
}

// Default compiles the built-in rule table. The table is a package constant,
// so a compile failure here is a programming error.
func Default() *Engine {
	e, err := New(defaultTable)
	if err != nil {
		panic(err)
	}
	return e
}
