package entity

// BookSearchResult is a single normalized web search result. It is built
// fresh per raw search item, mutated only during the normalization pass, and
// treated as read-only afterwards.
type BookSearchResult struct {
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Snippet   string `json:"snippet,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	SourceURL string `json:"source_url"`
}
