package request

import "github.com/user/broadcast-service/internal/entity"

// ParseRequest carries a raw supplier broadcast to be parsed.
type ParseRequest struct {
	Text       string `json:"text"`
	MediaCount int    `json:"media_count"`
	// Force re-parses even when the same text was seen recently.
	Force bool `json:"force"`
}

// GenerateRequest carries a parsed broadcast to be rendered into the final
// promotional message.
type GenerateRequest struct {
	ParsedData *entity.ParsedBroadcast `json:"parsed_data"`
	// Review overrides the generated review paragraph when set.
	Review            string `json:"review,omitempty"`
	PublisherOverride string `json:"publisher_override,omitempty"`
	// Level selects the promotion tier; 3 adds the top-pick banner.
	Level int `json:"level,omitempty"`
}
