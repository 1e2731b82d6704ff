package parser

import (
	"strings"

	"github.com/user/broadcast-service/internal/entity"
)

// Completeness decides whether a record extracted by a rule-based tier is
// good enough to skip the generative fallback. The thresholds are
// configurable because the supplier formats differ in which fields they
// reliably carry.
type Completeness struct {
	RequireTitle bool
	RequirePrice bool
}

// DefaultCompleteness requires both a title and a main price.
func DefaultCompleteness() Completeness {
	return Completeness{RequireTitle: true, RequirePrice: true}
}

// IsComplete reports whether the record satisfies the configured minimum.
func (c Completeness) IsComplete(b *entity.ParsedBroadcast) bool {
	if b == nil {
		return false
	}
	if c.RequireTitle && strings.TrimSpace(b.Title) == "" {
		return false
	}
	if c.RequirePrice && b.PriceMain == nil {
		return false
	}
	return true
}
