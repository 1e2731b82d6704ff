package parser

import (
	"context"
	"log/slog"

	"github.com/user/broadcast-service/internal/entity"
)

// Tier labels for logging and metrics.
const (
	TierRules      = "rules"
	TierGrammar    = "grammar"
	TierGenerative = "generative"
)

// Pipeline chains the parsing tiers in escalating order: the declarative rule
// layout, then the fixed supplier grammar, then the generative fallback. It
// always returns a record; the worst case is a minimal record with only the
// raw text and a best-effort title.
type Pipeline struct {
	fgb          *FGBParser
	littlerazy   *LittlerazyParser
	ai           *AIFallback
	completeness Completeness
}

func NewPipeline(fgb *FGBParser, littlerazy *LittlerazyParser, ai *AIFallback, completeness Completeness) *Pipeline {
	return &Pipeline{
		fgb:          fgb,
		littlerazy:   littlerazy,
		ai:           ai,
		completeness: completeness,
	}
}

// Parse runs the tiers until one produces a complete record and returns that
// record together with the label of the tier that produced it.
func (p *Pipeline) Parse(ctx context.Context, text string, mediaCount int) (*entity.ParsedBroadcast, string) {
	b := p.fgb.Parse(text, mediaCount)
	if p.completeness.IsComplete(b) {
		return b, TierRules
	}

	b = p.littlerazy.Parse(text, mediaCount)
	if p.completeness.IsComplete(b) {
		return b, TierGrammar
	}

	slog.Info("rule-based tiers incomplete, escalating to generative extraction")
	return p.ai.Parse(ctx, text, mediaCount), TierGenerative
}
