package repository

import (
	"context"
	"errors"
)

// ErrGeneratorUnavailable indicates the generative backend has no usable
// configuration (no API key). Callers above the fallback tier degrade to a
// minimal record instead of surfacing this.
var ErrGeneratorUnavailable = errors.New("generative backend is not configured")

// GenerationConfig carries the sampling parameters for one text generation.
type GenerationConfig struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// TextGenerator is the single text-completion capability the core requires
// from the generative backend. Model selection, key rotation and failover are
// the implementation's concern.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}
