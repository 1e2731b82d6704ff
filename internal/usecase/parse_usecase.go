package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/user/broadcast-service/internal/entity"
	"github.com/user/broadcast-service/internal/formatter"
	"github.com/user/broadcast-service/internal/parser"
	"github.com/user/broadcast-service/internal/repository"
	"github.com/user/broadcast-service/pkg/metrics"
	"github.com/user/broadcast-service/pkg/utils"
)

// BroadcastProcessor defines the interface for parsing supplier broadcasts
// and rendering the final promotional message.
type BroadcastProcessor interface {
	Parse(ctx context.Context, text string, mediaCount int, force bool) (*entity.ParsedBroadcast, error)
	Generate(ctx context.Context, b *entity.ParsedBroadcast, review, publisherOverride string, level int) (string, error)
}

// reviewPrompt asks the generative backend for the short review paragraph
// used when the caller supplies none.
const reviewPrompt = `Tulis satu paragraf review singkat (2-3 kalimat) untuk buku anak berikut, dalam Bahasa Indonesia, nada hangat tapi faktual, tanpa emoji.

Judul: %s
Deskripsi: %s

Return hanya paragraf review:`

type broadcastUseCase struct {
	pipeline   *parser.Pipeline
	formatter  *formatter.Formatter
	generator  repository.TextGenerator
	repo       repository.BroadcastRepository
	seen       repository.SeenRepository
	seenExpiry time.Duration
}

// NewBroadcastProcessor creates the broadcast use case.
func NewBroadcastProcessor(
	pipeline *parser.Pipeline,
	fmtr *formatter.Formatter,
	generator repository.TextGenerator,
	repo repository.BroadcastRepository,
	seen repository.SeenRepository,
	seenExpiry time.Duration,
) BroadcastProcessor {
	return &broadcastUseCase{
		pipeline:   pipeline,
		formatter:  fmtr,
		generator:  generator,
		repo:       repo,
		seen:       seen,
		seenExpiry: seenExpiry,
	}
}

// Parse runs the tiered pipeline over the broadcast text. Recently seen
// broadcasts are served from storage unless force is set.
func (uc *broadcastUseCase) Parse(ctx context.Context, text string, mediaCount int, force bool) (*entity.ParsedBroadcast, error) {
	hash := utils.HashText(text)

	if force {
		if err := uc.seen.Forget(ctx, hash); err != nil {
			slog.Warn("failed to clear seen key for forced parse", "hash", hash, "error", err)
		}
	} else {
		isSeen, err := uc.seen.IsSeen(ctx, hash)
		if err != nil {
			slog.Warn("seen lookup failed, parsing anyway", "hash", hash, "error", err)
		}
		if isSeen {
			stored, err := uc.repo.FindByHash(ctx, hash)
			if err == nil {
				slog.Info("returning stored parse for recently seen broadcast", "hash", hash)
				return stored, nil
			}
			if !errors.Is(err, pgx.ErrNoRows) {
				slog.Error("stored parse lookup failed", "hash", hash, "error", err)
			}
		}
	}

	start := time.Now()
	b, tier := uc.pipeline.Parse(ctx, text, mediaCount)
	metrics.ParseDuration.Observe(time.Since(start).Seconds())
	metrics.ParsesTotal.WithLabelValues(tier).Inc()

	slog.Info("broadcast parsed",
		"hash", hash,
		"tier", tier,
		"title", b.Title,
		"ai_fallback", b.AIFallback,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if err := uc.repo.Save(ctx, hash, b); err != nil {
		return nil, fmt.Errorf("failed to save parsed broadcast %s: %w", hash, err)
	}
	if err := uc.seen.MarkSeen(ctx, hash, uc.seenExpiry); err != nil {
		// Not critical: the broadcast may just be re-parsed next time.
		slog.Warn("failed to mark broadcast as seen", "hash", hash, "error", err)
	}

	return b, nil
}

// Generate renders the final message. When the caller supplies no review
// paragraph the generative backend writes one; if that fails the message is
// assembled from the parsed description instead.
func (uc *broadcastUseCase) Generate(ctx context.Context, b *entity.ParsedBroadcast, review, publisherOverride string, level int) (string, error) {
	if b == nil {
		return "", errors.New("no parsed broadcast to format")
	}

	if review == "" {
		generated, err := uc.writeReview(ctx, b)
		if err != nil {
			slog.Warn("review generation failed, using parsed description", "error", err)
			generated = b.Description
		}
		review = generated
	}

	return uc.formatter.FormatBroadcast(b, review, publisherOverride, level), nil
}

func (uc *broadcastUseCase) writeReview(ctx context.Context, b *entity.ParsedBroadcast) (string, error) {
	prompt := fmt.Sprintf(reviewPrompt, b.Title, b.Description)
	cfg := repository.GenerationConfig{Temperature: 0.8, TopP: 0.95, MaxTokens: 512}

	start := time.Now()
	review, err := uc.generator.GenerateText(ctx, prompt, cfg)
	metrics.GenerativeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerativeCalls.WithLabelValues("failure").Inc()
		return "", err
	}
	metrics.GenerativeCalls.WithLabelValues("success").Inc()
	return review, nil
}
