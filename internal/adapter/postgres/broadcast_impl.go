package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/broadcast-service/internal/entity"
)

// BroadcastRepoImpl provides the BroadcastRepository implementation backed by
// the `broadcasts` PostgreSQL table. Tags and preview links are stored as
// JSONB.
type BroadcastRepoImpl struct {
	db *pgxpool.Pool
}

func NewBroadcastRepo(db *pgxpool.Pool) *BroadcastRepoImpl {
	return &BroadcastRepoImpl{db: db}
}

// Save stores or updates the parsed record for a raw-text hash.
func (r *BroadcastRepoImpl) Save(ctx context.Context, hash string, b *entity.ParsedBroadcast) error {
	tagsJSON, err := json.Marshal(b.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}
	linksJSON, err := json.Marshal(b.PreviewLinks)
	if err != nil {
		return fmt.Errorf("encoding preview links: %w", err)
	}

	query := `
		INSERT INTO broadcasts (
			hash, type, eta, close_date, title, title_localized, publisher,
			format, price_main, price_secondary, min_order, description,
			tags, preview_links, separator_emoji, pages, stock, media_count,
			raw_text, ai_fallback, parsed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, NOW())
		ON CONFLICT (hash) DO UPDATE SET
			type = EXCLUDED.type,
			eta = EXCLUDED.eta,
			close_date = EXCLUDED.close_date,
			title = EXCLUDED.title,
			title_localized = EXCLUDED.title_localized,
			publisher = EXCLUDED.publisher,
			format = EXCLUDED.format,
			price_main = EXCLUDED.price_main,
			price_secondary = EXCLUDED.price_secondary,
			min_order = EXCLUDED.min_order,
			description = EXCLUDED.description,
			tags = EXCLUDED.tags,
			preview_links = EXCLUDED.preview_links,
			separator_emoji = EXCLUDED.separator_emoji,
			pages = EXCLUDED.pages,
			stock = EXCLUDED.stock,
			media_count = EXCLUDED.media_count,
			raw_text = EXCLUDED.raw_text,
			ai_fallback = EXCLUDED.ai_fallback,
			parsed_at = NOW();
	`

	_, err = r.db.Exec(ctx, query,
		hash,
		b.Type,
		b.Eta,
		b.CloseDate,
		b.Title,
		b.TitleLocalized,
		b.Publisher,
		b.Format,
		b.PriceMain,
		b.PriceSecondary,
		b.MinOrder,
		b.Description,
		tagsJSON,
		linksJSON,
		b.SeparatorEmoji,
		b.Pages,
		b.Stock,
		b.MediaCount,
		b.RawText,
		b.AIFallback,
	)
	return err
}

// FindByHash retrieves a previously parsed record. pgx.ErrNoRows passes
// through when the hash is unknown.
func (r *BroadcastRepoImpl) FindByHash(ctx context.Context, hash string) (*entity.ParsedBroadcast, error) {
	query := `
		SELECT type, eta, close_date, title, title_localized, publisher,
		       format, price_main, price_secondary, min_order, description,
		       tags, preview_links, separator_emoji, pages, stock,
		       media_count, raw_text, ai_fallback
		FROM broadcasts
		WHERE hash = $1;
	`
	row := r.db.QueryRow(ctx, query, hash)

	var b entity.ParsedBroadcast
	var tagsJSON, linksJSON []byte

	err := row.Scan(
		&b.Type,
		&b.Eta,
		&b.CloseDate,
		&b.Title,
		&b.TitleLocalized,
		&b.Publisher,
		&b.Format,
		&b.PriceMain,
		&b.PriceSecondary,
		&b.MinOrder,
		&b.Description,
		&tagsJSON,
		&linksJSON,
		&b.SeparatorEmoji,
		&b.Pages,
		&b.Stock,
		&b.MediaCount,
		&b.RawText,
		&b.AIFallback,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tagsJSON, &b.Tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	if err := json.Unmarshal(linksJSON, &b.PreviewLinks); err != nil {
		return nil, fmt.Errorf("decoding preview links: %w", err)
	}

	return &b, nil
}
