package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/user/broadcast-service/internal/entity"
	"github.com/user/broadcast-service/internal/repository"
	"github.com/user/broadcast-service/internal/research"
	"github.com/user/broadcast-service/pkg/metrics"
)

// BookResearcher defines the interface for looking up a book title on the
// web and returning cleaned, deduplicated candidates.
type BookResearcher interface {
	Research(ctx context.Context, query string, limit int) ([]entity.BookSearchResult, error)
}

// querySuffix biases results toward the children's book market and away
// from marketplace listings that drown out publisher pages.
const querySuffix = ` children's book -site:ebay.com -site:aliexpress.com`

type researchUseCase struct {
	search   repository.SearchRepository
	cache    repository.ResultCacheRepository
	cacheTTL time.Duration
}

// NewBookResearcher creates the book research use case.
func NewBookResearcher(search repository.SearchRepository, cache repository.ResultCacheRepository, cacheTTL time.Duration) BookResearcher {
	return &researchUseCase{
		search:   search,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Research runs a web search for the title, normalizes each hit, and
// deduplicates on the cleaned title. Results are cached per query.
func (uc *researchUseCase) Research(ctx context.Context, query string, limit int) ([]entity.BookSearchResult, error) {
	cached, ok, err := uc.cache.Fetch(ctx, query)
	if err != nil {
		slog.Warn("result cache fetch failed", "query", query, "error", err)
	}
	if ok {
		metrics.SearchesTotal.WithLabelValues("cache_hit").Inc()
		slog.Info("research served from cache", "query", query, "results", len(cached))
		return cached, nil
	}

	items, err := uc.search.Search(ctx, query+querySuffix, limit)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("search for %q failed: %w", query, err)
	}
	metrics.SearchesTotal.WithLabelValues("success").Inc()

	results := make([]entity.BookSearchResult, 0, len(items))
	for _, item := range items {
		title := research.CleanTitle(item.Title)
		if title == "" {
			continue
		}
		publisher := research.PublisherFromURL(item.Link)
		if publisher == "" {
			publisher = research.PublisherFromSnippet(item.Snippet)
		}
		results = append(results, entity.BookSearchResult{
			Title:     title,
			Author:    research.AuthorFromSnippet(item.Snippet),
			Publisher: publisher,
			Snippet:   item.Snippet,
			ImageURL:  item.ImageURL,
			SourceURL: item.Link,
		})
	}
	results = research.Dedupe(results)

	slog.Info("research complete", "query", query, "raw_items", len(items), "results", len(results))

	if err := uc.cache.Store(ctx, query, results, uc.cacheTTL); err != nil {
		slog.Warn("result cache store failed", "query", query, "error", err)
	}

	return results, nil
}
