package repository

import (
	"context"
	"time"

	"github.com/user/broadcast-service/internal/entity"
)

// ResultCacheRepository caches normalized search results per query.
type ResultCacheRepository interface {
	// Store caches the result list for a query with a TTL.
	Store(ctx context.Context, query string, results []entity.BookSearchResult, ttl time.Duration) error
	// Fetch returns the cached results for a query, reporting a miss with
	// ok=false rather than an error.
	Fetch(ctx context.Context, query string) (results []entity.BookSearchResult, ok bool, err error)
}
