package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/user/broadcast-service/internal/entity"
	"github.com/user/broadcast-service/pkg/utils"
)

const resultCachePrefix = "research:results:"

// ResultCacheImpl provides the ResultCacheRepository implementation: one
// JSON-encoded result list per query, keyed by the query hash, with a TTL.
type ResultCacheImpl struct {
	client *redis.Client
}

func NewResultCache(client *redis.Client) *ResultCacheImpl {
	return &ResultCacheImpl{client: client}
}

func (r *ResultCacheImpl) key(query string) string {
	return resultCachePrefix + utils.HashText(query)
}

// Store caches the result list for a query.
func (r *ResultCacheImpl) Store(ctx context.Context, query string, results []entity.BookSearchResult, ttl time.Duration) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encoding cached results: %w", err)
	}
	return r.client.SetEx(ctx, r.key(query), payload, ttl).Err()
}

// Fetch returns the cached results for a query; a missing key is a miss, not
// an error.
func (r *ResultCacheImpl) Fetch(ctx context.Context, query string) ([]entity.BookSearchResult, bool, error) {
	payload, err := r.client.Get(ctx, r.key(query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var results []entity.BookSearchResult
	if err := json.Unmarshal(payload, &results); err != nil {
		return nil, false, fmt.Errorf("decoding cached results: %w", err)
	}
	return results, true, nil
}
