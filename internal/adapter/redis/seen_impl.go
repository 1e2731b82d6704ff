package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const seenKeyPrefix = "broadcast:seen:"

// SeenRepoImpl provides the SeenRepository implementation using expiring
// Redis keys. Callers pass the raw-text hash, which already makes a safe key.
type SeenRepoImpl struct {
	client *redis.Client
}

func NewSeenRepo(client *redis.Client) *SeenRepoImpl {
	return &SeenRepoImpl{client: client}
}

// MarkSeen records the hash with an expiry. SETEX is atomic.
func (r *SeenRepoImpl) MarkSeen(ctx context.Context, hash string, expiry time.Duration) error {
	return r.client.SetEx(ctx, seenKeyPrefix+hash, "1", expiry).Err()
}

// IsSeen checks for the hash key.
func (r *SeenRepoImpl) IsSeen(ctx context.Context, hash string) (bool, error) {
	n, err := r.client.Exists(ctx, seenKeyPrefix+hash).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Forget drops the hash key, used for forced re-parses.
func (r *SeenRepoImpl) Forget(ctx context.Context, hash string) error {
	return r.client.Del(ctx, seenKeyPrefix+hash).Err()
}
