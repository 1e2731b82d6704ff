package repository

import (
	"context"
	"time"
)

// SeenRepository deduplicates recently parsed broadcasts by raw-text hash.
type SeenRepository interface {
	// MarkSeen records a hash with an expiry.
	MarkSeen(ctx context.Context, hash string, expiry time.Duration) error
	// IsSeen reports whether a hash was recorded recently.
	IsSeen(ctx context.Context, hash string) (bool, error)
	// Forget removes a hash, used for forced re-parses.
	Forget(ctx context.Context, hash string) error
}
