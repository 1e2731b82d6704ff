package repository

import (
	"context"

	"github.com/user/broadcast-service/internal/entity"
)

// BroadcastRepository defines the interface for persisting parsed broadcasts.
type BroadcastRepository interface {
	// Save stores the parsed record keyed by the hash of its raw text. An
	// existing record for the same hash is updated.
	Save(ctx context.Context, hash string, b *entity.ParsedBroadcast) error
	// FindByHash retrieves a previously parsed record.
	FindByHash(ctx context.Context, hash string) (*entity.ParsedBroadcast, error)
}
