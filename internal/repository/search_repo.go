package repository

import (
	"context"
	"errors"
)

// ErrSearchUnavailable indicates the web search backend is unreachable or
// unconfigured. There is no lower fallback tier for research, so this
// propagates to the caller as a typed error.
var ErrSearchUnavailable = errors.New("search backend is not configured")

// RawSearchItem is one unnormalized item from the search backend.
type RawSearchItem struct {
	Title    string
	Snippet  string
	Link     string
	ImageURL string
}

// SearchRepository defines the contract for the web search backend.
type SearchRepository interface {
	// Search returns up to limit raw result items, ordered as the backend
	// ranked them.
	Search(ctx context.Context, query string, limit int) ([]RawSearchItem, error)
}
