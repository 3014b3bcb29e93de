package content

import "context"

// Search limit bounds.
const (
	MinSearchLimit     = 1
	MaxSearchLimit     = 100
	DefaultSearchLimit = 10
)

// SavedFilter selects saved items. Zero-valued fields are not applied.
type SavedFilter struct {
	// Query matches title or description, case-insensitive substring.
	Query string
	// Source matches exactly.
	Source Source
	// Tags matches items carrying at least one of the given tags.
	Tags []string
	// CollectionID matches exactly.
	CollectionID string
}

// Criteria narrows a text search. Zero-valued fields are not applied.
type Criteria struct {
	// Source matches exactly.
	Source Source
	// Type matches exactly.
	Type Type
	// Difficulty matches exactly, case-insensitive.
	Difficulty string
	// Equipment matches as a substring.
	Equipment string
	// AgeGroup matches exactly.
	AgeGroup string
}

// ClampLimit bounds a caller-supplied result limit to [MinSearchLimit, MaxSearchLimit].
func ClampLimit(limit int) int {
	if limit < MinSearchLimit {
		return DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}

// Store defines durable keyed storage for content items.
type Store interface {
	// Save upserts by (source, id). savedAt is set on first persist only.
	Save(ctx context.Context, item Item) (Item, error)

	// GetByKey returns the item with the given composite key, or
	// database.ErrNotFound.
	GetByKey(ctx context.Context, source Source, id string) (Item, error)

	// Get returns the first item with the given id across all sources.
	// Selection among duplicate ids is arbitrary but stable for a given
	// store; prefer GetByKey when the source is known.
	Get(ctx context.Context, id string) (Item, error)

	// SearchSaved returns saved items matching the filter, newest saved first.
	SearchSaved(ctx context.Context, filter SavedFilter) ([]Item, error)

	// Search returns up to limit items matching the text query and criteria,
	// newest saved first. limit is clamped to [1, 100].
	Search(ctx context.Context, query string, criteria Criteria, limit int) ([]Item, error)

	// Delete removes the item and reports whether it existed.
	Delete(ctx context.Context, source Source, id string) (bool, error)

	// Find retrieves items matching the given query options.
	Find(ctx context.Context, options ...Option) ([]Item, error)

	// Count returns the number of items matching the given query options.
	Count(ctx context.Context, options ...Option) (int64, error)
}
