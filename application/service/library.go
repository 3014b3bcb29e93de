// Package service provides the application services behind the API,
// CLI, and bot front ends.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
	"github.com/creaselab/crease/internal/database"
)

// SaveParams configures saving content from a URL. Nil optional fields
// leave the fetched values untouched.
type SaveParams struct {
	Source content.Source
	URL    string

	// Basic overrides, mainly for sources that fetch no metadata.
	Title       *string
	Description *string
	Author      *string

	// Coaching metadata.
	DrillTags        []string
	DrillDescription *string
	Difficulty       *string
	Equipment        *string
	AgeGroup         *string
}

// MetadataParams configures a coaching metadata update. Nil fields are
// left untouched.
type MetadataParams struct {
	DrillTags        []string
	DrillDescription *string
	Difficulty       *string
	Equipment        *string
	AgeGroup         *string
}

// Library provides the content library operations: ingesting by URL,
// annotating, searching, and discovery.
type Library struct {
	store    content.Store
	adapters ingest.Registry
	logger   *slog.Logger
}

// NewLibrary creates a Library service.
func NewLibrary(store content.Store, adapters ingest.Registry, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{store: store, adapters: adapters, logger: logger}
}

// SaveFromURL fetches content from its platform, applies any overrides,
// and persists it. Returns ErrUnknownSource when no adapter serves the
// source and ErrContentNotFound when the URL does not resolve.
func (s *Library) SaveFromURL(ctx context.Context, params SaveParams) (content.Item, error) {
	adapter, ok := s.adapters.For(params.Source)
	if !ok {
		return content.Item{}, fmt.Errorf("%w: %s", ErrUnknownSource, params.Source)
	}

	item, found, err := adapter.FetchByURL(ctx, params.URL)
	if err != nil {
		return content.Item{}, fmt.Errorf("fetch %s content: %w", params.Source, err)
	}
	if !found {
		return content.Item{}, fmt.Errorf("%w: could not fetch content from %s", ErrContentNotFound, params.URL)
	}

	if params.Title != nil {
		item = item.WithTitle(*params.Title)
	}
	if params.Description != nil {
		item = item.WithDescription(*params.Description)
	}
	if params.Author != nil {
		item = item.WithAuthor(*params.Author)
	}

	item, err = applyMetadata(item, MetadataParams{
		DrillTags:        params.DrillTags,
		DrillDescription: params.DrillDescription,
		Difficulty:       params.Difficulty,
		Equipment:        params.Equipment,
		AgeGroup:         params.AgeGroup,
	})
	if err != nil {
		return content.Item{}, err
	}

	saved, err := s.store.Save(ctx, item)
	if err != nil {
		return content.Item{}, fmt.Errorf("save content: %w", err)
	}

	s.logger.Info("content saved",
		slog.String("source", string(saved.Source())),
		slog.String("content_id", saved.ID()),
		slog.String("title", saved.Title()),
	)
	return saved, nil
}

// Get returns the item with the given id, searching across sources.
func (s *Library) Get(ctx context.Context, id string) (content.Item, error) {
	item, err := s.store.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return content.Item{}, fmt.Errorf("%w: %s", ErrContentNotFound, id)
	}
	if err != nil {
		return content.Item{}, fmt.Errorf("get content: %w", err)
	}
	return item, nil
}

// GetByKey returns the item with the given composite key.
func (s *Library) GetByKey(ctx context.Context, source content.Source, id string) (content.Item, error) {
	item, err := s.store.GetByKey(ctx, source, id)
	if errors.Is(err, database.ErrNotFound) {
		return content.Item{}, fmt.Errorf("%w: %s/%s", ErrContentNotFound, source, id)
	}
	if err != nil {
		return content.Item{}, fmt.Errorf("get content: %w", err)
	}
	return item, nil
}

// UpdateMetadata replaces the provided coaching metadata fields on an
// existing item. The read-modify-write preserves savedAt and every
// field the params leave nil.
func (s *Library) UpdateMetadata(ctx context.Context, id string, params MetadataParams) (content.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return content.Item{}, err
	}

	item, err = applyMetadata(item, params)
	if err != nil {
		return content.Item{}, err
	}

	saved, err := s.store.Save(ctx, item)
	if err != nil {
		return content.Item{}, fmt.Errorf("save content: %w", err)
	}

	s.logger.Info("content metadata updated",
		slog.String("source", string(saved.Source())),
		slog.String("content_id", saved.ID()),
	)
	return saved, nil
}

// Delete removes the item with the given id. Returns ErrContentNotFound
// when it does not exist.
func (s *Library) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.store.Delete(ctx, item.Source(), item.ID())
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrContentNotFound, id)
	}

	s.logger.Info("content deleted",
		slog.String("source", string(item.Source())),
		slog.String("content_id", item.ID()),
	)
	return nil
}

// SearchLibrary returns saved items matching the filter, newest first.
func (s *Library) SearchLibrary(ctx context.Context, filter content.SavedFilter) ([]content.Item, error) {
	items, err := s.store.SearchSaved(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search library: %w", err)
	}
	return items, nil
}

// Search returns up to limit stored items matching the text query and
// criteria.
func (s *Library) Search(ctx context.Context, query string, criteria content.Criteria, limit int) ([]content.Item, error) {
	items, err := s.store.Search(ctx, query, criteria, limit)
	if err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}
	return items, nil
}

// Count returns the number of stored items.
func (s *Library) Count(ctx context.Context) (int64, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count content: %w", err)
	}
	return n, nil
}

// SearchSources queries the platforms directly, without touching the
// library. Sources narrows the fan-out; empty means every searchable
// adapter. A failing platform is logged and skipped so one outage does
// not empty the whole result.
func (s *Library) SearchSources(ctx context.Context, query string, limit int, sources ...content.Source) ([]content.Item, error) {
	var results []content.Item
	for _, adapter := range s.adapters.Searchable() {
		if len(sources) > 0 && !containsSource(sources, adapter.Source()) {
			continue
		}
		items, err := adapter.Search(ctx, query, limit)
		if err != nil {
			s.logger.Error("source search failed",
				slog.String("source", string(adapter.Source())),
				slog.String("error", err.Error()),
			)
			continue
		}
		results = append(results, items...)
	}
	return results, nil
}

// Discover returns recent content from every adapter that supports
// recent listing, scoped by each platform's configured discovery terms.
func (s *Library) Discover(ctx context.Context, limit int) ([]content.Item, error) {
	var results []content.Item
	for _, adapter := range s.adapters.Discoverable() {
		items, err := adapter.ListRecent(ctx, limit)
		if err != nil {
			s.logger.Error("source discovery failed",
				slog.String("source", string(adapter.Source())),
				slog.String("error", err.Error()),
			)
			continue
		}
		results = append(results, items...)
	}
	return results, nil
}

func applyMetadata(item content.Item, params MetadataParams) (content.Item, error) {
	if params.DrillTags != nil {
		item = item.WithDrillTags(params.DrillTags)
	}
	if params.DrillDescription != nil {
		item = item.WithDrillDescription(*params.DrillDescription)
	}
	if params.Difficulty != nil {
		// An explicit empty string clears the difficulty.
		if *params.Difficulty == "" {
			item = item.WithDifficulty("")
		} else {
			difficulty, err := content.ParseDifficulty(*params.Difficulty)
			if err != nil {
				return content.Item{}, err
			}
			item = item.WithDifficulty(difficulty)
		}
	}
	if params.Equipment != nil {
		item = item.WithEquipment(*params.Equipment)
	}
	if params.AgeGroup != nil {
		item = item.WithAgeGroup(*params.AgeGroup)
	}
	return item, nil
}

func containsSource(sources []content.Source, s content.Source) bool {
	for _, candidate := range sources {
		if candidate == s {
			return true
		}
	}
	return false
}
