// Package crease provides a personal library for goalie coaching content.
//
// Crease pulls short-form training content from YouTube, Reddit,
// Instagram, and TikTok into a searchable database, annotated with
// coaching metadata (drill tags, difficulty, equipment, age group).
//
// Basic usage:
//
//	client, err := crease.New(
//	    crease.WithSQLite("data/content.db"),
//	    crease.WithYouTubeAPIKey(os.Getenv("YOUTUBE_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	item, err := client.Library.SaveFromURL(ctx, service.SaveParams{
//	    Source: content.SourceYouTube,
//	    URL:    "https://youtu.be/dQw4w9WgXcQ",
//	})
//
//	items, err := client.Library.SearchLibrary(ctx, content.SavedFilter{Query: "butterfly"})
package crease

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/creaselab/crease/application/service"
	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
	"github.com/creaselab/crease/infrastructure/ingest/instagram"
	"github.com/creaselab/crease/infrastructure/ingest/reddit"
	"github.com/creaselab/crease/infrastructure/ingest/tiktok"
	"github.com/creaselab/crease/infrastructure/ingest/youtube"
	"github.com/creaselab/crease/infrastructure/persistence"
	"github.com/creaselab/crease/internal/database"
)

// ErrNoDatabase is returned by New when no database option was given.
var ErrNoDatabase = errors.New("no database configured: use WithSQLite or WithDatabaseURL")

// Client is the main entry point for the crease library.
type Client struct {
	// Library provides save, search, annotate, and discovery operations.
	Library *service.Library

	db       database.Database
	store    persistence.ContentStore
	adapters ingest.Registry
	logger   *slog.Logger
	closed   atomic.Bool
}

// New creates a Client with the given options. The database schema is
// migrated and validated before the client is returned.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	dbURL, err := buildDatabaseURL(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("migrate: %w", err), errClose)
	}
	if err := persistence.ValidateSchema(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("validate schema: %w", err), errClose)
	}

	store := persistence.NewContentStore(db)
	adapters := buildAdapters(cfg)

	client := &Client{
		Library:  service.NewLibrary(store, adapters, logger),
		db:       db,
		store:    store,
		adapters: adapters,
		logger:   logger,
	}

	logger.Info("content library ready", slog.Any("sources", cfg.sources()))
	return client, nil
}

// Adapters returns the registered source adapters.
func (c *Client) Adapters() ingest.Registry {
	return c.adapters
}

// Store returns the underlying content store.
func (c *Client) Store() content.Store {
	return c.store
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Close releases the database connection. Safe to call more than once.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.db.Close()
}

func buildDatabaseURL(cfg *clientConfig) (string, error) {
	switch cfg.database {
	case databaseSQLite:
		return "sqlite:///" + cfg.dbPath, nil
	case databaseURL:
		return cfg.dbURL, nil
	default:
		return "", ErrNoDatabase
	}
}

// buildAdapters registers the built-in adapters for every source the
// config carries credentials for. Instagram and TikTok need none.
// Custom adapters override built-ins for the same source.
func buildAdapters(cfg *clientConfig) ingest.Registry {
	registry := ingest.Registry{
		content.SourceInstagram: instagram.NewAdapter(),
		content.SourceTikTok:    tiktok.NewAdapter(),
	}

	if cfg.youtubeAPIKey != "" {
		registry[content.SourceYouTube] = youtube.NewAdapter(
			youtube.NewClient(cfg.youtubeAPIKey),
			cfg.discovery.YouTubeTerms,
		)
	}
	if cfg.redditClientID != "" {
		registry[content.SourceReddit] = reddit.NewAdapter(
			reddit.NewClient(cfg.redditClientID, cfg.redditClientSecret, cfg.redditUserAgent),
			cfg.discovery.RedditSubreddits,
		)
	}

	for _, a := range cfg.extraAdapters {
		registry[a.Source()] = a
	}
	return registry
}
