package crease

import (
	"log/slog"

	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
	"github.com/creaselab/crease/internal/config"
)

// databaseType identifies the configured database.
type databaseType int

const (
	databaseUnset databaseType = iota
	databaseSQLite
	databaseURL
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	database  databaseType
	dbPath    string
	dbURL     string
	discovery config.Discovery

	youtubeAPIKey      string
	redditClientID     string
	redditClientSecret string
	redditUserAgent    string

	extraAdapters []ingest.Adapter
	logger        *slog.Logger
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		discovery:       config.DefaultDiscovery(),
		redditUserAgent: "crease-content-library/1.0",
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite with a database file path.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.database = databaseSQLite
		c.dbPath = path
	}
}

// WithDatabaseURL configures the database from a connection URL
// (sqlite:///path or postgres://…).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.database = databaseURL
		c.dbURL = url
	}
}

// WithYouTubeAPIKey enables the YouTube adapter.
func WithYouTubeAPIKey(apiKey string) Option {
	return func(c *clientConfig) {
		c.youtubeAPIKey = apiKey
	}
}

// WithReddit enables the Reddit adapter. userAgent may be empty to use
// the default.
func WithReddit(clientID, clientSecret, userAgent string) Option {
	return func(c *clientConfig) {
		c.redditClientID = clientID
		c.redditClientSecret = clientSecret
		if userAgent != "" {
			c.redditUserAgent = userAgent
		}
	}
}

// WithDiscovery replaces the built-in discovery terms.
func WithDiscovery(d config.Discovery) Option {
	return func(c *clientConfig) {
		c.discovery = d
	}
}

// WithAdapter registers a custom source adapter, overriding any
// built-in adapter for the same source.
func WithAdapter(a ingest.Adapter) Option {
	return func(c *clientConfig) {
		c.extraAdapters = append(c.extraAdapters, a)
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// sources returns the platform set the config enables; informational.
func (c *clientConfig) sources() []content.Source {
	out := []content.Source{content.SourceInstagram, content.SourceTikTok}
	if c.youtubeAPIKey != "" {
		out = append(out, content.SourceYouTube)
	}
	if c.redditClientID != "" {
		out = append(out, content.SourceReddit)
	}
	return out
}
