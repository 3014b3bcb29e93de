// Package config provides application configuration loaded from the
// environment and optional dotenv and YAML files.
package config

import (
	"fmt"
	"os"
)

// DefaultDataDir is used when DATA_DIR is not set.
const DefaultDataDir = "./data"

// AppConfig is the resolved application configuration.
type AppConfig struct {
	host               string
	port               int
	dataDir            string
	dbURL              string
	logLevel           string
	logFormat          string
	youtubeAPIKey      string
	redditClientID     string
	redditClientSecret string
	redditUserAgent    string
	discordBotToken    string
	apiBaseURL         string
	discoveryFile      string
}

// Load reads .env (when present) and the environment, returning the
// resolved configuration.
func Load() (AppConfig, error) {
	LoadDotEnv()
	env, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}
	return env.ToAppConfig(), nil
}

// Default returns the configuration with no environment applied.
func Default() AppConfig {
	return EnvConfig{
		Host:            "0.0.0.0",
		Port:            8080,
		LogLevel:        "INFO",
		LogFormat:       "pretty",
		RedditUserAgent: "crease-content-library/1.0",
		APIBaseURL:      "http://localhost:8080",
	}.ToAppConfig()
}

// Host returns the server bind host.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port listen address.
func (c AppConfig) Addr() string { return fmt.Sprintf("%s:%d", c.host, c.port) }

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the configured log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the configured log format.
func (c AppConfig) LogFormat() string { return c.logFormat }

// YouTubeAPIKey returns the YouTube Data API key, empty when unset.
func (c AppConfig) YouTubeAPIKey() string { return c.youtubeAPIKey }

// RedditClientID returns the Reddit client id, empty when unset.
func (c AppConfig) RedditClientID() string { return c.redditClientID }

// RedditClientSecret returns the Reddit client secret, empty when unset.
func (c AppConfig) RedditClientSecret() string { return c.redditClientSecret }

// RedditUserAgent returns the Reddit user agent string.
func (c AppConfig) RedditUserAgent() string { return c.redditUserAgent }

// DiscordBotToken returns the Discord bot token, empty when unset.
func (c AppConfig) DiscordBotToken() string { return c.discordBotToken }

// APIBaseURL returns the base URL the bot uses for API calls.
func (c AppConfig) APIBaseURL() string { return c.apiBaseURL }

// DiscoveryFile returns the optional discovery YAML path.
func (c AppConfig) DiscoveryFile() string { return c.discoveryFile }

// EnsureDataDir creates the data directory if it does not exist.
func (c AppConfig) EnsureDataDir() error {
	if err := os.MkdirAll(c.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", c.dataDir, err)
	}
	return nil
}
