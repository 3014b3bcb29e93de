package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ./data
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/content.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// YouTubeAPIKey is the YouTube Data API v3 key.
	// Env: YOUTUBE_API_KEY
	YouTubeAPIKey string `envconfig:"YOUTUBE_API_KEY"`

	// RedditClientID is the Reddit API application client id.
	// Env: REDDIT_CLIENT_ID
	RedditClientID string `envconfig:"REDDIT_CLIENT_ID"`

	// RedditClientSecret is the Reddit API application secret.
	// Env: REDDIT_CLIENT_SECRET
	RedditClientSecret string `envconfig:"REDDIT_CLIENT_SECRET"`

	// RedditUserAgent identifies this application to Reddit.
	// Env: REDDIT_USER_AGENT
	RedditUserAgent string `envconfig:"REDDIT_USER_AGENT" default:"crease-content-library/1.0"`

	// DiscordBotToken authenticates the Discord front end.
	// Env: DISCORD_BOT_TOKEN
	DiscordBotToken string `envconfig:"DISCORD_BOT_TOKEN"`

	// APIBaseURL is the address the bot uses to reach the HTTP API.
	// Env: API_BASE_URL (default: http://localhost:8080)
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080"`

	// DiscoveryFile points to a YAML file overriding discovery terms.
	// Env: DISCOVERY_FILE
	DiscoveryFile string `envconfig:"DISCOVERY_FILE"`
}

// LoadFromEnv reads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

// ToAppConfig converts the environment config into an AppConfig with
// defaults resolved.
func (e EnvConfig) ToAppConfig() AppConfig {
	dataDir := e.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	dbURL := e.DBURL
	if dbURL == "" {
		dbURL = "sqlite:///" + dataDir + "/content.db"
	}
	return AppConfig{
		host:               e.Host,
		port:               e.Port,
		dataDir:            dataDir,
		dbURL:              dbURL,
		logLevel:           e.LogLevel,
		logFormat:          e.LogFormat,
		youtubeAPIKey:      e.YouTubeAPIKey,
		redditClientID:     e.RedditClientID,
		redditClientSecret: e.RedditClientSecret,
		redditUserAgent:    e.RedditUserAgent,
		discordBotToken:    e.DiscordBotToken,
		apiBaseURL:         e.APIBaseURL,
		discoveryFile:      e.DiscoveryFile,
	}
}
