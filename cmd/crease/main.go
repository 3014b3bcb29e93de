// Package main is the entry point for the crease CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/creaselab/crease"
	"github.com/creaselab/crease/internal/config"
	"github.com/creaselab/crease/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crease",
		Short: "Goalie coaching content library",
		Long: `Crease collects goalie training content from YouTube, Reddit,
Instagram, and TikTok into a searchable personal library with coaching
metadata (drill tags, difficulty, equipment, age group).`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(botCmd())
	cmd.AddCommand(searchCmd())
	cmd.AddCommand(saveCmd())
	cmd.AddCommand(listCmd())
	cmd.AddCommand(deleteCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig reads .env and the environment.
func loadConfig() (config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// setupLogger builds the configured logger and installs it as default.
func setupLogger(cfg config.AppConfig) *slog.Logger {
	logger := log.New(log.Format(cfg.LogFormat()), cfg.LogLevel())
	log.SetDefault(logger)
	return logger
}

// newClient builds a crease client from the app config.
func newClient(cfg config.AppConfig, logger *slog.Logger) (*crease.Client, error) {
	discovery, err := config.LoadDiscovery(cfg.DiscoveryFile())
	if err != nil {
		return nil, err
	}

	opts := []crease.Option{
		crease.WithDatabaseURL(cfg.DBURL()),
		crease.WithDiscovery(discovery),
		crease.WithLogger(logger),
	}
	if cfg.YouTubeAPIKey() != "" {
		opts = append(opts, crease.WithYouTubeAPIKey(cfg.YouTubeAPIKey()))
	}
	if cfg.RedditClientID() != "" {
		opts = append(opts, crease.WithReddit(
			cfg.RedditClientID(), cfg.RedditClientSecret(), cfg.RedditUserAgent()))
	}

	return crease.New(opts...)
}
