package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/creaselab/crease/infrastructure/bot"
)

func botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Start the Discord bot",
		Long: `Start the Discord bot.

The bot watches messages for YouTube, Reddit, Instagram, and TikTok
content links and saves them to the library. Requires DISCORD_BOT_TOKEN.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot()
		},
	}
}

func runBot() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	if cfg.DiscordBotToken() == "" {
		return fmt.Errorf("DISCORD_BOT_TOKEN is not set")
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return err
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	b, err := bot.New(cfg.DiscordBotToken(), client.Library, logger)
	if err != nil {
		return err
	}
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	logger.Info("bot running, press ctrl-c to exit")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	return nil
}
