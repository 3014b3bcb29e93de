package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/creaselab/crease/infrastructure/api"
)

func serveCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration comes from the environment (and .env when present);
command line flags override it.

Environment variables:
  HOST                  Server host to bind to (default: 0.0.0.0)
  PORT                  Server port to listen on (default: 8080)
  DATA_DIR              Data directory (default: ./data)
  DB_URL                Database URL (default: sqlite:///{data_dir}/content.db)
  LOG_LEVEL             Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT            Log format: pretty, json (default: pretty)
  YOUTUBE_API_KEY       Enables the YouTube adapter
  REDDIT_CLIENT_ID      Enables the Reddit adapter (with REDDIT_CLIENT_SECRET)
  DISCOVERY_FILE        YAML file overriding discovery terms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(host string, port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	if err := cfg.EnsureDataDir(); err != nil {
		return err
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	addr := cfg.Addr()
	if host != "" || port != 0 {
		h := cfg.Host()
		p := cfg.Port()
		if host != "" {
			h = host
		}
		if port != 0 {
			p = port
		}
		addr = fmt.Sprintf("%s:%d", h, p)
	}

	server := api.NewServer(addr, client.Library, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("received signal, shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
