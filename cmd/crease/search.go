package main

import (
	"github.com/spf13/cobra"

	"github.com/creaselab/crease/domain/content"
)

func searchCmd() *cobra.Command {
	var (
		source string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the source platforms for content",
		Long: `Search the source platforms for goalie drill content.

Queries every platform that supports search (YouTube and Reddit, when
credentials are configured). Results are not saved; use 'crease save'
with a result URL to add it to the library.

Examples:
  crease search "butterfly drill"
  crease search "rebound control" --source reddit --limit 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], source, limit)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Only search one source (youtube, reddit)")
	cmd.Flags().IntVar(&limit, "limit", content.DefaultSearchLimit, "Maximum results per source")

	return cmd
}

func runSearch(cmd *cobra.Command, query, source string, limit int) error {
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

	var sources []content.Source
	if source != "" {
		parsed, err := content.ParseSource(source)
		if err != nil {
			return err
		}
		sources = append(sources, parsed)
	}

	items, err := client.Library.SearchSources(cmd.Context(), query, limit, sources...)
	if err != nil {
		return err
	}

	printItems(cmd, items)
	return nil
}
