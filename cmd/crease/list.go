package main

import (
	"github.com/spf13/cobra"

	"github.com/creaselab/crease/domain/content"
)

func listCmd() *cobra.Command {
	var (
		query       string
		source      string
		contentType string
		difficulty  string
		equipment   string
		ageGroup    string
		tags        []string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved content, optionally filtered",
		Long: `List saved content, newest first.

Examples:
  crease list
  crease list --query butterfly --difficulty beginner
  crease list --tags rebound-control,post-integration --source YouTube`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			var src content.Source
			if source != "" {
				if src, err = content.ParseSource(source); err != nil {
					return err
				}
			}

			if len(tags) > 0 {
				items, err := client.Library.SearchLibrary(cmd.Context(), content.SavedFilter{
					Query:  query,
					Source: src,
					Tags:   tags,
				})
				if err != nil {
					return err
				}
				printItems(cmd, items)
				return nil
			}

			criteria := content.Criteria{
				Source:     src,
				Difficulty: difficulty,
				Equipment:  equipment,
				AgeGroup:   ageGroup,
			}
			if contentType != "" {
				if criteria.Type, err = content.ParseType(contentType); err != nil {
					return err
				}
			}

			items, err := client.Library.Search(cmd.Context(), query, criteria, limit)
			if err != nil {
				return err
			}
			printItems(cmd, items)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Match title or description")
	cmd.Flags().StringVar(&source, "source", "", "Filter by source platform")
	cmd.Flags().StringVar(&contentType, "type", "", "Filter by content type (video, image, post)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Filter by difficulty")
	cmd.Flags().StringVar(&equipment, "equipment", "", "Filter by required equipment")
	cmd.Flags().StringVar(&ageGroup, "age-group", "", "Filter by age group")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Match items carrying any of these drill tags")
	cmd.Flags().IntVar(&limit, "limit", content.DefaultSearchLimit, "Maximum number of results")

	return cmd
}
