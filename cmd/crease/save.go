package main

import (
	"github.com/spf13/cobra"

	"github.com/creaselab/crease/application/service"
	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
)

func saveCmd() *cobra.Command {
	var (
		source           string
		title            string
		description      string
		author           string
		drillTags        []string
		drillDescription string
		difficulty       string
		equipment        string
		ageGroup         string
	)

	cmd := &cobra.Command{
		Use:   "save <url>",
		Short: "Save content from a URL to the library",
		Long: `Save content from a URL to the library.

The source platform is detected from the URL; --source overrides it.
Instagram and TikTok fetch no metadata, so pass --title and friends to
fill the record in.

Examples:
  crease save "https://youtu.be/dQw4w9WgXcQ" --drill-tags butterfly,recovery --difficulty intermediate
  crease save "https://www.instagram.com/reel/Cabc123/" --title "T-push drill" --age-group bantam`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]

			var src content.Source
			if source != "" {
				parsed, err := content.ParseSource(source)
				if err != nil {
					return err
				}
				src = parsed
			} else {
				_, detected, ok := ingest.DetectURL(url)
				if !ok {
					return content.ErrValidation
				}
				src = detected
			}

			params := service.SaveParams{
				Source:    src,
				URL:       url,
				DrillTags: drillTags,
			}
			if cmd.Flags().Changed("title") {
				params.Title = &title
			}
			if cmd.Flags().Changed("description") {
				params.Description = &description
			}
			if cmd.Flags().Changed("author") {
				params.Author = &author
			}
			if cmd.Flags().Changed("drill-description") {
				params.DrillDescription = &drillDescription
			}
			if cmd.Flags().Changed("difficulty") {
				params.Difficulty = &difficulty
			}
			if cmd.Flags().Changed("equipment") {
				params.Equipment = &equipment
			}
			if cmd.Flags().Changed("age-group") {
				params.AgeGroup = &ageGroup
			}

			return runSave(cmd, params)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Source platform (detected from URL when omitted)")
	cmd.Flags().StringVar(&title, "title", "", "Override the fetched title")
	cmd.Flags().StringVar(&description, "description", "", "Override the fetched description")
	cmd.Flags().StringVar(&author, "author", "", "Override the fetched author")
	cmd.Flags().StringSliceVar(&drillTags, "drill-tags", nil, "Comma-separated drill tags")
	cmd.Flags().StringVar(&drillDescription, "drill-description", "", "Coach-written drill description")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "beginner, intermediate, or advanced")
	cmd.Flags().StringVar(&equipment, "equipment", "", "Required equipment")
	cmd.Flags().StringVar(&ageGroup, "age-group", "", "Target age group")

	return cmd
}

func runSave(cmd *cobra.Command, params service.SaveParams) error {
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

	item, err := client.Library.SaveFromURL(cmd.Context(), params)
	if err != nil {
		return err
	}

	cmd.Printf("Saved %s/%s: %s\n", item.Source(), item.ID(), item.Title())
	return nil
}
