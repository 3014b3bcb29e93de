package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Discovery lists the search terms and communities used when pulling in
// recent content without an explicit query.
type Discovery struct {
	YouTubeTerms      []string `yaml:"youtube_terms"`
	RedditSubreddits  []string `yaml:"reddit_subreddits"`
	InstagramHashtags []string `yaml:"instagram_hashtags"`
	TikTokHashtags    []string `yaml:"tiktok_hashtags"`
}

// DefaultDiscovery returns the built-in discovery terms.
func DefaultDiscovery() Discovery {
	return Discovery{
		YouTubeTerms: []string{
			"goalie drills",
			"hockey goalie training",
			"goaltender practice",
			"nhl goalie drills",
			"hockey goalie coaching",
		},
		RedditSubreddits: []string{
			"hockeygoalies",
			"hockeyplayers",
		},
		InstagramHashtags: []string{
			"goalies",
			"goalie",
			"goaliecoaches",
			"goaliedrills",
			"goalieskating",
			"goaliedevelopment",
			"hockeygoalie",
			"goalietraining",
		},
		TikTokHashtags: []string{
			"goalies",
			"goalie",
			"goaliecoaches",
			"goaliedrills",
			"goalieskating",
			"goaliedevelopment",
			"hockeygoalie",
			"goalietraining",
		},
	}
}

// LoadDiscovery reads a discovery YAML file, falling back to defaults
// for any list the file leaves empty. An empty path returns the
// defaults unchanged.
func LoadDiscovery(path string) (Discovery, error) {
	d := DefaultDiscovery()
	if path == "" {
		return d, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Discovery{}, fmt.Errorf("read discovery file %s: %w", path, err)
	}
	var file Discovery
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Discovery{}, fmt.Errorf("parse discovery file %s: %w", path, err)
	}
	if len(file.YouTubeTerms) > 0 {
		d.YouTubeTerms = file.YouTubeTerms
	}
	if len(file.RedditSubreddits) > 0 {
		d.RedditSubreddits = file.RedditSubreddits
	}
	if len(file.InstagramHashtags) > 0 {
		d.InstagramHashtags = file.InstagramHashtags
	}
	if len(file.TikTokHashtags) > 0 {
		d.TikTokHashtags = file.TikTokHashtags
	}
	return d, nil
}
