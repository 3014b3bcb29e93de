package ingest

import (
	"regexp"

	"github.com/creaselab/crease/domain/content"
)

// urlPatterns maps each platform to the URL shapes its content links take.
// Order matters: the first matching pattern wins.
var urlPatterns = []struct {
	source   content.Source
	patterns []*regexp.Regexp
}{
	{
		source: content.SourceYouTube,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)[\w-]+`),
			regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/shorts/[\w-]+`),
		},
	},
	{
		source: content.SourceReddit,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?reddit\.com/r/\w+/comments/\w+\S*`),
		},
	},
	{
		source: content.SourceInstagram,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?instagram\.com/(?:p|reel)/[\w-]+/?`),
		},
	},
	{
		source: content.SourceTikTok,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?tiktok\.com/@[\w.-]+/video/\d+`),
			regexp.MustCompile(`(?i)(?:https?://)?vm\.tiktok\.com/\w+/?`),
		},
	},
}

// DetectURL scans free text for the first recognizable platform content URL.
// Returns the matched URL, its source, and whether anything matched.
func DetectURL(text string) (string, content.Source, bool) {
	for _, entry := range urlPatterns {
		for _, pattern := range entry.patterns {
			if match := pattern.FindString(text); match != "" {
				return match, entry.source, true
			}
		}
	}
	return "", "", false
}
