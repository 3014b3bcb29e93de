package ingest

import (
	"testing"

	"github.com/creaselab/crease/domain/content"
)

func TestDetectURL(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		source content.Source
	}{
		{
			name:   "youtube watch",
			text:   "check this out https://www.youtube.com/watch?v=dQw4w9WgXcQ great drill",
			want:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			source: content.SourceYouTube,
		},
		{
			name:   "youtube short link",
			text:   "https://youtu.be/dQw4w9WgXcQ",
			want:   "https://youtu.be/dQw4w9WgXcQ",
			source: content.SourceYouTube,
		},
		{
			name:   "youtube shorts",
			text:   "youtube.com/shorts/abc123DEF45",
			want:   "youtube.com/shorts/abc123DEF45",
			source: content.SourceYouTube,
		},
		{
			name:   "reddit post",
			text:   "from https://www.reddit.com/r/hockeygoalies/comments/abc123/great_drill/",
			want:   "https://www.reddit.com/r/hockeygoalies/comments/abc123/great_drill/",
			source: content.SourceReddit,
		},
		{
			name:   "instagram reel",
			text:   "https://www.instagram.com/reel/Cabc123_-x/",
			want:   "https://www.instagram.com/reel/Cabc123_-x/",
			source: content.SourceInstagram,
		},
		{
			name:   "instagram post",
			text:   "instagram.com/p/Cabc123",
			want:   "instagram.com/p/Cabc123",
			source: content.SourceInstagram,
		},
		{
			name:   "tiktok video",
			text:   "https://www.tiktok.com/@goaliecoach/video/7123456789012345678",
			want:   "https://www.tiktok.com/@goaliecoach/video/7123456789012345678",
			source: content.SourceTikTok,
		},
		{
			name:   "tiktok short link",
			text:   "https://vm.tiktok.com/ZMabc123/",
			want:   "https://vm.tiktok.com/ZMabc123/",
			source: content.SourceTikTok,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, source, ok := DetectURL(tt.text)
			if !ok {
				t.Fatal("DetectURL() ok = false")
			}
			if url != tt.want {
				t.Errorf("url = %q, want %q", url, tt.want)
			}
			if source != tt.source {
				t.Errorf("source = %v, want %v", source, tt.source)
			}
		})
	}
}

func TestDetectURLNoMatch(t *testing.T) {
	for _, text := range []string{
		"no links here",
		"https://example.com/watch?v=abc",
		"https://www.reddit.com/r/hockeygoalies/",
	} {
		if _, _, ok := DetectURL(text); ok {
			t.Errorf("DetectURL(%q) ok = true, want false", text)
		}
	}
}
