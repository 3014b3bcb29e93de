package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
)

// Video IDs are always 11 characters.
var (
	watchPattern  = regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`)
	shortsPattern = regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`)
	shortPattern  = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`)
)

// Adapter ingests YouTube videos. It supports the full capability set.
type Adapter struct {
	client        *Client
	discoverTerms []string
}

var _ ingest.Adapter = (*Adapter)(nil)

// NewAdapter creates a YouTube adapter. discoverTerms drive ListRecent.
func NewAdapter(client *Client, discoverTerms []string) *Adapter {
	return &Adapter{client: client, discoverTerms: discoverTerms}
}

// Source returns the YouTube source.
func (a *Adapter) Source() content.Source { return content.SourceYouTube }

// Capabilities returns the supported feature set.
func (a *Adapter) Capabilities() ingest.Capabilities {
	return ingest.Capabilities{
		ingest.CapabilityFetchByURL: true,
		ingest.CapabilityFetchByID:  true,
		ingest.CapabilitySearch:     true,
		ingest.CapabilityListRecent: true,
	}
}

// FetchByURL resolves a watch, shorts, or youtu.be URL to a video.
func (a *Adapter) FetchByURL(ctx context.Context, url string) (content.Item, bool, error) {
	id, ok := ExtractVideoID(url)
	if !ok {
		return content.Item{}, false, nil
	}
	return a.FetchByID(ctx, id)
}

// FetchByID fetches a single video by its video id.
func (a *Adapter) FetchByID(ctx context.Context, id string) (content.Item, bool, error) {
	videos, err := a.client.fetchVideos(ctx, []string{id})
	if err != nil {
		return content.Item{}, false, err
	}
	if len(videos) == 0 {
		return content.Item{}, false, nil
	}
	item, err := mapVideo(videos[0])
	if err != nil {
		return content.Item{}, false, err
	}
	return item, true, nil
}

// Search returns up to limit videos matching the query.
func (a *Adapter) Search(ctx context.Context, query string, limit int) ([]content.Item, error) {
	ids, err := a.client.searchVideoIDs(ctx, query, limit, false)
	if err != nil {
		return nil, err
	}
	return a.fetchItems(ctx, ids)
}

// ListRecent searches each discover term ordered by upload date,
// deduplicates across terms, and returns the newest videos first.
func (a *Adapter) ListRecent(ctx context.Context, limit int) ([]content.Item, error) {
	if len(a.discoverTerms) == 0 {
		return nil, nil
	}

	perTerm := limit/len(a.discoverTerms) + 2
	if perTerm < 5 {
		perTerm = 5
	}

	seen := map[string]bool{}
	var ids []string
	for _, term := range a.discoverTerms {
		termIDs, err := a.client.searchVideoIDs(ctx, term, perTerm, true)
		if err != nil {
			slog.Error("youtube discover term failed", "term", term, "error", err)
			continue
		}
		for _, id := range termIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		if len(ids) >= limit {
			break
		}
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}

	items, err := a.fetchItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt().After(items[j].PublishedAt())
	})
	return items, nil
}

func (a *Adapter) fetchItems(ctx context.Context, ids []string) ([]content.Item, error) {
	videos, err := a.client.fetchVideos(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]content.Item, 0, len(videos))
	for _, v := range videos {
		item, err := mapVideo(v)
		if err != nil {
			slog.Warn("skipping unmappable youtube video", "video_id", v.ID, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ExtractVideoID pulls the 11-character video id out of a YouTube URL.
// Watch, shorts, and youtu.be formats are supported.
func ExtractVideoID(url string) (string, bool) {
	for _, p := range []*regexp.Regexp{watchPattern, shortsPattern, shortPattern} {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func mapVideo(v videoResource) (content.Item, error) {
	canonical := fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.ID)
	item, err := content.NewItem(content.SourceYouTube, v.ID, content.TypeVideo, v.Snippet.Title, canonical)
	if err != nil {
		return content.Item{}, err
	}

	item = item.WithDescription(v.Snippet.Description).WithAuthor(v.Snippet.ChannelTitle)

	if t, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt); err == nil {
		item = item.WithPublishedAt(t)
	}

	// Prefer the highest quality thumbnail available.
	for _, thumb := range []thumbnail{v.Snippet.Thumbnails.High, v.Snippet.Thumbnails.Medium, v.Snippet.Thumbnails.Default} {
		if thumb.URL != "" {
			item = item.WithThumbnailURL(thumb.URL)
			break
		}
	}

	item = item.WithEngagement(
		parseCount(v.Statistics.ViewCount),
		parseCount(v.Statistics.LikeCount),
		parseCount(v.Statistics.CommentCount),
	)

	return item.WithSourceMetadata(map[string]any{
		"channel_id":    v.Snippet.ChannelID,
		"channel_title": v.Snippet.ChannelTitle,
		"duration":      v.ContentDetails.Duration,
		"category_id":   v.Snippet.CategoryID,
	}), nil
}

func parseCount(s string) *int64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
