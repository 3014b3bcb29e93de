package reddit

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
)

var postURLPattern = regexp.MustCompile(`reddit\.com/r/\w+/comments/([A-Za-z0-9]+)`)

// Adapter ingests Reddit posts. It supports the full capability set.
type Adapter struct {
	client     *Client
	subreddits []string
}

var _ ingest.Adapter = (*Adapter)(nil)

// NewAdapter creates a Reddit adapter. subreddits scope search and
// recent listing.
func NewAdapter(client *Client, subreddits []string) *Adapter {
	return &Adapter{client: client, subreddits: subreddits}
}

// Source returns the Reddit source.
func (a *Adapter) Source() content.Source { return content.SourceReddit }

// Capabilities returns the supported feature set.
func (a *Adapter) Capabilities() ingest.Capabilities {
	return ingest.Capabilities{
		ingest.CapabilityFetchByURL: true,
		ingest.CapabilityFetchByID:  true,
		ingest.CapabilitySearch:     true,
		ingest.CapabilityListRecent: true,
	}
}

// FetchByURL resolves a reddit.com/r/…/comments/… URL to a post.
func (a *Adapter) FetchByURL(ctx context.Context, url string) (content.Item, bool, error) {
	id, ok := ExtractPostID(url)
	if !ok {
		return content.Item{}, false, nil
	}
	return a.FetchByID(ctx, id)
}

// FetchByID fetches a single post by its base36 submission id.
// Removed or deleted posts resolve as not found.
func (a *Adapter) FetchByID(ctx context.Context, id string) (content.Item, bool, error) {
	post, found, err := a.client.postByID(ctx, id)
	if err != nil || !found {
		return content.Item{}, false, err
	}
	item, ok := mapSubmission(post)
	if !ok {
		return content.Item{}, false, nil
	}
	return item, true, nil
}

// Search returns up to limit posts matching the query across the
// configured subreddits.
func (a *Adapter) Search(ctx context.Context, query string, limit int) ([]content.Item, error) {
	posts, err := a.client.searchPosts(ctx, query, a.subreddits, limit)
	if err != nil {
		return nil, err
	}
	return mapSubmissions(posts), nil
}

// ListRecent returns hot posts from the configured subreddits.
func (a *Adapter) ListRecent(ctx context.Context, limit int) ([]content.Item, error) {
	if len(a.subreddits) == 0 {
		slog.Warn("no subreddits configured for reddit discovery")
		return nil, nil
	}
	posts, err := a.client.hotPosts(ctx, a.subreddits, limit)
	if err != nil {
		return nil, err
	}
	return mapSubmissions(posts), nil
}

// ExtractPostID pulls the submission id out of a Reddit post URL.
func ExtractPostID(url string) (string, bool) {
	if m := postURLPattern.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	return "", false
}

func mapSubmissions(posts []submission) []content.Item {
	items := make([]content.Item, 0, len(posts))
	for _, post := range posts {
		item, ok := mapSubmission(post)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// mapSubmission converts a submission into an item. Removed and deleted
// posts return ok=false and are excluded from results.
func mapSubmission(post submission) (content.Item, bool) {
	if post.RemovedByCategory != "" || post.Author == "" || post.Author == "[deleted]" {
		slog.Debug("skipping removed or deleted reddit post", "post_id", post.ID)
		return content.Item{}, false
	}

	item, err := content.NewItem(content.SourceReddit, post.ID, classifyPost(post), post.Title, post.URL)
	if err != nil {
		slog.Warn("skipping unmappable reddit post", "post_id", post.ID, "error", err)
		return content.Item{}, false
	}

	item = item.WithAuthor(post.Author)
	if post.Selftext != "" {
		item = item.WithDescription(post.Selftext)
	}
	if post.CreatedUTC > 0 {
		item = item.WithPublishedAt(time.Unix(int64(post.CreatedUTC), 0).UTC())
	}
	if url := thumbnailURL(post); url != "" {
		item = item.WithThumbnailURL(url)
	}

	// Reddit does not report view counts.
	score := post.Score
	comments := post.NumComments
	item = item.WithEngagement(nil, &score, &comments)

	return item.WithSourceMetadata(map[string]any{
		"subreddit":    post.Subreddit,
		"upvote_ratio": post.UpvoteRatio,
		"flair":        post.LinkFlairText,
		"is_video":     post.IsVideo,
		"is_self":      post.IsSelf,
		"permalink":    "https://reddit.com" + post.Permalink,
	}), true
}

// thumbnailURL prefers the preview source image over the listing
// thumbnail, which is low resolution and sometimes a placeholder.
func thumbnailURL(post submission) string {
	switch post.Thumbnail {
	case "", "self", "default", "nsfw", "spoiler":
	default:
		return post.Thumbnail
	}
	if post.Preview != nil && len(post.Preview.Images) > 0 {
		return post.Preview.Images[0].Source.URL
	}
	return ""
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

var imageDomains = []string{"i.redd.it", "i.imgur.com", "imgur.com"}

// classifyPost infers the content type from the submission URL and flags.
func classifyPost(post submission) content.Type {
	url := strings.ToLower(post.URL)

	if post.IsVideo {
		return content.TypeVideo
	}
	if strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be") {
		return content.TypeVideo
	}
	if strings.Contains(url, "v.redd.it") {
		return content.TypeVideo
	}
	for _, domain := range imageDomains {
		if strings.Contains(url, domain) {
			return content.TypeImage
		}
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(url, ext) {
			return content.TypeImage
		}
	}
	return content.TypePost
}
