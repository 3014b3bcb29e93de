// Package tiktok adapts TikTok URLs into minimal content items.
//
// No metadata is fetched: the adapter extracts the video id and leaves
// the rest for the coach to fill in when saving. Search and recent
// listing are not supported, and neither is fetch by id, because a
// TikTok URL cannot be reconstructed without the author's username.
package tiktok

import (
	"context"
	"regexp"

	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
)

var (
	videoPattern = regexp.MustCompile(`tiktok\.com/@[\w.-]+/video/(\d+)`)
	// Short links carry an opaque code instead of a numeric id.
	shortPattern = regexp.MustCompile(`vm\.tiktok\.com/([A-Za-z0-9]+)`)
)

const metadataNote = "Provide title, description, and other metadata when saving"

// Adapter ingests TikTok videos by URL only.
type Adapter struct{}

var _ ingest.Adapter = Adapter{}

// NewAdapter creates a TikTok adapter.
func NewAdapter() Adapter { return Adapter{} }

// Source returns the TikTok source.
func (Adapter) Source() content.Source { return content.SourceTikTok }

// Capabilities returns the supported feature set.
func (Adapter) Capabilities() ingest.Capabilities {
	return ingest.Capabilities{
		ingest.CapabilityFetchByURL: true,
	}
}

// FetchByURL builds a minimal item from a video or short-link URL.
func (Adapter) FetchByURL(ctx context.Context, url string) (content.Item, bool, error) {
	id, ok := ExtractVideoID(url)
	if !ok {
		return content.Item{}, false, nil
	}

	item, err := content.NewItem(content.SourceTikTok, id, content.TypeVideo, "TikTok Video", url)
	if err != nil {
		return content.Item{}, false, err
	}
	return item.WithSourceMetadata(map[string]any{"note": metadataNote}), true, nil
}

// FetchByID is not supported: the full URL is required.
func (Adapter) FetchByID(ctx context.Context, id string) (content.Item, bool, error) {
	return content.Item{}, false, ingest.ErrNotSupported
}

// Search is not supported; save content found in the app by URL instead.
func (Adapter) Search(ctx context.Context, query string, limit int) ([]content.Item, error) {
	return nil, ingest.ErrNotSupported
}

// ListRecent is not supported.
func (Adapter) ListRecent(ctx context.Context, limit int) ([]content.Item, error) {
	return nil, ingest.ErrNotSupported
}

// ExtractVideoID pulls the video id out of a TikTok URL. Short links
// use the link code as the id.
func ExtractVideoID(url string) (string, bool) {
	if m := videoPattern.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	if m := shortPattern.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	return "", false
}
