// Package instagram adapts Instagram URLs into minimal content items.
//
// Instagram's public oEmbed API is gone, so no metadata is fetched:
// the adapter extracts the shortcode, classifies reel vs post, and
// leaves the rest for the coach to fill in when saving. Search and
// recent listing are not supported.
package instagram

import (
	"context"
	"regexp"
	"strings"

	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
)

var shortcodePattern = regexp.MustCompile(`instagram\.com/(?:p|reel)/([A-Za-z0-9_-]+)`)

const metadataNote = "Provide title, description, and other metadata when saving"

// Adapter ingests Instagram posts and reels by URL only.
type Adapter struct{}

var _ ingest.Adapter = Adapter{}

// NewAdapter creates an Instagram adapter.
func NewAdapter() Adapter { return Adapter{} }

// Source returns the Instagram source.
func (Adapter) Source() content.Source { return content.SourceInstagram }

// Capabilities returns the supported feature set.
func (Adapter) Capabilities() ingest.Capabilities {
	return ingest.Capabilities{
		ingest.CapabilityFetchByURL: true,
		ingest.CapabilityFetchByID:  true,
	}
}

// FetchByURL builds a minimal item from a post or reel URL.
// Reels classify as video, posts as image.
func (a Adapter) FetchByURL(ctx context.Context, url string) (content.Item, bool, error) {
	shortcode, ok := ExtractShortcode(url)
	if !ok {
		return content.Item{}, false, nil
	}

	contentType := content.TypeImage
	title := "Instagram Post"
	if strings.Contains(strings.ToLower(url), "/reel/") {
		contentType = content.TypeVideo
		title = "Instagram Reel"
	}

	item, err := content.NewItem(content.SourceInstagram, shortcode, contentType, title, url)
	if err != nil {
		return content.Item{}, false, err
	}
	return item.WithSourceMetadata(map[string]any{"note": metadataNote}), true, nil
}

// FetchByID builds a minimal item from a post shortcode.
func (a Adapter) FetchByID(ctx context.Context, id string) (content.Item, bool, error) {
	return a.FetchByURL(ctx, "https://www.instagram.com/p/"+id+"/")
}

// Search is not supported; save content found in the app by URL instead.
func (Adapter) Search(ctx context.Context, query string, limit int) ([]content.Item, error) {
	return nil, ingest.ErrNotSupported
}

// ListRecent is not supported.
func (Adapter) ListRecent(ctx context.Context, limit int) ([]content.Item, error) {
	return nil, ingest.ErrNotSupported
}

// ExtractShortcode pulls the shortcode out of a post or reel URL.
func ExtractShortcode(url string) (string, bool) {
	if m := shortcodePattern.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	return "", false
}
