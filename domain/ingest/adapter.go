// Package ingest defines the source adapter contract.
//
// An adapter translates one platform's native payloads into content items.
// Search and recent-listing are optional capabilities; adapters without them
// return ErrNotSupported rather than silently returning nothing.
package ingest

import (
	"context"
	"errors"

	"github.com/creaselab/crease/domain/content"
)

// ErrNotSupported indicates an adapter capability is intentionally absent
// (e.g. search on Instagram or TikTok).
var ErrNotSupported = errors.New("capability not supported by this source")

// ErrUpstream indicates the platform API failed or was unreachable.
// Stored library content remains readable when this occurs.
var ErrUpstream = errors.New("upstream source unavailable")

// Capability names an optional adapter feature.
type Capability string

// Capability values.
const (
	CapabilityFetchByURL Capability = "fetch_by_url"
	CapabilityFetchByID  Capability = "fetch_by_id"
	CapabilitySearch     Capability = "search"
	CapabilityListRecent Capability = "list_recent"
)

// Capabilities is the set of features an adapter supports.
type Capabilities map[Capability]bool

// Has reports whether the capability is present.
func (c Capabilities) Has(cap Capability) bool { return c[cap] }

// Adapter fetches platform content and normalizes it into content items.
// Adapters never write to the store; persistence belongs to the caller.
type Adapter interface {
	// Source returns the platform this adapter serves.
	Source() content.Source

	// Capabilities returns the supported feature set.
	Capabilities() Capabilities

	// FetchByURL resolves a platform URL to an item. An unparseable URL
	// yields (zero, false, nil), never an error. Upstream failures yield
	// (zero, false, err).
	FetchByURL(ctx context.Context, url string) (content.Item, bool, error)

	// FetchByID fetches an item by its platform-native id.
	// Returns (zero, false, nil) when the id does not resolve upstream.
	FetchByID(ctx context.Context, id string) (content.Item, bool, error)

	// Search returns up to limit items matching the query, or
	// ErrNotSupported.
	Search(ctx context.Context, query string, limit int) ([]content.Item, error)

	// ListRecent returns up to limit recently published items from the
	// platform's configured discovery scope, or ErrNotSupported.
	ListRecent(ctx context.Context, limit int) ([]content.Item, error)
}

// Registry resolves adapters by source.
type Registry map[content.Source]Adapter

// For returns the adapter for a source.
func (r Registry) For(source content.Source) (Adapter, bool) {
	a, ok := r[source]
	return a, ok
}

// Searchable returns the adapters that support search, in a fixed source order.
func (r Registry) Searchable() []Adapter {
	return r.withCapability(CapabilitySearch)
}

// Discoverable returns the adapters that support recent listing, in a fixed
// source order.
func (r Registry) Discoverable() []Adapter {
	return r.withCapability(CapabilityListRecent)
}

func (r Registry) withCapability(cap Capability) []Adapter {
	order := []content.Source{
		content.SourceYouTube,
		content.SourceReddit,
		content.SourceInstagram,
		content.SourceTikTok,
	}
	var out []Adapter
	for _, src := range order {
		if a, ok := r[src]; ok && a.Capabilities().Has(cap) {
			out = append(out, a)
		}
	}
	return out
}
