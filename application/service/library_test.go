package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
	"github.com/creaselab/crease/internal/database"
)

type fakeStore struct {
	items map[string]content.Item
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[string]content.Item{}}
}

func key(source content.Source, id string) string {
	return string(source) + "/" + id
}

func (f *fakeStore) Save(ctx context.Context, item content.Item) (content.Item, error) {
	if item.SavedAt().IsZero() {
		item = item.WithSavedAt(time.Now().UTC())
	}
	f.items[key(item.Source(), item.ID())] = item
	return item, nil
}

func (f *fakeStore) GetByKey(ctx context.Context, source content.Source, id string) (content.Item, error) {
	item, ok := f.items[key(source, id)]
	if !ok {
		return content.Item{}, database.ErrNotFound
	}
	return item, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (content.Item, error) {
	for _, item := range f.items {
		if item.ID() == id {
			return item, nil
		}
	}
	return content.Item{}, database.ErrNotFound
}

func (f *fakeStore) SearchSaved(ctx context.Context, filter content.SavedFilter) ([]content.Item, error) {
	var out []content.Item
	for _, item := range f.items {
		if filter.Query != "" && !strings.Contains(strings.ToLower(item.Title()), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.Source != "" && item.Source() != filter.Source {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeStore) Search(ctx context.Context, query string, criteria content.Criteria, limit int) ([]content.Item, error) {
	return f.SearchSaved(ctx, content.SavedFilter{Query: query, Source: criteria.Source})
}

func (f *fakeStore) Delete(ctx context.Context, source content.Source, id string) (bool, error) {
	k := key(source, id)
	if _, ok := f.items[k]; !ok {
		return false, nil
	}
	delete(f.items, k)
	return true, nil
}

func (f *fakeStore) Find(ctx context.Context, options ...content.Option) ([]content.Item, error) {
	var out []content.Item
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeStore) Count(ctx context.Context, options ...content.Option) (int64, error) {
	return int64(len(f.items)), nil
}

type fakeAdapter struct {
	source    content.Source
	caps      ingest.Capabilities
	item      content.Item
	found     bool
	searchHit []content.Item
	err       error
}

func (a *fakeAdapter) Source() content.Source            { return a.source }
func (a *fakeAdapter) Capabilities() ingest.Capabilities { return a.caps }

func (a *fakeAdapter) FetchByURL(ctx context.Context, url string) (content.Item, bool, error) {
	return a.item, a.found, a.err
}

func (a *fakeAdapter) FetchByID(ctx context.Context, id string) (content.Item, bool, error) {
	return a.item, a.found, a.err
}

func (a *fakeAdapter) Search(ctx context.Context, query string, limit int) ([]content.Item, error) {
	return a.searchHit, a.err
}

func (a *fakeAdapter) ListRecent(ctx context.Context, limit int) ([]content.Item, error) {
	return a.searchHit, a.err
}

func mustItem(t *testing.T, source content.Source, id, title string) content.Item {
	t.Helper()
	item, err := content.NewItem(source, id, content.TypeVideo, title, "https://example.com/"+id)
	require.NoError(t, err)
	return item
}

func allCaps() ingest.Capabilities {
	return ingest.Capabilities{
		ingest.CapabilityFetchByURL: true,
		ingest.CapabilityFetchByID:  true,
		ingest.CapabilitySearch:     true,
		ingest.CapabilityListRecent: true,
	}
}

func strPtr(s string) *string { return &s }

func TestSaveFromURLAppliesOverrides(t *testing.T) {
	store := newFakeStore()
	fetched := mustItem(t, content.SourceYouTube, "vid1", "Original Title")
	library := NewLibrary(store, ingest.Registry{
		content.SourceYouTube: &fakeAdapter{source: content.SourceYouTube, caps: allCaps(), item: fetched, found: true},
	}, nil)

	saved, err := library.SaveFromURL(context.Background(), SaveParams{
		Source:           content.SourceYouTube,
		URL:              "https://youtu.be/vid1",
		Title:            strPtr("Butterfly Recovery Drill"),
		DrillTags:        []string{"butterfly", "recovery"},
		Difficulty:       strPtr("INTERMEDIATE"),
		Equipment:        strPtr("pucks, cones"),
		AgeGroup:         strPtr("bantam"),
		DrillDescription: strPtr("Down-up sequence with lateral push"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Butterfly Recovery Drill", saved.Title())
	assert.Equal(t, []string{"butterfly", "recovery"}, saved.DrillTags())
	assert.Equal(t, content.DifficultyIntermediate, saved.Difficulty())
	assert.Equal(t, "pucks, cones", saved.Equipment())
	assert.False(t, saved.SavedAt().IsZero())

	stored, err := store.GetByKey(context.Background(), content.SourceYouTube, "vid1")
	require.NoError(t, err)
	assert.Equal(t, "Butterfly Recovery Drill", stored.Title())
}

func TestSaveFromURLUnknownSource(t *testing.T) {
	library := NewLibrary(newFakeStore(), ingest.Registry{}, nil)

	_, err := library.SaveFromURL(context.Background(), SaveParams{
		Source: content.SourceYouTube,
		URL:    "https://youtu.be/vid1",
	})
	assert.True(t, errors.Is(err, ErrUnknownSource))
}

func TestSaveFromURLUnresolvable(t *testing.T) {
	library := NewLibrary(newFakeStore(), ingest.Registry{
		content.SourceYouTube: &fakeAdapter{source: content.SourceYouTube, caps: allCaps(), found: false},
	}, nil)

	_, err := library.SaveFromURL(context.Background(), SaveParams{
		Source: content.SourceYouTube,
		URL:    "https://example.com/nope",
	})
	assert.True(t, errors.Is(err, ErrContentNotFound))
}

func TestSaveFromURLInvalidDifficulty(t *testing.T) {
	fetched := mustItem(t, content.SourceYouTube, "vid1", "Drill")
	library := NewLibrary(newFakeStore(), ingest.Registry{
		content.SourceYouTube: &fakeAdapter{source: content.SourceYouTube, caps: allCaps(), item: fetched, found: true},
	}, nil)

	_, err := library.SaveFromURL(context.Background(), SaveParams{
		Source:     content.SourceYouTube,
		URL:        "https://youtu.be/vid1",
		Difficulty: strPtr("impossible"),
	})
	assert.True(t, errors.Is(err, content.ErrValidation))
}

func TestUpdateMetadataPreservesUntouchedFields(t *testing.T) {
	store := newFakeStore()
	item := mustItem(t, content.SourceReddit, "abc123", "Angles clinic").
		WithDrillTags([]string{"angles"}).
		WithEquipment("cones")
	saved, err := store.Save(context.Background(), item)
	require.NoError(t, err)
	firstSavedAt := saved.SavedAt()

	library := NewLibrary(store, ingest.Registry{}, nil)
	updated, err := library.UpdateMetadata(context.Background(), "abc123", MetadataParams{
		Difficulty: strPtr("advanced"),
	})
	require.NoError(t, err)

	assert.Equal(t, content.DifficultyAdvanced, updated.Difficulty())
	assert.Equal(t, []string{"angles"}, updated.DrillTags())
	assert.Equal(t, "cones", updated.Equipment())
	assert.Equal(t, firstSavedAt, updated.SavedAt())
}

func TestUpdateMetadataNotFound(t *testing.T) {
	library := NewLibrary(newFakeStore(), ingest.Registry{}, nil)

	_, err := library.UpdateMetadata(context.Background(), "missing", MetadataParams{})
	assert.True(t, errors.Is(err, ErrContentNotFound))
}

func TestDelete(t *testing.T) {
	store := newFakeStore()
	_, err := store.Save(context.Background(), mustItem(t, content.SourceTikTok, "987", "Post save push"))
	require.NoError(t, err)

	library := NewLibrary(store, ingest.Registry{}, nil)
	require.NoError(t, library.Delete(context.Background(), "987"))

	err = library.Delete(context.Background(), "987")
	assert.True(t, errors.Is(err, ErrContentNotFound))
}

func TestSearchSourcesSkipsFailingAdapter(t *testing.T) {
	ytItem := mustItem(t, content.SourceYouTube, "vid1", "Butterfly drill")
	library := NewLibrary(newFakeStore(), ingest.Registry{
		content.SourceYouTube: &fakeAdapter{
			source: content.SourceYouTube, caps: allCaps(),
			searchHit: []content.Item{ytItem},
		},
		content.SourceReddit: &fakeAdapter{
			source: content.SourceReddit, caps: allCaps(),
			err: ingest.ErrUpstream,
		},
	}, nil)

	items, err := library.SearchSources(context.Background(), "butterfly", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "vid1", items[0].ID())
}

func TestSearchSourcesScopesToRequestedSources(t *testing.T) {
	library := NewLibrary(newFakeStore(), ingest.Registry{
		content.SourceYouTube: &fakeAdapter{
			source: content.SourceYouTube, caps: allCaps(),
			searchHit: []content.Item{mustItem(t, content.SourceYouTube, "vid1", "Drill")},
		},
		content.SourceReddit: &fakeAdapter{
			source: content.SourceReddit, caps: allCaps(),
			searchHit: []content.Item{mustItem(t, content.SourceReddit, "abc", "Post")},
		},
	}, nil)

	items, err := library.SearchSources(context.Background(), "drill", 10, content.SourceReddit)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, content.SourceReddit, items[0].Source())
}

func TestSearchSourcesExcludesNonSearchableAdapters(t *testing.T) {
	library := NewLibrary(newFakeStore(), ingest.Registry{
		content.SourceInstagram: &fakeAdapter{
			source: content.SourceInstagram,
			caps:   ingest.Capabilities{ingest.CapabilityFetchByURL: true},
			err:    ingest.ErrNotSupported,
		},
	}, nil)

	items, err := library.SearchSources(context.Background(), "drill", 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDiscoverAggregates(t *testing.T) {
	library := NewLibrary(newFakeStore(), ingest.Registry{
		content.SourceYouTube: &fakeAdapter{
			source: content.SourceYouTube, caps: allCaps(),
			searchHit: []content.Item{mustItem(t, content.SourceYouTube, "vid1", "Recent video")},
		},
		content.SourceReddit: &fakeAdapter{
			source: content.SourceReddit, caps: allCaps(),
			searchHit: []content.Item{mustItem(t, content.SourceReddit, "abc", "Hot post")},
		},
	}, nil)

	items, err := library.Discover(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
