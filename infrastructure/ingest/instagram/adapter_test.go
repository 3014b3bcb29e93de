package instagram

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
)

func TestFetchByURLReel(t *testing.T) {
	item, found, err := NewAdapter().FetchByURL(context.Background(),
		"https://www.instagram.com/reel/Cxyz_123-ab/")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "Cxyz_123-ab", item.ID())
	assert.Equal(t, content.SourceInstagram, item.Source())
	assert.Equal(t, content.TypeVideo, item.Type())
	assert.Equal(t, "Instagram Reel", item.Title())
	assert.Contains(t, item.SourceMetadata(), "note")
}

func TestFetchByURLPost(t *testing.T) {
	item, found, err := NewAdapter().FetchByURL(context.Background(),
		"https://instagram.com/p/Babc123/")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "Babc123", item.ID())
	assert.Equal(t, content.TypeImage, item.Type())
	assert.Equal(t, "Instagram Post", item.Title())
}

func TestFetchByURLUnparseable(t *testing.T) {
	_, found, err := NewAdapter().FetchByURL(context.Background(),
		"https://www.instagram.com/somecoach/")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFetchByIDBuildsPostURL(t *testing.T) {
	item, found, err := NewAdapter().FetchByID(context.Background(), "Babc123")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "https://www.instagram.com/p/Babc123/", item.URL())
	assert.Equal(t, content.TypeImage, item.Type())
}

func TestSearchNotSupported(t *testing.T) {
	_, err := NewAdapter().Search(context.Background(), "goalie drills", 10)
	assert.True(t, errors.Is(err, ingest.ErrNotSupported))

	_, err = NewAdapter().ListRecent(context.Background(), 10)
	assert.True(t, errors.Is(err, ingest.ErrNotSupported))
}

func TestCapabilities(t *testing.T) {
	caps := NewAdapter().Capabilities()
	assert.True(t, caps.Has(ingest.CapabilityFetchByURL))
	assert.True(t, caps.Has(ingest.CapabilityFetchByID))
	assert.False(t, caps.Has(ingest.CapabilitySearch))
	assert.False(t, caps.Has(ingest.CapabilityListRecent))
}
