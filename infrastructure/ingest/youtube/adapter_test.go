package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
)

func videoJSON(id, title string) map[string]any {
	return map[string]any{
		"id": id,
		"snippet": map[string]any{
			"title":        title,
			"description":  "Butterfly recovery progression",
			"channelId":    "UCgoalie",
			"channelTitle": "Goalie Coach TV",
			"categoryId":   "17",
			"publishedAt":  "2026-05-01T12:00:00Z",
			"thumbnails": map[string]any{
				"high": map[string]any{"url": "https://i.ytimg.com/" + id + "/hq.jpg"},
			},
		},
		"statistics": map[string]any{
			"viewCount":    "1500",
			"likeCount":    "120",
			"commentCount": "8",
		},
		"contentDetails": map[string]any{"duration": "PT4M13S"},
	}
}

func newTestAdapter(t *testing.T, handler http.HandlerFunc, terms ...string) *Adapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient("test-key", WithBaseURL(server.URL))
	return NewAdapter(client, terms)
}

func TestAdapterSearch(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/youtube/v3/search":
			assert.Equal(t, "butterfly drill", r.URL.Query().Get("q"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{"id": map[string]any{"kind": "youtube#video", "videoId": "dQw4w9WgXcQ"}},
					{"id": map[string]any{"kind": "youtube#channel", "channelId": "UCx"}},
				},
			})
		case "/youtube/v3/videos":
			assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("id"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{videoJSON("dQw4w9WgXcQ", "Butterfly Drill Basics")},
			})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})

	items, err := adapter.Search(context.Background(), "butterfly drill", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "dQw4w9WgXcQ", item.ID())
	assert.Equal(t, content.SourceYouTube, item.Source())
	assert.Equal(t, content.TypeVideo, item.Type())
	assert.Equal(t, "Butterfly Drill Basics", item.Title())
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", item.URL())
	assert.Equal(t, "Goalie Coach TV", item.Author())
	assert.Equal(t, "https://i.ytimg.com/dQw4w9WgXcQ/hq.jpg", item.ThumbnailURL())
	require.NotNil(t, item.ViewCount())
	assert.Equal(t, int64(1500), *item.ViewCount())
	require.NotNil(t, item.LikeCount())
	assert.Equal(t, int64(120), *item.LikeCount())

	meta := item.SourceMetadata()
	assert.Equal(t, "UCgoalie", meta["channel_id"])
	assert.Equal(t, "PT4M13S", meta["duration"])
}

func TestAdapterFetchByURL(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/youtube/v3/videos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{videoJSON("abcDEF12345", "Crease Movement")},
		})
	})

	item, found, err := adapter.FetchByURL(context.Background(), "https://youtu.be/abcDEF12345")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "abcDEF12345", item.ID())
}

func TestAdapterFetchByURLUnparseable(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an unparseable URL")
	})

	_, found, err := adapter.FetchByURL(context.Background(), "https://example.com/not-youtube")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdapterFetchByIDNotFound(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{}})
	})

	_, found, err := adapter.FetchByID(context.Background(), "missing11id")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdapterUpstreamError(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := adapter.Search(context.Background(), "goalie drills", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ingest.ErrUpstream))
}

func TestAdapterListRecentDeduplicates(t *testing.T) {
	searchCalls := 0
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/youtube/v3/search":
			searchCalls++
			assert.Equal(t, "date", r.URL.Query().Get("order"))
			// Both terms return the same video plus one unique each.
			unique := "uniqueAAAA" + map[int]string{1: "1", 2: "2"}[searchCalls]
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{"id": map[string]any{"kind": "youtube#video", "videoId": "sharedVID01"}},
					{"id": map[string]any{"kind": "youtube#video", "videoId": unique}},
				},
			})
		case "/youtube/v3/videos":
			ids := r.URL.Query().Get("id")
			assert.Contains(t, ids, "sharedVID01")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					videoJSON("sharedVID01", "Shared"),
					videoJSON("uniqueAAAA1", "First"),
					videoJSON("uniqueAAAA2", "Second"),
				},
			})
		}
	}, "goalie drills", "goaltender practice")

	items, err := adapter.ListRecent(context.Background(), 10)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, item := range items {
		seen[item.ID()]++
	}
	assert.Equal(t, 1, seen["sharedVID01"])
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtube.com/shorts/abcDEF12345", "abcDEF12345", true},
		{"https://youtu.be/abcDEF12345", "abcDEF12345", true},
		{"https://www.youtube.com/watch?v=tooshort", "", false},
		{"https://vimeo.com/12345", "", false},
	}
	for _, tt := range tests {
		got, ok := ExtractVideoID(tt.url)
		assert.Equal(t, tt.ok, ok, tt.url)
		assert.Equal(t, tt.want, got, tt.url)
	}
}
