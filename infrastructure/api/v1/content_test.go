package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creaselab/crease/application/service"
	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
	"github.com/creaselab/crease/infrastructure/api"
	"github.com/creaselab/crease/infrastructure/api/v1/dto"
	"github.com/creaselab/crease/infrastructure/persistence"
	"github.com/creaselab/crease/internal/database"
)

type stubAdapter struct {
	item  content.Item
	found bool
}

func (a stubAdapter) Source() content.Source { return content.SourceYouTube }

func (a stubAdapter) Capabilities() ingest.Capabilities {
	return ingest.Capabilities{
		ingest.CapabilityFetchByURL: true,
		ingest.CapabilityFetchByID:  true,
		ingest.CapabilitySearch:     true,
		ingest.CapabilityListRecent: true,
	}
}

func (a stubAdapter) FetchByURL(ctx context.Context, url string) (content.Item, bool, error) {
	return a.item, a.found, nil
}

func (a stubAdapter) FetchByID(ctx context.Context, id string) (content.Item, bool, error) {
	return a.item, a.found, nil
}

func (a stubAdapter) Search(ctx context.Context, query string, limit int) ([]content.Item, error) {
	return nil, nil
}

func (a stubAdapter) ListRecent(ctx context.Context, limit int) ([]content.Item, error) {
	return nil, nil
}

func newTestServer(t *testing.T, adapters ingest.Registry) *httptest.Server {
	t.Helper()

	db, err := database.NewDatabase(context.Background(), "sqlite:///:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, persistence.Migrate(db))

	store := persistence.NewContentStore(db)
	library := service.NewLibrary(store, adapters, nil)

	server := httptest.NewServer(api.NewServer("127.0.0.1:0", library, nil).Router())
	t.Cleanup(server.Close)
	return server
}

func fetchedItem(t *testing.T) content.Item {
	t.Helper()
	item, err := content.NewItem(content.SourceYouTube, "dQw4w9WgXcQ", content.TypeVideo,
		"Butterfly Drill Basics", "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	return item.WithAuthor("Goalie Coach TV")
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func decodeItem(t *testing.T, resp *http.Response) dto.ContentItemResponse {
	t.Helper()
	defer resp.Body.Close()
	var item dto.ContentItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	return item
}

func TestSaveContent(t *testing.T) {
	server := newTestServer(t, ingest.Registry{
		content.SourceYouTube: stubAdapter{item: fetchedItem(t), found: true},
	})

	resp := postJSON(t, server.URL+"/api/v1/content", dto.SaveContentRequest{
		URL:        "https://youtu.be/dQw4w9WgXcQ",
		Source:     "youtube",
		DrillTags:  []string{"butterfly"},
		Difficulty: ptr("beginner"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	item := decodeItem(t, resp)
	assert.Equal(t, "dQw4w9WgXcQ", item.ID)
	assert.Equal(t, "YouTube", item.Source)
	assert.Equal(t, []string{"butterfly"}, item.DrillTags)
	assert.Equal(t, "Beginner", item.Difficulty)
	assert.NotNil(t, item.SavedAt)
}

func TestSaveContentUnknownSource(t *testing.T) {
	server := newTestServer(t, ingest.Registry{})

	resp := postJSON(t, server.URL+"/api/v1/content", dto.SaveContentRequest{
		URL:    "https://example.com/x",
		Source: "myspace",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSaveContentUnresolvableURL(t *testing.T) {
	server := newTestServer(t, ingest.Registry{
		content.SourceYouTube: stubAdapter{found: false},
	})

	resp := postJSON(t, server.URL+"/api/v1/content", dto.SaveContentRequest{
		URL:    "https://youtu.be/unknown",
		Source: "youtube",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetContent(t *testing.T) {
	server := newTestServer(t, ingest.Registry{
		content.SourceYouTube: stubAdapter{item: fetchedItem(t), found: true},
	})
	postJSON(t, server.URL+"/api/v1/content", dto.SaveContentRequest{
		URL: "https://youtu.be/dQw4w9WgXcQ", Source: "youtube",
	}).Body.Close()

	resp, err := http.Get(server.URL + "/api/v1/content/dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	item := decodeItem(t, resp)
	assert.Equal(t, "Butterfly Drill Basics", item.Title)
}

func TestGetContentNotFound(t *testing.T) {
	server := newTestServer(t, ingest.Registry{})

	resp, err := http.Get(server.URL + "/api/v1/content/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMetadata(t *testing.T) {
	server := newTestServer(t, ingest.Registry{
		content.SourceYouTube: stubAdapter{item: fetchedItem(t), found: true},
	})
	postJSON(t, server.URL+"/api/v1/content", dto.SaveContentRequest{
		URL: "https://youtu.be/dQw4w9WgXcQ", Source: "youtube",
		DrillTags: []string{"butterfly"},
	}).Body.Close()

	buf, err := json.Marshal(dto.UpdateMetadataRequest{Difficulty: ptr("ADVANCED")})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut,
		server.URL+"/api/v1/content/dQw4w9WgXcQ/metadata", bytes.NewReader(buf))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	item := decodeItem(t, resp)
	assert.Equal(t, "Advanced", item.Difficulty)
	// fields not in the request survive
	assert.Equal(t, []string{"butterfly"}, item.DrillTags)
}

func TestDeleteContent(t *testing.T) {
	server := newTestServer(t, ingest.Registry{
		content.SourceYouTube: stubAdapter{item: fetchedItem(t), found: true},
	})
	postJSON(t, server.URL+"/api/v1/content", dto.SaveContentRequest{
		URL: "https://youtu.be/dQw4w9WgXcQ", Source: "youtube",
	}).Body.Close()

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/v1/content/dQw4w9WgXcQ", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// second delete finds nothing
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListContentFilters(t *testing.T) {
	server := newTestServer(t, ingest.Registry{
		content.SourceYouTube: stubAdapter{item: fetchedItem(t), found: true},
	})
	postJSON(t, server.URL+"/api/v1/content", dto.SaveContentRequest{
		URL: "https://youtu.be/dQw4w9WgXcQ", Source: "youtube",
		Difficulty: ptr("beginner"),
	}).Body.Close()

	resp, err := http.Get(server.URL + "/api/v1/content?query=butterfly&source=youtube&difficulty=beginner")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var list dto.ContentListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "dQw4w9WgXcQ", list.Items[0].ID)

	resp, err = http.Get(server.URL + "/api/v1/content?query=slapshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	var empty dto.ContentListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&empty))
	assert.Equal(t, 0, empty.Total)
}

func ptr(s string) *string { return &s }
