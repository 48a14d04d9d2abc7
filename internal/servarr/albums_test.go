package servarr

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

func TestGetAlbumsAndTracks(t *testing.T) {
	client := testServer(t, route.Lidarr, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/album":
			assert.Equal(t, "3", r.URL.Query().Get("artistId"))
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 30, "artistId": 3, "title": "Geogaddi", "albumType": "Album", "monitored": true,
					"statistics": map[string]any{"trackFileCount": 23, "totalTrackCount": 23}},
			})
		case "/api/v1/track":
			assert.Equal(t, "3", r.URL.Query().Get("artistId"))
			assert.Equal(t, "30", r.URL.Query().Get("albumId"))
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 300, "albumId": 30, "trackNumber": "1", "title": "Ready Lets Go", "duration": 59000},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	result, err := client.Do(context.Background(), network.NewRequest(route.Lidarr, network.OpGetAlbums, network.IDParams{ID: 3}))
	require.NoError(t, err)
	albums, ok := result.([]models.Album)
	require.True(t, ok, "unexpected result %T", result)
	require.Len(t, albums, 1)
	assert.Equal(t, "Geogaddi", albums[0].Title)
	assert.Equal(t, int64(23), albums[0].Statistics.TrackFileCount)

	result, err = client.Do(context.Background(),
		network.NewRequest(route.Lidarr, network.OpGetTracks, network.TracksParams{ArtistID: 3, AlbumID: 30}))
	require.NoError(t, err)
	tracks, ok := result.([]models.Track)
	require.True(t, ok, "unexpected result %T", result)
	require.Len(t, tracks, 1)
	assert.Equal(t, int64(59000), tracks[0].Duration)
}

func TestAlbumMutations(t *testing.T) {
	type call struct {
		method, path, query string
		body                map[string]any
	}
	var calls []call
	client := testServer(t, route.Lidarr, func(w http.ResponseWriter, r *http.Request) {
		c := call{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery}
		if r.Method != http.MethodDelete {
			c.body = readBody(t, r)
		}
		calls = append(calls, c)
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	require.NoError(t, client.SetAlbumsMonitored(ctx, network.MonitorParams{IDs: []int64{30}, Monitored: true}))
	require.NoError(t, client.TriggerAlbumSearch(ctx, 30))
	require.NoError(t, client.DeleteAlbum(ctx, network.DeleteMediaParams{ID: 30, DeleteFiles: true}))

	require.Len(t, calls, 3)
	assert.Equal(t, http.MethodPut, calls[0].method)
	assert.Equal(t, "/api/v1/album/monitor", calls[0].path)
	assert.Equal(t, []any{float64(30)}, calls[0].body["albumIds"])
	assert.Equal(t, true, calls[0].body["monitored"])

	assert.Equal(t, "/api/v1/command", calls[1].path)
	assert.Equal(t, "AlbumSearch", calls[1].body["name"])
	assert.Equal(t, []any{float64(30)}, calls[1].body["albumIds"])

	assert.Equal(t, http.MethodDelete, calls[2].method)
	assert.Equal(t, "/api/v1/album/30", calls[2].path)
	assert.Equal(t, "addImportListExclusion=false&deleteFiles=true", calls[2].query)
}

func TestAlbumCallsNeedLidarr(t *testing.T) {
	client := testServer(t, route.Sonarr, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s", r.URL.Path)
	})
	err := client.TriggerAlbumSearch(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnsupported)
}
