package servarr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

func testServer(t *testing.T, backend route.Backend, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(backend, Config{URI: srv.URL, APIToken: "test-key"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:7878", BaseURL(Config{}, 7878))
	assert.Equal(t, "https://media.lan:443", BaseURL(Config{Host: "media.lan", Port: 443, SSL: true}, 7878))
	assert.Equal(t, "http://proxy/radarr", BaseURL(Config{URI: "http://proxy/radarr/", Host: "ignored"}, 7878))
}

func TestAPIPrefixPerBackend(t *testing.T) {
	cases := map[route.Backend]string{
		route.Radarr: "/api/v3/movie",
		route.Sonarr: "/api/v3/series",
		route.Lidarr: "/api/v1/artist",
	}
	for backend, want := range cases {
		client := testServer(t, backend, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, want, r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "title": "one"}})
		})
		items, err := client.GetLibrary(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, 1)
	}
}

func TestDoDecodesLibrary(t *testing.T) {
	client := testServer(t, route.Sonarr, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 4, "title": "Severance", "network": "Apple TV+", "tvdbId": 371980},
		})
	})

	result, err := client.Do(context.Background(), network.NewRequest(route.Sonarr, network.OpGetLibrary, nil))
	require.NoError(t, err)
	items, ok := result.([]models.MediaItem)
	require.True(t, ok, "unexpected result %T", result)
	require.Len(t, items, 1)
	assert.Equal(t, "Apple TV+", items[0].Network)
	assert.Equal(t, "371980", items[0].ExternalID)
}

func TestErrorBodyIsSurfaced(t *testing.T) {
	client := testServer(t, route.Radarr, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "NotFound"})
	})

	_, err := client.Do(context.Background(), network.NewRequest(route.Radarr, network.OpGetHistory, nil))
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NotFound", apiErr.Message)
	assert.Contains(t, err.Error(), "Radarr GetHistory")
}

func TestValidationFailuresAreJoined(t *testing.T) {
	msg, ok := extractAPIErrorBody([]byte(`[{"propertyName":"Path","errorMessage":"Path is required"},{"errorMessage":"Folder missing"}]`))
	require.True(t, ok)
	assert.Equal(t, "Path is required; Folder missing", msg)

	msg, ok = extractAPIErrorBody([]byte("Unauthorized"))
	require.True(t, ok)
	assert.Equal(t, "Unauthorized", msg)

	_, ok = extractAPIErrorBody(nil)
	assert.False(t, ok)
}

func TestDeleteMediaQuery(t *testing.T) {
	cases := map[route.Backend]string{
		route.Radarr: "addImportExclusion",
		route.Sonarr: "addImportListExclusion",
	}
	for backend, exclusion := range cases {
		client := testServer(t, backend, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "true", r.URL.Query().Get("deleteFiles"))
			assert.Equal(t, "false", r.URL.Query().Get(exclusion))
			w.WriteHeader(http.StatusOK)
		})
		req := network.NewRequest(backend, network.OpDeleteMedia, network.DeleteMediaParams{ID: 9, DeleteFiles: true})
		result, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, result)
	}
}

func TestEditMediaCreatesMissingTags(t *testing.T) {
	var (
		mu     sync.Mutex
		posted []string
		edited map[string]any
	)
	client := testServer(t, route.Radarr, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/tag":
			writeJSON(w, http.StatusOK, []models.Tag{{ID: 1, Label: "hd"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v3/tag":
			body := readBody(t, r)
			posted = append(posted, body["label"].(string))
			writeJSON(w, http.StatusCreated, models.Tag{ID: 7, Label: body["label"].(string)})
		case r.Method == http.MethodPut && r.URL.Path == "/api/v3/movie/3":
			assert.Equal(t, "true", r.URL.Query().Get("moveFiles"))
			edited = readBody(t, r)
			w.WriteHeader(http.StatusAccepted)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	var item models.MediaItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"title":"Alien","path":"/old","monitored":false,"qualityProfileId":1,"minimumAvailability":"released"}`), &item))
	req := network.NewRequest(route.Radarr, network.OpEditMedia, network.EditMediaParams{
		Item:             item,
		Monitored:        true,
		QualityProfileID: 4,
		Path:             "/new",
		Tags:             "HD, Kids",
	})
	_, err := client.Do(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"kids"}, posted)
	require.NotNil(t, edited)
	assert.Equal(t, true, edited["monitored"])
	assert.Equal(t, "/new", edited["path"])
	assert.EqualValues(t, 4, edited["qualityProfileId"])
	assert.Equal(t, []any{float64(1), float64(7)}, edited["tags"])
	assert.Equal(t, "released", edited["minimumAvailability"], "unmodelled fields round-trip")
}

func TestAddMediaUsesAddOptions(t *testing.T) {
	var added map[string]any
	client := testServer(t, route.Lidarr, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/v1/artist" {
			added = readBody(t, r)
		}
		w.WriteHeader(http.StatusCreated)
	})

	var item models.MediaItem
	require.NoError(t, json.Unmarshal([]byte(`{"artistName":"Nils Frahm","foreignArtistId":"abc"}`), &item))
	req := network.NewRequest(route.Lidarr, network.OpAddMedia, network.AddMediaParams{
		Item:             item,
		RootFolderPath:   "/music",
		QualityProfileID: 2,
		Monitored:        true,
	})
	_, err := client.Do(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, added)
	assert.Equal(t, "/music", added["rootFolderPath"])
	assert.EqualValues(t, 1, added["metadataProfileId"])
	opts, ok := added["addOptions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, opts["searchForMissingAlbums"])
	assert.Equal(t, []any{}, added["tags"])
}

func TestCommandBodies(t *testing.T) {
	cases := []struct {
		backend route.Backend
		op      network.Operation
		params  any
		want    map[string]any
	}{
		{route.Radarr, network.OpTriggerAutomaticSearch, network.IDParams{ID: 5}, map[string]any{"name": "MoviesSearch", "movieIds": []any{float64(5)}}},
		{route.Radarr, network.OpUpdateAllLibrary, nil, map[string]any{"name": "RefreshMovie", "movieIds": []any{}}},
		{route.Sonarr, network.OpUpdateAndScan, network.IDParams{ID: 2}, map[string]any{"name": "RefreshSeries", "seriesId": float64(2)}},
		{route.Lidarr, network.OpUpdateDownloads, nil, map[string]any{"name": "RefreshMonitoredDownloads"}},
		{route.Sonarr, network.OpStartTask, network.StartTaskParams{TaskName: "RssSync"}, map[string]any{"name": "RssSync"}},
	}
	for _, tc := range cases {
		var got map[string]any
		client := testServer(t, tc.backend, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/command", r.URL.Path[len(r.URL.Path)-len("/command"):])
			got = readBody(t, r)
			writeJSON(w, http.StatusCreated, map[string]any{"id": 1})
		})
		_, err := client.Do(context.Background(), network.NewRequest(tc.backend, tc.op, tc.params))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s", tc.backend, tc.op)
	}
}

func TestPagedEndpoints(t *testing.T) {
	client := testServer(t, route.Radarr, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/blocklist":
			assert.Equal(t, "10000", r.URL.Query().Get("pageSize"))
			writeJSON(w, http.StatusOK, models.Page[models.BlocklistItem]{Records: []models.BlocklistItem{{ID: 1}, {ID: 2}}})
		case "/api/v3/log":
			assert.Equal(t, "25", r.URL.Query().Get("pageSize"))
			assert.Equal(t, "time", r.URL.Query().Get("sortKey"))
			writeJSON(w, http.StatusOK, models.Page[models.LogEntry]{Records: []models.LogEntry{{Message: "hi"}}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	items, err := client.GetBlocklist(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	result, err := client.Do(context.Background(), network.NewRequest(route.Radarr, network.OpGetLogs, network.LogsParams{PageSize: 25}))
	require.NoError(t, err)
	logs := result.([]models.LogEntry)
	require.Len(t, logs, 1)
	assert.Equal(t, "hi", logs[0].Message)
}

func TestClearBlocklistSendsIDs(t *testing.T) {
	var body map[string]any
	client := testServer(t, route.Sonarr, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v3/blocklist/bulk", r.URL.Path)
		body = readBody(t, r)
	})
	_, err := client.Do(context.Background(), network.NewRequest(route.Sonarr, network.OpClearBlocklist, network.IDsParams{IDs: []int64{3, 4}}))
	require.NoError(t, err)
	assert.Equal(t, []any{float64(3), float64(4)}, body["ids"])
}

func TestTestIndexerReturnsValidationMessage(t *testing.T) {
	client := testServer(t, route.Radarr, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/indexer/2":
			writeJSON(w, http.StatusOK, map[string]any{"id": 2, "name": "idx"})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v3/indexer/test":
			assert.Equal(t, "idx", readBody(t, r)["name"])
			writeJSON(w, http.StatusBadRequest, []models.ValidationFailure{{ErrorMessage: "Unable to connect"}})
		}
	})
	result, err := client.Do(context.Background(), network.NewRequest(route.Radarr, network.OpTestIndexer, network.IDParams{ID: 2}))
	require.NoError(t, err)
	assert.Equal(t, "Unable to connect", result)
}

func TestTestAllIndexersAcceptsPartialFailure(t *testing.T) {
	client := testServer(t, route.Radarr, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, []models.IndexerTestResult{
			{ID: 1, IsValid: true},
			{ID: 2, IsValid: false, ValidationFailures: []models.ValidationFailure{{ErrorMessage: "timeout"}}},
		})
	})
	results, err := client.TestAllIndexers(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[1].IsValid)
}

func TestEditIndexerRewritesFields(t *testing.T) {
	var body map[string]any
	client := testServer(t, route.Radarr, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			assert.Equal(t, "/api/v3/indexer/3", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("forceSave"))
			body = readBody(t, r)
		}
	})

	var indexer models.Indexer
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"old","protocol":"torrent","fields":[{"name":"baseUrl","value":"http://a"},{"name":"apiKey","value":"k"},{"name":"seedCriteria.seedRatio","value":1}]}`), &indexer))
	req := network.NewRequest(route.Radarr, network.OpEditIndexer, network.EditIndexerParams{
		Indexer:   indexer,
		Name:      "new",
		URL:       "http://b",
		APIKey:    "k2",
		SeedRatio: "1.5",
		Priority:  10,
		EnableRss: true,
	})
	_, err := client.Do(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, body)
	assert.Equal(t, "new", body["name"])
	assert.EqualValues(t, 10, body["priority"])
	fields := body["fields"].([]any)
	values := map[string]any{}
	for _, f := range fields {
		field := f.(map[string]any)
		values[field["name"].(string)] = field["value"]
	}
	assert.Equal(t, "http://b", values["baseUrl"])
	assert.Equal(t, "k2", values["apiKey"])
	assert.Equal(t, 1.5, values["seedCriteria.seedRatio"])
}

func TestGetMetadataFetchesInParallel(t *testing.T) {
	client := testServer(t, route.Radarr, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/qualityprofile":
			writeJSON(w, http.StatusOK, []models.QualityProfile{{ID: 1, Name: "HD-1080p"}})
		case "/api/v3/tag":
			writeJSON(w, http.StatusOK, []models.Tag{{ID: 2, Label: "kids"}})
		case "/api/v3/diskspace":
			writeJSON(w, http.StatusOK, []models.DiskSpace{{Path: "/", FreeSpace: 10}})
		case "/api/v3/rootfolder":
			writeJSON(w, http.StatusOK, []models.RootFolder{{ID: 3, Path: "/movies"}})
		case "/api/v3/system/status":
			writeJSON(w, http.StatusOK, models.SystemStatus{Version: "5.0"})
		}
	})
	result, err := client.Do(context.Background(), network.NewRequest(route.Radarr, network.OpGetMetadata, nil))
	require.NoError(t, err)
	meta := result.(models.Metadata)
	assert.Equal(t, "HD-1080p", meta.QualityProfileName(1))
	assert.Equal(t, []string{"kids"}, meta.TagLabels([]int64{2}))
	assert.Equal(t, "/movies", meta.RootFolders[0].Path)
	assert.Equal(t, "5.0", meta.Status.Version)
}

func TestGetMetadataFailsAsAWhole(t *testing.T) {
	client := testServer(t, route.Radarr, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v3/diskspace" {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "disk error"})
			return
		}
		writeJSON(w, http.StatusOK, []any{})
	})
	_, err := client.GetMetadata(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk space")
}

func TestParamsMismatch(t *testing.T) {
	client := NewClient(route.Radarr, Config{})
	_, err := client.Do(context.Background(), network.NewRequest(route.Radarr, network.OpDeleteDownload, "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected params string")
}

func TestClientsRouteByBackend(t *testing.T) {
	radarr := testServer(t, route.Radarr, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.SystemStatus{Version: "radarr"})
	})
	clients := Clients{route.Radarr: radarr}
	assert.Equal(t, []route.Backend{route.Radarr}, clients.Backends())

	result, err := clients.Do(context.Background(), network.NewRequest(route.Radarr, network.OpGetStatus, nil))
	require.NoError(t, err)
	assert.Equal(t, "radarr", result.(models.SystemStatus).Version)

	_, err = clients.Do(context.Background(), network.NewRequest(route.Lidarr, network.OpGetStatus, nil))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewClientsUsesDefaultPorts(t *testing.T) {
	clients := NewClients(map[route.Backend]Config{
		route.Sonarr: {Host: "nas"},
		route.Lidarr: {Host: "nas"},
	})
	assert.Equal(t, "http://nas:8989/api/v3", clients[route.Sonarr].URL())
	assert.Equal(t, "http://nas:8686/api/v1", clients[route.Lidarr].URL())
	assert.Equal(t, 7878, DefaultPort(route.Radarr))
}
