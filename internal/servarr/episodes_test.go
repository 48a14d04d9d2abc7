package servarr

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

func TestGetEpisodesFiltersBySeason(t *testing.T) {
	client := testServer(t, route.Sonarr, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/episode", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("seriesId"))
		assert.Equal(t, "2", r.URL.Query().Get("seasonNumber"))
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 70, "seriesId": 7, "seasonNumber": 2, "episodeNumber": 1, "title": "Pilot", "hasFile": true},
		})
	})

	result, err := client.Do(context.Background(),
		network.NewRequest(route.Sonarr, network.OpGetEpisodes, network.SeasonParams{SeriesID: 7, SeasonNumber: 2}))
	require.NoError(t, err)
	episodes, ok := result.([]models.Episode)
	require.True(t, ok, "unexpected result %T", result)
	require.Len(t, episodes, 1)
	assert.Equal(t, "Pilot", episodes[0].Title)
	assert.True(t, episodes[0].HasFile)
}

func TestEpisodeCommands(t *testing.T) {
	var bodies []map[string]any
	client := testServer(t, route.Sonarr, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v3/command", r.URL.Path)
		bodies = append(bodies, readBody(t, r))
		writeJSON(w, http.StatusCreated, map[string]any{"id": 1})
	})

	require.NoError(t, client.TriggerEpisodeSearch(context.Background(), 70))
	require.NoError(t, client.TriggerSeasonSearch(context.Background(), network.SeasonParams{SeriesID: 7, SeasonNumber: 2}))
	require.Len(t, bodies, 2)
	assert.Equal(t, "EpisodeSearch", bodies[0]["name"])
	assert.Equal(t, []any{float64(70)}, bodies[0]["episodeIds"])
	assert.Equal(t, "SeasonSearch", bodies[1]["name"])
	assert.Equal(t, float64(7), bodies[1]["seriesId"])
	assert.Equal(t, float64(2), bodies[1]["seasonNumber"])
}

func TestSetEpisodesMonitored(t *testing.T) {
	client := testServer(t, route.Sonarr, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v3/episode/monitor", r.URL.Path)
		body := readBody(t, r)
		assert.Equal(t, []any{float64(70), float64(71)}, body["episodeIds"])
		assert.Equal(t, false, body["monitored"])
		w.WriteHeader(http.StatusAccepted)
	})
	require.NoError(t, client.SetEpisodesMonitored(context.Background(), network.MonitorParams{IDs: []int64{70, 71}}))
}

func TestToggleSeasonMonitoringSendsSeriesBack(t *testing.T) {
	var item models.MediaItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"title":"Andor","customField":"kept","seasons":[
		{"seasonNumber":1,"monitored":true},
		{"seasonNumber":2,"monitored":false}
	]}`), &item))

	client := testServer(t, route.Sonarr, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v3/series/7", r.URL.Path)
		body := readBody(t, r)
		assert.Equal(t, "kept", body["customField"])
		seasons := body["seasons"].([]any)
		assert.Equal(t, true, seasons[0].(map[string]any)["monitored"])
		assert.Equal(t, true, seasons[1].(map[string]any)["monitored"])
		writeJSON(w, http.StatusAccepted, map[string]any{"id": 7})
	})

	err := client.ToggleSeasonMonitoring(context.Background(), network.ToggleSeasonMonitoringParams{Series: item, SeasonNumber: 2})
	require.NoError(t, err)

	err = client.ToggleSeasonMonitoring(context.Background(), network.ToggleSeasonMonitoringParams{Series: item, SeasonNumber: 9})
	assert.ErrorContains(t, err, "season 9 not found")
}

func TestSeasonCallsNeedSonarr(t *testing.T) {
	client := testServer(t, route.Radarr, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s", r.URL.Path)
	})
	_, err := client.GetEpisodes(context.Background(), network.SeasonParams{SeriesID: 1})
	assert.ErrorIs(t, err, ErrUnsupported)
}
