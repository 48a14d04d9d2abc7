package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaItemDecodesEachBackend(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		title      string
		network    string
		externalID string
		size       int64
	}{
		{
			name:       "movie",
			body:       `{"id":1,"title":"Heat","studio":"Warner","tmdbId":949,"sizeOnDisk":1024,"originalLanguage":{"id":1,"name":"English"}}`,
			title:      "Heat",
			network:    "Warner",
			externalID: "949",
			size:       1024,
		},
		{
			name:       "series",
			body:       `{"id":2,"title":"Andor","network":"Disney+","tvdbId":393189,"statistics":{"sizeOnDisk":2048}}`,
			title:      "Andor",
			network:    "Disney+",
			externalID: "393189",
			size:       2048,
		},
		{
			name:       "artist",
			body:       `{"id":3,"artistName":"Boards of Canada","artistType":"Group","foreignArtistId":"69158f97","statistics":{"sizeOnDisk":4096}}`,
			title:      "Boards of Canada",
			network:    "Group",
			externalID: "69158f97",
			size:       4096,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item MediaItem
			require.NoError(t, json.Unmarshal([]byte(tt.body), &item))
			assert.Equal(t, tt.title, item.Title)
			assert.Equal(t, tt.network, item.Network)
			assert.Equal(t, tt.externalID, item.ExternalID)
			assert.Equal(t, tt.size, item.SizeOnDisk)
			assert.JSONEq(t, tt.body, string(item.Raw))
		})
	}
}

func TestRawFieldsKeepsUnknownKeys(t *testing.T) {
	var item MediaItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"title":"Alien","addOptions":{"searchForMovie":true}}`), &item))
	fields, err := item.RawFields()
	require.NoError(t, err)
	assert.Contains(t, fields, "addOptions")
	assert.Equal(t, float64(7), fields["id"])

	empty, err := MediaItem{}.RawFields()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestIndexerFieldAndRaw(t *testing.T) {
	body := `{"id":1,"name":"Nyaa","protocol":"torrent","fields":[{"name":"baseUrl","value":"https://nyaa.si"},{"name":"seedCriteria.seedRatio","value":1.5},{"name":"apiKey"}],"extra":true}`
	var indexer Indexer
	require.NoError(t, json.Unmarshal([]byte(body), &indexer))
	assert.Equal(t, "https://nyaa.si", indexer.Field("baseUrl"))
	assert.Equal(t, "1.5", indexer.Field("seedCriteria.seedRatio"))
	assert.Equal(t, "", indexer.Field("apiKey"))
	assert.True(t, indexer.IsTorrent())
	assert.JSONEq(t, body, string(indexer.Raw))
}

func TestMetadataLookups(t *testing.T) {
	meta := Metadata{
		QualityProfiles: []QualityProfile{{ID: 1, Name: "HD-1080p"}},
		Tags:            []Tag{{ID: 1, Label: "kids"}, {ID: 3, Label: "4k"}},
	}
	assert.Equal(t, "HD-1080p", meta.QualityProfileName(1))
	assert.Equal(t, "", meta.QualityProfileName(9))
	assert.Equal(t, []string{"4k", "kids"}, meta.TagLabels([]int64{3, 2, 1}))
}

func TestQueueItemProgress(t *testing.T) {
	assert.InDelta(t, 0.75, QueueItem{Size: 100, SizeLeft: 25}.Progress(), 1e-9)
	assert.Zero(t, QueueItem{}.Progress())
}

func TestSeriesCarriesItsSeasons(t *testing.T) {
	body := `{"id":2,"title":"Andor","seasons":[
		{"seasonNumber":0,"monitored":false},
		{"seasonNumber":1,"monitored":true,"statistics":{"episodeFileCount":10,"episodeCount":12,"sizeOnDisk":2048}}
	]}`
	var item MediaItem
	require.NoError(t, json.Unmarshal([]byte(body), &item))
	require.Len(t, item.Seasons, 2)
	assert.Equal(t, "Specials", item.Seasons[0].Title())
	assert.Equal(t, "Season 1", item.Seasons[1].Title())
	assert.True(t, item.Seasons[1].Monitored)
	assert.Equal(t, int64(10), item.Seasons[1].Statistics.EpisodeFileCount)
}
