// Package models holds the API payloads shared by Radarr, Sonarr and Lidarr.
// The three servers use different names for the same concepts, so MediaItem
// folds movies, series and artists into one shape and keeps the raw body for
// round-tripping edits.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MediaItem is one movie, series or artist.
type MediaItem struct {
	ID               int64
	Title            string
	SortTitle        string
	Year             int
	Overview         string
	Path             string
	Status           string
	Network          string
	Genres           []string
	Runtime          int
	Certification    string
	Language         string
	QualityProfileID int64
	Monitored        bool
	HasFile          bool
	SizeOnDisk       int64
	Tags             []int64
	ExternalID       string
	Seasons          []Season
	Raw              json.RawMessage
}

type mediaWire struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	ArtistName       string          `json:"artistName"`
	SortTitle        string          `json:"sortTitle"`
	SortName         string          `json:"sortName"`
	Year             int             `json:"year"`
	Overview         string          `json:"overview"`
	Path             string          `json:"path"`
	Status           string          `json:"status"`
	Studio           string          `json:"studio"`
	Network          string          `json:"network"`
	ArtistType       string          `json:"artistType"`
	Genres           []string        `json:"genres"`
	Runtime          int             `json:"runtime"`
	Certification    string          `json:"certification"`
	OriginalLanguage *Language       `json:"originalLanguage"`
	QualityProfileID int64           `json:"qualityProfileId"`
	Monitored        bool            `json:"monitored"`
	HasFile          bool            `json:"hasFile"`
	SizeOnDisk       int64           `json:"sizeOnDisk"`
	Statistics       *statisticsWire `json:"statistics"`
	Tags             []int64         `json:"tags"`
	TmdbID           int64           `json:"tmdbId"`
	TvdbID           int64           `json:"tvdbId"`
	ForeignArtistID  string          `json:"foreignArtistId"`
	Seasons          []Season        `json:"seasons"`
}

type statisticsWire struct {
	SizeOnDisk int64 `json:"sizeOnDisk"`
}

// UnmarshalJSON accepts the movie, series and artist payloads.
func (m *MediaItem) UnmarshalJSON(data []byte) error {
	var w mediaWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*m = MediaItem{
		ID:               w.ID,
		Title:            firstNonEmpty(w.Title, w.ArtistName),
		SortTitle:        firstNonEmpty(w.SortTitle, w.SortName),
		Year:             w.Year,
		Overview:         strings.TrimSpace(w.Overview),
		Path:             w.Path,
		Status:           w.Status,
		Network:          firstNonEmpty(w.Studio, w.Network, w.ArtistType),
		Genres:           w.Genres,
		Runtime:          w.Runtime,
		Certification:    w.Certification,
		QualityProfileID: w.QualityProfileID,
		Monitored:        w.Monitored,
		HasFile:          w.HasFile,
		SizeOnDisk:       w.SizeOnDisk,
		Tags:             w.Tags,
		Seasons:          w.Seasons,
		Raw:              append(json.RawMessage(nil), data...),
	}
	if w.OriginalLanguage != nil {
		m.Language = w.OriginalLanguage.Name
	}
	if m.SizeOnDisk == 0 && w.Statistics != nil {
		m.SizeOnDisk = w.Statistics.SizeOnDisk
	}
	switch {
	case w.TmdbID != 0:
		m.ExternalID = strconv.FormatInt(w.TmdbID, 10)
	case w.TvdbID != 0:
		m.ExternalID = strconv.FormatInt(w.TvdbID, 10)
	default:
		m.ExternalID = w.ForeignArtistID
	}
	return nil
}

// RawFields decodes the server payload into a mutable map. Edits and adds
// send the server's own object back with a handful of fields replaced.
func (m MediaItem) RawFields() (map[string]any, error) {
	fields := map[string]any{}
	if len(m.Raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(m.Raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// MediaHistoryItem is one history record of a single library item.
type MediaHistoryItem struct {
	SourceTitle string         `json:"sourceTitle"`
	EventType   string         `json:"eventType"`
	Date        string         `json:"date"`
	Quality     QualityWrapper `json:"quality"`
}

// Season is one season of a Sonarr series, as embedded in the series payload.
type Season struct {
	SeasonNumber int64            `json:"seasonNumber"`
	Monitored    bool             `json:"monitored"`
	Statistics   SeasonStatistics `json:"statistics"`
}

// Title is the label Sonarr shows for the season.
func (s Season) Title() string {
	if s.SeasonNumber == 0 {
		return "Specials"
	}
	return "Season " + strconv.FormatInt(s.SeasonNumber, 10)
}

type SeasonStatistics struct {
	EpisodeFileCount  int64   `json:"episodeFileCount"`
	EpisodeCount      int64   `json:"episodeCount"`
	TotalEpisodeCount int64   `json:"totalEpisodeCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// Episode is one episode of a Sonarr series.
type Episode struct {
	ID            int64  `json:"id"`
	SeriesID      int64  `json:"seriesId"`
	SeasonNumber  int64  `json:"seasonNumber"`
	EpisodeNumber int64  `json:"episodeNumber"`
	Title         string `json:"title"`
	AirDateUtc    string `json:"airDateUtc"`
	Overview      string `json:"overview"`
	HasFile       bool   `json:"hasFile"`
	Monitored     bool   `json:"monitored"`
}

// Album is one album of a Lidarr artist.
type Album struct {
	ID          int64           `json:"id"`
	ArtistID    int64           `json:"artistId"`
	Title       string          `json:"title"`
	AlbumType   string          `json:"albumType"`
	ReleaseDate string          `json:"releaseDate"`
	Overview    string          `json:"overview"`
	Duration    int64           `json:"duration"`
	Monitored   bool            `json:"monitored"`
	Genres      []string        `json:"genres"`
	Statistics  AlbumStatistics `json:"statistics"`
}

type AlbumStatistics struct {
	TrackFileCount  int64   `json:"trackFileCount"`
	TrackCount      int64   `json:"trackCount"`
	TotalTrackCount int64   `json:"totalTrackCount"`
	SizeOnDisk      int64   `json:"sizeOnDisk"`
	PercentOfTracks float64 `json:"percentOfTracks"`
}

// Track is one track of a Lidarr album. Duration is in milliseconds.
type Track struct {
	ID                  int64  `json:"id"`
	ArtistID            int64  `json:"artistId"`
	AlbumID             int64  `json:"albumId"`
	TrackNumber         string `json:"trackNumber"`
	AbsoluteTrackNumber int64  `json:"absoluteTrackNumber"`
	Title               string `json:"title"`
	Duration            int64  `json:"duration"`
	HasFile             bool   `json:"hasFile"`
	Explicit            bool   `json:"explicit"`
}
