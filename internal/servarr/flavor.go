package servarr

import (
	"strconv"

	"github.com/atomicstack/servarr-dash/internal/route"
)

// flavor holds the per-server names of otherwise identical endpoints.
type flavor struct {
	prefix         string
	defaultPort    int
	resource       string
	idParam        string
	searchCommand  string
	refreshCommand string
	exclusionParam string
	addOptions     map[string]any
}

var flavors = map[route.Backend]flavor{
	route.Radarr: {
		prefix:         "/api/v3",
		defaultPort:    7878,
		resource:       "movie",
		idParam:        "movieId",
		searchCommand:  "MoviesSearch",
		refreshCommand: "RefreshMovie",
		exclusionParam: "addImportExclusion",
		addOptions:     map[string]any{"monitor": "movieOnly", "searchForMovie": true},
	},
	route.Sonarr: {
		prefix:         "/api/v3",
		defaultPort:    8989,
		resource:       "series",
		idParam:        "seriesId",
		searchCommand:  "SeriesSearch",
		refreshCommand: "RefreshSeries",
		exclusionParam: "addImportListExclusion",
		addOptions:     map[string]any{"monitor": "all", "searchForMissingEpisodes": true},
	},
	route.Lidarr: {
		prefix:         "/api/v1",
		defaultPort:    8686,
		resource:       "artist",
		idParam:        "artistId",
		searchCommand:  "ArtistSearch",
		refreshCommand: "RefreshArtist",
		exclusionParam: "addImportListExclusion",
		addOptions:     map[string]any{"monitor": "all", "searchForMissingAlbums": true},
	},
}

func flavorFor(b route.Backend) flavor {
	if f, ok := flavors[b]; ok {
		return f
	}
	return flavors[route.Radarr]
}

// DefaultPort is the port a backend listens on out of the box.
func DefaultPort(b route.Backend) int {
	return flavorFor(b).defaultPort
}

func (f flavor) itemPath(id int64) string {
	return "/" + f.resource + "/" + strconv.FormatInt(id, 10)
}

// command builds a /command body. Radarr takes a list of movie ids, the
// others a single id. id 0 addresses the whole library.
func (f flavor) command(name string, id int64) map[string]any {
	body := map[string]any{"name": name}
	if f.resource == "movie" {
		ids := []int64{}
		if id != 0 {
			ids = append(ids, id)
		}
		body["movieIds"] = ids
		return body
	}
	if id != 0 {
		body[f.idParam] = id
	}
	return body
}
