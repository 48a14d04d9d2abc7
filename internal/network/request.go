// Package network describes the outbound requests produced by the key
// handlers and the tick loop. A Request is a value; performing it is the job
// of the worker in internal/backend.
package network

import (
	"github.com/google/uuid"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/route"
)

// Operation names one remote call.
type Operation int

const (
	OpGetLibrary Operation = iota
	OpDeleteMedia
	OpEditMedia
	OpToggleMonitoring
	OpAddMedia
	OpSearchNewMedia
	OpGetMediaHistory
	OpTriggerAutomaticSearch
	OpUpdateAndScan
	OpUpdateAllLibrary
	OpGetDownloads
	OpDeleteDownload
	OpUpdateDownloads
	OpGetBlocklist
	OpDeleteBlocklistItem
	OpClearBlocklist
	OpGetHistory
	OpGetRootFolders
	OpAddRootFolder
	OpDeleteRootFolder
	OpGetIndexers
	OpDeleteIndexer
	OpEditIndexer
	OpTestIndexer
	OpTestAllIndexers
	OpGetIndexerSettings
	OpEditIndexerSettings
	OpGetTasks
	OpStartTask
	OpGetQueuedEvents
	OpGetLogs
	OpGetUpdates
	OpGetStatus
	OpGetMetadata
	OpGetEpisodes
	OpToggleEpisodeMonitoring
	OpTriggerEpisodeSearch
	OpTriggerSeasonSearch
	OpToggleSeasonMonitoring
	OpGetAlbums
	OpGetTracks
	OpTriggerAlbumSearch
	OpToggleAlbumMonitoring
	OpDeleteAlbum
	opCount
)

var operationNames = map[Operation]string{
	OpGetLibrary:              "GetLibrary",
	OpDeleteMedia:             "DeleteMedia",
	OpEditMedia:               "EditMedia",
	OpToggleMonitoring:        "ToggleMonitoring",
	OpAddMedia:                "AddMedia",
	OpSearchNewMedia:          "SearchNewMedia",
	OpGetMediaHistory:         "GetMediaHistory",
	OpTriggerAutomaticSearch:  "TriggerAutomaticSearch",
	OpUpdateAndScan:           "UpdateAndScan",
	OpUpdateAllLibrary:        "UpdateAllLibrary",
	OpGetDownloads:            "GetDownloads",
	OpDeleteDownload:          "DeleteDownload",
	OpUpdateDownloads:         "UpdateDownloads",
	OpGetBlocklist:            "GetBlocklist",
	OpDeleteBlocklistItem:     "DeleteBlocklistItem",
	OpClearBlocklist:          "ClearBlocklist",
	OpGetHistory:              "GetHistory",
	OpGetRootFolders:          "GetRootFolders",
	OpAddRootFolder:           "AddRootFolder",
	OpDeleteRootFolder:        "DeleteRootFolder",
	OpGetIndexers:             "GetIndexers",
	OpDeleteIndexer:           "DeleteIndexer",
	OpEditIndexer:             "EditIndexer",
	OpTestIndexer:             "TestIndexer",
	OpTestAllIndexers:         "TestAllIndexers",
	OpGetIndexerSettings:      "GetIndexerSettings",
	OpEditIndexerSettings:     "EditIndexerSettings",
	OpGetTasks:                "GetTasks",
	OpStartTask:               "StartTask",
	OpGetQueuedEvents:         "GetQueuedEvents",
	OpGetLogs:                 "GetLogs",
	OpGetUpdates:              "GetUpdates",
	OpGetStatus:               "GetStatus",
	OpGetMetadata:             "GetMetadata",
	OpGetEpisodes:             "GetEpisodes",
	OpToggleEpisodeMonitoring: "ToggleEpisodeMonitoring",
	OpTriggerEpisodeSearch:    "TriggerEpisodeSearch",
	OpTriggerSeasonSearch:     "TriggerSeasonSearch",
	OpToggleSeasonMonitoring:  "ToggleSeasonMonitoring",
	OpGetAlbums:               "GetAlbums",
	OpGetTracks:               "GetTracks",
	OpTriggerAlbumSearch:      "TriggerAlbumSearch",
	OpToggleAlbumMonitoring:   "ToggleAlbumMonitoring",
	OpDeleteAlbum:             "DeleteAlbum",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "Unknown"
}

// AllOperations lists every operation in declaration order.
func AllOperations() []Operation {
	ops := make([]Operation, 0, int(opCount))
	for op := Operation(0); op < opCount; op++ {
		ops = append(ops, op)
	}
	return ops
}

// IsMutation reports whether the operation changes server state. Mutations
// are followed by a refresh of the current view.
func (o Operation) IsMutation() bool {
	switch o {
	case OpDeleteMedia, OpEditMedia, OpToggleMonitoring, OpAddMedia,
		OpTriggerAutomaticSearch, OpUpdateAndScan, OpUpdateAllLibrary,
		OpDeleteDownload, OpUpdateDownloads, OpDeleteBlocklistItem,
		OpClearBlocklist, OpAddRootFolder, OpDeleteRootFolder,
		OpDeleteIndexer, OpEditIndexer, OpEditIndexerSettings, OpStartTask,
		OpToggleEpisodeMonitoring, OpTriggerEpisodeSearch, OpTriggerSeasonSearch,
		OpToggleSeasonMonitoring, OpTriggerAlbumSearch, OpToggleAlbumMonitoring,
		OpDeleteAlbum:
		return true
	}
	return false
}

// Request is one outbound call. Params holds the operation's argument struct
// from this package, or nil.
type Request struct {
	ID      uuid.UUID
	Backend route.Backend
	Op      Operation
	Params  any
}

// NewRequest returns a request with a fresh id.
func NewRequest(backend route.Backend, op Operation, params any) Request {
	return Request{ID: uuid.New(), Backend: backend, Op: op, Params: params}
}

func (r Request) String() string {
	return r.Backend.String() + ":" + r.Op.String()
}

// IDParams addresses a single remote entity.
type IDParams struct {
	ID int64
}

// IDsParams addresses several remote entities at once.
type IDsParams struct {
	IDs []int64
}

type DeleteMediaParams struct {
	ID               int64
	DeleteFiles      bool
	AddListExclusion bool
}

type EditMediaParams struct {
	Item             models.MediaItem
	Monitored        bool
	QualityProfileID int64
	Path             string
	Tags             string
}

type AddMediaParams struct {
	Item             models.MediaItem
	RootFolderPath   string
	QualityProfileID int64
	Monitored        bool
	Tags             string
}

type SearchParams struct {
	Query string
}

type PathParams struct {
	Path string
}

type EditIndexerParams struct {
	Indexer                 models.Indexer
	Name                    string
	URL                     string
	APIKey                  string
	SeedRatio               string
	Tags                    string
	Priority                int64
	EnableRss               bool
	EnableAutomaticSearch   bool
	EnableInteractiveSearch bool
}

// SeasonParams addresses one season of a series.
type SeasonParams struct {
	SeriesID     int64
	SeasonNumber int64
}

// ToggleSeasonMonitoringParams flips one season inside the series payload.
type ToggleSeasonMonitoringParams struct {
	Series       models.MediaItem
	SeasonNumber int64
}

// MonitorParams sets the monitored flag of several episodes or albums.
type MonitorParams struct {
	IDs       []int64
	Monitored bool
}

type TracksParams struct {
	ArtistID int64
	AlbumID  int64
}

type StartTaskParams struct {
	TaskName string
}

type LogsParams struct {
	PageSize int
}

// DefaultLogPageSize is how many log records the system view requests.
const DefaultLogPageSize = 500
