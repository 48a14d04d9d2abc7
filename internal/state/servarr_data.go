package state

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

// ServarrData is everything shown for one backend.
type ServarrData struct {
	Backend route.Backend

	Library          *uistate.StatefulTable[models.MediaItem]
	Downloads        *uistate.StatefulTable[models.QueueItem]
	Blocklist        *uistate.StatefulTable[models.BlocklistItem]
	History          *uistate.StatefulTable[models.HistoryItem]
	RootFolders      *uistate.StatefulTable[models.RootFolder]
	Indexers         *uistate.StatefulTable[models.Indexer]
	Tasks            *uistate.StatefulTable[models.Task]
	QueuedEvents     *uistate.StatefulTable[models.QueuedEvent]
	Logs             *uistate.StatefulTable[string]
	AddSearchResults *uistate.StatefulTable[models.MediaItem]
	MediaHistory     *uistate.StatefulTable[models.MediaHistoryItem]
	Seasons          *uistate.StatefulTable[models.Season]
	Episodes         *uistate.StatefulTable[models.Episode]
	Albums           *uistate.StatefulTable[models.Album]
	Tracks           *uistate.StatefulTable[models.Track]

	AddSearch       *uistate.HorizontallyScrollableText
	EditMedia       *EditMediaModal
	AddMedia        *AddMediaModal
	EditIndexer     *EditIndexerModal
	IndexerSettings *models.IndexerSettings
	EditRootFolder  *RootFolderModal

	IndexerTestErrors *string
	IndexerTestAll    *uistate.StatefulTable[models.IndexerTestSummary]

	Updates        *uistate.ScrollableText
	MediaDetails   *uistate.ScrollableText
	EpisodeDetails *uistate.ScrollableText
	TrackDetails   *uistate.ScrollableText

	SelectedBlock *uistate.BlockSelectionState[route.Block]
	MainTabs      uistate.TabState
	MediaInfoTabs uistate.TabState

	PromptConfirm       bool
	PromptConfirmAction *network.Request
	DeleteFiles         bool
	AddListExclusion    bool

	Metadata models.Metadata
}

// LibraryTitle is the name of the library tab for the backend.
func LibraryTitle(b route.Backend) string {
	switch b {
	case route.Sonarr:
		return "Series"
	case route.Lidarr:
		return "Artists"
	default:
		return "Movies"
	}
}

// NewServarrData returns empty data for a backend with its tab bars built.
func NewServarrData(b route.Backend) *ServarrData {
	return &ServarrData{
		Backend:          b,
		Library:          uistate.NewStatefulTable[models.MediaItem](nil),
		Downloads:        uistate.NewStatefulTable[models.QueueItem](nil),
		Blocklist:        uistate.NewStatefulTable[models.BlocklistItem](nil),
		History:          uistate.NewStatefulTable[models.HistoryItem](nil),
		RootFolders:      uistate.NewStatefulTable[models.RootFolder](nil),
		Indexers:         uistate.NewStatefulTable[models.Indexer](nil),
		Tasks:            uistate.NewStatefulTable[models.Task](nil),
		QueuedEvents:     uistate.NewStatefulTable[models.QueuedEvent](nil),
		Logs:             uistate.NewStatefulTable[string](nil),
		AddSearchResults: uistate.NewStatefulTable[models.MediaItem](nil),
		MediaHistory:     uistate.NewStatefulTable[models.MediaHistoryItem](nil),
		Seasons:          uistate.NewStatefulTable[models.Season](nil),
		Episodes:         uistate.NewStatefulTable[models.Episode](nil),
		Albums:           uistate.NewStatefulTable[models.Album](nil),
		Tracks:           uistate.NewStatefulTable[models.Track](nil),
		Updates:          uistate.NewScrollableText(""),
		MediaDetails:     uistate.NewScrollableText(""),
		EpisodeDetails:   uistate.NewScrollableText(""),
		TrackDetails:     uistate.NewScrollableText(""),
		SelectedBlock:    uistate.NewBlockSelectionState[route.Block](nil),
		MainTabs: uistate.NewTabState([]uistate.TabRoute{
			{Title: LibraryTitle(b), Route: route.New(b, route.Library), Help: keys.LibraryContextClues},
			{Title: "Downloads", Route: route.New(b, route.Downloads), Help: keys.DownloadsContextClues},
			{Title: "Blocklist", Route: route.New(b, route.Blocklist), Help: keys.BlocklistContextClues},
			{Title: "History", Route: route.New(b, route.History), Help: keys.HistoryContextClues},
			{Title: "Root Folders", Route: route.New(b, route.RootFolders), Help: keys.RootFolderContextClues},
			{Title: "Indexers", Route: route.New(b, route.Indexers), Help: keys.IndexersContextClues},
			{Title: "System", Route: route.New(b, route.System), Help: keys.SystemContextClues},
		}),
		MediaInfoTabs: uistate.NewTabState(mediaInfoTabs(b)),
	}
}

// mediaInfoTabs lists the tabs of the media details popup. Series get a
// seasons tab and artists an albums tab.
func mediaInfoTabs(b route.Backend) []uistate.TabRoute {
	tabs := []uistate.TabRoute{
		{Title: "Details", Route: route.New(b, route.MediaDetails), Help: keys.MediaDetailsContextClues},
	}
	switch b {
	case route.Sonarr:
		tabs = append(tabs, uistate.TabRoute{Title: "Seasons", Route: route.New(b, route.MediaSeasons), Help: keys.SeasonsContextClues})
	case route.Lidarr:
		tabs = append(tabs, uistate.TabRoute{Title: "Albums", Route: route.New(b, route.MediaAlbums), Help: keys.AlbumsContextClues})
	}
	return append(tabs, uistate.TabRoute{Title: "History", Route: route.New(b, route.MediaHistory), Help: keys.MediaDetailsContextClues})
}

// SyncSeasons refreshes the seasons table from the selected series. The
// selected row survives.
func (d *ServarrData) SyncSeasons() {
	item, _ := d.Library.CurrentSelection()
	d.Seasons.SetItems(item.Seasons)
}

// SelectBlocks replaces the focus grid of the open modal.
func (d *ServarrData) SelectBlocks(blocks [][]route.Block) {
	d.SelectedBlock = uistate.NewBlockSelectionState(blocks)
}

// ResetPrompt clears the confirmation state shared by every prompt.
func (d *ServarrData) ResetPrompt() {
	d.PromptConfirm = false
	d.PromptConfirmAction = nil
}

// ResetDeleteToggles clears the delete prompt checkboxes.
func (d *ServarrData) ResetDeleteToggles() {
	d.DeleteFiles = false
	d.AddListExclusion = false
}

// ApplyMetadata stores reference data. Root folders travel with it so the
// add flow can offer them without a separate fetch.
func (d *ServarrData) ApplyMetadata(meta models.Metadata) {
	d.Metadata = meta
}
