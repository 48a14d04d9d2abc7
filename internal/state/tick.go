package state

import (
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

// OnTick advances the poll loop by one tick. The first tick after start or a
// backend switch loads metadata and the current view. Later ticks reload the
// view on routing, on request, or when the poll interval elapses while idle.
// A confirmed prompt action is sent last and schedules a refresh.
func (a *App) OnTick() {
	current := a.CurrentRoute()
	switch {
	case a.IsFirstRender:
		a.refreshMetadata(current.Backend)
		a.dispatchByBlock(current)
		a.IsFirstRender = false
	case a.ShouldRefresh:
		a.refreshMetadata(current.Backend)
		a.dispatchByBlock(current)
	case a.IsRouting:
		a.dispatchByBlock(current)
	case a.TickUntilPoll > 0 && a.TickCount%a.TickUntilPoll == 0 && !a.IsLoading:
		a.refreshMetadata(current.Backend)
		a.dispatchByBlock(current)
	}
	a.IsRouting = false
	a.ShouldRefresh = false

	a.checkForPromptAction(current.Backend)
	a.TickCount++
}

// ShouldScroll reports whether marquee text advances on this tick.
func (a *App) ShouldScroll() bool {
	return a.TicksUntilScroll > 0 && a.TickCount%a.TicksUntilScroll == 0
}

func (a *App) refreshMetadata(b route.Backend) {
	a.DispatchNetworkEvent(network.NewRequest(b, network.OpGetMetadata, nil))
}

func (a *App) checkForPromptAction(b route.Backend) {
	data := a.DataFor(b)
	if !data.PromptConfirm {
		return
	}
	data.PromptConfirm = false
	action := data.PromptConfirmAction
	data.PromptConfirmAction = nil
	if action == nil {
		return
	}
	a.DispatchNetworkEvent(*action)
	a.ShouldRefresh = true
}

func (a *App) dispatchByBlock(r route.Route) {
	b := r.Backend
	data := a.DataFor(b)
	send := func(op network.Operation, params any) {
		a.DispatchNetworkEvent(network.NewRequest(b, op, params))
	}

	switch r.Block {
	case route.Library:
		send(network.OpGetLibrary, nil)
		send(network.OpGetDownloads, nil)
	case route.MediaHistory:
		if item, ok := data.Library.CurrentSelection(); ok {
			send(network.OpGetMediaHistory, network.IDParams{ID: item.ID})
		}
	case route.MediaSeasons:
		send(network.OpGetLibrary, nil)
	case route.SeasonDetails, route.EpisodeDetails:
		item, ok := data.Library.CurrentSelection()
		season, seasonOK := data.Seasons.CurrentSelection()
		if ok && seasonOK {
			send(network.OpGetEpisodes, network.SeasonParams{SeriesID: item.ID, SeasonNumber: season.SeasonNumber})
		}
	case route.MediaAlbums:
		if item, ok := data.Library.CurrentSelection(); ok {
			send(network.OpGetAlbums, network.IDParams{ID: item.ID})
		}
	case route.AlbumDetails, route.TrackDetails:
		album, ok := data.Albums.CurrentSelection()
		if ok {
			send(network.OpGetTracks, network.TracksParams{ArtistID: album.ArtistID, AlbumID: album.ID})
		}
	case route.Downloads:
		send(network.OpGetDownloads, nil)
	case route.Blocklist:
		send(network.OpGetBlocklist, nil)
	case route.History:
		send(network.OpGetHistory, nil)
	case route.RootFolders:
		send(network.OpGetRootFolders, nil)
	case route.Indexers:
		send(network.OpGetIndexers, nil)
	case route.IndexerSettingsPrompt:
		if data.IndexerSettings == nil {
			send(network.OpGetIndexerSettings, nil)
		}
	case route.TestIndexer:
		if data.IndexerTestErrors == nil {
			if indexer, ok := data.Indexers.CurrentSelection(); ok {
				send(network.OpTestIndexer, network.IDParams{ID: indexer.ID})
			}
		}
	case route.TestAllIndexers:
		if data.IndexerTestAll == nil {
			send(network.OpTestAllIndexers, nil)
		}
	case route.AddMediaSearchResults:
		if data.AddSearchResults.IsEmpty() && data.AddSearch != nil && !data.AddSearch.IsEmpty() {
			send(network.OpSearchNewMedia, network.SearchParams{Query: data.AddSearch.Text()})
		}
	case route.System:
		send(network.OpGetTasks, nil)
		send(network.OpGetQueuedEvents, nil)
		send(network.OpGetLogs, network.LogsParams{PageSize: network.DefaultLogPageSize})
	case route.SystemUpdates:
		send(network.OpGetUpdates, nil)
	}
	a.ResetTickCount()
}
