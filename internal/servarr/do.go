package servarr

import (
	"context"
	"fmt"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

// Do performs req and returns its decoded result. Mutations return nil.
//
// Results by operation:
//
//	GetLibrary, SearchNewMedia  []models.MediaItem
//	GetMediaHistory             []models.MediaHistoryItem
//	GetDownloads                []models.QueueItem
//	GetBlocklist                []models.BlocklistItem
//	GetHistory                  []models.HistoryItem
//	GetRootFolders              []models.RootFolder
//	GetIndexers                 []models.Indexer
//	TestIndexer                 string
//	TestAllIndexers             []models.IndexerTestResult
//	GetIndexerSettings          models.IndexerSettings
//	GetTasks                    []models.Task
//	GetQueuedEvents             []models.QueuedEvent
//	GetLogs                     []models.LogEntry
//	GetUpdates                  []models.Update
//	GetStatus                   models.SystemStatus
//	GetMetadata                 models.Metadata
//	GetEpisodes                 []models.Episode
//	GetAlbums                   []models.Album
//	GetTracks                   []models.Track
func (c *Client) Do(ctx context.Context, req network.Request) (any, error) {
	result, err := c.perform(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", c.backend.Title(), req.Op, err)
	}
	return result, nil
}

func (c *Client) perform(ctx context.Context, req network.Request) (any, error) {
	switch req.Op {
	case network.OpGetLibrary:
		return c.GetLibrary(ctx)
	case network.OpSearchNewMedia:
		p, err := params[network.SearchParams](req)
		if err != nil {
			return nil, err
		}
		return c.SearchNewMedia(ctx, p.Query)
	case network.OpGetMediaHistory:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return c.GetMediaHistory(ctx, p.ID)
	case network.OpDeleteMedia:
		p, err := params[network.DeleteMediaParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.DeleteMedia(ctx, p)
	case network.OpEditMedia, network.OpToggleMonitoring:
		p, err := params[network.EditMediaParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.EditMedia(ctx, p)
	case network.OpAddMedia:
		p, err := params[network.AddMediaParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.AddMedia(ctx, p)
	case network.OpTriggerAutomaticSearch:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.TriggerAutomaticSearch(ctx, p.ID)
	case network.OpUpdateAndScan:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.UpdateAndScan(ctx, p.ID)
	case network.OpUpdateAllLibrary:
		return nil, c.UpdateAllLibrary(ctx)

	case network.OpGetDownloads:
		return c.GetDownloads(ctx)
	case network.OpDeleteDownload:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.DeleteDownload(ctx, p.ID)
	case network.OpUpdateDownloads:
		return nil, c.UpdateDownloads(ctx)

	case network.OpGetBlocklist:
		return c.GetBlocklist(ctx)
	case network.OpDeleteBlocklistItem:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.DeleteBlocklistItem(ctx, p.ID)
	case network.OpClearBlocklist:
		p, err := params[network.IDsParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.ClearBlocklist(ctx, p.IDs)

	case network.OpGetHistory:
		return c.GetHistory(ctx)

	case network.OpGetRootFolders:
		return c.GetRootFolders(ctx)
	case network.OpAddRootFolder:
		p, err := params[network.PathParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.AddRootFolder(ctx, p.Path)
	case network.OpDeleteRootFolder:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.DeleteRootFolder(ctx, p.ID)

	case network.OpGetIndexers:
		return c.GetIndexers(ctx)
	case network.OpDeleteIndexer:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.DeleteIndexer(ctx, p.ID)
	case network.OpEditIndexer:
		p, err := params[network.EditIndexerParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.EditIndexer(ctx, p)
	case network.OpTestIndexer:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return c.TestIndexer(ctx, p.ID)
	case network.OpTestAllIndexers:
		return c.TestAllIndexers(ctx)
	case network.OpGetIndexerSettings:
		return c.GetIndexerSettings(ctx)
	case network.OpEditIndexerSettings:
		p, err := params[models.IndexerSettings](req)
		if err != nil {
			return nil, err
		}
		return nil, c.EditIndexerSettings(ctx, p)

	case network.OpGetTasks:
		return c.GetTasks(ctx)
	case network.OpStartTask:
		p, err := params[network.StartTaskParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.StartTask(ctx, p.TaskName)
	case network.OpGetQueuedEvents:
		return c.GetQueuedEvents(ctx)
	case network.OpGetLogs:
		p, _ := req.Params.(network.LogsParams)
		return c.GetLogs(ctx, p.PageSize)
	case network.OpGetUpdates:
		return c.GetUpdates(ctx)
	case network.OpGetStatus:
		return c.GetStatus(ctx)
	case network.OpGetMetadata:
		return c.GetMetadata(ctx)

	case network.OpGetEpisodes:
		p, err := params[network.SeasonParams](req)
		if err != nil {
			return nil, err
		}
		return c.GetEpisodes(ctx, p)
	case network.OpToggleEpisodeMonitoring:
		p, err := params[network.MonitorParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.SetEpisodesMonitored(ctx, p)
	case network.OpTriggerEpisodeSearch:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.TriggerEpisodeSearch(ctx, p.ID)
	case network.OpTriggerSeasonSearch:
		p, err := params[network.SeasonParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.TriggerSeasonSearch(ctx, p)
	case network.OpToggleSeasonMonitoring:
		p, err := params[network.ToggleSeasonMonitoringParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.ToggleSeasonMonitoring(ctx, p)

	case network.OpGetAlbums:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return c.GetAlbums(ctx, p.ID)
	case network.OpGetTracks:
		p, err := params[network.TracksParams](req)
		if err != nil {
			return nil, err
		}
		return c.GetTracks(ctx, p)
	case network.OpToggleAlbumMonitoring:
		p, err := params[network.MonitorParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.SetAlbumsMonitored(ctx, p)
	case network.OpTriggerAlbumSearch:
		p, err := params[network.IDParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.TriggerAlbumSearch(ctx, p.ID)
	case network.OpDeleteAlbum:
		p, err := params[network.DeleteMediaParams](req)
		if err != nil {
			return nil, err
		}
		return nil, c.DeleteAlbum(ctx, p)
	}
	return nil, ErrUnsupported
}

func params[T any](req network.Request) (T, error) {
	p, ok := req.Params.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected params %T, want %T", req.Params, zero)
	}
	return p, nil
}

// Clients routes requests to the client configured for their backend.
type Clients map[route.Backend]*Client

// NewClients builds one client per configured backend.
func NewClients(configs map[route.Backend]Config) Clients {
	clients := make(Clients, len(configs))
	for b, cfg := range configs {
		clients[b] = NewClient(b, cfg)
	}
	return clients
}

// Backends lists the configured backends in display order.
func (cs Clients) Backends() []route.Backend {
	var out []route.Backend
	for _, b := range route.AllBackends() {
		if _, ok := cs[b]; ok {
			out = append(out, b)
		}
	}
	return out
}

func (cs Clients) Do(ctx context.Context, req network.Request) (any, error) {
	c, ok := cs[req.Backend]
	if !ok {
		return nil, fmt.Errorf("%s: %w", req.Backend.Title(), ErrNotConfigured)
	}
	return c.Do(ctx, req)
}
