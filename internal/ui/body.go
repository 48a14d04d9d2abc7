package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
)

// renderBody draws the active main tab and then every popup on the
// navigation stack, bottom first, so nested flows stay visible beneath the
// popup that has focus.
func (m *Model) renderBody(r route.Route, data *state.ServarrData, width, height int) string {
	body := fitLines(m.renderMain(data.MainTabs.ActiveRoute().Block, data, width, height), height)
	stack := m.app.NavigationStack()
	for i, layer := range stack {
		if layer.Backend != r.Backend || isMainBlock(data, layer.Block) {
			continue
		}
		if i+1 < len(stack) && sameForm(layer.Block, stack[i+1].Block) {
			continue
		}
		body = m.renderLayer(body, layer, data, width, height)
	}
	return body
}

func isMainBlock(data *state.ServarrData, b route.Block) bool {
	return data.MainTabs.IndexOf(b) >= 0
}

// formOwner maps a block to the modal that draws it, or None for blocks with
// a popup of their own.
func formOwner(b route.Block) route.Block {
	switch {
	case route.DeleteMediaBlocks.Contains(b):
		return route.DeleteMediaPrompt
	case route.DeleteAlbumBlocks.Contains(b):
		return route.DeleteAlbumPrompt
	case route.EditMediaBlocks.Contains(b):
		return route.EditMediaPrompt
	case route.EditIndexerBlocks.Contains(b):
		return route.EditIndexerPrompt
	case route.IndexerSettingsBlocks.Contains(b):
		return route.IndexerSettingsPrompt
	case b == route.AddMediaSearchInput, b == route.AddMediaSearchResults:
		return route.AddMediaSearchInput
	case b >= route.AddMediaPrompt && b <= route.AddMediaConfirmPrompt:
		return route.AddMediaPrompt
	}
	return route.None
}

func sameForm(a, b route.Block) bool {
	owner := formOwner(a)
	return owner != route.None && owner == formOwner(b)
}

func (m *Model) renderMain(b route.Block, data *state.ServarrData, width, height int) string {
	switch b {
	case route.Library:
		return renderTable(data.Library, libraryColumns(data.Backend, data.Metadata), width, height,
			m.emptyText(strings.ToLower(state.LibraryTitle(data.Backend))), libraryRowStyle)
	case route.Downloads:
		return renderTable(data.Downloads, downloadColumns, width, height, m.emptyText("downloads"), nil)
	case route.Blocklist:
		return renderTable(data.Blocklist, blocklistColumns, width, height, m.emptyText("blocklist items"), nil)
	case route.History:
		return renderTable(data.History, historyColumns, width, height, m.emptyText("history"), nil)
	case route.RootFolders:
		return renderTable(data.RootFolders, rootFolderColumns, width, height, m.emptyText("root folders"), nil)
	case route.Indexers:
		return renderTable(data.Indexers, indexerColumns(data.Metadata), width, height, m.emptyText("indexers"), nil)
	case route.System:
		return m.renderSystem(data, width, height)
	}
	return ""
}

// renderSystem stacks the tasks, queued events and recent logs.
func (m *Model) renderSystem(data *state.ServarrData, width, height int) string {
	section := max((height-3)/3, 2)
	logRows := max(height-3-2*section, 1)
	return strings.Join([]string{
		styles.Header.Render("Tasks"),
		fitLines(renderTable(data.Tasks, taskColumns, width, section, m.emptyText("tasks"), nil), section),
		styles.Header.Render("Queued Events"),
		fitLines(renderTable(data.QueuedEvents, queuedEventColumns, width, section, m.emptyText("queued events"), nil), section),
		styles.Header.Render("Logs"),
		fitLines(renderList(&data.Logs.List, func(s string) string { return s }, width, logRows, m.emptyText("logs")), logRows),
	}, "\n")
}

// renderLayer draws the popup for one route over base.
func (m *Model) renderLayer(base string, r route.Route, data *state.ServarrData, width, height int) string {
	box := m.popupFor(r, data, width, height)
	if box == "" {
		return base
	}
	base = overlay(base, box, width, height)
	if drop := dropdown(r.Block, data, width); drop != "" {
		base = overlay(base, drop, width, height)
	}
	return base
}

func dropdown(b route.Block, data *state.ServarrData, width int) string {
	switch {
	case b == route.EditMediaSelectQualityProfile && data.EditMedia != nil:
		return listBox("Quality Profile", &data.EditMedia.QualityProfiles.List, qualityProfileLabel, width)
	case b == route.AddMediaSelectQualityProfile && data.AddMedia != nil:
		return listBox("Quality Profile", &data.AddMedia.QualityProfiles.List, qualityProfileLabel, width)
	case b == route.AddMediaSelectRootFolder && data.AddMedia != nil:
		return listBox("Root Folder", &data.AddMedia.RootFolders.List, rootFolderLabel, width)
	}
	return ""
}

func (m *Model) popupFor(r route.Route, data *state.ServarrData, width, height int) string {
	switch formOwner(r.Block) {
	case route.DeleteMediaPrompt:
		return deleteMediaForm(data, r, width)
	case route.DeleteAlbumPrompt:
		return deleteAlbumForm(data, r, width)
	case route.EditMediaPrompt:
		return editMediaForm(data, r, width)
	case route.EditIndexerPrompt:
		return editIndexerForm(data, r, width)
	case route.IndexerSettingsPrompt:
		return indexerSettingsForm(data, r, width)
	case route.AddMediaPrompt:
		return addMediaForm(data, r, width)
	case route.AddMediaSearchInput:
		return m.addSearchBox(r, data, width, height)
	}

	switch r.Block {
	case route.LibrarySortPrompt:
		return sortBox(data.Library, width)
	case route.BlocklistSortPrompt:
		return sortBox(data.Blocklist, width)
	case route.HistorySortPrompt:
		return sortBox(data.History, width)
	case route.SearchLibrary:
		return inputBox("Search", data.Library.SearchText, width)
	case route.FilterLibrary:
		return inputBox("Filter", data.Library.FilterText, width)
	case route.SearchHistory:
		return inputBox("Search", data.History.SearchText, width)
	case route.FilterHistory:
		return inputBox("Filter", data.History.FilterText, width)
	case route.SearchLibraryError, route.SearchHistoryError:
		return messageBox("Search", "No match found!", width, true)
	case route.FilterLibraryError, route.FilterHistoryError:
		return messageBox("Filter", "The given filter produced empty results!", width, true)

	case route.MediaDetails, route.MediaHistory, route.MediaSeasons, route.MediaAlbums:
		return m.mediaInfoBox(r, data, width, height)
	case route.SeasonDetails:
		season, _ := data.Seasons.CurrentSelection()
		return tableBox(season.Title(), data.Episodes, episodeColumns, width, height, m.emptyText("episodes"), episodeRowStyle)
	case route.EpisodeDetails:
		episode, _ := data.Episodes.CurrentSelection()
		return textBox(episode.Title, data.EpisodeDetails, width, height)
	case route.AlbumDetails:
		album, _ := data.Albums.CurrentSelection()
		return tableBox(album.Title, data.Tracks, trackColumns, width, height, m.emptyText("tracks"), nil)
	case route.TrackDetails:
		track, _ := data.Tracks.CurrentSelection()
		return textBox(track.Title, data.TrackDetails, width, height)
	case route.AddMediaEmptySearchResults:
		return messageBox("Add "+mediaNoun(r.Backend), "No results found", width, true)
	case route.AddMediaAlreadyInLibrary:
		return messageBox("Add "+mediaNoun(r.Backend), "This "+strings.ToLower(mediaNoun(r.Backend))+" is already in your library", width, true)

	case route.BlocklistItemDetails:
		item, _ := data.Blocklist.CurrentSelection()
		return blocklistDetails(item, width)
	case route.HistoryItemDetails:
		item, _ := data.History.CurrentSelection()
		return historyDetails(item, width)

	case route.AddRootFolderPrompt:
		if data.EditRootFolder == nil {
			return ""
		}
		return inputBox("Add Root Folder", data.EditRootFolder.Path, width)
	case route.TestIndexer:
		return testIndexerBox(data.IndexerTestErrors, width)
	case route.TestAllIndexers:
		return m.testAllBox(data, width, height)

	case route.SystemTasks:
		return tableBox("Tasks", data.Tasks, taskColumns, width, height, m.emptyText("tasks"), nil)
	case route.SystemQueuedEvents:
		return tableBox("Queued Events", data.QueuedEvents, queuedEventColumns, width, height, m.emptyText("queued events"), nil)
	case route.SystemLogs:
		return m.logsBox(data, width, height)
	case route.SystemUpdates:
		return textBox("Updates", data.Updates, width, height)
	}

	if isPrompt(r.Block) {
		title, question := promptText(r, data)
		return promptBox(title, question, data.PromptConfirm, width)
	}
	return ""
}

func (m *Model) addSearchBox(r route.Route, data *state.ServarrData, width, height int) string {
	w := popupWidth(width, previewWidthPercent)
	input := field(data.AddSearch, r.Block == route.AddMediaSearchInput, w-4)
	if r.Block == route.AddMediaSearchInput {
		return popup("Add "+mediaNoun(r.Backend), input, w)
	}
	rows := max(popupHeight(height, previewHeightPercent)-6, 2)
	results := renderTable(data.AddSearchResults, searchResultColumns(data.Library.Items), w-4, rows, loadingText, nil)
	return popup("Add "+mediaNoun(r.Backend), input+"\n"+results, w)
}

// promptText returns the title and question of a yes/no prompt.
func promptText(r route.Route, data *state.ServarrData) (string, string) {
	switch r.Block {
	case route.UpdateAllLibraryPrompt:
		return "Update All", fmt.Sprintf("Do you want to update info and scan your disks for all of your %s?",
			strings.ToLower(state.LibraryTitle(r.Backend)))
	case route.AutomaticSearchPrompt:
		item, _ := data.Library.CurrentSelection()
		return "Automatic Search", fmt.Sprintf("Do you want to trigger an automatic search of your indexers for: %s?", item.Title)
	case route.UpdateAndScanPrompt:
		item, _ := data.Library.CurrentSelection()
		return "Update and Scan", fmt.Sprintf("Do you want to trigger an update and disk scan for: %s?", item.Title)
	case route.SeasonSearchPrompt:
		item, _ := data.Library.CurrentSelection()
		season, _ := data.Seasons.CurrentSelection()
		return "Season Search", fmt.Sprintf("Do you want to trigger an automatic search of your indexers for: %s %s?", item.Title, season.Title())
	case route.EpisodeSearchPrompt:
		episode, _ := data.Episodes.CurrentSelection()
		return "Episode Search", fmt.Sprintf("Do you want to trigger an automatic search of your indexers for: %s?", episode.Title)
	case route.AlbumSearchPrompt:
		album, _ := data.Albums.CurrentSelection()
		return "Album Search", fmt.Sprintf("Do you want to trigger an automatic search of your indexers for: %s?", album.Title)
	case route.DeleteDownloadPrompt:
		item, _ := data.Downloads.CurrentSelection()
		return "Cancel Download", fmt.Sprintf("Do you really want to delete this download: \n%s?", item.Title)
	case route.UpdateDownloadsPrompt:
		return "Update Downloads", "Do you want to update your downloads?"
	case route.DeleteBlocklistItemPrompt:
		item, _ := data.Blocklist.CurrentSelection()
		return "Remove Item from Blocklist", fmt.Sprintf("Do you want to remove this item from your blocklist: \n%s?", item.SourceTitle)
	case route.BlocklistClearAllItemsPrompt:
		return "Clear Blocklist", "Do you want to clear your blocklist?"
	case route.DeleteRootFolderPrompt:
		item, _ := data.RootFolders.CurrentSelection()
		return "Delete Root Folder", fmt.Sprintf("Do you really want to delete this root folder: \n%s?", item.Path)
	case route.DeleteIndexerPrompt:
		item, _ := data.Indexers.CurrentSelection()
		return "Delete Indexer", fmt.Sprintf("Do you really want to delete this indexer: \n%s?", item.Name)
	case route.SystemTaskStartConfirmPrompt:
		item, _ := data.Tasks.CurrentSelection()
		return "Start Task", fmt.Sprintf("Do you want to manually start this task: %s?", item.Name)
	}
	return "Confirm", "Are you sure?"
}
