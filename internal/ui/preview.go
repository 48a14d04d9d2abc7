package ui

import (
	"maps"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/atomicstack/servarr-dash/internal/format/table"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

const (
	previewWidthPercent  = 80
	previewHeightPercent = 80
)

// textBox frames the visible part of a scrollable buffer.
func textBox(title string, text *uistate.ScrollableText, width, height int) string {
	w := popupWidth(width, previewWidthPercent)
	rows := max(popupHeight(height, previewHeightPercent)-3, 1)
	var body string
	if text == nil || len(text.Items) == 0 {
		body = styles.Info.Render(loadingText)
	} else {
		lines := text.Lines()
		if len(lines) > rows {
			lines = lines[:rows]
		}
		body = strings.Join(table.Fit(lines, w-4), "\n")
	}
	return popup(title, body, w)
}

// tableBox frames a table in a popup sized relative to the screen.
func tableBox[T any](title string, t *uistate.StatefulTable[T], cols []column[T], width, height int, empty string, rowStyle func(T) *lipgloss.Style) string {
	w := popupWidth(width, previewWidthPercent)
	rows := max(popupHeight(height, previewHeightPercent)-3, 2)
	return popup(title, renderTable(t, cols, w-4, rows, empty, rowStyle), w)
}

func (m *Model) mediaInfoBox(r route.Route, data *state.ServarrData, width, height int) string {
	w := popupWidth(width, previewWidthPercent)
	h := popupHeight(height, previewHeightPercent)
	item, _ := data.Library.CurrentSelection()
	tabs := renderTabBar(data.MediaInfoTabs.Tabs, data.MediaInfoTabs.Index, w-4)
	rows := max(h-4, 1)
	var body string
	switch r.Block {
	case route.MediaHistory:
		body = renderTable(data.MediaHistory, mediaHistoryColumns, w-4, rows, m.emptyText("history"), nil)
	case route.MediaSeasons:
		body = renderTable(data.Seasons, seasonColumns, w-4, rows, m.emptyText("seasons"), seasonRowStyle)
	case route.MediaAlbums:
		body = renderTable(data.Albums, albumColumns, w-4, rows, m.emptyText("albums"), albumRowStyle)
	default:
		lines := data.MediaDetails.Lines()
		if len(lines) > rows {
			lines = lines[:rows]
		}
		body = strings.Join(table.Fit(lines, w-4), "\n")
	}
	return popup(item.Title, tabs+"\n"+body, w)
}

func detailsBox(title string, pairs [][2]string, width int) string {
	w := popupWidth(width, previewWidthPercent)
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		rows = append(rows, []string{styles.HelpKey.Render(p[0] + ":"), p[1]})
	}
	lines := table.Format(rows, nil)
	return popup(title, strings.Join(table.Fit(lines, w-4), "\n"), w)
}

func blocklistDetails(item models.BlocklistItem, width int) string {
	return detailsBox("Details", [][2]string{
		{"Source Title", item.SourceTitle},
		{"Protocol", item.Protocol},
		{"Indexer", item.Indexer},
		{"Quality", item.Quality.Quality.Name},
		{"Languages", languages(item.Languages)},
		{"Date", timestamp(item.Date)},
		{"Message", item.Message},
	}, width)
}

func historyDetails(item models.HistoryItem, width int) string {
	pairs := [][2]string{
		{"Source Title", item.SourceTitle},
		{"Event Type", item.EventType},
		{"Quality", item.Quality.Quality.Name},
		{"Languages", languages(item.Languages)},
		{"Date", timestamp(item.Date)},
	}
	for _, k := range slices.Sorted(maps.Keys(item.Data)) {
		pairs = append(pairs, [2]string{k, item.Data[k]})
	}
	return detailsBox("Details", pairs, width)
}

// testIndexerBox reports a single indexer test. A nil result is still
// pending and an empty one passed.
func testIndexerBox(result *string, width int) string {
	switch {
	case result == nil:
		return messageBox("Test Indexer", loadingText, width, false)
	case *result == "":
		return messageBox("Test Indexer", "Indexer test succeeded!", width, false)
	default:
		return messageBox("Test Indexer", "Error: "+*result, width, true)
	}
}

func (m *Model) testAllBox(data *state.ServarrData, width, height int) string {
	if data.IndexerTestAll == nil {
		return messageBox("Test All Indexers", loadingText, width, false)
	}
	return tableBox("Test All Indexers", data.IndexerTestAll, testSummaryColumns, width, height,
		"No indexers to test", testSummaryRowStyle)
}

func (m *Model) logsBox(data *state.ServarrData, width, height int) string {
	w := popupWidth(width, previewWidthPercent)
	rows := max(popupHeight(height, previewHeightPercent)-3, 1)
	return popup("Logs", renderList(&data.Logs.List, func(s string) string { return s }, w-4, rows, m.emptyText("logs")), w)
}
