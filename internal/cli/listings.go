package cli

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
)

var listings = map[string]listing{
	"library": {
		block:  route.Library,
		header: []string{"ID", "TITLE", "YEAR", "MONITORED", "SIZE"},
		rows: func(d *state.ServarrData) [][]string {
			return rowsOf(d.Library.Items, func(m models.MediaItem) []string {
				return []string{id(m.ID), m.Title, strconv.Itoa(m.Year), yesNo(m.Monitored), size(m.SizeOnDisk)}
			})
		},
	},
	"downloads": {
		block:  route.Downloads,
		header: []string{"ID", "TITLE", "STATUS", "PROGRESS", "SIZE", "CLIENT"},
		rows: func(d *state.ServarrData) [][]string {
			return rowsOf(d.Downloads.Items, func(q models.QueueItem) []string {
				return []string{id(q.ID), q.Title, q.Status, fmt.Sprintf("%.0f%%", q.Progress()*100), size(q.Size), q.DownloadClient}
			})
		},
	},
	"blocklist": {
		block:  route.Blocklist,
		header: []string{"ID", "SOURCE TITLE", "INDEXER", "DATE"},
		rows: func(d *state.ServarrData) [][]string {
			return rowsOf(d.Blocklist.Items, func(b models.BlocklistItem) []string {
				return []string{id(b.ID), b.SourceTitle, b.Indexer, b.Date}
			})
		},
	},
	"history": {
		block:  route.History,
		header: []string{"SOURCE TITLE", "EVENT", "QUALITY", "DATE"},
		rows: func(d *state.ServarrData) [][]string {
			return rowsOf(d.History.Items, func(h models.HistoryItem) []string {
				return []string{h.SourceTitle, h.EventType, h.Quality.Quality.Name, h.Date}
			})
		},
	},
	"root-folders": {
		block:  route.RootFolders,
		header: []string{"ID", "PATH", "FREE SPACE", "UNMAPPED"},
		rows: func(d *state.ServarrData) [][]string {
			return rowsOf(d.RootFolders.Items, func(f models.RootFolder) []string {
				return []string{id(f.ID), f.Path, size(f.FreeSpace), strconv.Itoa(len(f.UnmappedFolders))}
			})
		},
	},
	"indexers": {
		block:  route.Indexers,
		header: []string{"ID", "NAME", "PROTOCOL", "RSS", "AUTO SEARCH", "PRIORITY"},
		rows: func(d *state.ServarrData) [][]string {
			return rowsOf(d.Indexers.Items, func(i models.Indexer) []string {
				return []string{id(i.ID), i.Name, i.Protocol, yesNo(i.EnableRss), yesNo(i.EnableAutomaticSearch), strconv.FormatInt(i.Priority, 10)}
			})
		},
	},
	"tasks": {
		block:  route.System,
		header: []string{"NAME", "INTERVAL", "LAST EXECUTION", "NEXT EXECUTION"},
		rows: func(d *state.ServarrData) [][]string {
			return rowsOf(d.Tasks.Items, func(t models.Task) []string {
				return []string{t.Name, strconv.FormatInt(t.Interval, 10) + "m", t.LastExecution, t.NextExecution}
			})
		},
	},
	"logs": {
		block:  route.System,
		header: []string{"LOG"},
		rows: func(d *state.ServarrData) [][]string {
			return rowsOf(d.Logs.Items, func(line string) []string {
				return []string{line}
			})
		},
	},
}

func rowsOf[T any](items []T, row func(T) []string) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, row(item))
	}
	return rows
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func size(bytes int64) string {
	return humanize.IBytes(uint64(max(bytes, 0)))
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

func indexerName(i models.Indexer) string { return i.Name }

func rootFolderPath(f models.RootFolder) string { return f.Path }

func blocklistTitle(b models.BlocklistItem) string { return b.SourceTitle }
