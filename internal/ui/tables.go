package ui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/atomicstack/servarr-dash/internal/format/table"
	"github.com/atomicstack/servarr-dash/internal/handlers"
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

type column[T any] struct {
	title string
	align table.Alignment
	cell  func(T) string
}

// renderTable draws the visible window of t with a header row. The selected
// row is highlighted; rowStyle, when set, colours the other rows.
func renderTable[T any](t *uistate.StatefulTable[T], cols []column[T], width, height int, empty string, rowStyle func(T) *lipgloss.Style) string {
	items := t.ActiveItems()
	if len(items) == 0 {
		return styles.Info.Render(empty)
	}
	start, end := t.VisibleRange(max(height-1, 1))
	rows := make([][]string, 0, end-start+1)
	aligns := make([]table.Alignment, len(cols))
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.title
		aligns[i] = c.align
	}
	rows = append(rows, header)
	for _, item := range items[start:end] {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.cell(item)
		}
		rows = append(rows, row)
	}
	lines := table.Format(rows, aligns)
	selected, hasSelection := t.CurrentSelectionIndex()

	out := make([]string, 0, len(lines))
	out = append(out, styles.TableHeader.Render(table.Truncate(lines[0], width)))
	for i, line := range lines[1:] {
		line = table.Pad(table.Truncate(line, width), width)
		style := styles.Item
		switch {
		case hasSelection && start+i == selected:
			style = styles.SelectedItem
		case rowStyle != nil:
			if s := rowStyle(items[start+i]); s != nil {
				style = s
			}
		}
		out = append(out, style.Render(line))
	}
	return strings.Join(out, "\n")
}

// renderList draws a single-column table without a header.
func renderList[T any](t *uistate.List[T], label func(T) string, width, height int, empty string) string {
	items := t.ActiveItems()
	if len(items) == 0 {
		return styles.Info.Render(empty)
	}
	start, end := t.VisibleRange(max(height, 1))
	selected, hasSelection := t.CurrentSelectionIndex()
	out := make([]string, 0, end-start)
	for i, item := range items[start:end] {
		line := table.Pad(table.Truncate(label(item), width), width)
		if hasSelection && start+i == selected {
			out = append(out, styles.SelectedItem.Render(line))
		} else {
			out = append(out, styles.Item.Render(line))
		}
	}
	return strings.Join(out, "\n")
}

func (m *Model) emptyText(what string) string {
	if m.app.IsLoading {
		return loadingText
	}
	return "No " + what + " found"
}

var helpColumns = []column[keys.HelpEntry]{
	{title: "Key", cell: func(e keys.HelpEntry) string { return e.Key }},
	{title: "Description", cell: func(e keys.HelpEntry) string { return e.Desc }},
}

func libraryColumns(b route.Backend, meta models.Metadata) []column[models.MediaItem] {
	networkTitle := "Studio"
	switch b {
	case route.Sonarr:
		networkTitle = "Network"
	case route.Lidarr:
		networkTitle = "Type"
	}
	cols := []column[models.MediaItem]{
		{title: "Title", cell: func(m models.MediaItem) string { return m.Title }},
	}
	if b != route.Lidarr {
		cols = append(cols, column[models.MediaItem]{title: "Year", cell: func(m models.MediaItem) string { return year(m.Year) }})
	}
	cols = append(cols, column[models.MediaItem]{title: networkTitle, cell: func(m models.MediaItem) string { return m.Network }})
	if b == route.Radarr {
		cols = append(cols, column[models.MediaItem]{title: "Runtime", align: table.AlignRight, cell: func(m models.MediaItem) string { return runtimeText(m.Runtime) }})
	}
	if b == route.Sonarr || b == route.Lidarr {
		cols = append(cols, column[models.MediaItem]{title: "Status", cell: func(m models.MediaItem) string { return m.Status }})
	}
	return append(cols,
		column[models.MediaItem]{title: "Rating", cell: func(m models.MediaItem) string { return m.Certification }},
		column[models.MediaItem]{title: "Language", cell: func(m models.MediaItem) string { return m.Language }},
		column[models.MediaItem]{title: "Size", align: table.AlignRight, cell: func(m models.MediaItem) string { return state.FormatSize(m.SizeOnDisk) }},
		column[models.MediaItem]{title: "Quality Profile", cell: func(m models.MediaItem) string { return meta.QualityProfileName(m.QualityProfileID) }},
		column[models.MediaItem]{title: "Monitored", cell: func(m models.MediaItem) string { return check(m.Monitored) }},
		column[models.MediaItem]{title: "Tags", cell: func(m models.MediaItem) string { return state.FormatTags(meta.TagLabels(m.Tags)) }},
	)
}

func libraryRowStyle(m models.MediaItem) *lipgloss.Style {
	switch {
	case !m.Monitored:
		return styles.Unmonitored
	case m.HasFile || m.SizeOnDisk > 0:
		return styles.Downloaded
	default:
		return styles.Missing
	}
}

func searchResultColumns(library []models.MediaItem) []column[models.MediaItem] {
	return []column[models.MediaItem]{
		{title: "✔", cell: func(m models.MediaItem) string { return check(handlers.InLibrary(library, m)) }},
		{title: "Title", cell: func(m models.MediaItem) string { return m.Title }},
		{title: "Year", cell: func(m models.MediaItem) string { return year(m.Year) }},
		{title: "Runtime", align: table.AlignRight, cell: func(m models.MediaItem) string { return runtimeText(m.Runtime) }},
		{title: "Rating", cell: func(m models.MediaItem) string { return m.Certification }},
		{title: "Genres", cell: func(m models.MediaItem) string { return strings.Join(m.Genres, ", ") }},
	}
}

var downloadColumns = []column[models.QueueItem]{
	{title: "Title", cell: func(q models.QueueItem) string { return q.Title }},
	{title: "Percent Complete", align: table.AlignRight, cell: func(q models.QueueItem) string {
		return fmt.Sprintf("%.0f%%", q.Progress()*100)
	}},
	{title: "Size", align: table.AlignRight, cell: func(q models.QueueItem) string { return state.FormatSize(q.Size) }},
	{title: "Status", cell: func(q models.QueueItem) string { return q.Status }},
	{title: "Output Path", cell: func(q models.QueueItem) string { return q.OutputPath }},
	{title: "Indexer", cell: func(q models.QueueItem) string { return q.Indexer }},
	{title: "Download Client", cell: func(q models.QueueItem) string { return q.DownloadClient }},
}

var blocklistColumns = []column[models.BlocklistItem]{
	{title: "Source Title", cell: func(b models.BlocklistItem) string { return b.SourceTitle }},
	{title: "Language", cell: func(b models.BlocklistItem) string { return languages(b.Languages) }},
	{title: "Quality", cell: func(b models.BlocklistItem) string { return b.Quality.Quality.Name }},
	{title: "Date", cell: func(b models.BlocklistItem) string { return dateOnly(b.Date) }},
}

var historyColumns = []column[models.HistoryItem]{
	{title: "Source Title", cell: func(h models.HistoryItem) string { return h.SourceTitle }},
	{title: "Event Type", cell: func(h models.HistoryItem) string { return h.EventType }},
	{title: "Language", cell: func(h models.HistoryItem) string { return languages(h.Languages) }},
	{title: "Quality", cell: func(h models.HistoryItem) string { return h.Quality.Quality.Name }},
	{title: "Date", cell: func(h models.HistoryItem) string { return dateOnly(h.Date) }},
}

var mediaHistoryColumns = []column[models.MediaHistoryItem]{
	{title: "Source Title", cell: func(h models.MediaHistoryItem) string { return h.SourceTitle }},
	{title: "Event Type", cell: func(h models.MediaHistoryItem) string { return h.EventType }},
	{title: "Quality", cell: func(h models.MediaHistoryItem) string { return h.Quality.Quality.Name }},
	{title: "Date", cell: func(h models.MediaHistoryItem) string { return dateOnly(h.Date) }},
}

var seasonColumns = []column[models.Season]{
	{title: "Monitored", cell: func(s models.Season) string { return check(s.Monitored) }},
	{title: "Season", cell: func(s models.Season) string { return s.Title() }},
	{title: "Episodes", align: table.AlignRight, cell: func(s models.Season) string {
		return fmt.Sprintf("%d/%d", s.Statistics.EpisodeFileCount, s.Statistics.EpisodeCount)
	}},
	{title: "Size on Disk", align: table.AlignRight, cell: func(s models.Season) string { return state.FormatSize(s.Statistics.SizeOnDisk) }},
}

func seasonRowStyle(s models.Season) *lipgloss.Style {
	switch {
	case !s.Monitored:
		return styles.Unmonitored
	case s.Statistics.EpisodeCount > 0 && s.Statistics.EpisodeFileCount >= s.Statistics.EpisodeCount:
		return styles.Downloaded
	default:
		return styles.Missing
	}
}

var episodeColumns = []column[models.Episode]{
	{title: "Monitored", cell: func(e models.Episode) string { return check(e.Monitored) }},
	{title: "#", align: table.AlignRight, cell: func(e models.Episode) string { return strconv.FormatInt(e.EpisodeNumber, 10) }},
	{title: "Title", cell: func(e models.Episode) string { return e.Title }},
	{title: "Air Date", cell: func(e models.Episode) string { return dateOnly(e.AirDateUtc) }},
	{title: "Status", cell: func(e models.Episode) string { return downloadedOrMissing(e.HasFile) }},
}

func episodeRowStyle(e models.Episode) *lipgloss.Style {
	switch {
	case !e.Monitored:
		return styles.Unmonitored
	case e.HasFile:
		return styles.Downloaded
	default:
		return styles.Missing
	}
}

var albumColumns = []column[models.Album]{
	{title: "Monitored", cell: func(a models.Album) string { return check(a.Monitored) }},
	{title: "Title", cell: func(a models.Album) string { return a.Title }},
	{title: "Type", cell: func(a models.Album) string { return a.AlbumType }},
	{title: "Tracks", align: table.AlignRight, cell: func(a models.Album) string {
		return fmt.Sprintf("%d/%d", a.Statistics.TrackFileCount, a.Statistics.TotalTrackCount)
	}},
	{title: "Size on Disk", align: table.AlignRight, cell: func(a models.Album) string { return state.FormatSize(a.Statistics.SizeOnDisk) }},
	{title: "Release Date", cell: func(a models.Album) string { return dateOnly(a.ReleaseDate) }},
}

func albumRowStyle(a models.Album) *lipgloss.Style {
	switch {
	case !a.Monitored:
		return styles.Unmonitored
	case a.Statistics.TotalTrackCount > 0 && a.Statistics.TrackFileCount >= a.Statistics.TotalTrackCount:
		return styles.Downloaded
	default:
		return styles.Missing
	}
}

var trackColumns = []column[models.Track]{
	{title: "#", align: table.AlignRight, cell: func(t models.Track) string { return t.TrackNumber }},
	{title: "Title", cell: func(t models.Track) string { return t.Title }},
	{title: "Duration", align: table.AlignRight, cell: func(t models.Track) string { return handlers.TrackDuration(t.Duration) }},
	{title: "Status", cell: func(t models.Track) string { return downloadedOrMissing(t.HasFile) }},
}

func downloadedOrMissing(ok bool) string {
	if ok {
		return "Downloaded"
	}
	return "Missing"
}

var rootFolderColumns = []column[models.RootFolder]{
	{title: "Path", cell: func(f models.RootFolder) string { return f.Path }},
	{title: "Free Space", align: table.AlignRight, cell: func(f models.RootFolder) string { return state.FormatSize(f.FreeSpace) }},
	{title: "Unmapped Folders", align: table.AlignRight, cell: func(f models.RootFolder) string {
		return strconv.Itoa(len(f.UnmappedFolders))
	}},
}

func indexerColumns(meta models.Metadata) []column[models.Indexer] {
	return []column[models.Indexer]{
		{title: "Indexer", cell: func(i models.Indexer) string { return i.Name }},
		{title: "RSS", cell: func(i models.Indexer) string { return enabled(i.EnableRss) }},
		{title: "Automatic Search", cell: func(i models.Indexer) string { return enabled(i.EnableAutomaticSearch) }},
		{title: "Interactive Search", cell: func(i models.Indexer) string { return enabled(i.EnableInteractiveSearch) }},
		{title: "Priority", align: table.AlignRight, cell: func(i models.Indexer) string { return strconv.FormatInt(i.Priority, 10) }},
		{title: "Tags", cell: func(i models.Indexer) string { return state.FormatTags(meta.TagLabels(i.Tags)) }},
	}
}

var testSummaryColumns = []column[models.IndexerTestSummary]{
	{title: "Indexer", cell: func(s models.IndexerTestSummary) string { return s.Name }},
	{title: "Pass/Fail", cell: func(s models.IndexerTestSummary) string {
		if s.IsValid {
			return "✔"
		}
		return "❌"
	}},
	{title: "Failure Messages", cell: func(s models.IndexerTestSummary) string { return s.ValidationFailure }},
}

func testSummaryRowStyle(s models.IndexerTestSummary) *lipgloss.Style {
	if s.IsValid {
		return styles.Success
	}
	return styles.Missing
}

var taskColumns = []column[models.Task]{
	{title: "Name", cell: func(t models.Task) string { return t.Name }},
	{title: "Interval", align: table.AlignRight, cell: func(t models.Task) string { return interval(t.Interval) }},
	{title: "Last Execution", cell: func(t models.Task) string { return timestamp(t.LastExecution) }},
	{title: "Last Duration", cell: func(t models.Task) string { return t.LastDuration }},
	{title: "Next Execution", cell: func(t models.Task) string { return timestamp(t.NextExecution) }},
}

var queuedEventColumns = []column[models.QueuedEvent]{
	{title: "Trigger", cell: func(e models.QueuedEvent) string { return e.Trigger }},
	{title: "Status", cell: func(e models.QueuedEvent) string { return e.Status }},
	{title: "Name", cell: func(e models.QueuedEvent) string { return e.Name }},
	{title: "Queued", cell: func(e models.QueuedEvent) string { return timestamp(e.Queued) }},
	{title: "Started", cell: func(e models.QueuedEvent) string { return timestamp(e.Started) }},
	{title: "Duration", cell: func(e models.QueuedEvent) string { return e.Duration }},
}

func year(y int) string {
	if y == 0 {
		return ""
	}
	return strconv.Itoa(y)
}

func runtimeText(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func interval(minutes int64) string {
	switch {
	case minutes <= 0:
		return "disabled"
	case minutes%(24*60) == 0:
		return fmt.Sprintf("%d days", minutes/(24*60))
	case minutes%60 == 0:
		return fmt.Sprintf("%d hours", minutes/60)
	default:
		return fmt.Sprintf("%d minutes", minutes)
	}
}

func check(ok bool) string {
	if ok {
		return "✔"
	}
	return ""
}

func enabled(ok bool) string {
	if ok {
		return "Enabled"
	}
	return "Disabled"
}

func languages(langs []models.Language) string {
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, l.Name)
	}
	return strings.Join(names, ", ")
}

func dateOnly(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i > 0 {
		return ts[:i]
	}
	return ts
}

// timestamp trims an ISO timestamp to minutes.
func timestamp(ts string) string {
	ts = strings.Replace(ts, "T", " ", 1)
	if len(ts) > 16 {
		return ts[:16]
	}
	return ts
}
