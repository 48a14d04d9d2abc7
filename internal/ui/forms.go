package ui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/atomicstack/servarr-dash/internal/format/table"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

const (
	formWidthPercent = 60
	labelWidth       = 20
)

// form draws modal rows for the focus grid in data.SelectedBlock. editing is
// the block whose input currently owns the keyboard, if any.
type form struct {
	data    *state.ServarrData
	editing route.Block
	width   int
}

func newForm(data *state.ServarrData, r route.Route, width int) form {
	return form{data: data, editing: r.Block, width: popupWidth(width, formWidthPercent)}
}

func (f form) inner() int {
	return f.width - 4
}

func (f form) focused(b route.Block) bool {
	return f.data.SelectedBlock.ActiveBlock() == b
}

func (f form) label(b route.Block, text string, width int) string {
	style := styles.Item
	if f.focused(b) {
		style = styles.SelectedItem
	}
	return style.Render(table.Pad(table.Truncate(text, width), width))
}

func (f form) checkbox(b route.Block, text string, checked bool, width int) string {
	mark := "[ ]"
	if checked {
		mark = "[✔]"
	}
	return f.label(b, mark+" "+text, width)
}

func (f form) input(b route.Block, text string, value *uistate.HorizontallyScrollableText, width int) string {
	lw := min(labelWidth, width/2)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		f.label(b, text, lw),
		field(value, f.editing == b, max(width-lw, 6)),
	)
}

func (f form) value(b route.Block, text, value string, width int) string {
	lw := min(labelWidth, width/2)
	v := table.Truncate(value, max(width-lw-1, 1))
	if f.editing == b {
		v = styles.Cursor.Render(v)
	}
	return f.label(b, text, lw) + " " + v
}

func (f form) confirm(b route.Block) string {
	return buttons(f.data.PromptConfirm, f.focused(b), f.inner())
}

func (f form) box(title string, rows ...string) string {
	return popup(title, strings.Join(rows, "\n"), f.width)
}

func mediaNoun(b route.Backend) string {
	switch b {
	case route.Sonarr:
		return "Series"
	case route.Lidarr:
		return "Artist"
	default:
		return "Movie"
	}
}

func deleteMediaForm(data *state.ServarrData, r route.Route, width int) string {
	f := newForm(data, r, width)
	item, _ := data.Library.CurrentSelection()
	question := fmt.Sprintf("Do you really want to delete: \n%s?", item.Title)
	return f.box("Delete "+mediaNoun(r.Backend),
		lipgloss.NewStyle().Width(f.inner()).Render(question),
		"",
		f.checkbox(route.DeleteMediaToggleDeleteFiles, "Delete Files", data.DeleteFiles, f.inner()),
		f.checkbox(route.DeleteMediaToggleAddListExclusion, "Add List Exclusion", data.AddListExclusion, f.inner()),
		"",
		f.confirm(route.DeleteMediaConfirmPrompt),
	)
}

func deleteAlbumForm(data *state.ServarrData, r route.Route, width int) string {
	f := newForm(data, r, width)
	album, _ := data.Albums.CurrentSelection()
	question := fmt.Sprintf("Do you really want to delete the album: \n%s?", album.Title)
	return f.box("Delete Album",
		lipgloss.NewStyle().Width(f.inner()).Render(question),
		"",
		f.checkbox(route.DeleteAlbumToggleDeleteFiles, "Delete Files", data.DeleteFiles, f.inner()),
		f.checkbox(route.DeleteAlbumToggleAddListExclusion, "Add List Exclusion", data.AddListExclusion, f.inner()),
		"",
		f.confirm(route.DeleteAlbumConfirmPrompt),
	)
}

func editMediaForm(data *state.ServarrData, r route.Route, width int) string {
	m := data.EditMedia
	if m == nil {
		return messageBox("Edit", loadingText, width, false)
	}
	f := newForm(data, r, width)
	item, _ := data.Library.CurrentSelection()
	profile, _ := m.QualityProfiles.CurrentSelection()
	return f.box("Edit - "+item.Title,
		f.checkbox(route.EditMediaToggleMonitored, "Monitored", m.Monitored, f.inner()),
		f.value(route.EditMediaSelectQualityProfile, "Quality Profile", profile.Name+" ▼", f.inner()),
		f.input(route.EditMediaPathInput, "Path", m.Path, f.inner()),
		f.input(route.EditMediaTagsInput, "Tags", m.Tags, f.inner()),
		"",
		f.confirm(route.EditMediaConfirmPrompt),
	)
}

func addMediaForm(data *state.ServarrData, r route.Route, width int) string {
	m := data.AddMedia
	if m == nil {
		return messageBox("Add", loadingText, width, false)
	}
	f := newForm(data, r, width)
	item, _ := data.AddSearchResults.CurrentSelection()
	folder, _ := m.RootFolders.CurrentSelection()
	profile, _ := m.QualityProfiles.CurrentSelection()
	folderText := folder.Path
	if folderText != "" {
		folderText += " (" + state.FormatSize(folder.FreeSpace) + " free)"
	}
	return f.box("Add "+mediaNoun(r.Backend)+" - "+item.Title,
		f.value(route.AddMediaSelectRootFolder, "Root Folder", folderText+" ▼", f.inner()),
		f.value(route.AddMediaSelectQualityProfile, "Quality Profile", profile.Name+" ▼", f.inner()),
		f.input(route.AddMediaTagsInput, "Tags", m.Tags, f.inner()),
		"",
		f.confirm(route.AddMediaConfirmPrompt),
	)
}

func editIndexerForm(data *state.ServarrData, r route.Route, width int) string {
	m := data.EditIndexer
	if m == nil {
		return messageBox("Edit Indexer", loadingText, width, false)
	}
	f := newForm(data, r, width)
	half := max((f.inner()-2)/2, 10)
	rightRows := []string{
		f.input(route.EditIndexerURLInput, "URL", m.URL, half),
		f.input(route.EditIndexerAPIKeyInput, "API Key", m.APIKey, half),
	}
	if m.Torrent {
		rightRows = append(rightRows, f.input(route.EditIndexerSeedRatioInput, "Seed Ratio", m.SeedRatio, half))
	}
	rightRows = append(rightRows, f.value(route.EditIndexerPriorityInput, "Indexer Priority ▴▾", strconv.FormatInt(m.Priority, 10), half))
	left := strings.Join([]string{
		f.input(route.EditIndexerNameInput, "Name", m.Name, half),
		f.checkbox(route.EditIndexerToggleEnableRss, "Enable RSS", m.EnableRss, half),
		f.checkbox(route.EditIndexerToggleEnableAutomaticSearch, "Enable Automatic Search", m.EnableAutomaticSearch, half),
		f.checkbox(route.EditIndexerToggleEnableInteractiveSearch, "Enable Interactive Search", m.EnableInteractiveSearch, half),
	}, "\n")
	grid := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", strings.Join(rightRows, "\n"))
	return f.box("Edit Indexer",
		grid,
		f.input(route.EditIndexerTagsInput, "Tags", m.Tags, f.inner()),
		"",
		f.confirm(route.EditIndexerConfirmPrompt),
	)
}

func indexerSettingsForm(data *state.ServarrData, r route.Route, width int) string {
	s := data.IndexerSettings
	if s == nil {
		return messageBox("Configure All Indexer Settings", loadingText, width, false)
	}
	f := newForm(data, r, width)
	half := max((f.inner()-2)/2, 10)
	num := func(b route.Block, label string, v int64, unit string) string {
		return f.value(b, label+" ▴▾", strconv.FormatInt(v, 10)+" "+unit, half)
	}
	left := strings.Join([]string{
		num(route.IndexerSettingsMinimumAgeInput, "Minimum Age", s.MinimumAge, "minutes"),
		num(route.IndexerSettingsMaximumSizeInput, "Maximum Size", s.MaximumSize, "MB"),
	}, "\n")
	right := strings.Join([]string{
		num(route.IndexerSettingsRetentionInput, "Retention", s.Retention, "days"),
		num(route.IndexerSettingsRssSyncIntervalInput, "RSS Sync Interval", s.RssSyncInterval, "minutes"),
	}, "\n")
	grid := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return f.box("Configure All Indexer Settings", grid, "", f.confirm(route.IndexerSettingsConfirmPrompt))
}

func qualityProfileLabel(p models.QualityProfile) string {
	return p.Name
}

func rootFolderLabel(f models.RootFolder) string {
	return f.Path + " (" + state.FormatSize(f.FreeSpace) + " free)"
}
