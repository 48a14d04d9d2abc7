package handlers

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

var libraryFactory = Factory{
	Name: "library",
	Accepts: blockSet(route.LibraryBlocks,
		mediaDetailsFactory, deleteMediaFactory, editMediaFactory, addMediaFactory),
	With: func(c Context) KeyEventHandler {
		if h := delegate(c, mediaDetailsFactory, deleteMediaFactory, editMediaFactory, addMediaFactory); h != nil {
			return h
		}
		return &libraryHandler{base{c}}
	},
}

type libraryHandler struct {
	base
}

// LibrarySortOptions are the columns the library can be sorted by.
func LibrarySortOptions(meta models.Metadata) []uistate.SortOption[models.MediaItem] {
	return []uistate.SortOption[models.MediaItem]{
		{Name: "Title", Cmp: func(a, b models.MediaItem) int {
			return cmp.Compare(strings.ToLower(sortTitle(a)), strings.ToLower(sortTitle(b)))
		}},
		{Name: "Year", Cmp: func(a, b models.MediaItem) int { return cmp.Compare(a.Year, b.Year) }},
		{Name: "Network", Cmp: func(a, b models.MediaItem) int {
			return cmp.Compare(strings.ToLower(a.Network), strings.ToLower(b.Network))
		}},
		{Name: "Runtime", Cmp: func(a, b models.MediaItem) int { return cmp.Compare(a.Runtime, b.Runtime) }},
		{Name: "Rating", Cmp: func(a, b models.MediaItem) int { return cmp.Compare(a.Certification, b.Certification) }},
		{Name: "Language", Cmp: func(a, b models.MediaItem) int { return cmp.Compare(a.Language, b.Language) }},
		{Name: "Size", Cmp: func(a, b models.MediaItem) int { return cmp.Compare(a.SizeOnDisk, b.SizeOnDisk) }},
		{Name: "Quality", Cmp: func(a, b models.MediaItem) int {
			return cmp.Compare(meta.QualityProfileName(a.QualityProfileID), meta.QualityProfileName(b.QualityProfileID))
		}},
		{Name: "Monitored", Cmp: func(a, b models.MediaItem) int { return compareBool(a.Monitored, b.Monitored) }},
		{Name: "Tags", Cmp: func(a, b models.MediaItem) int {
			return cmp.Compare(strings.Join(meta.TagLabels(a.Tags), ","), strings.Join(meta.TagLabels(b.Tags), ","))
		}},
	}
}

func sortTitle(m models.MediaItem) string {
	if m.SortTitle != "" {
		return m.SortTitle
	}
	return m.Title
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func (h *libraryHandler) IsReady() bool {
	return !h.App.IsLoading && !h.data().Library.IsEmpty()
}

func (h *libraryHandler) HandleTableEvents() bool {
	d := h.data()
	return handleTable(&h.base, h.IsReady(), tableConfig[models.MediaItem]{
		Table:            d.Library,
		TableBlock:       route.Library,
		SortBlock:        route.LibrarySortPrompt,
		SortOptions:      func() []uistate.SortOption[models.MediaItem] { return LibrarySortOptions(d.Metadata) },
		SearchBlock:      route.SearchLibrary,
		SearchErrorBlock: route.SearchLibraryError,
		FilterBlock:      route.FilterLibrary,
		FilterErrorBlock: route.FilterLibraryError,
		Field:            func(m models.MediaItem) string { return m.Title },
	})
}

func (h *libraryHandler) HandleDelete() {
	if h.Block != route.Library {
		return
	}
	d := h.data()
	d.ResetDeleteToggles()
	d.SelectBlocks(route.DeleteMediaSelectionBlocks)
	h.pushWithContext(route.DeleteMediaPrompt, route.Library)
}

func (h *libraryHandler) HandleLeftRight() {
	switch h.Block {
	case route.Library:
		h.changeTab()
	case route.UpdateAllLibraryPrompt:
		h.togglePrompt()
	}
}

func (h *libraryHandler) HandleSubmit() {
	switch h.Block {
	case route.Library:
		openMediaDetails(&h.base)
	case route.UpdateAllLibraryPrompt:
		h.submitPrompt(network.OpUpdateAllLibrary, nil)
	}
}

func (h *libraryHandler) HandleEsc() {
	switch h.Block {
	case route.UpdateAllLibraryPrompt:
		h.escPrompt()
	default:
		h.clearErrors()
	}
}

func (h *libraryHandler) HandleChar() {
	km := keys.Default
	d := h.data()
	switch h.Block {
	case route.Library:
		switch {
		case h.matches(km.Edit):
			openEditMedia(&h.base, route.Library)
		case h.matches(km.Add):
			d.AddSearch = uistate.NewHorizontallyScrollableText("")
			h.push(route.AddMediaSearchInput)
			h.enterTextInput()
		case h.matches(km.Update):
			h.push(route.UpdateAllLibraryPrompt)
		case h.matches(km.Refresh):
			h.App.ShouldRefresh = true
		case h.matches(km.ToggleMonitoring):
			if item, ok := d.Library.CurrentSelection(); ok {
				d.PromptConfirm = true
				h.stage(network.OpToggleMonitoring, ToggleMonitoringParams(item, d.Metadata))
			}
		}
	case route.UpdateAllLibraryPrompt:
		h.confirmPrompt(network.OpUpdateAllLibrary, nil)
	}
}

// ToggleMonitoringParams flips the monitored flag of item and keeps every
// other editable field as it is.
func ToggleMonitoringParams(item models.MediaItem, meta models.Metadata) network.EditMediaParams {
	return network.EditMediaParams{
		Item:             item,
		Monitored:        !item.Monitored,
		QualityProfileID: item.QualityProfileID,
		Path:             item.Path,
		Tags:             state.FormatTags(meta.TagLabels(item.Tags)),
	}
}

// openMediaDetails shows the selected library item.
func openMediaDetails(b *base) {
	d := b.data()
	item, ok := d.Library.CurrentSelection()
	if !ok {
		return
	}
	d.MediaDetails = uistate.NewScrollableText(MediaDetailsText(b.Backend, item, d.Metadata))
	d.MediaHistory.SetItems(nil)
	d.Seasons.SetItems(nil)
	d.SyncSeasons()
	d.Albums.SetItems(nil)
	d.MediaInfoTabs.SetIndex(0)
	b.push(route.MediaDetails)
}

// openEditMedia starts the edit flow for the selected library item. ctx is
// the block to return to.
func openEditMedia(b *base, ctx route.Block) {
	d := b.data()
	item, ok := d.Library.CurrentSelection()
	if !ok {
		return
	}
	d.EditMedia = state.NewEditMediaModal(item, d.Metadata)
	d.SelectBlocks(route.EditMediaSelectionBlocks)
	d.PromptConfirm = false
	b.pushWithContext(route.EditMediaPrompt, ctx)
}

// MediaDetailsText renders the description pane of a library item.
func MediaDetailsText(backend route.Backend, item models.MediaItem, meta models.Metadata) string {
	networkLabel := "Studio"
	switch backend {
	case route.Sonarr:
		networkLabel = "Network"
	case route.Lidarr:
		networkLabel = "Type"
	}
	status := "Missing"
	if item.HasFile || item.SizeOnDisk > 0 {
		status = "Downloaded"
	}
	lines := []string{
		fmt.Sprintf("Title: %s", item.Title),
		fmt.Sprintf("Year: %d", item.Year),
		fmt.Sprintf("Status: %s (%s)", status, item.Status),
		fmt.Sprintf("%s: %s", networkLabel, item.Network),
		fmt.Sprintf("Genres: %s", strings.Join(item.Genres, ", ")),
		fmt.Sprintf("Runtime: %dm", item.Runtime),
		fmt.Sprintf("Rating: %s", item.Certification),
		fmt.Sprintf("Language: %s", item.Language),
		fmt.Sprintf("Quality Profile: %s", meta.QualityProfileName(item.QualityProfileID)),
		fmt.Sprintf("Monitored: %t", item.Monitored),
		fmt.Sprintf("Size: %s", state.FormatSize(item.SizeOnDisk)),
		fmt.Sprintf("Path: %s", item.Path),
		fmt.Sprintf("Tags: %s", state.FormatTags(meta.TagLabels(item.Tags))),
	}
	if item.Overview != "" {
		lines = append(lines, "", item.Overview)
	}
	return strings.Join(lines, "\n")
}
