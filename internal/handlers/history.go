package handlers

import (
	"cmp"
	"strings"

	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/route"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

var historyFactory = Factory{
	Name:    "history",
	Accepts: blockSet(route.HistoryBlocks),
	With: func(c Context) KeyEventHandler {
		return &historyHandler{base{c}}
	},
}

type historyHandler struct {
	base
}

// HistorySortOptions are the columns the history can be sorted by.
func HistorySortOptions() []uistate.SortOption[models.HistoryItem] {
	return []uistate.SortOption[models.HistoryItem]{
		{Name: "Source Title", Cmp: func(a, b models.HistoryItem) int {
			return cmp.Compare(strings.ToLower(a.SourceTitle), strings.ToLower(b.SourceTitle))
		}},
		{Name: "Event Type", Cmp: func(a, b models.HistoryItem) int { return cmp.Compare(a.EventType, b.EventType) }},
		{Name: "Quality", Cmp: func(a, b models.HistoryItem) int {
			return cmp.Compare(a.Quality.Quality.Name, b.Quality.Quality.Name)
		}},
		{Name: "Date", Cmp: func(a, b models.HistoryItem) int { return cmp.Compare(a.Date, b.Date) }},
	}
}

func (h *historyHandler) IsReady() bool {
	return !h.App.IsLoading && !h.data().History.IsEmpty()
}

func (h *historyHandler) HandleTableEvents() bool {
	return handleTable(&h.base, h.IsReady(), tableConfig[models.HistoryItem]{
		Table:            h.data().History,
		TableBlock:       route.History,
		SortBlock:        route.HistorySortPrompt,
		SortOptions:      HistorySortOptions,
		SearchBlock:      route.SearchHistory,
		SearchErrorBlock: route.SearchHistoryError,
		FilterBlock:      route.FilterHistory,
		FilterErrorBlock: route.FilterHistoryError,
		Field:            func(item models.HistoryItem) string { return item.SourceTitle },
	})
}

func (h *historyHandler) HandleLeftRight() {
	if h.Block == route.History {
		h.changeTab()
	}
}

func (h *historyHandler) HandleSubmit() {
	if h.Block == route.History {
		h.push(route.HistoryItemDetails)
	}
}

func (h *historyHandler) HandleEsc() {
	switch h.Block {
	case route.HistoryItemDetails:
		h.pop()
	default:
		h.clearErrors()
	}
}

func (h *historyHandler) HandleChar() {
	if h.Block == route.History && h.matches(keys.Default.Refresh) {
		h.App.ShouldRefresh = true
	}
}
