package handlers

import (
	"cmp"
	"strings"

	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

var blocklistFactory = Factory{
	Name:    "blocklist",
	Accepts: blockSet(route.BlocklistBlocks),
	With: func(c Context) KeyEventHandler {
		return &blocklistHandler{base{c}}
	},
}

type blocklistHandler struct {
	base
}

// BlocklistSortOptions are the columns the blocklist can be sorted by.
func BlocklistSortOptions() []uistate.SortOption[models.BlocklistItem] {
	return []uistate.SortOption[models.BlocklistItem]{
		{Name: "Source Title", Cmp: func(a, b models.BlocklistItem) int {
			return cmp.Compare(strings.ToLower(a.SourceTitle), strings.ToLower(b.SourceTitle))
		}},
		{Name: "Protocol", Cmp: func(a, b models.BlocklistItem) int { return cmp.Compare(a.Protocol, b.Protocol) }},
		{Name: "Indexer", Cmp: func(a, b models.BlocklistItem) int { return cmp.Compare(a.Indexer, b.Indexer) }},
		{Name: "Quality", Cmp: func(a, b models.BlocklistItem) int {
			return cmp.Compare(a.Quality.Quality.Name, b.Quality.Quality.Name)
		}},
		{Name: "Date", Cmp: func(a, b models.BlocklistItem) int { return cmp.Compare(a.Date, b.Date) }},
	}
}

func (h *blocklistHandler) IsReady() bool {
	return !h.App.IsLoading && !h.data().Blocklist.IsEmpty()
}

func (h *blocklistHandler) HandleTableEvents() bool {
	return handleTable(&h.base, h.IsReady(), tableConfig[models.BlocklistItem]{
		Table:       h.data().Blocklist,
		TableBlock:  route.Blocklist,
		SortBlock:   route.BlocklistSortPrompt,
		SortOptions: BlocklistSortOptions,
		Field:       func(b models.BlocklistItem) string { return b.SourceTitle },
	})
}

func (h *blocklistHandler) selectedID() int64 {
	item, _ := h.data().Blocklist.CurrentSelection()
	return item.ID
}

func (h *blocklistHandler) allIDs() network.IDsParams {
	items := h.data().Blocklist.Items
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return network.IDsParams{IDs: ids}
}

func (h *blocklistHandler) HandleDelete() {
	if h.Block == route.Blocklist {
		h.push(route.DeleteBlocklistItemPrompt)
	}
}

func (h *blocklistHandler) HandleLeftRight() {
	switch h.Block {
	case route.Blocklist:
		h.changeTab()
	case route.DeleteBlocklistItemPrompt, route.BlocklistClearAllItemsPrompt:
		h.togglePrompt()
	}
}

func (h *blocklistHandler) HandleSubmit() {
	switch h.Block {
	case route.Blocklist:
		h.push(route.BlocklistItemDetails)
	case route.DeleteBlocklistItemPrompt:
		h.submitPrompt(network.OpDeleteBlocklistItem, network.IDParams{ID: h.selectedID()})
	case route.BlocklistClearAllItemsPrompt:
		h.submitPrompt(network.OpClearBlocklist, h.allIDs())
	}
}

func (h *blocklistHandler) HandleEsc() {
	switch h.Block {
	case route.BlocklistItemDetails:
		h.pop()
	case route.DeleteBlocklistItemPrompt, route.BlocklistClearAllItemsPrompt:
		h.escPrompt()
	default:
		h.clearErrors()
	}
}

func (h *blocklistHandler) HandleChar() {
	km := keys.Default
	switch h.Block {
	case route.Blocklist:
		switch {
		case h.matches(km.Clear):
			h.push(route.BlocklistClearAllItemsPrompt)
		case h.matches(km.Refresh):
			h.App.ShouldRefresh = true
		}
	case route.DeleteBlocklistItemPrompt:
		h.confirmPrompt(network.OpDeleteBlocklistItem, network.IDParams{ID: h.selectedID()})
	case route.BlocklistClearAllItemsPrompt:
		h.confirmPrompt(network.OpClearBlocklist, h.allIDs())
	}
}
