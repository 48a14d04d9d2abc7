package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
)

var indexersFactory = Factory{
	Name:    "indexers",
	Accepts: blockSet(route.IndexersBlocks, editIndexerFactory, indexerSettingsFactory, testAllIndexersFactory),
	With: func(c Context) KeyEventHandler {
		if h := delegate(c, editIndexerFactory, indexerSettingsFactory, testAllIndexersFactory); h != nil {
			return h
		}
		return &indexersHandler{base{c}}
	},
}

type indexersHandler struct {
	base
}

func (h *indexersHandler) IsReady() bool {
	return !h.App.IsLoading && !h.data().Indexers.IsEmpty()
}

func (h *indexersHandler) HandleTableEvents() bool {
	return handleTable(&h.base, h.IsReady(), tableConfig[models.Indexer]{
		Table:      h.data().Indexers,
		TableBlock: route.Indexers,
	})
}

func (h *indexersHandler) selectedID() int64 {
	item, _ := h.data().Indexers.CurrentSelection()
	return item.ID
}

func (h *indexersHandler) HandleDelete() {
	if h.Block == route.Indexers {
		h.push(route.DeleteIndexerPrompt)
	}
}

func (h *indexersHandler) HandleLeftRight() {
	switch h.Block {
	case route.Indexers:
		h.changeTab()
	case route.DeleteIndexerPrompt:
		h.togglePrompt()
	}
}

func (h *indexersHandler) HandleSubmit() {
	d := h.data()
	switch h.Block {
	case route.Indexers:
		indexer, ok := d.Indexers.CurrentSelection()
		if !ok {
			return
		}
		d.EditIndexer = state.NewEditIndexerModal(indexer, d.Metadata)
		if d.EditIndexer.Torrent {
			d.SelectBlocks(route.EditIndexerTorrentSelectionBlocks)
		} else {
			d.SelectBlocks(route.EditIndexerNzbSelectionBlocks)
		}
		d.PromptConfirm = false
		h.pushWithContext(route.EditIndexerPrompt, route.Indexers)
	case route.DeleteIndexerPrompt:
		h.submitPrompt(network.OpDeleteIndexer, network.IDParams{ID: h.selectedID()})
	}
}

func (h *indexersHandler) HandleEsc() {
	switch h.Block {
	case route.DeleteIndexerPrompt:
		h.escPrompt()
	case route.TestIndexer:
		h.pop()
		h.data().IndexerTestErrors = nil
	default:
		h.clearErrors()
	}
}

func (h *indexersHandler) HandleChar() {
	km := keys.Default
	d := h.data()
	switch h.Block {
	case route.Indexers:
		switch {
		case h.matches(km.Refresh):
			h.App.ShouldRefresh = true
		case h.matches(km.Test):
			d.IndexerTestErrors = nil
			h.push(route.TestIndexer)
		case h.matches(km.TestAll):
			d.IndexerTestAll = nil
			h.push(route.TestAllIndexers)
		case h.matches(km.Settings):
			d.IndexerSettings = nil
			d.SelectBlocks(route.IndexerSettingsSelectionBlocks)
			d.PromptConfirm = false
			h.pushWithContext(route.IndexerSettingsPrompt, route.Indexers)
		}
	case route.DeleteIndexerPrompt:
		h.confirmPrompt(network.OpDeleteIndexer, network.IDParams{ID: h.selectedID()})
	}
}
