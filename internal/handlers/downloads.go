package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

var downloadsFactory = Factory{
	Name:    "downloads",
	Accepts: blockSet(route.DownloadsBlocks),
	With: func(c Context) KeyEventHandler {
		return &downloadsHandler{base{c}}
	},
}

type downloadsHandler struct {
	base
}

func (h *downloadsHandler) IsReady() bool {
	return !h.App.IsLoading && !h.data().Downloads.IsEmpty()
}

func (h *downloadsHandler) HandleTableEvents() bool {
	return handleTable(&h.base, h.IsReady(), tableConfig[models.QueueItem]{
		Table:      h.data().Downloads,
		TableBlock: route.Downloads,
	})
}

func (h *downloadsHandler) selectedID() int64 {
	item, _ := h.data().Downloads.CurrentSelection()
	return item.ID
}

func (h *downloadsHandler) HandleDelete() {
	if h.Block == route.Downloads {
		h.push(route.DeleteDownloadPrompt)
	}
}

func (h *downloadsHandler) HandleLeftRight() {
	switch h.Block {
	case route.Downloads:
		h.changeTab()
	case route.DeleteDownloadPrompt, route.UpdateDownloadsPrompt:
		h.togglePrompt()
	}
}

func (h *downloadsHandler) HandleSubmit() {
	switch h.Block {
	case route.DeleteDownloadPrompt:
		h.submitPrompt(network.OpDeleteDownload, network.IDParams{ID: h.selectedID()})
	case route.UpdateDownloadsPrompt:
		h.submitPrompt(network.OpUpdateDownloads, nil)
	}
}

func (h *downloadsHandler) HandleEsc() {
	switch h.Block {
	case route.DeleteDownloadPrompt, route.UpdateDownloadsPrompt:
		h.escPrompt()
	default:
		h.clearErrors()
	}
}

func (h *downloadsHandler) HandleChar() {
	km := keys.Default
	switch h.Block {
	case route.Downloads:
		switch {
		case h.matches(km.Update):
			h.push(route.UpdateDownloadsPrompt)
		case h.matches(km.Refresh):
			h.App.ShouldRefresh = true
		}
	case route.DeleteDownloadPrompt:
		h.confirmPrompt(network.OpDeleteDownload, network.IDParams{ID: h.selectedID()})
	case route.UpdateDownloadsPrompt:
		h.confirmPrompt(network.OpUpdateDownloads, nil)
	}
}
