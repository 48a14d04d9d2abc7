package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

var deleteMediaFactory = Factory{
	Name:    "delete_media",
	Accepts: blockSet(route.DeleteMediaBlocks),
	With: func(c Context) KeyEventHandler {
		return &deleteMediaHandler{base{c}}
	},
}

type deleteMediaHandler struct {
	base
}

func (h *deleteMediaHandler) params() network.DeleteMediaParams {
	d := h.data()
	item, _ := d.Library.CurrentSelection()
	return network.DeleteMediaParams{
		ID:               item.ID,
		DeleteFiles:      d.DeleteFiles,
		AddListExclusion: d.AddListExclusion,
	}
}

func (h *deleteMediaHandler) HandleScrollUp() {
	if h.Block == route.DeleteMediaPrompt {
		h.data().SelectedBlock.Up()
	}
}

func (h *deleteMediaHandler) HandleScrollDown() {
	if h.Block == route.DeleteMediaPrompt {
		h.data().SelectedBlock.Down()
	}
}

func (h *deleteMediaHandler) HandleLeftRight() {
	if h.Block == route.DeleteMediaPrompt && h.selectedBlock() == route.DeleteMediaConfirmPrompt {
		h.togglePrompt()
	}
}

func (h *deleteMediaHandler) HandleSubmit() {
	if h.Block != route.DeleteMediaPrompt {
		return
	}
	d := h.data()
	switch h.selectedBlock() {
	case route.DeleteMediaConfirmPrompt:
		if d.PromptConfirm {
			h.stage(network.OpDeleteMedia, h.params())
		}
		h.pop()
		d.ResetDeleteToggles()
	case route.DeleteMediaToggleDeleteFiles:
		d.DeleteFiles = !d.DeleteFiles
	case route.DeleteMediaToggleAddListExclusion:
		d.AddListExclusion = !d.AddListExclusion
	}
}

func (h *deleteMediaHandler) HandleEsc() {
	h.escPrompt()
	h.data().ResetDeleteToggles()
}

func (h *deleteMediaHandler) HandleChar() {
	if h.Block != route.DeleteMediaPrompt || h.selectedBlock() != route.DeleteMediaConfirmPrompt {
		return
	}
	if h.matches(keys.Default.Confirm) {
		params := h.params()
		h.confirmPrompt(network.OpDeleteMedia, params)
		h.data().ResetDeleteToggles()
	}
}
