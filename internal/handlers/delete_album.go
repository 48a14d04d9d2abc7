package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

var deleteAlbumFactory = Factory{
	Name:    "delete_album",
	Accepts: blockSet(route.DeleteAlbumBlocks),
	With: func(c Context) KeyEventHandler {
		return &deleteAlbumHandler{base{c}}
	},
}

type deleteAlbumHandler struct {
	base
}

func (h *deleteAlbumHandler) params() network.DeleteMediaParams {
	d := h.data()
	album, _ := d.Albums.CurrentSelection()
	return network.DeleteMediaParams{
		ID:               album.ID,
		DeleteFiles:      d.DeleteFiles,
		AddListExclusion: d.AddListExclusion,
	}
}

func (h *deleteAlbumHandler) HandleScrollUp() {
	if h.Block == route.DeleteAlbumPrompt {
		h.data().SelectedBlock.Up()
	}
}

func (h *deleteAlbumHandler) HandleScrollDown() {
	if h.Block == route.DeleteAlbumPrompt {
		h.data().SelectedBlock.Down()
	}
}

func (h *deleteAlbumHandler) HandleLeftRight() {
	if h.Block == route.DeleteAlbumPrompt && h.selectedBlock() == route.DeleteAlbumConfirmPrompt {
		h.togglePrompt()
	}
}

func (h *deleteAlbumHandler) HandleSubmit() {
	if h.Block != route.DeleteAlbumPrompt {
		return
	}
	d := h.data()
	switch h.selectedBlock() {
	case route.DeleteAlbumConfirmPrompt:
		if d.PromptConfirm {
			h.stage(network.OpDeleteAlbum, h.params())
		}
		h.pop()
		d.ResetDeleteToggles()
	case route.DeleteAlbumToggleDeleteFiles:
		d.DeleteFiles = !d.DeleteFiles
	case route.DeleteAlbumToggleAddListExclusion:
		d.AddListExclusion = !d.AddListExclusion
	}
}

func (h *deleteAlbumHandler) HandleEsc() {
	h.escPrompt()
	h.data().ResetDeleteToggles()
}

func (h *deleteAlbumHandler) HandleChar() {
	if h.Block != route.DeleteAlbumPrompt || h.selectedBlock() != route.DeleteAlbumConfirmPrompt {
		return
	}
	if h.matches(keys.Default.Confirm) {
		params := h.params()
		h.confirmPrompt(network.OpDeleteAlbum, params)
		h.data().ResetDeleteToggles()
	}
}
