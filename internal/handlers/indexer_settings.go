package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

var indexerSettingsFactory = Factory{
	Name:    "indexer_settings",
	Accepts: blockSet(route.IndexerSettingsBlocks),
	With: func(c Context) KeyEventHandler {
		return &indexerSettingsHandler{base{c}}
	},
}

type indexerSettingsHandler struct {
	base
}

func (h *indexerSettingsHandler) IsReady() bool {
	return !h.App.IsLoading && h.data().IndexerSettings != nil
}

// field returns the setting edited by the focused input.
func (h *indexerSettingsHandler) field() *int64 {
	s := h.data().IndexerSettings
	if s == nil {
		return nil
	}
	switch h.Block {
	case route.IndexerSettingsMinimumAgeInput:
		return &s.MinimumAge
	case route.IndexerSettingsRetentionInput:
		return &s.Retention
	case route.IndexerSettingsMaximumSizeInput:
		return &s.MaximumSize
	case route.IndexerSettingsRssSyncIntervalInput:
		return &s.RssSyncInterval
	}
	return nil
}

func (h *indexerSettingsHandler) HandleScrollUp() {
	if h.Block == route.IndexerSettingsPrompt {
		h.data().SelectedBlock.Up()
		return
	}
	if f := h.field(); f != nil {
		*f++
	}
}

func (h *indexerSettingsHandler) HandleScrollDown() {
	if h.Block == route.IndexerSettingsPrompt {
		h.data().SelectedBlock.Down()
		return
	}
	if f := h.field(); f != nil && *f > 0 {
		*f--
	}
}

func (h *indexerSettingsHandler) HandleLeftRight() {
	if h.Block == route.IndexerSettingsPrompt {
		h.modalLeftRight(route.IndexerSettingsConfirmPrompt)
	}
}

func (h *indexerSettingsHandler) HandleSubmit() {
	d := h.data()
	if h.Block != route.IndexerSettingsPrompt {
		h.pop()
		return
	}
	switch active := h.selectedBlock(); active {
	case route.IndexerSettingsConfirmPrompt:
		if d.PromptConfirm {
			h.stage(network.OpEditIndexerSettings, *d.IndexerSettings)
		}
		h.pop()
		d.IndexerSettings = nil
	default:
		h.pushWithContext(active, h.Ctx)
	}
}

func (h *indexerSettingsHandler) HandleEsc() {
	if h.Block != route.IndexerSettingsPrompt {
		h.pop()
		return
	}
	h.escPrompt()
	h.data().IndexerSettings = nil
}

func (h *indexerSettingsHandler) HandleChar() {
	d := h.data()
	if h.Block != route.IndexerSettingsPrompt || d.IndexerSettings == nil {
		return
	}
	if h.selectedBlock() == route.IndexerSettingsConfirmPrompt && h.matches(keys.Default.Confirm) {
		h.confirmPrompt(network.OpEditIndexerSettings, *d.IndexerSettings)
		d.IndexerSettings = nil
	}
}
