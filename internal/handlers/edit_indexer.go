package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

const (
	minIndexerPriority = 1
	maxIndexerPriority = 50
)

var editIndexerFactory = Factory{
	Name:    "edit_indexer",
	Accepts: blockSet(route.EditIndexerBlocks),
	With: func(c Context) KeyEventHandler {
		return &editIndexerHandler{base{c}}
	},
}

type editIndexerHandler struct {
	base
}

func (h *editIndexerHandler) IsReady() bool {
	return !h.App.IsLoading && h.data().EditIndexer != nil
}

func isEditIndexerTextInput(b route.Block) bool {
	switch b {
	case route.EditIndexerNameInput, route.EditIndexerURLInput, route.EditIndexerAPIKeyInput,
		route.EditIndexerSeedRatioInput, route.EditIndexerTagsInput:
		return true
	}
	return false
}

func (h *editIndexerHandler) text() *uistate.HorizontallyScrollableText {
	m := h.data().EditIndexer
	if m == nil {
		return nil
	}
	switch h.Block {
	case route.EditIndexerNameInput:
		return m.Name
	case route.EditIndexerURLInput:
		return m.URL
	case route.EditIndexerAPIKeyInput:
		return m.APIKey
	case route.EditIndexerSeedRatioInput:
		return m.SeedRatio
	case route.EditIndexerTagsInput:
		return m.Tags
	}
	return nil
}

func (h *editIndexerHandler) params() network.EditIndexerParams {
	d := h.data()
	m := d.EditIndexer
	indexer, _ := d.Indexers.CurrentSelection()
	return network.EditIndexerParams{
		Indexer:                 indexer,
		Name:                    m.Name.Text(),
		URL:                     m.URL.Text(),
		APIKey:                  m.APIKey.Text(),
		SeedRatio:               m.SeedRatio.Text(),
		Tags:                    m.Tags.Text(),
		Priority:                m.Priority,
		EnableRss:               m.EnableRss,
		EnableAutomaticSearch:   m.EnableAutomaticSearch,
		EnableInteractiveSearch: m.EnableInteractiveSearch,
	}
}

func (h *editIndexerHandler) HandleScrollUp() {
	d := h.data()
	switch h.Block {
	case route.EditIndexerPrompt:
		d.SelectedBlock.Up()
	case route.EditIndexerPriorityInput:
		d.EditIndexer.Priority = min(d.EditIndexer.Priority+1, maxIndexerPriority)
	}
}

func (h *editIndexerHandler) HandleScrollDown() {
	d := h.data()
	switch h.Block {
	case route.EditIndexerPrompt:
		d.SelectedBlock.Down()
	case route.EditIndexerPriorityInput:
		d.EditIndexer.Priority = max(d.EditIndexer.Priority-1, minIndexerPriority)
	}
}

func (h *editIndexerHandler) HandleHome() {
	textBoxHome(h.text())
}

func (h *editIndexerHandler) HandleEnd() {
	textBoxEnd(h.text())
}

func (h *editIndexerHandler) HandleLeftRight() {
	switch {
	case h.Block == route.EditIndexerPrompt:
		h.modalLeftRight(route.EditIndexerConfirmPrompt)
	case isEditIndexerTextInput(h.Block):
		h.handleTextBoxLeftRight(h.text())
	}
}

func (h *editIndexerHandler) HandleSubmit() {
	d := h.data()
	switch {
	case h.Block == route.EditIndexerPrompt:
		m := d.EditIndexer
		switch active := h.selectedBlock(); {
		case active == route.EditIndexerConfirmPrompt:
			if d.PromptConfirm {
				h.stage(network.OpEditIndexer, h.params())
			}
			h.pop()
			d.EditIndexer = nil
		case isEditIndexerTextInput(active):
			h.pushWithContext(active, h.Ctx)
			h.enterTextInput()
		case active == route.EditIndexerPriorityInput:
			h.pushWithContext(active, h.Ctx)
		case active == route.EditIndexerToggleEnableRss:
			m.EnableRss = !m.EnableRss
		case active == route.EditIndexerToggleEnableAutomaticSearch:
			m.EnableAutomaticSearch = !m.EnableAutomaticSearch
		case active == route.EditIndexerToggleEnableInteractiveSearch:
			m.EnableInteractiveSearch = !m.EnableInteractiveSearch
		}
	case isEditIndexerTextInput(h.Block):
		h.pop()
		h.leaveTextInput()
	case h.Block == route.EditIndexerPriorityInput:
		h.pop()
	}
}

func (h *editIndexerHandler) HandleEsc() {
	switch {
	case h.Block == route.EditIndexerPrompt:
		h.escPrompt()
		h.data().EditIndexer = nil
	case isEditIndexerTextInput(h.Block):
		h.pop()
		h.leaveTextInput()
	default:
		h.pop()
	}
}

func (h *editIndexerHandler) HandleChar() {
	switch {
	case isEditIndexerTextInput(h.Block):
		h.handleTextBoxKeys(h.text())
	case h.Block == route.EditIndexerPrompt:
		d := h.data()
		if d.EditIndexer == nil || h.selectedBlock() != route.EditIndexerConfirmPrompt {
			return
		}
		if h.matches(keys.Default.Confirm) {
			h.confirmPrompt(network.OpEditIndexer, h.params())
			d.EditIndexer = nil
		}
	}
}
