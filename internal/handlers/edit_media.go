package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

var editMediaFactory = Factory{
	Name:    "edit_media",
	Accepts: blockSet(route.EditMediaBlocks),
	With: func(c Context) KeyEventHandler {
		return &editMediaHandler{base{c}}
	},
}

type editMediaHandler struct {
	base
}

func (h *editMediaHandler) IsReady() bool {
	return !h.App.IsLoading && h.data().EditMedia != nil
}

func (h *editMediaHandler) text() *uistate.HorizontallyScrollableText {
	m := h.data().EditMedia
	if m == nil {
		return nil
	}
	switch h.Block {
	case route.EditMediaPathInput:
		return m.Path
	case route.EditMediaTagsInput:
		return m.Tags
	}
	return nil
}

func (h *editMediaHandler) params() network.EditMediaParams {
	d := h.data()
	m := d.EditMedia
	item, _ := d.Library.CurrentSelection()
	return network.EditMediaParams{
		Item:             item,
		Monitored:        m.Monitored,
		QualityProfileID: m.QualityProfileID(),
		Path:             m.Path.Text(),
		Tags:             m.Tags.Text(),
	}
}

func (h *editMediaHandler) HandleScrollUp() {
	d := h.data()
	switch h.Block {
	case route.EditMediaPrompt:
		d.SelectedBlock.Up()
	case route.EditMediaSelectQualityProfile:
		d.EditMedia.QualityProfiles.ScrollUp()
	}
}

func (h *editMediaHandler) HandleScrollDown() {
	d := h.data()
	switch h.Block {
	case route.EditMediaPrompt:
		d.SelectedBlock.Down()
	case route.EditMediaSelectQualityProfile:
		d.EditMedia.QualityProfiles.ScrollDown()
	}
}

func (h *editMediaHandler) HandleHome() {
	if h.Block == route.EditMediaSelectQualityProfile {
		h.data().EditMedia.QualityProfiles.ScrollToTop()
		return
	}
	textBoxHome(h.text())
}

func (h *editMediaHandler) HandleEnd() {
	if h.Block == route.EditMediaSelectQualityProfile {
		h.data().EditMedia.QualityProfiles.ScrollToBottom()
		return
	}
	textBoxEnd(h.text())
}

func (h *editMediaHandler) HandleLeftRight() {
	switch h.Block {
	case route.EditMediaPrompt:
		h.modalLeftRight(route.EditMediaConfirmPrompt)
	case route.EditMediaPathInput, route.EditMediaTagsInput:
		h.handleTextBoxLeftRight(h.text())
	}
}

func (h *editMediaHandler) HandleSubmit() {
	d := h.data()
	switch h.Block {
	case route.EditMediaPrompt:
		switch active := h.selectedBlock(); active {
		case route.EditMediaConfirmPrompt:
			if d.PromptConfirm {
				h.stage(network.OpEditMedia, h.params())
			}
			h.pop()
			d.EditMedia = nil
		case route.EditMediaSelectQualityProfile:
			h.pushWithContext(active, h.Ctx)
		case route.EditMediaPathInput, route.EditMediaTagsInput:
			h.pushWithContext(active, h.Ctx)
			h.enterTextInput()
		case route.EditMediaToggleMonitored:
			d.EditMedia.Monitored = !d.EditMedia.Monitored
		}
	case route.EditMediaSelectQualityProfile:
		h.pop()
	case route.EditMediaPathInput, route.EditMediaTagsInput:
		h.pop()
		h.leaveTextInput()
	}
}

func (h *editMediaHandler) HandleEsc() {
	d := h.data()
	switch h.Block {
	case route.EditMediaPrompt:
		h.escPrompt()
		d.EditMedia = nil
	case route.EditMediaPathInput, route.EditMediaTagsInput:
		h.pop()
		h.leaveTextInput()
	default:
		h.pop()
	}
}

func (h *editMediaHandler) HandleChar() {
	switch h.Block {
	case route.EditMediaPathInput, route.EditMediaTagsInput:
		h.handleTextBoxKeys(h.text())
	case route.EditMediaPrompt:
		d := h.data()
		if d.EditMedia == nil || h.selectedBlock() != route.EditMediaConfirmPrompt {
			return
		}
		if h.matches(keys.Default.Confirm) {
			h.confirmPrompt(network.OpEditMedia, h.params())
			d.EditMedia = nil
		}
	}
}
