package handlers

import (
	"slices"

	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
)

var addMediaFactory = Factory{
	Name:    "add_media",
	Accepts: blockSet(route.AddMediaBlocks),
	With: func(c Context) KeyEventHandler {
		return &addMediaHandler{base{c}}
	},
}

type addMediaHandler struct {
	base
}

func (h *addMediaHandler) IsReady() bool {
	if h.App.IsLoading {
		return false
	}
	switch h.Block {
	case route.AddMediaPrompt, route.AddMediaSelectRootFolder, route.AddMediaSelectQualityProfile,
		route.AddMediaTagsInput, route.AddMediaConfirmPrompt:
		return h.data().AddMedia != nil
	}
	return true
}

func (h *addMediaHandler) modal() *state.AddMediaModal {
	return h.data().AddMedia
}

func (h *addMediaHandler) params() network.AddMediaParams {
	d := h.data()
	m := d.AddMedia
	item, _ := d.AddSearchResults.CurrentSelection()
	params := network.AddMediaParams{
		Item:      item,
		Monitored: m.Monitored,
		Tags:      m.Tags.Text(),
	}
	if folder, ok := m.RootFolders.CurrentSelection(); ok {
		params.RootFolderPath = folder.Path
	}
	if profile, ok := m.QualityProfiles.CurrentSelection(); ok {
		params.QualityProfileID = profile.ID
	}
	return params
}

// InLibrary reports whether a search result is already in the library.
func InLibrary(library []models.MediaItem, item models.MediaItem) bool {
	return slices.ContainsFunc(library, func(m models.MediaItem) bool {
		return item.ExternalID != "" && m.ExternalID == item.ExternalID
	})
}

func (h *addMediaHandler) HandleScrollUp() {
	d := h.data()
	switch h.Block {
	case route.AddMediaSearchResults:
		d.AddSearchResults.ScrollUp()
	case route.AddMediaPrompt:
		d.SelectedBlock.Up()
	case route.AddMediaSelectRootFolder:
		d.AddMedia.RootFolders.ScrollUp()
	case route.AddMediaSelectQualityProfile:
		d.AddMedia.QualityProfiles.ScrollUp()
	}
}

func (h *addMediaHandler) HandleScrollDown() {
	d := h.data()
	switch h.Block {
	case route.AddMediaSearchResults:
		d.AddSearchResults.ScrollDown()
	case route.AddMediaPrompt:
		d.SelectedBlock.Down()
	case route.AddMediaSelectRootFolder:
		d.AddMedia.RootFolders.ScrollDown()
	case route.AddMediaSelectQualityProfile:
		d.AddMedia.QualityProfiles.ScrollDown()
	}
}

func (h *addMediaHandler) HandleHome() {
	d := h.data()
	switch h.Block {
	case route.AddMediaSearchInput:
		textBoxHome(d.AddSearch)
	case route.AddMediaSearchResults:
		d.AddSearchResults.ScrollToTop()
	case route.AddMediaSelectRootFolder:
		d.AddMedia.RootFolders.ScrollToTop()
	case route.AddMediaSelectQualityProfile:
		d.AddMedia.QualityProfiles.ScrollToTop()
	case route.AddMediaTagsInput:
		textBoxHome(d.AddMedia.Tags)
	}
}

func (h *addMediaHandler) HandleEnd() {
	d := h.data()
	switch h.Block {
	case route.AddMediaSearchInput:
		textBoxEnd(d.AddSearch)
	case route.AddMediaSearchResults:
		d.AddSearchResults.ScrollToBottom()
	case route.AddMediaSelectRootFolder:
		d.AddMedia.RootFolders.ScrollToBottom()
	case route.AddMediaSelectQualityProfile:
		d.AddMedia.QualityProfiles.ScrollToBottom()
	case route.AddMediaTagsInput:
		textBoxEnd(d.AddMedia.Tags)
	}
}

func (h *addMediaHandler) HandleLeftRight() {
	d := h.data()
	switch h.Block {
	case route.AddMediaSearchInput:
		h.handleTextBoxLeftRight(d.AddSearch)
	case route.AddMediaPrompt:
		h.modalLeftRight(route.AddMediaConfirmPrompt)
	case route.AddMediaTagsInput:
		if m := h.modal(); m != nil {
			h.handleTextBoxLeftRight(m.Tags)
		}
	}
}

func (h *addMediaHandler) HandleSubmit() {
	d := h.data()
	switch h.Block {
	case route.AddMediaSearchInput:
		if d.AddSearch == nil || d.AddSearch.IsEmpty() {
			return
		}
		d.AddSearchResults.SetItems(nil)
		h.leaveTextInput()
		h.push(route.AddMediaSearchResults)
	case route.AddMediaSearchResults:
		item, ok := d.AddSearchResults.CurrentSelection()
		if !ok {
			return
		}
		if InLibrary(d.Library.Items, item) {
			h.push(route.AddMediaAlreadyInLibrary)
			return
		}
		d.AddMedia = state.NewAddMediaModal(d.Metadata)
		d.SelectBlocks(route.AddMediaSelectionBlocks)
		d.PromptConfirm = false
		h.push(route.AddMediaPrompt)
	case route.AddMediaAlreadyInLibrary:
		h.pop()
	case route.AddMediaPrompt:
		switch active := h.selectedBlock(); active {
		case route.AddMediaConfirmPrompt:
			if d.PromptConfirm {
				h.stage(network.OpAddMedia, h.params())
			}
			h.pop()
			d.AddMedia = nil
		case route.AddMediaSelectRootFolder, route.AddMediaSelectQualityProfile:
			h.push(active)
		case route.AddMediaTagsInput:
			h.push(active)
			h.enterTextInput()
		}
	case route.AddMediaSelectRootFolder, route.AddMediaSelectQualityProfile:
		h.pop()
	case route.AddMediaTagsInput:
		h.pop()
		h.leaveTextInput()
	}
}

func (h *addMediaHandler) HandleEsc() {
	d := h.data()
	switch h.Block {
	case route.AddMediaSearchInput:
		h.pop()
		d.AddSearch = nil
		h.leaveTextInput()
	case route.AddMediaSearchResults, route.AddMediaEmptySearchResults:
		h.pop()
		d.AddSearchResults.SetItems(nil)
		h.enterTextInput()
	case route.AddMediaPrompt:
		h.escPrompt()
		d.AddMedia = nil
	case route.AddMediaTagsInput:
		h.pop()
		h.leaveTextInput()
	default:
		h.pop()
	}
}

func (h *addMediaHandler) HandleChar() {
	d := h.data()
	switch h.Block {
	case route.AddMediaSearchInput:
		h.handleTextBoxKeys(d.AddSearch)
	case route.AddMediaTagsInput:
		if m := h.modal(); m != nil {
			h.handleTextBoxKeys(m.Tags)
		}
	case route.AddMediaPrompt:
		if d.AddMedia == nil || h.selectedBlock() != route.AddMediaConfirmPrompt {
			return
		}
		if h.matches(keys.Default.Confirm) {
			h.confirmPrompt(network.OpAddMedia, h.params())
			d.AddMedia = nil
		}
	}
}
