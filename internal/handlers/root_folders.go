package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

var rootFoldersFactory = Factory{
	Name:    "root_folders",
	Accepts: blockSet(route.RootFolderBlocks),
	With: func(c Context) KeyEventHandler {
		return &rootFoldersHandler{base{c}}
	},
}

type rootFoldersHandler struct {
	base
}

func (h *rootFoldersHandler) IsReady() bool {
	if h.App.IsLoading {
		return false
	}
	if h.Block == route.AddRootFolderPrompt {
		return h.data().EditRootFolder != nil
	}
	return !h.data().RootFolders.IsEmpty()
}

func (h *rootFoldersHandler) HandleTableEvents() bool {
	return handleTable(&h.base, h.IsReady(), tableConfig[models.RootFolder]{
		Table:      h.data().RootFolders,
		TableBlock: route.RootFolders,
	})
}

func (h *rootFoldersHandler) path() *uistate.HorizontallyScrollableText {
	if m := h.data().EditRootFolder; m != nil {
		return m.Path
	}
	return nil
}

func (h *rootFoldersHandler) selectedID() int64 {
	item, _ := h.data().RootFolders.CurrentSelection()
	return item.ID
}

func (h *rootFoldersHandler) HandleHome() {
	if h.Block == route.AddRootFolderPrompt {
		textBoxHome(h.path())
	}
}

func (h *rootFoldersHandler) HandleEnd() {
	if h.Block == route.AddRootFolderPrompt {
		textBoxEnd(h.path())
	}
}

func (h *rootFoldersHandler) HandleDelete() {
	if h.Block == route.RootFolders {
		h.push(route.DeleteRootFolderPrompt)
	}
}

func (h *rootFoldersHandler) HandleLeftRight() {
	switch h.Block {
	case route.RootFolders:
		h.changeTab()
	case route.DeleteRootFolderPrompt:
		h.togglePrompt()
	case route.AddRootFolderPrompt:
		h.handleTextBoxLeftRight(h.path())
	}
}

func (h *rootFoldersHandler) HandleSubmit() {
	d := h.data()
	switch h.Block {
	case route.DeleteRootFolderPrompt:
		h.submitPrompt(network.OpDeleteRootFolder, network.IDParams{ID: h.selectedID()})
	case route.AddRootFolderPrompt:
		path := h.path()
		if path == nil || path.IsEmpty() {
			return
		}
		d.PromptConfirm = true
		h.stage(network.OpAddRootFolder, network.PathParams{Path: path.Text()})
		h.pop()
		d.EditRootFolder = nil
		h.leaveTextInput()
	}
}

func (h *rootFoldersHandler) HandleEsc() {
	switch h.Block {
	case route.DeleteRootFolderPrompt:
		h.escPrompt()
	case route.AddRootFolderPrompt:
		h.pop()
		h.data().EditRootFolder = nil
		h.leaveTextInput()
	default:
		h.clearErrors()
	}
}

func (h *rootFoldersHandler) HandleChar() {
	km := keys.Default
	switch h.Block {
	case route.RootFolders:
		switch {
		case h.matches(km.Add):
			h.data().EditRootFolder = &state.RootFolderModal{Path: uistate.NewHorizontallyScrollableText("")}
			h.push(route.AddRootFolderPrompt)
			h.enterTextInput()
		case h.matches(km.Refresh):
			h.App.ShouldRefresh = true
		}
	case route.AddRootFolderPrompt:
		h.handleTextBoxKeys(h.path())
	case route.DeleteRootFolderPrompt:
		h.confirmPrompt(network.OpDeleteRootFolder, network.IDParams{ID: h.selectedID()})
	}
}
