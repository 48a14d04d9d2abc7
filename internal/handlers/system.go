package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/route"
)

var systemFactory = Factory{
	Name:    "system",
	Accepts: blockSet(route.SystemBlocks, systemDetailsFactory),
	With: func(c Context) KeyEventHandler {
		if h := delegate(c, systemDetailsFactory); h != nil {
			return h
		}
		return &systemHandler{base{c}}
	},
}

type systemHandler struct {
	base
}

func (h *systemHandler) HandleLeftRight() {
	h.changeTab()
}

func (h *systemHandler) HandleEsc() {
	h.clearErrors()
}

func (h *systemHandler) HandleChar() {
	km := keys.Default
	d := h.data()
	switch {
	case h.matches(km.Tasks):
		h.push(route.SystemTasks)
	case h.matches(km.Events):
		h.push(route.SystemQueuedEvents)
	case h.matches(km.Logs):
		d.Logs.ScrollToBottom()
		h.push(route.SystemLogs)
	case h.matches(km.Update):
		h.push(route.SystemUpdates)
	case h.matches(km.Refresh):
		h.App.ShouldRefresh = true
	}
}
