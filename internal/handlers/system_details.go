package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

var systemDetailsFactory = Factory{
	Name:    "system_details",
	Accepts: blockSet(route.SystemDetailsBlocks),
	With: func(c Context) KeyEventHandler {
		return &systemDetailsHandler{base{c}}
	},
}

type systemDetailsHandler struct {
	base
}

// scroller is the cursor surface shared by every system detail pane.
type scroller interface {
	ScrollUp() bool
	ScrollDown() bool
	ScrollToTop() bool
	ScrollToBottom() bool
}

func (h *systemDetailsHandler) table() scroller {
	d := h.data()
	switch h.Block {
	case route.SystemLogs:
		return d.Logs
	case route.SystemTasks:
		return d.Tasks
	case route.SystemQueuedEvents:
		return d.QueuedEvents
	}
	return nil
}

func (h *systemDetailsHandler) taskName() string {
	task, _ := h.data().Tasks.CurrentSelection()
	return task.TaskName
}

func (h *systemDetailsHandler) HandleScrollUp() {
	if h.Block == route.SystemUpdates {
		h.data().Updates.ScrollUp()
	} else if t := h.table(); t != nil {
		t.ScrollUp()
	}
}

func (h *systemDetailsHandler) HandleScrollDown() {
	if h.Block == route.SystemUpdates {
		h.data().Updates.ScrollDown()
	} else if t := h.table(); t != nil {
		t.ScrollDown()
	}
}

func (h *systemDetailsHandler) HandleHome() {
	if h.Block == route.SystemUpdates {
		h.data().Updates.ScrollHome()
	} else if t := h.table(); t != nil {
		t.ScrollToTop()
	}
}

func (h *systemDetailsHandler) HandleEnd() {
	if h.Block == route.SystemUpdates {
		h.data().Updates.ScrollToBottom()
	} else if t := h.table(); t != nil {
		t.ScrollToBottom()
	}
}

func (h *systemDetailsHandler) HandleLeftRight() {
	if h.Block == route.SystemTaskStartConfirmPrompt {
		h.togglePrompt()
	}
}

func (h *systemDetailsHandler) HandleSubmit() {
	switch h.Block {
	case route.SystemTasks:
		if !h.data().Tasks.IsEmpty() {
			h.push(route.SystemTaskStartConfirmPrompt)
		}
	case route.SystemTaskStartConfirmPrompt:
		h.submitPrompt(network.OpStartTask, network.StartTaskParams{TaskName: h.taskName()})
	}
}

func (h *systemDetailsHandler) HandleEsc() {
	if h.Block == route.SystemTaskStartConfirmPrompt {
		h.escPrompt()
		return
	}
	h.pop()
	h.clearErrors()
}

func (h *systemDetailsHandler) HandleChar() {
	switch h.Block {
	case route.SystemTaskStartConfirmPrompt:
		h.confirmPrompt(network.OpStartTask, network.StartTaskParams{TaskName: h.taskName()})
	default:
		if h.matches(keys.Default.Refresh) {
			h.App.ShouldRefresh = true
		}
	}
}
