package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/servarr-dash/internal/backend"
)

func waitForWorkerEvent(events <-chan backend.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-events
		if !ok {
			return workerDoneMsg{}
		}
		return workerEventMsg{event: evt}
	}
}

type workerEventMsg struct {
	event backend.Event
}

type workerDoneMsg struct{}

// handleWorkerEventMsg redraws after a result has been applied. The
// dispatcher has already updated the state from the worker goroutine.
func (m *Model) handleWorkerEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(workerEventMsg)
	if !ok {
		return nil
	}
	m.lastEvent = eventMsg.event
	m.received++
	if m.events != nil {
		return waitForWorkerEvent(m.events)
	}
	return nil
}

func (m *Model) handleWorkerDoneMsg(msg tea.Msg) tea.Cmd {
	m.events = nil
	return nil
}
