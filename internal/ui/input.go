package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/servarr-dash/internal/handlers"
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/logging/events"
)

const forceQuitKey = "ctrl+c"

// handleKeyMsg applies one key press under the application lock. ctrl+c
// always quits; the quit key is ignored while a text box has focus so it
// can be typed.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	press, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	k := keys.FromKeyPress(press)
	if k.Name == forceQuitKey {
		events.UI.Quit(k.Name)
		return tea.Quit
	}

	m.app.Lock()
	defer m.app.Unlock()
	if k.Name == keys.Default.Quit.Primary() && !m.app.ShouldIgnoreQuitKey {
		events.UI.Quit(k.Name)
		return tea.Quit
	}
	handlers.HandleEvents(k, m.app)
	return nil
}
