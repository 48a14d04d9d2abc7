package ui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/servarr-dash/internal/format/table"
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

const (
	loadingText = "Loading..."
	helpHint    = "<?> to open help"
	sgrReset    = "\x1b[0m"
)

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the whole screen under the application lock.
func (m *Model) render() string {
	m.app.Lock()
	defer m.app.Unlock()

	width, height := m.size()
	r := m.app.CurrentRoute()
	data := m.app.DataFor(r.Backend)

	top := []string{
		m.renderServerTabs(width),
		renderTabBar(data.MainTabs.Tabs, data.MainTabs.Index, width),
	}
	if line := m.renderError(width); line != "" {
		top = append(top, line)
	}
	footer := m.renderFooter(r, data, width)

	bodyHeight := max(height-len(top)-1, 1)
	body := m.renderBody(r, data, width, bodyHeight)
	if m.app.ShowHelp {
		body = overlay(body, m.renderHelp(width, bodyHeight), width, bodyHeight)
	}
	return strings.Join(append(top, fitLines(body, bodyHeight), footer), "\n")
}

func (m *Model) renderServerTabs(width int) string {
	left := renderTabBar(m.app.ServerTabs.Tabs, m.app.ServerTabs.Index, width)
	status := helpHint
	if m.app.IsLoading {
		status = styles.Loading.Render(loadingText) + "  " + helpHint
	}
	right := styles.Footer.Render(status)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return table.Truncate(left, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderTabBar(tabs []uistate.TabRoute, active, width int) string {
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, styles.ActiveTab.Render(tab.Title))
		} else {
			parts = append(parts, styles.Tab.Render(tab.Title))
		}
	}
	return table.Truncate(strings.Join(parts, "│"), width)
}

// renderError draws the error buffer, advancing its marquee once per scroll
// tick while it does not fit.
func (m *Model) renderError(width int) string {
	if m.app.Error.IsEmpty() {
		return ""
	}
	const prefix = "Error: "
	avail := max(width-len(prefix), 1)
	if m.app.TickCount != m.scrolledAt {
		m.scrolledAt = m.app.TickCount
		m.app.Error.ScrollLeftOrReset(avail, true, m.app.ShouldScroll())
	}
	return styles.Error.Render(prefix + table.Truncate(m.app.Error.String(), avail))
}

func (m *Model) renderFooter(r route.Route, data *state.ServarrData, width int) string {
	clues := m.contextClues(r, data)
	bindings := make([]key.Binding, 0, len(clues))
	for _, c := range clues {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(c.Binding.Primary()),
			key.WithHelp(c.Binding.Help().Key, c.Desc),
		))
	}
	m.help.SetWidth(width)
	return m.help.ShortHelpView(bindings)
}

// contextClues picks the key hints for the route on screen.
func (m *Model) contextClues(r route.Route, data *state.ServarrData) []keys.ContextClue {
	if m.app.ShowHelp {
		return []keys.ContextClue{{Binding: keys.Default.Esc, Desc: "close help"}}
	}
	switch {
	case r.Block == data.MainTabs.ActiveRoute().Block:
		clues := append([]keys.ContextClue{}, data.MainTabs.ActiveHelp()...)
		return append(clues, m.app.ServerTabs.ActiveHelp()...)
	case data.MediaInfoTabs.IndexOf(r.Block) >= 0:
		return data.MediaInfoTabs.ActiveHelp()
	case r.Block == route.SeasonDetails || r.Block == route.AlbumDetails:
		return keys.SeasonsContextClues
	case r.Block == route.EpisodeDetails:
		return keys.EpisodeDetailsContextClues
	case r.Block == route.SystemTasks:
		return keys.SystemTasksContextClues
	case isPrompt(r.Block):
		return keys.ConfirmationPromptContextClues
	}
	return []keys.ContextClue{{Binding: keys.Default.Esc, Desc: "close"}}
}

func isPrompt(b route.Block) bool {
	return strings.HasSuffix(b.String(), "Prompt")
}

func (m *Model) renderHelp(width, height int) string {
	w := popupWidth(width, 60)
	rows := max(height-4, 3)
	body := renderTable(m.app.KeyMapping, helpColumns, w-4, rows, "", nil)
	return popup("Keybindings", body, w)
}

// overlay draws box centred over base. Both are clipped to the given area.
func overlay(base, box string, width, height int) string {
	lines := strings.Split(fitLines(base, height), "\n")
	boxLines := strings.Split(box, "\n")
	boxWidth := min(lipgloss.Width(box), width)
	x := max((width-boxWidth)/2, 0)
	y := max((height-len(boxLines))/2, 0)
	for i, boxLine := range boxLines {
		row := y + i
		if row >= len(lines) {
			break
		}
		line := lines[row]
		left := table.Pad(ansi.Truncate(line, x, ""), x)
		right := ansi.TruncateLeft(line, x+boxWidth, "")
		lines[row] = left + sgrReset + table.Pad(table.Truncate(boxLine, boxWidth), boxWidth) + sgrReset + right
	}
	return strings.Join(lines, "\n")
}

// fitLines pads or crops content to exactly maxLines lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		lines = lines[:maxLines]
	case len(lines) < maxLines:
		lines = append(lines, make([]string, maxLines-len(lines))...)
	}
	return strings.Join(lines, "\n")
}

func popupWidth(width, percent int) int {
	return min(max(width*percent/100, 30), width)
}

func popupHeight(height, percent int) int {
	return min(max(height*percent/100, 5), height)
}

// popup frames body with a titled border of the given outer width.
func popup(title, body string, width int) string {
	inner := max(width-4, 1)
	content := body
	if title != "" {
		content = styles.PopupTitle.Render(table.Truncate(title, inner)) + "\n" + body
	}
	return styles.Popup.Width(width).Render(content)
}
