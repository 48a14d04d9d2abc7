package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/atomicstack/servarr-dash/internal/format/table"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

const (
	promptWidthPercent = 50
	listHeight         = 8
)

// promptBox is a yes/no question. yes marks which button is focused.
func promptBox(title, question string, yes bool, width int) string {
	w := popupWidth(width, promptWidthPercent)
	body := lipgloss.NewStyle().Width(w-4).Render(question) + "\n\n" + buttons(yes, true, w-4)
	return popup(title, body, w)
}

// buttons draws the Yes/No row. focused is false while another field of a
// form has focus, which leaves both buttons unhighlighted.
func buttons(yes, focused bool, width int) string {
	yesStyle, noStyle := styles.Button, styles.Button
	if focused {
		if yes {
			yesStyle = styles.FocusedButton
		} else {
			noStyle = styles.FocusedButton
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, yesStyle.Render("Yes"), "   ", noStyle.Render("No"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

// messageBox is an informational popup closed with esc or enter.
func messageBox(title, message string, width int, isError bool) string {
	w := popupWidth(width, promptWidthPercent)
	style := styles.Info
	if isError {
		style = styles.Error
	}
	body := style.Width(w - 4).Align(lipgloss.Center).Render(message)
	return popup(title, body, w)
}

// inputBox is a single-line text field in its own popup.
func inputBox(title string, text *uistate.HorizontallyScrollableText, width int) string {
	w := popupWidth(width, promptWidthPercent)
	return popup(title, field(text, true, w-4), w)
}

// field draws a bordered text input. The cursor is only drawn while editing.
func field(text *uistate.HorizontallyScrollableText, editing bool, width int) string {
	style := styles.Input
	if editing {
		style = styles.FocusedInput
	}
	return style.Width(width).Render(inputText(text, editing, max(width-4, 1)))
}

// inputText renders the buffer, placing the cursor offset clusters from the
// end and keeping it within width cells.
func inputText(text *uistate.HorizontallyScrollableText, editing bool, width int) string {
	if text == nil {
		return ""
	}
	if !editing {
		return table.Truncate(text.Text(), width)
	}
	clusters := splitGraphemes(text.Text())
	pos := min(max(len(clusters)-text.Offset(), 0), len(clusters))
	cursor, after := " ", ""
	if pos < len(clusters) {
		cursor = clusters[pos]
		after = strings.Join(clusters[pos+1:], "")
	}
	before := strings.Join(clusters[:pos], "")
	if over := ansi.StringWidth(before) + ansi.StringWidth(cursor) - width; over > 0 {
		before = ansi.TruncateLeft(before, over, "")
	}
	return table.Truncate(before+styles.Cursor.Render(cursor)+after, width)
}

func splitGraphemes(text string) []string {
	out := make([]string, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// listBox is a pick list, such as a sort picker or a dropdown.
func listBox[T any](title string, t *uistate.List[T], label func(T) string, width int) string {
	w := popupWidth(width, 30)
	return popup(title, renderList(t, label, w-4, listHeight, "Nothing to choose from"), w)
}

func sortBox[T any](t *uistate.StatefulTable[T], width int) string {
	if t.Sort == nil {
		return ""
	}
	return listBox("Sort By", t.Sort, func(o uistate.SortOption[T]) string { return o.Name }, width)
}
