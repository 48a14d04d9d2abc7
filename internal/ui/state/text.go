package state

import (
	"strings"

	"github.com/rivo/uniseg"
)

// HorizontallyScrollableText is a single-line buffer with an offset counted
// in grapheme clusters. While editing, the offset is the distance of the
// cursor from the end of the text. While displaying, it is the number of
// leading clusters hidden by the marquee.
type HorizontallyScrollableText struct {
	text   string
	offset int
}

// NewHorizontallyScrollableText returns a buffer seeded with text.
func NewHorizontallyScrollableText(text string) *HorizontallyScrollableText {
	return &HorizontallyScrollableText{text: text}
}

func graphemes(text string) []string {
	out := make([]string, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Text returns the full buffer contents.
func (h *HorizontallyScrollableText) Text() string {
	return h.text
}

// Offset returns the current offset in grapheme clusters.
func (h *HorizontallyScrollableText) Offset() int {
	return h.offset
}

// Len returns the length of the text in grapheme clusters.
func (h *HorizontallyScrollableText) Len() int {
	return uniseg.GraphemeClusterCount(h.text)
}

// IsEmpty reports whether the buffer holds no text.
func (h *HorizontallyScrollableText) IsEmpty() bool {
	return h.text == ""
}

// String returns the visible part of the text.
func (h *HorizontallyScrollableText) String() string {
	if h.offset == 0 {
		return h.text
	}
	clusters := graphemes(h.text)
	if h.offset >= len(clusters) {
		return ""
	}
	return strings.Join(clusters[h.offset:], "")
}

// Push inserts s at the cursor. The offset is preserved, so typing at the
// end keeps appending and typing mid-string keeps the cursor in place.
func (h *HorizontallyScrollableText) Push(s string) {
	if s == "" {
		return
	}
	clusters := graphemes(h.text)
	pos := len(clusters) - h.offset
	if pos < 0 {
		pos = 0
	}
	var b strings.Builder
	b.Grow(len(h.text) + len(s))
	for _, c := range clusters[:pos] {
		b.WriteString(c)
	}
	b.WriteString(s)
	for _, c := range clusters[pos:] {
		b.WriteString(c)
	}
	h.text = b.String()
}

// Pop removes the cluster before the cursor.
func (h *HorizontallyScrollableText) Pop() {
	clusters := graphemes(h.text)
	if h.offset >= len(clusters) {
		return
	}
	idx := len(clusters) - h.offset - 1
	h.text = strings.Join(append(clusters[:idx:idx], clusters[idx+1:]...), "")
}

// ScrollLeft moves the cursor one cluster towards the start.
func (h *HorizontallyScrollableText) ScrollLeft() {
	if h.offset < h.Len() {
		h.offset++
	}
}

// ScrollRight moves the cursor one cluster towards the end.
func (h *HorizontallyScrollableText) ScrollRight() {
	if h.offset > 0 {
		h.offset--
	}
}

// ScrollHome moves the cursor to the start of the text.
func (h *HorizontallyScrollableText) ScrollHome() {
	h.offset = h.Len()
}

// ResetOffset moves the cursor to the end of the text.
func (h *HorizontallyScrollableText) ResetOffset() {
	h.offset = 0
}

// ScrollLeftOrReset advances the marquee for a focused row whose text does
// not fit in width, restarting once the text has scrolled out. Unfocused
// rows snap back to the start.
func (h *HorizontallyScrollableText) ScrollLeftOrReset(width int, isCurrent, canScroll bool) {
	length := h.Len()
	if canScroll && isCurrent && length >= width {
		if h.offset < length {
			h.ScrollLeft()
		} else {
			h.ResetOffset()
		}
		return
	}
	if h.offset != 0 && !isCurrent {
		h.ResetOffset()
	}
}

// Drain returns the text and empties the buffer.
func (h *HorizontallyScrollableText) Drain() string {
	text := h.text
	h.text = ""
	h.offset = 0
	return text
}

// ScrollableText is a read-only multi-line buffer scrolled by line.
type ScrollableText struct {
	Items  []string
	Offset int
}

const textPageSize = 10

// NewScrollableText splits text into lines.
func NewScrollableText(text string) *ScrollableText {
	if text == "" {
		return &ScrollableText{}
	}
	return &ScrollableText{Items: strings.Split(text, "\n")}
}

// Lines returns the lines from the current offset onwards.
func (s *ScrollableText) Lines() []string {
	if s.Offset >= len(s.Items) {
		return nil
	}
	return s.Items[s.Offset:]
}

// String joins the visible lines.
func (s *ScrollableText) String() string {
	return strings.Join(s.Lines(), "\n")
}

// ScrollUp moves the view up one line.
func (s *ScrollableText) ScrollUp() {
	if s.Offset > 0 {
		s.Offset--
	}
}

// ScrollDown moves the view down one line, stopping on the last line.
func (s *ScrollableText) ScrollDown() {
	if s.Offset < len(s.Items)-1 {
		s.Offset++
	}
}

// ScrollHome returns the view to the first line.
func (s *ScrollableText) ScrollHome() {
	s.Offset = 0
}

// ScrollToBottom shows the last line.
func (s *ScrollableText) ScrollToBottom() {
	s.Offset = max(len(s.Items)-1, 0)
}

// PageUp moves the view up a page.
func (s *ScrollableText) PageUp() {
	s.Offset = max(s.Offset-textPageSize, 0)
}

// PageDown moves the view down a page.
func (s *ScrollableText) PageDown() {
	s.Offset = min(s.Offset+textPageSize, max(len(s.Items)-1, 0))
}
