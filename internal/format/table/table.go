package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const ellipsis = "…"

// Format returns the rows padded according to the widest entry in each column.
// Widths are measured in terminal cells, so styled and wide text line up.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			width := cellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			width := widths[c] - cellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, width)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < len(row)-1 {
					writeSpaces(&b, width)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// Truncate shortens s to width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if cellWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, ellipsis)
}

// Fit truncates every line to width cells.
func Fit(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Truncate(line, width)
	}
	return out
}

// Pad right-pads s with spaces to width cells.
func Pad(s string, width int) string {
	var b strings.Builder
	b.WriteString(s)
	writeSpaces(&b, width-cellWidth(s))
	return b.String()
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
