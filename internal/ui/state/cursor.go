package state

// tablePageSize is how far PageUp and PageDown move the selection.
const tablePageSize = 20

// ScrollUp moves the selection up one row, wrapping to the bottom.
func (t *List[T]) ScrollUp() bool {
	items, sel := t.active()
	n := len(items)
	if n == 0 {
		return false
	}
	old := *sel
	if !sel.ok || sel.index == 0 {
		sel.set(n - 1)
	} else {
		sel.set(sel.index - 1)
	}
	return old != *sel
}

// ScrollDown moves the selection down one row, wrapping to the top.
func (t *List[T]) ScrollDown() bool {
	items, sel := t.active()
	n := len(items)
	if n == 0 {
		return false
	}
	old := *sel
	if !sel.ok || sel.index >= n-1 {
		sel.set(0)
	} else {
		sel.set(sel.index + 1)
	}
	return old != *sel
}

// ScrollToTop selects the first row.
func (t *List[T]) ScrollToTop() bool {
	items, sel := t.active()
	if len(items) == 0 {
		return false
	}
	old := *sel
	sel.set(0)
	return old != *sel
}

// ScrollToBottom selects the last row.
func (t *List[T]) ScrollToBottom() bool {
	items, sel := t.active()
	if len(items) == 0 {
		return false
	}
	old := *sel
	sel.set(len(items) - 1)
	return old != *sel
}

// PageUp moves the selection up by a page, stopping at the first row.
func (t *List[T]) PageUp() bool {
	return t.moveSelectionBy(-tablePageSize)
}

// PageDown moves the selection down by a page, stopping at the last row.
func (t *List[T]) PageDown() bool {
	return t.moveSelectionBy(tablePageSize)
}

func (t *List[T]) moveSelectionBy(delta int) bool {
	items, sel := t.active()
	if len(items) == 0 {
		return false
	}
	old := *sel
	idx := 0
	if sel.ok {
		idx = sel.index
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(items) {
		idx = len(items) - 1
	}
	sel.set(idx)
	return old != *sel
}

// VisibleRange returns the half-open row range to draw so the selection
// stays on screen, remembering the viewport between frames.
func (t *List[T]) VisibleRange(maxVisible int) (int, int) {
	items, sel := t.active()
	total := len(items)
	if total == 0 {
		t.viewport = 0
		return 0, 0
	}
	if maxVisible <= 0 || maxVisible >= total {
		t.viewport = 0
		return 0, total
	}
	cursor := 0
	if sel.ok {
		cursor = sel.index
	}
	maxOffset := total - maxVisible
	if t.viewport > maxOffset {
		t.viewport = maxOffset
	}
	if t.viewport < 0 {
		t.viewport = 0
	}
	if cursor < t.viewport {
		t.viewport = cursor
	}
	if upper := t.viewport + maxVisible - 1; cursor > upper {
		t.viewport = min(cursor-maxVisible+1, maxOffset)
	}
	return t.viewport, t.viewport + maxVisible
}
