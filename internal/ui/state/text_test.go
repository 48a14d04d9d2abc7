package state

import "testing"

func TestPushAppendsAtEnd(t *testing.T) {
	text := NewHorizontallyScrollableText("Test")
	text.Push("!")
	if text.Text() != "Test!" {
		t.Fatalf("expected Test!, got %q", text.Text())
	}
	if text.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", text.Offset())
	}
}

func TestPushInsertsAtCursor(t *testing.T) {
	text := NewHorizontallyScrollableText("Tst")
	text.ScrollLeft()
	text.ScrollLeft()
	text.Push("e")
	if text.Text() != "Test" {
		t.Fatalf("expected Test, got %q", text.Text())
	}
	if text.Offset() != 2 {
		t.Fatalf("expected offset preserved at 2, got %d", text.Offset())
	}
}

func TestPopRemovesBeforeCursor(t *testing.T) {
	text := NewHorizontallyScrollableText("Test")
	text.Pop()
	if text.Text() != "Tes" {
		t.Fatalf("expected Tes, got %q", text.Text())
	}
	text.ScrollLeft()
	text.Pop()
	if text.Text() != "Ts" {
		t.Fatalf("expected Ts, got %q", text.Text())
	}
	text.ScrollHome()
	text.Pop()
	if text.Text() != "Ts" {
		t.Fatalf("expected pop at start to be a no-op, got %q", text.Text())
	}
}

func TestGraphemeArithmetic(t *testing.T) {
	text := NewHorizontallyScrollableText("café 👍🏽🇯🇵")
	if got := text.Len(); got != 7 {
		t.Fatalf("expected 7 clusters, got %d", got)
	}
	text.Pop()
	if text.Text() != "café 👍🏽" {
		t.Fatalf("expected flag removed whole, got %q", text.Text())
	}
	text.ScrollLeft()
	text.Push("!")
	if text.Text() != "café !👍🏽" {
		t.Fatalf("expected insert before emoji, got %q", text.Text())
	}
	text.ScrollHome()
	if text.Offset() != text.Len() {
		t.Fatalf("expected offset %d, got %d", text.Len(), text.Offset())
	}
}

func TestScrollIsIdempotentAtBounds(t *testing.T) {
	text := NewHorizontallyScrollableText("abc")
	text.ScrollHome()
	first := text.Offset()
	text.ScrollHome()
	if text.Offset() != first {
		t.Fatalf("expected scroll home idempotent, got %d then %d", first, text.Offset())
	}
	text.ResetOffset()
	text.ResetOffset()
	if text.Offset() != 0 {
		t.Fatalf("expected reset idempotent, got %d", text.Offset())
	}
}

func TestScrollRoundTrip(t *testing.T) {
	text := NewHorizontallyScrollableText("abcdef")
	text.ScrollLeft()
	start := text.Offset()
	for i := 0; i < 3; i++ {
		text.ScrollLeft()
	}
	for i := 0; i < 3; i++ {
		text.ScrollRight()
	}
	if text.Offset() != start {
		t.Fatalf("expected offset %d after round trip, got %d", start, text.Offset())
	}

	for i := 0; i < 10; i++ {
		text.ScrollLeft()
	}
	if text.Offset() != 6 {
		t.Fatalf("expected offset clamped at length, got %d", text.Offset())
	}
	for i := 0; i < 10; i++ {
		text.ScrollRight()
	}
	if text.Offset() != 0 {
		t.Fatalf("expected offset clamped at zero, got %d", text.Offset())
	}
}

func TestStringHidesLeadingClusters(t *testing.T) {
	text := NewHorizontallyScrollableText("ñandú")
	text.ScrollLeft()
	text.ScrollLeft()
	if text.String() != "ndú" {
		t.Fatalf("expected ndú, got %q", text.String())
	}
	text.ScrollHome()
	if text.String() != "" {
		t.Fatalf("expected empty visible text, got %q", text.String())
	}
}

func TestScrollLeftOrReset(t *testing.T) {
	text := NewHorizontallyScrollableText("Test string")
	text.ScrollLeftOrReset(4, true, true)
	if text.Offset() != 1 {
		t.Fatalf("expected marquee to advance, got %d", text.Offset())
	}
	text.ScrollLeftOrReset(4, false, true)
	if text.Offset() != 0 {
		t.Fatalf("expected unfocused text to reset, got %d", text.Offset())
	}
	text.ScrollLeftOrReset(40, true, true)
	if text.Offset() != 0 {
		t.Fatalf("expected text that fits to stay put, got %d", text.Offset())
	}
	text.ScrollHome()
	text.ScrollLeftOrReset(4, true, true)
	if text.Offset() != 0 {
		t.Fatalf("expected marquee to restart, got %d", text.Offset())
	}
	text.ScrollLeftOrReset(4, true, false)
	if text.Offset() != 0 {
		t.Fatalf("expected no scroll when disabled, got %d", text.Offset())
	}
}

func TestDrain(t *testing.T) {
	text := NewHorizontallyScrollableText("query")
	text.ScrollLeft()
	if got := text.Drain(); got != "query" {
		t.Fatalf("expected query, got %q", got)
	}
	if !text.IsEmpty() || text.Offset() != 0 {
		t.Fatalf("expected drained buffer, got %q/%d", text.Text(), text.Offset())
	}
}

func TestScrollableText(t *testing.T) {
	text := NewScrollableText("one\ntwo\nthree")
	text.ScrollUp()
	if text.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", text.Offset)
	}
	text.ScrollDown()
	text.ScrollDown()
	text.ScrollDown()
	if text.Offset != 2 {
		t.Fatalf("expected offset clamped to 2, got %d", text.Offset)
	}
	if text.String() != "three" {
		t.Fatalf("expected last line visible, got %q", text.String())
	}
	text.ScrollHome()
	if len(text.Lines()) != 3 {
		t.Fatalf("expected all lines visible, got %d", len(text.Lines()))
	}
	text.PageDown()
	if text.Offset != 2 {
		t.Fatalf("expected page down clamped to 2, got %d", text.Offset)
	}
	text.PageUp()
	if text.Offset != 0 {
		t.Fatalf("expected page up clamped to 0, got %d", text.Offset)
	}
	if empty := NewScrollableText(""); len(empty.Items) != 0 {
		t.Fatalf("expected no lines for empty text")
	}
}
