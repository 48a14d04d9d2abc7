package table

import (
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	lines := Format([][]string{
		{"Title", "Year"},
		{"Alien", "1979"},
		{"The Thing", "1982"},
	}, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"Title      Year",
		"Alien      1979",
		"The Thing  1982",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("expected line %d %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestFormatRightAlignPadsLeft(t *testing.T) {
	lines := Format([][]string{{"a", "1"}, {"b", "100"}}, []Alignment{AlignLeft, AlignRight})
	if lines[0] != "a    1" {
		t.Fatalf("expected right aligned cell, got %q", lines[0])
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	lines := Format([][]string{{"千と千尋", "x"}, {"ab", "y"}}, nil)
	if lines[1] != "ab        y" {
		t.Fatalf("expected double-width padding, got %q", lines[1])
	}
}

func TestFormatHandlesRaggedRows(t *testing.T) {
	lines := Format([][]string{{"a", "b", "c"}, {"d"}}, nil)
	if len(lines) != 2 || lines[1] != "d" {
		t.Fatalf("expected short row without trailing padding, got %q", lines)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := Truncate("a long title", 6); got != "a lon…" {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Fatalf("expected empty string for zero width, got %q", got)
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 4); got != "ab  " {
		t.Fatalf("expected padded text, got %q", got)
	}
	if got := Pad("abcdef", 4); got != "abcdef" {
		t.Fatalf("expected text wider than width untouched, got %q", got)
	}
}
