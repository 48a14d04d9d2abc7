package state

import "testing"

func TestBlockSelectionClampsColumnOnRowChange(t *testing.T) {
	grid := [][]string{{"a", "b"}, {"c"}, {"d", "e", "f"}}
	sel := NewBlockSelectionState(grid)
	sel.SetIndex(0, 1)
	sel.Down()
	if row, col := sel.Index(); row != 1 || col != 0 {
		t.Fatalf("expected (1,0), got (%d,%d)", row, col)
	}
	if got := sel.ActiveBlock(); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
}

func TestBlockSelectionDownCycles(t *testing.T) {
	grid := [][]string{{"a", "b"}, {"c"}, {"d", "e", "f"}}
	sel := NewBlockSelectionState(grid)
	for i := 0; i < len(grid); i++ {
		sel.Down()
	}
	if row, col := sel.Index(); row != 0 || col != 0 {
		t.Fatalf("expected (0,0) after a full cycle, got (%d,%d)", row, col)
	}
	sel.Up()
	if got := sel.ActiveBlock(); got != "d" {
		t.Fatalf("expected wraparound to d, got %q", got)
	}
}

func TestBlockSelectionHorizontalWrap(t *testing.T) {
	grid := [][]string{{"a", "b", "c"}}
	sel := NewBlockSelectionState(grid)
	sel.Left()
	if got := sel.ActiveBlock(); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
	sel.Right()
	if got := sel.ActiveBlock(); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	sel.Right()
	if got := sel.ActiveBlock(); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
}

func TestBlockSelectionSetIndexClamps(t *testing.T) {
	grid := [][]string{{"a", "b"}, {"c"}}
	sel := NewBlockSelectionState(grid)
	sel.SetIndex(9, 9)
	if row, col := sel.Index(); row != 1 || col != 0 {
		t.Fatalf("expected (1,0), got (%d,%d)", row, col)
	}
}

func TestBlockSelectionEmptyGrid(t *testing.T) {
	sel := NewBlockSelectionState[string](nil)
	sel.Up()
	sel.Down()
	sel.Left()
	sel.Right()
	if got := sel.ActiveBlock(); got != "" {
		t.Fatalf("expected zero value, got %q", got)
	}
}
