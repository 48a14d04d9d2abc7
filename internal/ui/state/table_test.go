package state

import (
	"cmp"
	"reflect"
	"strings"
	"testing"
)

func TestSetItemsClampsSelection(t *testing.T) {
	table := newTestTable("a", "b", "c", "d")
	table.SelectIndex(3)
	table.SetItems([]string{"a", "b"})
	if idx := selected(t, table); idx != 1 {
		t.Fatalf("expected selection clamped to 1, got %d", idx)
	}

	table.SetItems([]string{"x", "y", "z"})
	if idx := selected(t, table); idx != 1 {
		t.Fatalf("expected selection preserved at 1, got %d", idx)
	}

	table.SetItems(nil)
	if _, ok := table.CurrentSelectionIndex(); ok {
		t.Fatalf("expected selection cleared for empty items")
	}
	if _, ok := table.CurrentSelection(); ok {
		t.Fatalf("expected no current selection for empty items")
	}
}

func TestSetItemsSelectionInvariant(t *testing.T) {
	table := newTestTable()
	sizes := []int{0, 5, 3, 0, 1, 7, 2}
	for step, n := range sizes {
		items := make([]string, n)
		table.SetItems(items)
		table.ScrollUp()
		idx, ok := table.CurrentSelectionIndex()
		if n == 0 {
			if ok {
				t.Fatalf("step %d: expected no selection for empty table", step)
			}
			continue
		}
		if !ok || idx < 0 || idx >= n {
			t.Fatalf("step %d: expected selection within [0,%d), got %d/%v", step, n, idx, ok)
		}
	}
}

func TestCurrentSelectionFallsBackToFirstRow(t *testing.T) {
	table := &StatefulTable[string]{List: List[string]{Items: []string{"first", "second"}}}
	got, ok := table.CurrentSelection()
	if !ok || got != "first" {
		t.Fatalf("expected fallback to first row, got %q/%v", got, ok)
	}
}

func TestSetItemsCopiesInput(t *testing.T) {
	items := []string{"a", "b"}
	table := NewStatefulTable(items)
	items[0] = "changed"
	if table.Items[0] != "a" {
		t.Fatalf("expected table to own its items, got %q", table.Items[0])
	}
}

func byLength(a, b string) int { return cmp.Compare(len(a), len(b)) }

func TestApplySortingToggleFlipsDirection(t *testing.T) {
	table := newTestTable("ccc", "a", "bb")
	table.Sorting([]SortOption[string]{
		{Name: "Length", Cmp: byLength},
		{Name: "Alpha", Cmp: strings.Compare},
	})

	table.ApplySorting()
	if !table.SortAscending {
		t.Fatalf("expected ascending after first toggle")
	}
	if !reflect.DeepEqual(table.Items, []string{"a", "bb", "ccc"}) {
		t.Fatalf("unexpected ascending order %#v", table.Items)
	}

	table.ApplySorting()
	if !reflect.DeepEqual(table.Items, []string{"ccc", "bb", "a"}) {
		t.Fatalf("unexpected descending order %#v", table.Items)
	}

	table.ApplySortingToggle(false)
	if table.SortAscending {
		t.Fatalf("expected direction unchanged without toggle")
	}
	if !reflect.DeepEqual(table.Items, []string{"ccc", "bb", "a"}) {
		t.Fatalf("expected re-sort to keep descending order, got %#v", table.Items)
	}
}

func TestApplySortingToggleMutedOption(t *testing.T) {
	table := newTestTable("b", "a")
	table.Sorting([]SortOption[string]{{Name: "Placeholder"}})
	table.ApplySorting()
	if table.SortAscending {
		t.Fatalf("expected muted option to leave direction untouched")
	}
	if !reflect.DeepEqual(table.Items, []string{"b", "a"}) {
		t.Fatalf("expected muted option to leave order untouched, got %#v", table.Items)
	}
}

func TestApplySortingSortsFilteredView(t *testing.T) {
	table := newTestTable("bx", "c", "ax")
	table.FilterText = NewHorizontallyScrollableText("x")
	table.ApplyFilter(identity)
	table.Sorting([]SortOption[string]{{Name: "Alpha", Cmp: strings.Compare}})
	table.ApplySorting()
	if !reflect.DeepEqual(table.FilteredItems, []string{"ax", "bx"}) {
		t.Fatalf("expected filtered view sorted, got %#v", table.FilteredItems)
	}
	if !reflect.DeepEqual(table.Items, []string{"bx", "c", "ax"}) {
		t.Fatalf("expected raw items untouched, got %#v", table.Items)
	}
}

func TestSortPickerIsAList(t *testing.T) {
	table := newTestTable("a")
	table.Sorting([]SortOption[string]{{Name: "One"}, {Name: "Two"}, {Name: "Three"}})
	table.Sort.ScrollUp()
	option, ok := table.Sort.CurrentSelection()
	if !ok || option.Name != "Three" {
		t.Fatalf("expected wraparound to Three, got %#v", option)
	}
}

func TestDescendingSortKeepsTiesInOrder(t *testing.T) {
	table := newTestTable("b1", "c22", "a1", "d1")
	table.Sorting([]SortOption[string]{{Name: "Length", Cmp: byLength}})
	table.SortAscending = true
	table.ApplySorting()
	if table.SortAscending {
		t.Fatalf("expected descending after toggle")
	}
	if !reflect.DeepEqual(table.Items, []string{"c22", "b1", "a1", "d1"}) {
		t.Fatalf("expected equal keys to keep their order, got %#v", table.Items)
	}
}

func TestSelectIndexClampsIntoView(t *testing.T) {
	table := newTestTable("a", "b", "c")
	table.SelectIndex(10)
	if idx := selected(t, table); idx != 2 {
		t.Fatalf("expected selection clamped to 2, got %d", idx)
	}
	table.SelectIndex(-4)
	if idx := selected(t, table); idx != 0 {
		t.Fatalf("expected selection clamped to 0, got %d", idx)
	}

	empty := newTestTable()
	empty.SelectIndex(1)
	if _, ok := empty.CurrentSelectionIndex(); ok {
		t.Fatalf("expected no selection on an empty table")
	}
}
