package state

import "slices"

// SortOption names one ordering offered by a table's sort picker. A nil Cmp
// mutes the option.
type SortOption[T any] struct {
	Name string
	Cmp  func(a, b T) int
}

func (o SortOption[T]) String() string {
	return o.Name
}

// selection is an optional index into a view.
type selection struct {
	index int
	ok    bool
}

func (s *selection) set(i int) {
	s.index = i
	s.ok = true
}

func (s *selection) clear() {
	s.index = 0
	s.ok = false
}

// List is an ordered collection with a selection cursor and an optional
// filtered view. When FilteredItems is non-nil it is the active view and
// every cursor operation applies to it.
type List[T any] struct {
	Items         []T
	FilteredItems []T

	selected         selection
	filteredSelected selection
	viewport         int
}

// NewList returns a list seeded with items.
func NewList[T any](items []T) *List[T] {
	l := &List[T]{}
	l.SetItems(items)
	return l
}

// StatefulTable is a List with staged search and filter input and an
// optional sort picker.
type StatefulTable[T any] struct {
	List[T]
	FilterText    *HorizontallyScrollableText
	SearchText    *HorizontallyScrollableText
	Sort          *List[SortOption[T]]
	SortAscending bool
}

// NewStatefulTable returns a table seeded with items.
func NewStatefulTable[T any](items []T) *StatefulTable[T] {
	t := &StatefulTable[T]{}
	t.SetItems(items)
	return t
}

func (t *List[T]) active() ([]T, *selection) {
	if t.FilteredItems != nil {
		return t.FilteredItems, &t.filteredSelected
	}
	return t.Items, &t.selected
}

// ActiveItems returns the view that selection operates on.
func (t *List[T]) ActiveItems() []T {
	items, _ := t.active()
	return items
}

// IsFiltered reports whether the filtered view is active.
func (t *List[T]) IsFiltered() bool {
	return t.FilteredItems != nil
}

// Len returns the number of backing items.
func (t *List[T]) Len() int {
	return len(t.Items)
}

// IsEmpty reports whether the table holds no backing items.
func (t *List[T]) IsEmpty() bool {
	return len(t.Items) == 0
}

// SetItems replaces the backing items, clamping the previous selection into
// the new bounds. An empty slice clears the selection.
func (t *List[T]) SetItems(items []T) {
	t.Items = CloneItems(items)
	if len(t.Items) == 0 {
		t.selected.clear()
		t.viewport = 0
		return
	}
	prev := 0
	if t.selected.ok {
		prev = t.selected.index
	}
	t.selected.set(min(prev, len(t.Items)-1))
}

// SetFilteredItems activates the filtered view and selects its first row.
func (t *List[T]) SetFilteredItems(items []T) {
	t.FilteredItems = CloneItems(items)
	t.viewport = 0
	if len(t.FilteredItems) == 0 {
		t.filteredSelected.clear()
		return
	}
	t.filteredSelected.set(0)
}

// SelectIndex moves the selection on the active view, clamping i into its
// bounds. An empty view keeps no selection.
func (t *List[T]) SelectIndex(i int) {
	items, sel := t.active()
	if len(items) == 0 {
		sel.clear()
		return
	}
	sel.set(max(0, min(i, len(items)-1)))
}

// CurrentSelectionIndex returns the selected index on the active view.
func (t *List[T]) CurrentSelectionIndex() (int, bool) {
	_, sel := t.active()
	return sel.index, sel.ok
}

// CurrentSelection returns the selected element, falling back to the first
// row when nothing is selected. It reports false only for an empty view.
func (t *List[T]) CurrentSelection() (T, bool) {
	items, sel := t.active()
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	idx := 0
	if sel.ok && sel.index < len(items) {
		idx = sel.index
	}
	return items[idx], true
}

// ResetFilter drops the filtered view and any staged filter text.
func (t *StatefulTable[T]) ResetFilter() {
	t.FilteredItems = nil
	t.filteredSelected.clear()
	t.FilterText = nil
	t.viewport = 0
}

// ResetSearch drops any staged search text.
func (t *StatefulTable[T]) ResetSearch() {
	t.SearchText = nil
}

// Sorting seeds the nested sort picker with options.
func (t *StatefulTable[T]) Sorting(options []SortOption[T]) {
	t.Sort = NewList(options)
}

// ApplySorting sorts the active view by the selected option, flipping the
// direction first.
func (t *StatefulTable[T]) ApplySorting() {
	t.ApplySortingToggle(true)
}

// ApplySortingToggle sorts the active view by the selected option, flipping
// the direction first when toggle is set. Nothing changes when no option is
// selected or the option has no comparator.
func (t *StatefulTable[T]) ApplySortingToggle(toggle bool) {
	if t.Sort == nil {
		return
	}
	option, ok := t.Sort.CurrentSelection()
	if !ok || option.Cmp == nil {
		return
	}
	if toggle {
		t.SortAscending = !t.SortAscending
	}
	items, _ := t.active()
	if t.SortAscending {
		slices.SortStableFunc(items, option.Cmp)
		return
	}
	slices.SortStableFunc(items, func(a, b T) int { return option.Cmp(b, a) })
}
