package state

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/route"
)

// TabRoute is one entry of a tab bar.
type TabRoute struct {
	Title string
	Route route.Route
	Help  []keys.ContextClue
}

// TabState is an ordered tab bar with a current index.
type TabState struct {
	Tabs  []TabRoute
	Index int
}

// NewTabState returns a tab bar focused on its first tab.
func NewTabState(tabs []TabRoute) TabState {
	return TabState{Tabs: tabs}
}

// Next focuses the following tab, wrapping to the first.
func (t *TabState) Next() {
	if n := len(t.Tabs); n > 0 {
		t.Index = (t.Index + 1) % n
	}
}

// Previous focuses the preceding tab, wrapping to the last.
func (t *TabState) Previous() {
	if n := len(t.Tabs); n > 0 {
		t.Index = (t.Index - 1 + n) % n
	}
}

// SetIndex focuses tab i when it exists.
func (t *TabState) SetIndex(i int) {
	if i >= 0 && i < len(t.Tabs) {
		t.Index = i
	}
}

// ActiveRoute returns the route of the focused tab.
func (t *TabState) ActiveRoute() route.Route {
	if len(t.Tabs) == 0 {
		return route.Route{}
	}
	return t.Tabs[t.Index].Route
}

// ActiveTitle returns the title of the focused tab.
func (t *TabState) ActiveTitle() string {
	if len(t.Tabs) == 0 {
		return ""
	}
	return t.Tabs[t.Index].Title
}

// ActiveHelp returns the context clues of the focused tab.
func (t *TabState) ActiveHelp() []keys.ContextClue {
	if len(t.Tabs) == 0 {
		return nil
	}
	return t.Tabs[t.Index].Help
}

// IndexOf returns the index of the tab whose route has the given block.
func (t *TabState) IndexOf(block route.Block) int {
	for i, tab := range t.Tabs {
		if tab.Route.Block == block {
			return i
		}
	}
	return -1
}
