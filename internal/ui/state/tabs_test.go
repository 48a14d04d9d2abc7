package state

import (
	"testing"

	"github.com/atomicstack/servarr-dash/internal/route"
)

func testTabs() TabState {
	return NewTabState([]TabRoute{
		{Title: "Library", Route: route.New(route.Radarr, route.Library)},
		{Title: "Downloads", Route: route.New(route.Radarr, route.Downloads)},
		{Title: "System", Route: route.New(route.Radarr, route.System)},
	})
}

func TestTabStateWraps(t *testing.T) {
	tabs := testTabs()
	tabs.Previous()
	if got := tabs.ActiveTitle(); got != "System" {
		t.Fatalf("expected System, got %q", got)
	}
	tabs.Next()
	if got := tabs.ActiveRoute().Block; got != route.Library {
		t.Fatalf("expected Library, got %v", got)
	}
}

func TestTabStateSetIndexIgnoresOutOfRange(t *testing.T) {
	tabs := testTabs()
	tabs.SetIndex(1)
	tabs.SetIndex(7)
	if tabs.Index != 1 {
		t.Fatalf("expected index 1, got %d", tabs.Index)
	}
	if idx := tabs.IndexOf(route.System); idx != 2 {
		t.Fatalf("expected System at 2, got %d", idx)
	}
	if idx := tabs.IndexOf(route.History); idx != -1 {
		t.Fatalf("expected History absent, got %d", idx)
	}
}

func TestEmptyTabState(t *testing.T) {
	var tabs TabState
	tabs.Next()
	tabs.Previous()
	if tabs.ActiveRoute() != (route.Route{}) || tabs.ActiveTitle() != "" || tabs.ActiveHelp() != nil {
		t.Fatalf("expected zero values for empty tab bar")
	}
}
