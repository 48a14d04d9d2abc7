package state

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

func newTestApp(t *testing.T, capacity int) (*App, chan network.Request) {
	t.Helper()
	ch := make(chan network.Request, capacity)
	return New([]route.Backend{route.Radarr, route.Sonarr}, ch), ch
}

func drain(ch chan network.Request) []network.Request {
	var out []network.Request
	for {
		select {
		case req := <-ch:
			out = append(out, req)
		default:
			return out
		}
	}
}

func ops(reqs []network.Request) []network.Operation {
	out := make([]network.Operation, len(reqs))
	for i, r := range reqs {
		out[i] = r.Op
	}
	return out
}

func TestPopNeverRemovesRoot(t *testing.T) {
	app, _ := newTestApp(t, 1)
	root := app.CurrentRoute()
	app.PushNavigationStack(route.New(route.Radarr, route.Downloads))
	app.PushNavigationStack(route.New(route.Radarr, route.DeleteDownloadPrompt))
	app.PopNavigationStack()
	app.PopNavigationStack()
	app.PopNavigationStack()

	stack := app.NavigationStack()
	if len(stack) != 1 || stack[0] != root {
		t.Fatalf("expected only the root, got %v", stack)
	}
	if !app.IsRouting {
		t.Fatalf("expected pop to mark routing even at the root")
	}
}

func TestNavigationStackKeepsRootUnderRandomOperations(t *testing.T) {
	app, _ := newTestApp(t, 1)
	root := app.RootRoute()
	rng := rand.New(rand.NewPCG(1, 2))
	blocks := route.AllBlocks()
	for i := 0; i < 2000; i++ {
		r := route.New(route.Sonarr, blocks[rng.IntN(len(blocks))])
		switch rng.IntN(3) {
		case 0:
			app.PushNavigationStack(r)
		case 1:
			app.PopNavigationStack()
		default:
			app.PopAndPushNavigationStack(r)
		}
		stack := app.NavigationStack()
		if len(stack) == 0 || stack[0] != root {
			t.Fatalf("step %d: root lost, stack %v", i, stack)
		}
	}
}

func TestPopAndPushReplacesTop(t *testing.T) {
	app, _ := newTestApp(t, 1)
	app.PushNavigationStack(route.New(route.Radarr, route.Downloads))
	app.PopAndPushNavigationStack(route.New(route.Radarr, route.Blocklist))
	app.PopAndPushNavigationStack(route.New(route.Radarr, route.History))
	if got := len(app.NavigationStack()); got != 2 {
		t.Fatalf("expected depth 2, got %d", got)
	}
	if got := app.CurrentRoute().Block; got != route.History {
		t.Fatalf("expected History, got %v", got)
	}
}

func TestHandleErrorKeepsFirstError(t *testing.T) {
	app, _ := newTestApp(t, 1)
	app.HandleError(errors.New("first"))
	app.HandleError(errors.New("second"))
	if got := app.Error.Text(); got != "first" {
		t.Fatalf("expected first error retained, got %q", got)
	}
	app.ClearError()
	app.HandleError(nil)
	if !app.Error.IsEmpty() {
		t.Fatalf("expected nil error to be ignored")
	}
}

func TestDispatchNetworkEventDropsWhenFull(t *testing.T) {
	app, ch := newTestApp(t, 1)
	if !app.DispatchNetworkEvent(network.NewRequest(route.Radarr, network.OpGetLibrary, nil)) {
		t.Fatalf("expected first request queued")
	}
	if !app.IsLoading || app.InFlight() != 1 {
		t.Fatalf("expected loading with one request in flight")
	}
	if app.DispatchNetworkEvent(network.NewRequest(route.Radarr, network.OpGetDownloads, nil)) {
		t.Fatalf("expected second request dropped")
	}
	if app.InFlight() != 1 {
		t.Fatalf("expected in-flight count unchanged, got %d", app.InFlight())
	}
	if got := app.Error.Text(); got != ErrQueueFull.Error() {
		t.Fatalf("expected queue full error, got %q", got)
	}
	if got := ops(drain(ch)); len(got) != 1 || got[0] != network.OpGetLibrary {
		t.Fatalf("unexpected queued requests %v", got)
	}

	app.FinishRequest()
	app.FinishRequest()
	if app.IsLoading || app.InFlight() != 0 {
		t.Fatalf("expected idle after results")
	}
}

func TestFirstTickLoadsMetadataAndView(t *testing.T) {
	app, ch := newTestApp(t, 16)
	app.OnTick()
	got := ops(drain(ch))
	want := []network.Operation{network.OpGetMetadata, network.OpGetLibrary, network.OpGetDownloads}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if app.IsFirstRender {
		t.Fatalf("expected first render cleared")
	}

	app.OnTick()
	if reqs := drain(ch); len(reqs) != 0 {
		t.Fatalf("expected idle tick to stay quiet, got %v", ops(reqs))
	}
}

func TestRoutingTickLoadsNewView(t *testing.T) {
	app, ch := newTestApp(t, 16)
	app.OnTick()
	drain(ch)

	app.PushNavigationStack(route.New(route.Radarr, route.System))
	app.OnTick()
	got := ops(drain(ch))
	if len(got) != 3 || got[0] != network.OpGetTasks || got[2] != network.OpGetLogs {
		t.Fatalf("unexpected system requests %v", got)
	}
	if app.IsRouting {
		t.Fatalf("expected routing flag cleared")
	}
}

func TestPollSkippedWhileLoading(t *testing.T) {
	app, ch := newTestApp(t, 16)
	app.TickUntilPoll = 2
	app.OnTick()
	drain(ch)

	app.OnTick()
	if app.TickCount != 2 {
		t.Fatalf("expected tick count 2, got %d", app.TickCount)
	}
	app.OnTick()
	if reqs := drain(ch); len(reqs) != 0 {
		t.Fatalf("expected no poll while requests are in flight, got %v", ops(reqs))
	}

	for app.InFlight() > 0 {
		app.FinishRequest()
	}
	app.TickCount = 4
	app.OnTick()
	if reqs := drain(ch); len(reqs) == 0 {
		t.Fatalf("expected poll once idle")
	}
}

func TestConfirmedPromptActionIsSentOnce(t *testing.T) {
	app, ch := newTestApp(t, 16)
	app.OnTick()
	drain(ch)

	req := network.NewRequest(route.Radarr, network.OpUpdateAllLibrary, nil)
	data := app.Current()
	data.PromptConfirm = true
	data.PromptConfirmAction = &req

	app.OnTick()
	got := drain(ch)
	if len(got) != 1 || got[0].ID != req.ID {
		t.Fatalf("expected pending action sent, got %v", ops(got))
	}
	if data.PromptConfirm || data.PromptConfirmAction != nil {
		t.Fatalf("expected prompt state consumed")
	}
	if !app.ShouldRefresh {
		t.Fatalf("expected refresh scheduled after action")
	}

	app.OnTick()
	got = drain(ch)
	if len(got) == 0 || got[0].Op != network.OpGetMetadata {
		t.Fatalf("expected refresh on next tick, got %v", ops(got))
	}
	for _, r := range got {
		if r.ID == req.ID {
			t.Fatalf("expected action sent only once")
		}
	}
}

func TestDeclinedPromptSendsNothing(t *testing.T) {
	app, ch := newTestApp(t, 16)
	app.OnTick()
	drain(ch)

	req := network.NewRequest(route.Radarr, network.OpClearBlocklist, nil)
	app.Current().PromptConfirmAction = &req
	app.OnTick()
	if reqs := drain(ch); len(reqs) != 0 {
		t.Fatalf("expected nothing sent without confirmation, got %v", ops(reqs))
	}
}

func TestResetPreparesBackendSwitch(t *testing.T) {
	app, _ := newTestApp(t, 16)
	app.TickCount = 17
	app.IsFirstRender = false
	app.HandleError(errors.New("boom"))
	app.Current().MainTabs.SetIndex(3)

	app.Reset()
	if app.TickCount != 0 || !app.IsFirstRender || !app.Error.IsEmpty() {
		t.Fatalf("expected counters, flags and error reset")
	}
	if app.Current().MainTabs.Index != 0 {
		t.Fatalf("expected main tabs reset")
	}
}

func TestLazyDispatchSkipsLoadedData(t *testing.T) {
	app, ch := newTestApp(t, 16)
	app.OnTick()
	drain(ch)

	errs := ""
	app.Current().IndexerTestErrors = &errs
	app.PushNavigationStack(route.New(route.Radarr, route.TestIndexer))
	app.OnTick()
	if reqs := drain(ch); len(reqs) != 0 {
		t.Fatalf("expected cached test result reused, got %v", ops(reqs))
	}

	app.PopAndPushNavigationStack(route.New(route.Radarr, route.TestAllIndexers))
	app.OnTick()
	if got := ops(drain(ch)); len(got) != 1 || got[0] != network.OpTestAllIndexers {
		t.Fatalf("expected test-all request, got %v", got)
	}
}

func TestDrillDownTicksLoadTheSelectedParent(t *testing.T) {
	app, ch := newTestApp(t, 16)
	app.OnTick()
	drain(ch)

	data := app.DataFor(route.Sonarr)
	data.Library.SetItems([]models.MediaItem{{ID: 7, Title: "Andor"}})
	data.Seasons.SetItems([]models.Season{{SeasonNumber: 1}, {SeasonNumber: 2}})
	data.Seasons.SelectIndex(1)

	app.PushNavigationStack(route.New(route.Sonarr, route.SeasonDetails))
	app.OnTick()
	reqs := drain(ch)
	if len(reqs) != 1 || reqs[0].Op != network.OpGetEpisodes {
		t.Fatalf("expected one episodes request, got %v", ops(reqs))
	}
	if p := reqs[0].Params.(network.SeasonParams); p.SeriesID != 7 || p.SeasonNumber != 2 {
		t.Fatalf("expected series 7 season 2, got %+v", p)
	}
}

func TestAlbumTicksLoadTracks(t *testing.T) {
	ch := make(chan network.Request, 16)
	app := New([]route.Backend{route.Lidarr}, ch)
	app.OnTick()
	drain(ch)

	data := app.DataFor(route.Lidarr)
	data.Library.SetItems([]models.MediaItem{{ID: 3, Title: "Boards of Canada"}})
	app.PushNavigationStack(route.New(route.Lidarr, route.MediaAlbums))
	app.OnTick()
	reqs := drain(ch)
	if len(reqs) != 1 || reqs[0].Op != network.OpGetAlbums || reqs[0].Params.(network.IDParams).ID != 3 {
		t.Fatalf("expected albums of artist 3, got %v", ops(reqs))
	}

	data.Albums.SetItems([]models.Album{{ID: 30, ArtistID: 3}})
	app.PushNavigationStack(route.New(route.Lidarr, route.AlbumDetails))
	app.OnTick()
	reqs = drain(ch)
	if len(reqs) != 1 || reqs[0].Op != network.OpGetTracks {
		t.Fatalf("expected one tracks request, got %v", ops(reqs))
	}
	if p := reqs[0].Params.(network.TracksParams); p.ArtistID != 3 || p.AlbumID != 30 {
		t.Fatalf("expected artist 3 album 30, got %+v", p)
	}
}

func TestMediaInfoTabsFollowBackend(t *testing.T) {
	cases := map[route.Backend][]string{
		route.Radarr: {"Details", "History"},
		route.Sonarr: {"Details", "Seasons", "History"},
		route.Lidarr: {"Details", "Albums", "History"},
	}
	for b, want := range cases {
		tabs := NewServarrData(b).MediaInfoTabs
		if len(tabs.Tabs) != len(want) {
			t.Fatalf("%s: expected tabs %v, got %d", b, want, len(tabs.Tabs))
		}
		for i, title := range want {
			if tabs.Tabs[i].Title != title {
				t.Fatalf("%s: expected tab %d to be %q, got %q", b, i, title, tabs.Tabs[i].Title)
			}
		}
	}
}
