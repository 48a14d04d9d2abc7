package handlers

import (
	"errors"
	"testing"

	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
)

var errBoom = errors.New("boom")

func newTestApp(t *testing.T) *state.App {
	t.Helper()
	app := state.New([]route.Backend{route.Radarr, route.Sonarr}, make(chan network.Request, 16))
	app.IsFirstRender = false
	return app
}

func withLibrary(app *state.App, titles ...string) {
	items := make([]models.MediaItem, len(titles))
	for i, title := range titles {
		items[i] = models.MediaItem{ID: int64(i + 1), Title: title, Year: 2000 + i}
	}
	app.DataFor(route.Radarr).Library.SetItems(items)
}

func press(app *state.App, ks ...keys.Key) {
	for _, k := range ks {
		HandleEvents(k, app)
	}
}

func typeText(app *state.App, text string) {
	for _, r := range text {
		HandleEvents(keys.Char(string(r)), app)
	}
}

var (
	up     = keys.Named("up")
	down   = keys.Named("down")
	left   = keys.Named("left")
	right  = keys.Named("right")
	enter  = keys.Named("enter")
	esc    = keys.Named("esc")
	del    = keys.Named("delete")
	tab    = keys.Named("tab")
	bspace = keys.Named("backspace")
	ctrlS  = keys.Named("ctrl+s")
)

func expectBlock(t *testing.T, app *state.App, want route.Block) {
	t.Helper()
	if got := app.CurrentRoute().Block; got != want {
		t.Fatalf("expected route %v, got %v", want, got)
	}
}

func TestEveryBlockHasExactlyOneOwner(t *testing.T) {
	for _, b := range route.AllBlocks() {
		if b == route.None {
			continue
		}
		var owners []string
		for _, f := range TopLevel {
			if f.Accepts(b) {
				owners = append(owners, f.Name)
			}
		}
		if len(owners) != 1 {
			t.Fatalf("expected one owner for %v, got %v", b, owners)
		}
	}
}

func TestIndexersAcceptsOnlyItsOwnBlocks(t *testing.T) {
	own := map[route.Block]bool{}
	for _, set := range []route.Set{
		route.IndexersBlocks,
		route.EditIndexerBlocks,
		route.IndexerSettingsBlocks,
		route.TestAllIndexersBlocks,
	} {
		for _, b := range set {
			own[b] = true
		}
	}
	for _, b := range route.AllBlocks() {
		if got := indexersFactory.Accepts(b); got != own[b] {
			t.Fatalf("expected Accepts(%v) = %v, got %v", b, own[b], got)
		}
	}
}

func TestNestedHandlersAreSelectedByBlock(t *testing.T) {
	app := newTestApp(t)
	cases := map[route.Block]any{
		route.Library:               &libraryHandler{},
		route.MediaDetails:          &mediaDetailsHandler{},
		route.MediaSeasons:          &mediaDetailsHandler{},
		route.MediaAlbums:           &mediaDetailsHandler{},
		route.SeasonDetails:         &seasonDetailsHandler{},
		route.SeasonSearchPrompt:    &seasonDetailsHandler{},
		route.EpisodeDetails:        &episodeDetailsHandler{},
		route.EpisodeSearchPrompt:   &episodeDetailsHandler{},
		route.AlbumDetails:          &albumDetailsHandler{},
		route.AlbumSearchPrompt:     &albumDetailsHandler{},
		route.TrackDetails:          &trackDetailsHandler{},
		route.DeleteAlbumPrompt:     &deleteAlbumHandler{},
		route.DeleteMediaPrompt:     &deleteMediaHandler{},
		route.EditMediaPathInput:    &editMediaHandler{},
		route.AddMediaSearchInput:   &addMediaHandler{},
		route.Indexers:              &indexersHandler{},
		route.EditIndexerPrompt:     &editIndexerHandler{},
		route.IndexerSettingsPrompt: &indexerSettingsHandler{},
		route.TestAllIndexers:       &testAllIndexersHandler{},
		route.System:                &systemHandler{},
		route.SystemLogs:            &systemDetailsHandler{},
	}
	for block, want := range cases {
		f, ok := Owner(block)
		if !ok {
			t.Fatalf("expected an owner for %v", block)
		}
		h := f.With(Context{App: app, Backend: route.Radarr, Block: block})
		if typeName(h) != typeName(want) {
			t.Fatalf("expected %s for %v, got %s", typeName(want), block, typeName(h))
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *libraryHandler:
		return "library"
	case *mediaDetailsHandler:
		return "media_details"
	case *seasonDetailsHandler:
		return "season_details"
	case *episodeDetailsHandler:
		return "episode_details"
	case *albumDetailsHandler:
		return "album_details"
	case *trackDetailsHandler:
		return "track_details"
	case *deleteAlbumHandler:
		return "delete_album"
	case *deleteMediaHandler:
		return "delete_media"
	case *editMediaHandler:
		return "edit_media"
	case *addMediaHandler:
		return "add_media"
	case *indexersHandler:
		return "indexers"
	case *editIndexerHandler:
		return "edit_indexer"
	case *indexerSettingsHandler:
		return "indexer_settings"
	case *testAllIndexersHandler:
		return "test_all_indexers"
	case *systemHandler:
		return "system"
	case *systemDetailsHandler:
		return "system_details"
	}
	return "unknown"
}

// recorder counts which Handle method a key reached.
type recorder struct {
	ready  bool
	ignore bool
	calls  []string
}

func (r *recorder) IsReady() bool           { return r.ready }
func (r *recorder) IgnoreSpecialKeys() bool { return r.ignore }
func (r *recorder) HandleScrollUp()         { r.calls = append(r.calls, "up") }
func (r *recorder) HandleScrollDown()       { r.calls = append(r.calls, "down") }
func (r *recorder) HandleHome()             { r.calls = append(r.calls, "home") }
func (r *recorder) HandleEnd()              { r.calls = append(r.calls, "end") }
func (r *recorder) HandleLeftRight()        { r.calls = append(r.calls, "leftright") }
func (r *recorder) HandleDelete()           { r.calls = append(r.calls, "delete") }
func (r *recorder) HandleSubmit()           { r.calls = append(r.calls, "submit") }
func (r *recorder) HandleEsc()              { r.calls = append(r.calls, "esc") }
func (r *recorder) HandleChar()             { r.calls = append(r.calls, "char") }

func TestHandleKeyEventCategories(t *testing.T) {
	cases := []struct {
		key    keys.Key
		ready  bool
		ignore bool
		want   string
	}{
		{key: up, ready: true, want: "up"},
		{key: keys.Char("k"), ready: true, want: "up"},
		{key: keys.Char("k"), ready: true, ignore: true, want: "char"},
		{key: down, ready: false, want: ""},
		{key: keys.Named("home"), ready: true, want: "home"},
		{key: keys.Named("end"), ready: true, want: "end"},
		{key: del, ready: true, want: "delete"},
		{key: del, ready: false, want: ""},
		{key: left, ready: false, want: "leftright"},
		{key: keys.Char("l"), ready: false, want: "leftright"},
		{key: enter, ready: true, want: "submit"},
		{key: enter, ready: false, want: ""},
		{key: esc, ready: false, want: "esc"},
		{key: keys.Char("x"), ready: false, want: "char"},
		{key: bspace, ready: false, want: "char"},
	}
	for _, tc := range cases {
		r := &recorder{ready: tc.ready, ignore: tc.ignore}
		HandleKeyEvent(r, tc.key)
		got := ""
		if len(r.calls) > 1 {
			t.Fatalf("expected at most one call for %q, got %v", tc.key, r.calls)
		}
		if len(r.calls) == 1 {
			got = r.calls[0]
		}
		if got != tc.want {
			t.Fatalf("key %q (ready=%v ignore=%v): expected %q, got %q", tc.key, tc.ready, tc.ignore, tc.want, got)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	app := newTestApp(t)
	withLibrary(app, "a", "b")
	press(app, keys.Char("?"))
	if !app.ShowHelp {
		t.Fatalf("expected help shown")
	}
	press(app, down)
	if idx, _ := app.KeyMapping.CurrentSelectionIndex(); idx != 1 {
		t.Fatalf("expected help table to scroll, got %d", idx)
	}
	if idx, _ := app.Current().Library.CurrentSelectionIndex(); idx != 0 {
		t.Fatalf("expected library untouched while help is open, got %d", idx)
	}
	press(app, esc)
	if app.ShowHelp {
		t.Fatalf("expected esc to close help")
	}
	press(app, keys.Char("?"), keys.Char("?"))
	if app.ShowHelp {
		t.Fatalf("expected help key to toggle")
	}
}

func TestHelpKeyIsTextDuringInput(t *testing.T) {
	app := newTestApp(t)
	withLibrary(app, "a")
	press(app, keys.Char("f"), keys.Char("?"))
	if app.ShowHelp {
		t.Fatalf("expected help key typed into the filter")
	}
	if got := app.Current().Library.FilterText.Text(); got != "?" {
		t.Fatalf("expected filter text ?, got %q", got)
	}
}

func TestServarrSwitch(t *testing.T) {
	app := newTestApp(t)
	press(app, tab)
	if r := app.CurrentRoute(); r.Backend != route.Sonarr || r.Block != route.Library {
		t.Fatalf("expected sonarr library, got %v", r)
	}
	if !app.IsFirstRender {
		t.Fatalf("expected switch to reload on next tick")
	}
	press(app, keys.Named("shift+tab"))
	if r := app.CurrentRoute(); r.Backend != route.Radarr {
		t.Fatalf("expected radarr, got %v", r)
	}
	if app.NavigationStack()[0] != app.RootRoute() {
		t.Fatalf("expected root preserved")
	}
}

func TestTabSwitchingReplacesTop(t *testing.T) {
	app := newTestApp(t)
	withLibrary(app, "a")
	press(app, right)
	expectBlock(t, app, route.Downloads)
	depth := len(app.NavigationStack())
	press(app, right, right)
	expectBlock(t, app, route.History)
	if got := len(app.NavigationStack()); got != depth {
		t.Fatalf("expected stack depth %d, got %d", depth, got)
	}
	press(app, left)
	expectBlock(t, app, route.Blocklist)
	if !app.IsRouting {
		t.Fatalf("expected routing flag set")
	}
}

func TestNotReadyIgnoresNavigationButNotEsc(t *testing.T) {
	app := newTestApp(t)
	withLibrary(app, "a", "b")
	app.HandleError(errBoom)
	app.IsLoading = true
	press(app, down, enter)
	expectBlock(t, app, route.Library)
	if idx, _ := app.Current().Library.CurrentSelectionIndex(); idx != 0 {
		t.Fatalf("expected selection unchanged while loading, got %d", idx)
	}
	press(app, esc)
	if !app.Error.IsEmpty() {
		t.Fatalf("expected esc to clear the error while loading")
	}
}
