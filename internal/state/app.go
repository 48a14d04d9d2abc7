// Package state holds the process-wide application state shared by the key
// handlers, the tick loop, the result dispatcher and the renderer. Every
// access goes through App.Lock.
package state

import (
	"errors"
	"slices"
	"sync"

	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/logging/events"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

const (
	DefaultTickUntilPoll    = 400
	DefaultTicksUntilScroll = 4
)

// ErrQueueFull is recorded when a request cannot be queued without blocking.
var ErrQueueFull = errors.New("network queue full")

// App is the single owner of navigation, per-backend data and UI flags.
type App struct {
	mu sync.Mutex

	navigation []route.Route
	requests   chan<- network.Request
	inFlight   int

	Backends   []route.Backend
	Data       map[route.Backend]*ServarrData
	ServerTabs uistate.TabState
	Error      *uistate.HorizontallyScrollableText
	KeyMapping *uistate.StatefulTable[keys.HelpEntry]

	IsLoading                        bool
	IsRouting                        bool
	ShouldRefresh                    bool
	ShouldIgnoreQuitKey              bool
	IgnoreSpecialKeysForTextboxInput bool
	IsFirstRender                    bool
	ShowHelp                         bool

	TickUntilPoll    int
	TicksUntilScroll int
	TickCount        int
}

// New builds the application state for the configured backends. The first
// backend's library is the root route. Requests are queued on requests
// without blocking.
func New(backends []route.Backend, requests chan<- network.Request) *App {
	if len(backends) == 0 {
		backends = []route.Backend{route.Radarr}
	}
	a := &App{
		requests:         requests,
		Backends:         slices.Clone(backends),
		Data:             make(map[route.Backend]*ServarrData, len(backends)),
		Error:            uistate.NewHorizontallyScrollableText(""),
		KeyMapping:       uistate.NewStatefulTable(keys.Default.HelpEntries()),
		IsFirstRender:    true,
		TickUntilPoll:    DefaultTickUntilPoll,
		TicksUntilScroll: DefaultTicksUntilScroll,
	}
	tabs := make([]uistate.TabRoute, 0, len(backends))
	for _, b := range backends {
		a.Data[b] = NewServarrData(b)
		tabs = append(tabs, uistate.TabRoute{
			Title: b.Title(),
			Route: route.New(b, route.Library),
			Help:  keys.ServarrContextClues,
		})
	}
	a.ServerTabs = uistate.NewTabState(tabs)
	a.navigation = []route.Route{a.RootRoute()}
	return a
}

// Lock acquires the application lock.
func (a *App) Lock() {
	a.mu.Lock()
}

// Unlock releases the application lock.
func (a *App) Unlock() {
	a.mu.Unlock()
}

// RootRoute is the bottom of the navigation stack.
func (a *App) RootRoute() route.Route {
	return route.New(a.Backends[0], route.Library)
}

// CurrentRoute returns the top of the navigation stack.
func (a *App) CurrentRoute() route.Route {
	return a.navigation[len(a.navigation)-1]
}

// NavigationStack returns a copy of the stack, bottom first.
func (a *App) NavigationStack() []route.Route {
	return slices.Clone(a.navigation)
}

// PushNavigationStack makes r the current route.
func (a *App) PushNavigationStack(r route.Route) {
	from := a.CurrentRoute()
	a.navigation = append(a.navigation, r)
	a.IsRouting = true
	events.UI.Route(from.String(), r.String())
}

// PopNavigationStack returns to the previous route. The root is never
// removed.
func (a *App) PopNavigationStack() {
	a.IsRouting = true
	if len(a.navigation) <= 1 {
		return
	}
	from := a.CurrentRoute()
	a.navigation = a.navigation[:len(a.navigation)-1]
	events.UI.Route(from.String(), a.CurrentRoute().String())
}

// PopAndPushNavigationStack replaces the current route so that cycling tabs
// does not grow the stack.
func (a *App) PopAndPushNavigationStack(r route.Route) {
	a.PopNavigationStack()
	a.PushNavigationStack(r)
}

// Current returns the data of the backend on screen.
func (a *App) Current() *ServarrData {
	return a.DataFor(a.CurrentRoute().Backend)
}

// DataFor returns the data of backend b, creating it on first use.
func (a *App) DataFor(b route.Backend) *ServarrData {
	d, ok := a.Data[b]
	if !ok {
		d = NewServarrData(b)
		a.Data[b] = d
	}
	return d
}

// ResetTickCount restarts the poll countdown.
func (a *App) ResetTickCount() {
	a.TickCount = 0
}

// Reset prepares the app for switching backends.
func (a *App) Reset() {
	a.ResetTickCount()
	a.ClearError()
	a.IsFirstRender = true
	a.Current().MainTabs.SetIndex(0)
}

// HandleError records err unless an earlier error is still displayed.
func (a *App) HandleError(err error) {
	if err == nil {
		return
	}
	events.Action.Error(err)
	if a.Error.IsEmpty() {
		a.Error = uistate.NewHorizontallyScrollableText(err.Error())
	}
}

// ClearError empties the error buffer.
func (a *App) ClearError() {
	a.Error = uistate.NewHorizontallyScrollableText("")
}

// InFlight returns the number of queued requests without a result.
func (a *App) InFlight() int {
	return a.inFlight
}

// DispatchNetworkEvent queues req without blocking. A full queue drops the
// request and records ErrQueueFull. It reports whether req was queued.
func (a *App) DispatchNetworkEvent(req network.Request) bool {
	if a.requests == nil {
		return false
	}
	select {
	case a.requests <- req:
		a.inFlight++
		a.IsLoading = true
		events.Network.Queue(req.ID.String(), req.String(), a.inFlight)
		return true
	default:
		events.Network.Drop(req.ID.String(), req.String())
		a.HandleError(ErrQueueFull)
		return false
	}
}

// FinishRequest marks one queued request as completed.
func (a *App) FinishRequest() {
	if a.inFlight > 0 {
		a.inFlight--
	}
	a.IsLoading = a.inFlight > 0
}
