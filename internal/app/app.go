package app

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/servarr-dash/internal/backend"
	"github.com/atomicstack/servarr-dash/internal/config"
	"github.com/atomicstack/servarr-dash/internal/data/dispatcher"
	"github.com/atomicstack/servarr-dash/internal/logging"
	"github.com/atomicstack/servarr-dash/internal/logging/events"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/servarr"
	"github.com/atomicstack/servarr-dash/internal/state"
	"github.com/atomicstack/servarr-dash/internal/ui"
)

// Session is the application state together with the worker that drains
// its request queue and the dispatcher that applies results.
type Session struct {
	App        *state.App
	Worker     *backend.Worker
	Dispatcher *dispatcher.Dispatcher
}

// NewSession wires one App to clients for every configured backend. The
// worker is not started.
func NewSession(cfg config.Config) *Session {
	clients := servarr.NewClients(cfg.Servarrs())
	queueSize := cfg.Network.QueueSize
	if queueSize <= 0 {
		queueSize = config.DefaultQueueSize
	}
	requests := make(chan network.Request, queueSize)
	st := state.New(clients.Backends(), requests)
	if cfg.UI.TickUntilPoll > 0 {
		st.TickUntilPoll = cfg.UI.TickUntilPoll
	}
	d := dispatcher.New(st)
	w := backend.NewWorker(requests, clients, func(evt backend.Event) {
		d.Handle(evt)
	}, backend.Options{
		Workers:  cfg.Network.Workers,
		Throttle: cfg.Network.Throttle.Std(),
	})
	return &Session{App: st, Worker: w, Dispatcher: d}
}

// Open makes block of backend b the only route on the stack and focuses the
// matching server and main tabs.
func (s *Session) Open(b route.Backend, block route.Block) error {
	s.App.Lock()
	defer s.App.Unlock()

	server := -1
	for i, tab := range s.App.ServerTabs.Tabs {
		if tab.Route.Backend == b {
			server = i
		}
	}
	if server < 0 {
		return fmt.Errorf("%s: %w", b.Title(), servarr.ErrNotConfigured)
	}
	s.App.ServerTabs.SetIndex(server)
	data := s.App.DataFor(b)
	if i := data.MainTabs.IndexOf(block); i >= 0 {
		data.MainTabs.SetIndex(i)
	}
	s.App.PopAndPushNavigationStack(route.New(b, block))
	return nil
}

// Step runs one poll tick and performs every request it queued on the
// calling goroutine. It returns the first request error.
func (s *Session) Step(ctx context.Context) error {
	s.App.Lock()
	s.App.OnTick()
	s.App.Unlock()

	var errs []error
	for _, evt := range s.Worker.Flush(ctx) {
		if evt.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", evt.Request, evt.Err))
		}
	}
	return errors.Join(errs...)
}

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg config.Config) error {
	s := NewSession(cfg)
	s.Worker.Start()
	defer func() {
		s.Worker.Stop()
		if err := s.Worker.Wait(); err != nil {
			logging.Error(err)
		}
	}()

	events.App.Switch(s.App.CurrentRoute().Backend.String())
	model := ui.NewModel(s.App, s.Worker.Events(), ui.Options{TickRate: cfg.UI.TickRate.Std()})
	program := tea.NewProgram(model, tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
