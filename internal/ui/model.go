package ui

import (
	"reflect"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/servarr-dash/internal/backend"
	"github.com/atomicstack/servarr-dash/internal/state"
	"github.com/atomicstack/servarr-dash/internal/theme"
)

const (
	DefaultTickRate = 50 * time.Millisecond

	fallbackWidth  = 80
	fallbackHeight = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type tickMsg time.Time

// Options tunes the model. A zero Width or Height follows the terminal.
type Options struct {
	TickRate time.Duration
	Width    int
	Height   int
}

// Model implements the Bubble Tea model for the dashboard.
type Model struct {
	app    *state.App
	events <-chan backend.Event

	tickRate    time.Duration
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	help        help.Model

	lastEvent  backend.Event
	received   int
	scrolledAt int

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI over app. events is the worker's notification
// channel and may be nil when nothing runs in the background.
func NewModel(app *state.App, events <-chan backend.Event, opts Options) *Model {
	m := &Model{
		app:        app,
		events:     events,
		tickRate:   opts.TickRate,
		help:       help.New(),
		scrolledAt: -1,
	}
	if m.tickRate <= 0 {
		m.tickRate = DefaultTickRate
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tick()}
	if m.events != nil {
		cmds = append(cmds, waitForWorkerEvent(m.events))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(workerEventMsg{}):    m.handleWorkerEventMsg,
		reflect.TypeOf(workerDoneMsg{}):     m.handleWorkerDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// handleTickMsg advances the poll loop and schedules the next tick.
func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	m.app.Lock()
	m.app.OnTick()
	m.app.Unlock()
	return m.tick()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// App exposes the state the model draws.
func (m *Model) App() *state.App {
	return m.app
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = fallbackWidth
	}
	if h <= 0 {
		h = fallbackHeight
	}
	return w, h
}
