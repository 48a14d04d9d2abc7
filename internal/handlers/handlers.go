// Package handlers routes key presses to the component that owns the current
// route. Each top-level factory owns a disjoint set of blocks and delegates to
// nested factories for the modals it opens, so exactly one handler sees any
// given key.
package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/logging/events"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

// KeyEventHandler reacts to one key press on one route. HandleKeyEvent calls
// exactly one of the Handle methods, chosen by the key's category.
type KeyEventHandler interface {
	IsReady() bool
	IgnoreSpecialKeys() bool
	HandleScrollUp()
	HandleScrollDown()
	HandleHome()
	HandleEnd()
	HandleLeftRight()
	HandleDelete()
	HandleSubmit()
	HandleEsc()
	HandleChar()
}

// tableHandler is implemented by handlers that own a table. A true result
// means the shared table behaviour consumed the key.
type tableHandler interface {
	HandleTableEvents() bool
}

// Context is what a handler is built with.
type Context struct {
	Key     keys.Key
	App     *state.App
	Backend route.Backend
	Block   route.Block
	Ctx     route.Block
}

// Factory builds the handler for the blocks it accepts.
type Factory struct {
	Name    string
	Accepts func(route.Block) bool
	With    func(Context) KeyEventHandler
}

// TopLevel is the dispatch chain. Their accepted sets are pairwise disjoint.
var TopLevel = []Factory{
	libraryFactory,
	downloadsFactory,
	blocklistFactory,
	historyFactory,
	rootFoldersFactory,
	indexersFactory,
	systemFactory,
}

// Owner returns the top-level factory that accepts block.
func Owner(block route.Block) (Factory, bool) {
	for _, f := range TopLevel {
		if f.Accepts(block) {
			return f, true
		}
	}
	return Factory{}, false
}

// HandleEvents applies one key press to the application. The caller holds
// the application lock.
func HandleEvents(k keys.Key, app *state.App) {
	current := app.CurrentRoute()
	events.UI.Key(current.String(), k.String())
	km := keys.Default
	ignore := app.IgnoreSpecialKeysForTextboxInput

	switch {
	case km.NextServarr.Matches(k, ignore):
		app.Reset()
		app.ServerTabs.Next()
		switchServarr(app)
		return
	case km.PreviousServarr.Matches(k, ignore):
		app.Reset()
		app.ServerTabs.Previous()
		switchServarr(app)
		return
	case !ignore && km.Help.Matches(k, ignore):
		app.ShowHelp = !app.ShowHelp
		events.UI.Help(app.ShowHelp)
		return
	}

	if app.ShowHelp {
		handleHelpKeys(k, app)
		return
	}

	f, ok := Owner(current.Block)
	if !ok {
		return
	}
	h := f.With(Context{
		Key:     k,
		App:     app,
		Backend: current.Backend,
		Block:   current.Block,
		Ctx:     current.Context,
	})
	Handle(h, k)
}

func switchServarr(app *state.App) {
	next := app.ServerTabs.ActiveRoute()
	app.PopAndPushNavigationStack(next)
	events.App.Switch(next.Backend.String())
}

func handleHelpKeys(k keys.Key, app *state.App) {
	km := keys.Default
	switch {
	case km.Up.Matches(k, false):
		app.KeyMapping.ScrollUp()
	case km.Down.Matches(k, false):
		app.KeyMapping.ScrollDown()
	case km.Home.Matches(k, false):
		app.KeyMapping.ScrollToTop()
	case km.End.Matches(k, false):
		app.KeyMapping.ScrollToBottom()
	case km.Esc.Matches(k, false):
		app.ShowHelp = false
		events.UI.Help(false)
	}
}

// Handle runs h for k: shared table behaviour first, then the key category.
func Handle(h KeyEventHandler, k keys.Key) {
	if t, ok := h.(tableHandler); ok && t.HandleTableEvents() {
		return
	}
	HandleKeyEvent(h, k)
}

// HandleKeyEvent maps k to exactly one Handle method. Navigation, delete and
// submit are gated on IsReady; left, right, esc and text are not. Alternate
// bindings are ignored while a text box has focus.
func HandleKeyEvent(h KeyEventHandler, k keys.Key) {
	km := keys.Default
	ignore := h.IgnoreSpecialKeys()
	switch {
	case km.Up.Matches(k, ignore):
		if h.IsReady() {
			h.HandleScrollUp()
		}
	case km.Down.Matches(k, ignore):
		if h.IsReady() {
			h.HandleScrollDown()
		}
	case km.Home.Matches(k, ignore):
		if h.IsReady() {
			h.HandleHome()
		}
	case km.End.Matches(k, ignore):
		if h.IsReady() {
			h.HandleEnd()
		}
	case km.Delete.Matches(k, ignore):
		if h.IsReady() {
			h.HandleDelete()
		}
	case km.Left.Matches(k, ignore), km.Right.Matches(k, ignore):
		h.HandleLeftRight()
	case km.Submit.Matches(k, ignore):
		if h.IsReady() {
			h.HandleSubmit()
		}
	case km.Esc.Matches(k, ignore):
		h.HandleEsc()
	default:
		h.HandleChar()
	}
}

// base supplies the no-op defaults and the helpers shared by every handler.
type base struct {
	Context
}

func (b *base) IsReady() bool           { return !b.App.IsLoading }
func (b *base) IgnoreSpecialKeys() bool { return b.App.IgnoreSpecialKeysForTextboxInput }
func (b *base) HandleScrollUp()         {}
func (b *base) HandleScrollDown()       {}
func (b *base) HandleHome()             {}
func (b *base) HandleEnd()              {}
func (b *base) HandleLeftRight()        {}
func (b *base) HandleDelete()           {}
func (b *base) HandleSubmit()           {}
func (b *base) HandleEsc()              {}
func (b *base) HandleChar()             {}

func (b *base) data() *state.ServarrData {
	return b.App.DataFor(b.Backend)
}

func (b *base) routeTo(block route.Block) route.Route {
	return route.New(b.Backend, block)
}

func (b *base) push(block route.Block) {
	b.App.PushNavigationStack(b.routeTo(block))
}

// pushWithContext opens block remembering where the flow was started.
func (b *base) pushWithContext(block, ctx route.Block) {
	b.App.PushNavigationStack(b.routeTo(block).WithContext(ctx))
}

func (b *base) pop() {
	b.App.PopNavigationStack()
}

func (b *base) matches(binding keys.Binding) bool {
	return binding.Matches(b.Key, b.IgnoreSpecialKeys())
}

func (b *base) isLeft() bool {
	return b.matches(keys.Default.Left)
}

// enterTextInput gives a text box exclusive use of printable keys.
func (b *base) enterTextInput() {
	b.App.IgnoreSpecialKeysForTextboxInput = true
	b.App.ShouldIgnoreQuitKey = true
}

func (b *base) leaveTextInput() {
	b.App.IgnoreSpecialKeysForTextboxInput = false
	b.App.ShouldIgnoreQuitKey = false
}

// changeTab moves along the main tab bar without growing the stack.
func (b *base) changeTab() {
	d := b.data()
	if b.isLeft() {
		d.MainTabs.Previous()
	} else {
		d.MainTabs.Next()
	}
	b.App.PopAndPushNavigationStack(d.MainTabs.ActiveRoute())
}

func (b *base) clearErrors() {
	b.App.ClearError()
}

func (b *base) togglePrompt() {
	d := b.data()
	d.PromptConfirm = !d.PromptConfirm
}

// stage records the request to send on the next tick.
func (b *base) stage(op network.Operation, params any) {
	req := network.NewRequest(b.Backend, op, params)
	b.data().PromptConfirmAction = &req
	events.Action.Confirm(b.routeTo(b.Block).String(), req.String())
}

// submitPrompt closes a yes/no prompt, staging the action when yes is
// selected.
func (b *base) submitPrompt(op network.Operation, params any) {
	if b.data().PromptConfirm {
		b.stage(op, params)
	}
	b.pop()
}

// confirmPrompt accepts a prompt directly with the confirm key.
func (b *base) confirmPrompt(op network.Operation, params any) bool {
	if !b.matches(keys.Default.Confirm) {
		return false
	}
	b.data().PromptConfirm = true
	b.stage(op, params)
	b.pop()
	return true
}

func (b *base) escPrompt() {
	b.pop()
	b.data().PromptConfirm = false
}

// selectedBlock is the focused cell of the open modal.
func (b *base) selectedBlock() route.Block {
	return b.data().SelectedBlock.ActiveBlock()
}

// modalLeftRight toggles yes/no on the confirm row and moves focus across
// the grid elsewhere.
func (b *base) modalLeftRight(confirm route.Block) {
	d := b.data()
	if d.SelectedBlock.ActiveBlock() == confirm {
		b.togglePrompt()
		return
	}
	if b.isLeft() {
		d.SelectedBlock.Left()
	} else {
		d.SelectedBlock.Right()
	}
}

func (b *base) handleTextBoxKeys(text *uistate.HorizontallyScrollableText) {
	if text == nil {
		return
	}
	switch {
	case keys.Default.Backspace.Matches(b.Key, b.IgnoreSpecialKeys()):
		text.Pop()
	case b.Key.IsChar():
		text.Push(b.Key.Text)
	}
}

func (b *base) handleTextBoxLeftRight(text *uistate.HorizontallyScrollableText) {
	if text == nil {
		return
	}
	if b.isLeft() {
		text.ScrollLeft()
	} else {
		text.ScrollRight()
	}
}

func textBoxHome(text *uistate.HorizontallyScrollableText) {
	if text != nil {
		text.ScrollHome()
	}
}

func textBoxEnd(text *uistate.HorizontallyScrollableText) {
	if text != nil {
		text.ResetOffset()
	}
}

// blockSet builds an Accepts func from a fixed set plus nested factories.
func blockSet(own route.Set, children ...Factory) func(route.Block) bool {
	return func(b route.Block) bool {
		if own.Contains(b) {
			return true
		}
		for _, c := range children {
			if c.Accepts(b) {
				return true
			}
		}
		return false
	}
}

// delegate returns the handler of the first child accepting the context's
// block, or nil when the parent owns it.
func delegate(c Context, children ...Factory) KeyEventHandler {
	for _, f := range children {
		if f.Accepts(c.Block) {
			return f.With(c)
		}
	}
	return nil
}
