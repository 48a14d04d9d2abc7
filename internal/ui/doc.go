// Package ui contains the Bubble Tea program that draws the dashboard and
// feeds it key presses and ticks. The package is structured so the Model type
// focuses on message orchestration, while every decision about what a key
// does lives in internal/handlers and every piece of data lives in
// internal/state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses take the application lock and go to handlers.HandleEvents,
//     except ctrl+c, which always quits, and q, which quits unless a text box
//     owns the keyboard.
//   - A tick message takes the lock, runs App.OnTick and schedules the next
//     tick. OnTick is where requests are queued for the worker pool.
//   - The worker applies results through the dispatcher before publishing an
//     event. Update waits on those events only to trigger a redraw.
//
// Rendering:
//   - View draws the server tabs, the main tabs, the error line, the body of
//     the current route and the context clue footer (internal/ui/view.go).
//   - Tables share one generic renderer (internal/ui/tables.go); prompts,
//     forms and detail popups are drawn as boxes overlaid on the table they
//     were opened from (prompt.go, forms.go, preview.go).
//
// The only state View writes is the marquee offset of the error line, which
// advances on scroll ticks.
package ui
