package events

import "github.com/atomicstack/servarr-dash/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]any) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Switch(backend string) {
	logging.Trace("app.backend.switch", map[string]any{"backend": backend})
}
