package events

import (
	"time"

	"github.com/atomicstack/servarr-dash/internal/logging"
)

type NetworkTracer struct{}

var Network = NetworkTracer{}

func (NetworkTracer) Queue(id, request string, depth int) {
	logging.Trace("network.queue", map[string]any{"id": id, "request": request, "depth": depth})
}

func (NetworkTracer) Drop(id, request string) {
	logging.Trace("network.drop", map[string]any{"id": id, "request": request})
}

func (NetworkTracer) Result(id, request string, elapsed time.Duration, err error) {
	payload := map[string]any{"id": id, "request": request, "elapsed_ms": elapsed.Milliseconds()}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("network.result", payload)
}
