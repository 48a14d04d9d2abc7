// Package backend drains the outbound request channel. A fixed pool of
// goroutines performs each request, hands the outcome to a sink, and then
// publishes it so the UI can redraw.
//
// Reads run concurrently. A mutation waits for every request dequeued
// before it and holds back every request dequeued after it, so a refresh
// queued behind a delete always observes the delete.
package backend

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/servarr-dash/internal/logging"
	"github.com/atomicstack/servarr-dash/internal/logging/events"
	"github.com/atomicstack/servarr-dash/internal/network"
)

// DefaultWorkers is the pool size when Options.Workers is unset.
const DefaultWorkers = 2

// Doer performs one request.
type Doer interface {
	Do(ctx context.Context, req network.Request) (any, error)
}

// Event is the outcome of one request.
type Event struct {
	Request network.Request
	Data    any
	Err     error
	Elapsed time.Duration
}

// Sink receives every event before it is published. It runs on the worker
// goroutine that performed the request.
type Sink func(Event)

// Options tunes the pool.
type Options struct {
	Workers  int
	Throttle time.Duration
}

// Worker consumes requests until stopped or the request channel closes.
type Worker struct {
	requests <-chan network.Request
	doer     Doer
	sink     Sink
	workers  int
	throttle *throttle

	// dequeue makes receiving a request and taking its slot in order one
	// step; order is held shared by reads and exclusively by mutations.
	dequeue sync.Mutex
	order   sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	once   sync.Once
	done   chan struct{}
	err    error
}

// NewWorker creates a worker. Call Start to launch the pool, or Flush to
// perform queued requests on the calling goroutine.
func NewWorker(requests <-chan network.Request, doer Doer, sink Sink, opts Options) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Worker{
		requests: requests,
		doer:     doer,
		sink:     sink,
		workers:  workers,
		throttle: newThrottle(opts.Throttle),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
}

// Events returns a channel of request outcomes. It is closed once every pool
// goroutine has exited.
func (w *Worker) Events() <-chan Event {
	return w.events
}

// Start launches the pool. Later calls do nothing.
func (w *Worker) Start() {
	w.once.Do(func() {
		g, ctx := errgroup.WithContext(w.ctx)
		for i := 0; i < w.workers; i++ {
			g.Go(func() error {
				return w.loop(ctx)
			})
		}
		go func() {
			w.err = g.Wait()
			close(w.events)
			close(w.done)
		}()
	})
}

// Stop cancels the pool. Requests in flight finish against a cancelled
// context; use Wait if a clean drain is required.
func (w *Worker) Stop() {
	w.cancel()
}

// Wait blocks until every pool goroutine has exited and the events channel
// is closed.
func (w *Worker) Wait() error {
	<-w.done
	return w.err
}

func (w *Worker) loop(ctx context.Context) error {
	for {
		req, release, ok := w.next(ctx)
		if !ok {
			return nil
		}
		evt := w.perform(ctx, req)
		release()
		select {
		case <-ctx.Done():
			return nil
		case w.events <- evt:
		}
	}
}

// next receives a request and takes its place in the mutation order. The
// returned release must be called once the request's sink has run.
func (w *Worker) next(ctx context.Context) (network.Request, func(), bool) {
	w.dequeue.Lock()
	defer w.dequeue.Unlock()
	select {
	case <-ctx.Done():
		return network.Request{}, nil, false
	case req, ok := <-w.requests:
		if !ok {
			return network.Request{}, nil, false
		}
		if req.Op.IsMutation() {
			w.order.Lock()
			return req, w.order.Unlock, true
		}
		w.order.RLock()
		return req, w.order.RUnlock, true
	}
}

// Flush performs every request already queued on the calling goroutine and
// returns the outcomes in order. Sink still runs for each one. Used by the
// one-shot commands, which never start the pool.
func (w *Worker) Flush(ctx context.Context) []Event {
	var out []Event
	for {
		select {
		case req, ok := <-w.requests:
			if !ok {
				return out
			}
			out = append(out, w.perform(ctx, req))
		default:
			return out
		}
	}
}

func (w *Worker) perform(ctx context.Context, req network.Request) Event {
	start := time.Now()
	evt := Event{Request: req}
	if err := w.throttle.wait(ctx); err != nil {
		evt.Err = err
	} else {
		evt.Data, evt.Err = w.doer.Do(ctx, req)
	}
	evt.Elapsed = time.Since(start)

	events.Network.Result(req.ID.String(), req.String(), evt.Elapsed, evt.Err)
	if evt.Err != nil {
		logging.Logger().Warn("request failed", "request", req.String(), "err", evt.Err)
	} else {
		logging.Logger().Debug("request done", "request", req.String(), "elapsed", evt.Elapsed)
	}
	if w.sink != nil {
		w.sink(evt)
	}
	return evt
}
