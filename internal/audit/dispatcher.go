package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const writeTimeout = 5 * time.Second

// Dispatcher queues events on a bounded buffer and writes them to a Sink
// from a single background worker.
type Dispatcher struct {
	sink   Sink
	events chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts the worker. Close must be called to flush and stop it.
func NewDispatcher(sink Sink, buffer int) *Dispatcher {
	d := &Dispatcher{
		sink:   sink,
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}

	go d.run()

	return d
}

// Emit enqueues e without blocking. When the buffer is full the event is
// dropped and a warning is logged.
func (d *Dispatcher) Emit(_ context.Context, e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	if e.Status == "" {
		e.Status = StatusSuccess
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		slog.Warn("audit dispatcher closed, dropping event", "action", e.Action, "entity_id", e.EntityID)
		return
	}

	select {
	case d.events <- e:
	default:
		slog.Warn("audit buffer full, dropping event", "action", e.Action, "entity_id", e.EntityID)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for e := range d.events {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.sink.Write(ctx, e); err != nil {
			slog.Error("failed to write audit event", "action", e.Action, "entity_id", e.EntityID, "error", err)
		}
		cancel()
	}
}

// Close stops accepting events and waits for queued ones to be written,
// or for ctx to expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.events)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
