package workers

import (
	"context"
	"sync"

	"schiphol-live/flightboard/internal/logging"
	"schiphol-live/flightboard/internal/models/entities"
)

// RowSink consumes rendered records, e.g. a board view
type RowSink interface {
	Show(ctx context.Context, record entities.FlightRecord)
}

// RenderQueue decouples the fetch loop from rendering. Render only appends to
// an in-memory backlog; a worker goroutine feeds the sink in arrival order.
// Nothing is dropped.
type RenderQueue struct {
	name   string
	sink   RowSink
	mu     sync.Mutex
	queue  []entities.FlightRecord
	notify chan struct{}
}

func NewRenderQueue(name string, sink RowSink) *RenderQueue {
	return &RenderQueue{
		name:   name,
		sink:   sink,
		notify: make(chan struct{}, 1),
	}
}

// Render enqueues a record and returns immediately
func (q *RenderQueue) Render(record entities.FlightRecord) {
	q.mu.Lock()
	q.queue = append(q.queue, record)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Pending is the number of records waiting for the worker
func (q *RenderQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}

// Start runs the worker until ctx is cancelled, then flushes what is left
func (q *RenderQueue) Start(ctx context.Context) {
	logging.Info("Render queue started", "board", q.name)
	for {
		select {
		case <-ctx.Done():
			q.drain(context.WithoutCancel(ctx))
			logging.Info("Render queue stopped", "board", q.name)
			return
		case <-q.notify:
			q.drain(ctx)
		}
	}
}

func (q *RenderQueue) drain(ctx context.Context) {
	for {
		q.mu.Lock()
		batch := q.queue
		q.queue = nil
		q.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, rec := range batch {
			q.sink.Show(ctx, rec)
		}
	}
}
