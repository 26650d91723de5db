package workers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"schiphol-live/flightboard/internal/models/entities"
)

type recordingSink struct {
	mu    sync.Mutex
	shown []string
	delay time.Duration
}

func (s *recordingSink) Show(_ context.Context, rec entities.FlightRecord) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	s.shown = append(s.shown, rec.Identifier)
	s.mu.Unlock()
}

func (s *recordingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.shown...)
}

func TestRenderQueue_RenderNeverBlocks(t *testing.T) {
	q := NewRenderQueue("departures", &recordingSink{})

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			q.Render(entities.FlightRecord{Identifier: fmt.Sprintf("KL%d", i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Render blocked without a running worker")
	}
	if q.Pending() != 1000 {
		t.Errorf("Expected 1000 pending, got %d", q.Pending())
	}
}

func TestRenderQueue_DeliversInOrder(t *testing.T) {
	sink := &recordingSink{delay: time.Millisecond}
	q := NewRenderQueue("arrivals", sink)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		q.Start(ctx)
		close(stopped)
	}()

	var want []string
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("KL%d", i)
		want = append(want, id)
		q.Render(entities.FlightRecord{Identifier: id})
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(sink.snapshot()) < len(want) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-stopped

	got := sink.snapshot()
	if len(got) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Order mismatch at %d: want %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRenderQueue_FlushesOnShutdown(t *testing.T) {
	sink := &recordingSink{}
	q := NewRenderQueue("departures", sink)

	q.Render(entities.FlightRecord{Identifier: "KL1"})
	q.Render(entities.FlightRecord{Identifier: "KL2"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q.Start(ctx)

	if got := sink.snapshot(); len(got) != 2 {
		t.Errorf("Expected backlog flushed on shutdown, got %v", got)
	}
}
