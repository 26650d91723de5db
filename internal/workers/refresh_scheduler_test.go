package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) RefreshAll(ctx context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestRefreshScheduler_RunsImmediatelyAndOnInterval(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("upstream down")}
	s := NewRefreshScheduler(refresher, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(stopped)
	}()

	deadline := time.Now().Add(time.Second)
	for refresher.calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Scheduler did not stop after cancel")
	}
	if refresher.calls.Load() < 3 {
		t.Errorf("Expected at least 3 refreshes, got %d", refresher.calls.Load())
	}
}

func TestRefreshScheduler_Disabled(t *testing.T) {
	refresher := &countingRefresher{}
	s := NewRefreshScheduler(refresher, 0)

	s.Start(context.Background())

	if refresher.calls.Load() != 0 {
		t.Errorf("Expected no refresh when disabled, got %d", refresher.calls.Load())
	}
}
