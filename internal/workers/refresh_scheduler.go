package workers

import (
	"context"
	"time"

	"schiphol-live/flightboard/internal/logging"
)

// Refresher refreshes every board
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

// RefreshScheduler refreshes the boards on a fixed interval
type RefreshScheduler struct {
	refresher Refresher
	interval  time.Duration
}

func NewRefreshScheduler(refresher Refresher, interval time.Duration) *RefreshScheduler {
	return &RefreshScheduler{
		refresher: refresher,
		interval:  interval,
	}
}

// Start runs a refresh immediately, then once per interval until ctx is done.
// A non-positive interval disables the scheduler.
func (s *RefreshScheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		logging.Info("Refresh scheduler disabled")
		return
	}
	logging.Info("Refresh scheduler started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			logging.Info("Refresh scheduler shutting down")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *RefreshScheduler) tick(ctx context.Context) {
	if err := s.refresher.RefreshAll(ctx); err != nil && ctx.Err() == nil {
		logging.Warn("Scheduled refresh failed", "error", err.Error())
	}
}
