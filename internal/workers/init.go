package workers

import (
	"context"
	"sync"
	"time"
)

type WorkersContainer struct {
	RenderQueues []*RenderQueue
	Scheduler    *RefreshScheduler

	wg sync.WaitGroup
}

// InitWorkers starts the render queues and, when interval > 0, the refresh scheduler
func InitWorkers(ctx context.Context, refresher Refresher, interval time.Duration, queues ...*RenderQueue) *WorkersContainer {
	wc := &WorkersContainer{
		RenderQueues: queues,
		Scheduler:    NewRefreshScheduler(refresher, interval),
	}

	for _, q := range queues {
		wc.wg.Add(1)
		go func(q *RenderQueue) {
			defer wc.wg.Done()
			q.Start(ctx)
		}(q)
	}

	wc.wg.Add(1)
	go func() {
		defer wc.wg.Done()
		wc.Scheduler.Start(ctx)
	}()

	return wc
}

// Wait blocks until every worker has returned. Cancel the context first.
func (wc *WorkersContainer) Wait() {
	wc.wg.Wait()
}
