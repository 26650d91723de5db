package services

import (
	"context"
	"fmt"
	"time"

	"schiphol-live/flightboard/internal/constants"
	"schiphol-live/flightboard/internal/logging"
	"schiphol-live/flightboard/internal/metrics"
	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/models/entities"
	"schiphol-live/flightboard/internal/providers"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Renderer receives accepted records in ingestion order. Render must not block.
type Renderer interface {
	Render(record entities.FlightRecord)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(record entities.FlightRecord)

func (f RendererFunc) Render(record entities.FlightRecord) { f(record) }

// FetcherOptions are fixed at construction; every cycle derives its window from them
type FetcherOptions struct {
	Lookback      time.Duration
	WindowLength  time.Duration
	MaxPages      int
	Location      *time.Location
	IncludeDelays bool
	Now           func() time.Time
}

// PagedFetcher walks the paginated flights endpoint for one direction
type PagedFetcher struct {
	source    providers.FlightSource
	direction entities.Direction
	opts      FetcherOptions
	metrics   *metrics.MetricsRegistry
}

func NewPagedFetcher(source providers.FlightSource, direction entities.Direction, opts FetcherOptions, m *metrics.MetricsRegistry) *PagedFetcher {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &PagedFetcher{
		source:    source,
		direction: direction,
		opts:      opts,
		metrics:   m,
	}
}

// fetchCycle is the state of one cycle; nothing carries over between cycles
type fetchCycle struct {
	summary entities.CycleSummary
	budget  int
	page    int
	log     *zap.SugaredLogger
}

// Run executes one fetch cycle with a fresh id
func (f *PagedFetcher) Run(ctx context.Context, agg *FlightAggregator, renderer Renderer) (entities.CycleSummary, error) {
	return f.RunCycle(ctx, uuid.NewString(), agg, renderer)
}

// RunCycle requests pages sequentially from a fixed window start, advancing the
// page index, until the last flight of a page reaches the window end, the page
// budget is spent, or a page comes back empty. A failed or cancelled request
// aborts the cycle with ErrFetchFailed; pages ingested before it stay.
func (f *PagedFetcher) RunCycle(ctx context.Context, cycleID string, agg *FlightAggregator, renderer Renderer) (entities.CycleSummary, error) {
	now := f.opts.Now().In(f.opts.Location)
	windowStart := now.Add(-f.opts.Lookback).Truncate(time.Minute)

	c := &fetchCycle{
		summary: entities.CycleSummary{
			ID:          cycleID,
			Direction:   f.direction,
			WindowStart: windowStart,
			WindowEnd:   windowStart.Add(f.opts.WindowLength),
			StartedAt:   now,
		},
		budget: f.opts.MaxPages,
		log:    logging.WithCycle(cycleID, f.direction.String()),
	}

	c.log.Infow("Fetch cycle started",
		"window_start", c.summary.WindowStart.Format(time.RFC3339),
		"window_end", c.summary.WindowEnd.Format(time.RFC3339),
		"max_pages", f.opts.MaxPages,
	)

	err := f.loop(ctx, c, agg, renderer)
	f.finish(c, agg, err)
	if err != nil {
		return c.summary, err
	}
	return c.summary, nil
}

func (f *PagedFetcher) loop(ctx context.Context, c *fetchCycle, agg *FlightAggregator, renderer Renderer) error {
	for {
		// page boundary: a refresh may have cancelled us
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		if c.budget <= 0 {
			c.summary.StopReason = constants.StopReasonBudgetSpent
			return nil
		}
		c.budget--

		page, err := f.source.FetchFlights(ctx, providers.FlightQuery{
			Direction:     f.direction,
			Since:         c.summary.WindowStart,
			Page:          c.page,
			Sort:          constants.SortByScheduleTime,
			IncludeDelays: f.opts.IncludeDelays,
		})
		c.summary.Requests++
		if err != nil {
			f.countRequest("error")
			return fmt.Errorf("%w: page %d: %w", ErrFetchFailed, c.page, err)
		}
		f.countRequest("ok")

		if page == nil || len(page.Flights) == 0 {
			c.summary.StopReason = constants.StopReasonEmptyPage
			return nil
		}

		f.ingestPage(c, agg, renderer, page.Flights)
		c.log.Debugw("Page ingested", "page", c.page, "flights", len(page.Flights), "last_page", page.LastPage)

		last := page.Flights[len(page.Flights)-1]
		lastAt, err := scheduledAt(last, f.opts.Location)
		if err != nil {
			c.log.Warnw("Last flight of page has no usable schedule, stopping", "flight", last.FlightName, "error", err.Error())
			c.summary.StopReason = constants.StopReasonUnparsable
			return nil
		}
		if !lastAt.Before(c.summary.WindowEnd) {
			c.summary.StopReason = constants.StopReasonWindowReached
			return nil
		}

		c.page++
	}
}

func (f *PagedFetcher) ingestPage(c *fetchCycle, agg *FlightAggregator, renderer Renderer, flights []dtos.RawFlight) {
	for _, raw := range flights {
		outcome, err := agg.Ingest(raw)
		if err != nil {
			c.summary.Skipped++
			code := recordErrorCode(err)
			c.log.Warnw("Skipping flight", "flight", raw.FlightName, "reason", code, "error", err.Error())
			f.countOutcome(string(constants.IngestSkipped))
			if f.metrics != nil {
				f.metrics.RecordErrorsTotal.WithLabelValues(string(f.direction), code).Inc()
			}
			continue
		}

		f.countOutcome(outcome.Kind.String())
		switch outcome.Kind {
		case OutcomeAccepted:
			c.summary.Accepted++
			if renderer != nil {
				renderer.Render(*outcome.Record)
			}
		case OutcomeRejectedCodeshare:
			c.summary.RejectedCodeshare++
		case OutcomeRejectedServiceType:
			c.summary.RejectedServiceType++
		}
	}
}

func (f *PagedFetcher) finish(c *fetchCycle, agg *FlightAggregator, err error) {
	c.summary.Duration = f.opts.Now().Sub(c.summary.StartedAt)
	if err != nil {
		c.summary.StopReason = constants.StopReasonFailed
		c.summary.Error = err.Error()
		c.log.Errorw("Fetch cycle failed", "requests", c.summary.Requests, "error", err.Error())
	} else {
		c.log.Infow("Fetch cycle finished",
			"requests", c.summary.Requests,
			"accepted", c.summary.Accepted,
			"rejected_codeshare", c.summary.RejectedCodeshare,
			"rejected_service_type", c.summary.RejectedServiceType,
			"skipped", c.summary.Skipped,
			"stop_reason", string(c.summary.StopReason),
		)
	}

	if f.metrics != nil {
		f.metrics.FetchCycleDuration.WithLabelValues(string(f.direction), string(c.summary.StopReason)).Observe(c.summary.Duration.Seconds())
		f.metrics.BoardSize.WithLabelValues(string(f.direction)).Set(float64(agg.Len()))
	}
}

func (f *PagedFetcher) countRequest(result string) {
	if f.metrics != nil {
		f.metrics.FetchRequestsTotal.WithLabelValues(string(f.direction), result).Inc()
	}
}

func (f *PagedFetcher) countOutcome(outcome string) {
	if f.metrics != nil {
		f.metrics.FlightsIngestedTotal.WithLabelValues(string(f.direction), outcome).Inc()
	}
}
