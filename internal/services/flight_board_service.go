package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"schiphol-live/flightboard/internal/constants"
	"schiphol-live/flightboard/internal/logging"
	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/models/entities"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BoardConfig wires one direction's board
type BoardConfig struct {
	Direction entities.Direction
	Fetcher   *PagedFetcher
	Renderer  Renderer
	View      *BoardView
}

// BoardSnapshot is a read-only copy of a board's state
type BoardSnapshot struct {
	Direction   entities.Direction
	Records     []entities.FlightRecord
	Rows        []dtos.BoardRow
	LastCycle   *entities.CycleSummary
	LastRefresh *time.Time
	LastError   string
}

// flightBoard runs at most one fetch cycle at a time. A new refresh cancels
// the running cycle and starts only after it has returned.
type flightBoard struct {
	direction  entities.Direction
	aggregator *FlightAggregator
	fetcher    *PagedFetcher
	renderer   Renderer
	view       *BoardView

	mu          sync.Mutex
	cancel      context.CancelFunc
	done        chan struct{}
	lastCycle   *entities.CycleSummary
	lastRefresh *time.Time
	lastError   string
}

func (b *flightBoard) refresh(ctx context.Context, cycleID string) (entities.CycleSummary, error) {
	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
	}
	prev := b.done
	cycleCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	b.cancel = cancel
	b.done = done
	b.mu.Unlock()

	defer close(done)
	defer cancel()

	if prev != nil {
		<-prev
	}

	summary, err := b.fetcher.RunCycle(cycleCtx, cycleID, b.aggregator, b.renderer)

	b.mu.Lock()
	finished := time.Now()
	b.lastCycle = &summary
	b.lastRefresh = &finished
	b.lastError = ""
	if err != nil {
		b.lastError = err.Error()
	}
	if b.done == done {
		b.cancel = nil
		b.done = nil
	}
	b.mu.Unlock()

	return summary, err
}

func (b *flightBoard) snapshot() BoardSnapshot {
	b.mu.Lock()
	snap := BoardSnapshot{
		Direction:   b.direction,
		LastCycle:   b.lastCycle,
		LastRefresh: b.lastRefresh,
		LastError:   b.lastError,
	}
	b.mu.Unlock()

	snap.Records = b.aggregator.Records()
	if b.view != nil {
		snap.Rows = b.view.Rows()
	}
	return snap
}

// FlightBoardService owns the departures and arrivals boards
type FlightBoardService struct {
	boards map[entities.Direction]*flightBoard
	order  []entities.Direction

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup
}

func NewFlightBoardService(configs ...BoardConfig) *FlightBoardService {
	ctx, stop := context.WithCancel(context.Background())
	s := &FlightBoardService{
		boards: make(map[entities.Direction]*flightBoard, len(configs)),
		ctx:    ctx,
		stop:   stop,
	}
	for _, cfg := range configs {
		s.boards[cfg.Direction] = &flightBoard{
			direction:  cfg.Direction,
			aggregator: NewFlightAggregator(),
			fetcher:    cfg.Fetcher,
			renderer:   cfg.Renderer,
			view:       cfg.View,
		}
		s.order = append(s.order, cfg.Direction)
	}
	return s
}

// ParseDirection accepts board names and API direction codes
func ParseDirection(value string) (entities.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(constants.BoardPathDepartures), "departure", "d":
		return entities.Departing, nil
	case string(constants.BoardPathArrivals), "arrival", "a":
		return entities.Arriving, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, value)
	}
}

func (s *FlightBoardService) Directions() []entities.Direction {
	return append([]entities.Direction(nil), s.order...)
}

func (s *FlightBoardService) board(direction entities.Direction) (*flightBoard, error) {
	b, ok := s.boards[direction]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, direction)
	}
	return b, nil
}

// Refresh runs a cycle for one board and blocks until it is done
func (s *FlightBoardService) Refresh(ctx context.Context, direction entities.Direction) (entities.CycleSummary, error) {
	b, err := s.board(direction)
	if err != nil {
		return entities.CycleSummary{}, err
	}
	return b.refresh(ctx, uuid.NewString())
}

// TriggerRefresh starts a cycle in the background and returns its id
func (s *FlightBoardService) TriggerRefresh(direction entities.Direction) (string, error) {
	b, err := s.board(direction)
	if err != nil {
		return "", err
	}
	if s.ctx.Err() != nil {
		return "", s.ctx.Err()
	}

	cycleID := uuid.NewString()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if _, err := b.refresh(s.ctx, cycleID); err != nil && !errors.Is(err, context.Canceled) {
			logging.Warn("Background refresh failed", "cycle_id", cycleID, "board", direction.String(), "error", err.Error())
		}
	}()
	return cycleID, nil
}

// RefreshAll refreshes every board concurrently. A failing board does not
// cancel the others.
func (s *FlightBoardService) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	for _, dir := range s.order {
		b := s.boards[dir]
		g.Go(func() error {
			_, err := b.refresh(ctx, uuid.NewString())
			if err != nil {
				return fmt.Errorf("%s: %w", b.direction.String(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Board returns a snapshot of one board
func (s *FlightBoardService) Board(direction entities.Direction) (BoardSnapshot, error) {
	b, err := s.board(direction)
	if err != nil {
		return BoardSnapshot{}, err
	}
	return b.snapshot(), nil
}

// Health summarises every board
func (s *FlightBoardService) Health() map[string]entities.BoardHealth {
	out := make(map[string]entities.BoardHealth, len(s.boards))
	for _, dir := range s.order {
		snap := s.boards[dir].snapshot()
		out[dir.String()] = entities.BoardHealth{
			Flights:     len(snap.Records),
			LastRefresh: snap.LastRefresh,
			LastError:   snap.LastError,
		}
	}
	return out
}

// Close cancels running cycles and waits for background refreshes
func (s *FlightBoardService) Close() {
	s.stop()
	s.wg.Wait()
}
