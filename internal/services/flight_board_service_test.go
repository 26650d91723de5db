package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/models/entities"
	"schiphol-live/flightboard/internal/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoardService(source providers.FlightSource, dirs ...entities.Direction) *FlightBoardService {
	configs := make([]BoardConfig, 0, len(dirs))
	for _, dir := range dirs {
		configs = append(configs, BoardConfig{
			Direction: dir,
			Fetcher:   NewPagedFetcher(source, dir, testFetcherOptions(5), nil),
			View:      NewBoardView(dir, nil),
			Renderer:  nil,
		})
	}
	return NewFlightBoardService(configs...)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    entities.Direction
		wantErr bool
	}{
		{"departures", entities.Departing, false},
		{"Arrivals", entities.Arriving, false},
		{"D", entities.Departing, false},
		{"a", entities.Arriving, false},
		{"transfers", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownDirection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlightBoardService_RefreshStoresLastCycle(t *testing.T) {
	source := pagedSource([]dtos.RawFlight{flightAt("KL1", "09:40"), flightAt("KL2", "12:00")})
	svc := newTestBoardService(source, entities.Departing)
	defer svc.Close()

	summary, err := svc.Refresh(context.Background(), entities.Departing)
	require.NoError(t, err)

	snap, err := svc.Board(entities.Departing)
	require.NoError(t, err)
	require.NotNil(t, snap.LastCycle)
	assert.Equal(t, summary.ID, snap.LastCycle.ID)
	assert.Len(t, snap.Records, 2)
	assert.Empty(t, snap.LastError)
	assert.NotNil(t, snap.LastRefresh)
}

func TestFlightBoardService_UnknownBoard(t *testing.T) {
	svc := newTestBoardService(pagedSource(), entities.Departing)
	defer svc.Close()

	_, err := svc.Board(entities.Arriving)
	assert.ErrorIs(t, err, ErrBoardNotFound)

	_, err = svc.TriggerRefresh(entities.Arriving)
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestFlightBoardService_RefreshCancelsRunningCycle(t *testing.T) {
	var calls, active, maxActive atomic.Int32
	started := make(chan struct{})

	source := &mockFlightSource{
		fetchFunc: func(ctx context.Context, query providers.FlightQuery) (*dtos.FlightsPage, error) {
			n := active.Add(1)
			defer active.Add(-1)
			for {
				m := maxActive.Load()
				if n <= m || maxActive.CompareAndSwap(m, n) {
					break
				}
			}

			if calls.Add(1) == 1 {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return &dtos.FlightsPage{Flights: []dtos.RawFlight{flightAt("KL1", "12:00")}}, nil
		},
	}
	svc := newTestBoardService(source, entities.Departing)
	defer svc.Close()

	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Refresh(context.Background(), entities.Departing)
		firstErr <- err
	}()
	<-started

	summary, err := svc.Refresh(context.Background(), entities.Departing)
	require.NoError(t, err)

	err = <-firstErr
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), maxActive.Load(), "cycles must not overlap")

	snap, err := svc.Board(entities.Departing)
	require.NoError(t, err)
	assert.Equal(t, summary.ID, snap.LastCycle.ID)
	assert.Len(t, snap.Records, 1)
}

func TestFlightBoardService_TriggerRefresh(t *testing.T) {
	source := pagedSource([]dtos.RawFlight{flightAt("KL1", "12:00")})
	svc := newTestBoardService(source, entities.Arriving)
	defer svc.Close()

	id, err := svc.TriggerRefresh(entities.Arriving)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Eventually(t, func() bool {
		snap, _ := svc.Board(entities.Arriving)
		return snap.LastCycle != nil && snap.LastCycle.ID == id
	}, time.Second, 5*time.Millisecond)
}

func TestFlightBoardService_TriggerAfterClose(t *testing.T) {
	svc := newTestBoardService(pagedSource(), entities.Departing)
	svc.Close()

	_, err := svc.TriggerRefresh(entities.Departing)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFlightBoardService_RefreshAll(t *testing.T) {
	outage := errors.New("service unavailable")
	source := &mockFlightSource{
		fetchFunc: func(ctx context.Context, query providers.FlightQuery) (*dtos.FlightsPage, error) {
			if query.Direction == entities.Arriving {
				return nil, outage
			}
			return &dtos.FlightsPage{Flights: []dtos.RawFlight{flightAt("KL1", "12:00")}}, nil
		},
	}
	svc := newTestBoardService(source, entities.Departing, entities.Arriving)
	defer svc.Close()

	err := svc.RefreshAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, outage)

	health := svc.Health()
	require.Contains(t, health, "departures")
	require.Contains(t, health, "arrivals")
	assert.Equal(t, 1, health["departures"].Flights)
	assert.Empty(t, health["departures"].LastError)
	assert.NotEmpty(t, health["arrivals"].LastError)
}
