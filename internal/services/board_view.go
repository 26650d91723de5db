package services

import (
	"context"
	"strings"
	"sync"

	"schiphol-live/flightboard/internal/constants"
	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/models/entities"
)

// CityResolver turns an airport code into a display name
type CityResolver interface {
	CityName(ctx context.Context, iata string) string
}

// BoardView keeps the display rows of one board. It sits behind the render
// queue, so destination lookups never slow the fetch loop down.
type BoardView struct {
	direction entities.Direction
	cities    CityResolver

	mu    sync.RWMutex
	rows  map[string]dtos.BoardRow
	order []string
}

func NewBoardView(direction entities.Direction, cities CityResolver) *BoardView {
	return &BoardView{
		direction: direction,
		cities:    cities,
		rows:      make(map[string]dtos.BoardRow),
	}
}

func (v *BoardView) Direction() entities.Direction {
	return v.direction
}

// Show inserts or replaces the row for a record
func (v *BoardView) Show(ctx context.Context, record entities.FlightRecord) {
	row := dtos.BoardRow{
		Flight:        record.Identifier,
		Codeshares:    record.Codeshares,
		ScheduledDate: record.ScheduledDate,
		ScheduledTime: record.ScheduledTime,
		Route:         v.routeDisplay(ctx, record.Route),
		RouteCodes:    record.Route,
		Gate:          record.Gate,
		Terminal:      record.Terminal,
		Statuses:      record.Statuses,
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if _, exists := v.rows[row.Flight]; !exists {
		v.order = append(v.order, row.Flight)
	}
	v.rows[row.Flight] = row
}

// Rows returns a snapshot in the order flights were first shown
func (v *BoardView) Rows() []dtos.BoardRow {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]dtos.BoardRow, 0, len(v.order))
	for _, id := range v.order {
		out = append(out, v.rows[id])
	}
	return out
}

func (v *BoardView) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.rows)
}

func (v *BoardView) routeDisplay(ctx context.Context, codes []string) string {
	if v.cities == nil {
		return strings.Join(codes, constants.RouteSeparator)
	}
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, v.cities.CityName(ctx, code))
	}
	return strings.Join(names, constants.RouteSeparator)
}
