package services

import (
	"context"
	"testing"

	"schiphol-live/flightboard/internal/models/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCities map[string]string

func (s staticCities) CityName(_ context.Context, iata string) string {
	if name, ok := s[iata]; ok {
		return name
	}
	return iata
}

func TestBoardView_ShowResolvesCities(t *testing.T) {
	view := NewBoardView(entities.Departing, staticCities{"BOS": "Boston", "JFK": "New York"})

	view.Show(context.Background(), entities.FlightRecord{
		Identifier:    "KL6001",
		ScheduledDate: "2024-05-01",
		ScheduledTime: "09:45",
		Route:         []string{"BOS", "XYZ", "JFK"},
		Gate:          "D7",
		Terminal:      2,
		Codeshares:    []string{"DL9371"},
		Statuses:      []entities.FlightStatus{{Code: "BRD", Text: "Boarding", Sentiment: entities.Positive}},
	})

	rows := view.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Boston, XYZ, New York", rows[0].Route)
	assert.Equal(t, []string{"BOS", "XYZ", "JFK"}, rows[0].RouteCodes)
	assert.Equal(t, "D7", rows[0].Gate)
	assert.Equal(t, 2, rows[0].Terminal)
	assert.Equal(t, []string{"DL9371"}, rows[0].Codeshares)
}

func TestBoardView_ReplacesInPlace(t *testing.T) {
	view := NewBoardView(entities.Arriving, nil)
	ctx := context.Background()

	view.Show(ctx, entities.FlightRecord{Identifier: "KL1", Gate: "B1", Route: []string{"LHR"}})
	view.Show(ctx, entities.FlightRecord{Identifier: "KL2", Route: []string{"CDG"}})
	view.Show(ctx, entities.FlightRecord{Identifier: "KL1", Gate: "B9", Route: []string{"LHR"}})

	rows := view.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "KL1", rows[0].Flight)
	assert.Equal(t, "B9", rows[0].Gate)
	assert.Equal(t, "LHR", rows[0].Route)
	assert.Equal(t, "KL2", rows[1].Flight)
	assert.Equal(t, 2, view.Len())
}
