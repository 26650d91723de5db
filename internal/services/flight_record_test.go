package services

import (
	"errors"
	"testing"
	"time"

	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/models/entities"
)

func rawFlight(name string) dtos.RawFlight {
	return dtos.RawFlight{
		FlightName:        name,
		MainFlight:        name,
		FlightDirection:   "D",
		ServiceType:       "J",
		ScheduleDate:      "2024-05-01",
		ScheduleTime:      "10:15:00",
		Gate:              "D7",
		Terminal:          2,
		Route:             dtos.Route{Destinations: []string{"JFK", "BOS"}},
		PublicFlightState: dtos.FlightStates{FlightStates: []string{"BRD", "DEL"}},
	}
}

func TestNewFlightRecord_Success(t *testing.T) {
	raw := rawFlight("KL641")
	raw.Codeshares = &dtos.Codeshares{Codeshares: []string{"DL9375", "AF8230"}}

	rec, err := NewFlightRecord(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Identifier != "KL641" || rec.MainIdentifier != "KL641" {
		t.Errorf("Unexpected identifiers %s / %s", rec.Identifier, rec.MainIdentifier)
	}
	if rec.Direction != entities.Departing {
		t.Errorf("Expected Departing, got %s", rec.Direction)
	}
	if rec.ScheduledTime != "10:15" {
		t.Errorf("Expected 10:15, got %s", rec.ScheduledTime)
	}
	if rec.RouteDisplay() != "JFK, BOS" {
		t.Errorf("Expected route order preserved, got %q", rec.RouteDisplay())
	}
	if len(rec.Statuses) != 2 || rec.Statuses[0].Text != "Boarding" || rec.Statuses[1].Text != "Delayed" {
		t.Errorf("Expected statuses in API order, got %+v", rec.Statuses)
	}
	if rec.PrimaryStatus().Sentiment != entities.Positive {
		t.Errorf("Expected positive primary status, got %s", rec.PrimaryStatus().Sentiment)
	}
	if len(rec.Codeshares) != 2 {
		t.Errorf("Expected 2 codeshares, got %v", rec.Codeshares)
	}
	if rec.Gate != "D7" || rec.Terminal != 2 {
		t.Errorf("Unexpected gate/terminal %s/%d", rec.Gate, rec.Terminal)
	}
}

func TestNewFlightRecord_MissingGate(t *testing.T) {
	raw := rawFlight("KL1")
	raw.Gate = ""

	rec, err := NewFlightRecord(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Gate != "" {
		t.Errorf("Expected empty gate, got %q", rec.Gate)
	}
}

func TestNewFlightRecord_DoesNotAliasRoute(t *testing.T) {
	raw := rawFlight("KL1")

	rec, err := NewFlightRecord(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	raw.Route.Destinations[0] = "XXX"
	if rec.Route[0] != "JFK" {
		t.Errorf("Record route changed with payload: %v", rec.Route)
	}
}

func TestNewFlightRecord_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dtos.RawFlight)
		wantErr error
	}{
		{"bad time", func(r *dtos.RawFlight) { r.ScheduleTime = "quarter past" }, ErrInvalidTimeFormat},
		{"bad date", func(r *dtos.RawFlight) { r.ScheduleDate = "01-05-2024" }, ErrInvalidDateFormat},
		{"unknown status", func(r *dtos.RawFlight) { r.PublicFlightState.FlightStates = []string{"SCH", "ZZZ"} }, ErrUnknownStatusCode},
		{"arrival code on departure", func(r *dtos.RawFlight) { r.PublicFlightState.FlightStates = []string{"LND"} }, ErrUnknownStatusCode},
		{"no status", func(r *dtos.RawFlight) { r.PublicFlightState.FlightStates = nil }, ErrMissingStatus},
		{"bad direction", func(r *dtos.RawFlight) { r.FlightDirection = "X" }, ErrUnknownDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawFlight("KL1")
			tt.mutate(&raw)
			_, err := NewFlightRecord(raw)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNormalizeScheduleTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"9:5", "09:05", false},
		{"09:05", "09:05", false},
		{"23:59:59", "23:59", false},
		{"7:30:00", "07:30", false},
		{"00:00", "00:00", false},
		{"24:00", "", true},
		{"12:60", "", true},
		{"12:30:60", "", true},
		{"12", "", true},
		{"12:30:00:00", "", true},
		{"", "", true},
		{"ab:cd", "", true},
		{"+1:05", "", true},
		{"123:05", "", true},
		{"12::", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeScheduleTime(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidTimeFormat) {
				t.Errorf("NormalizeScheduleTime(%q) expected ErrInvalidTimeFormat, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeScheduleTime(%q) unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeScheduleTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScheduledAt(t *testing.T) {
	raw := rawFlight("KL1")
	raw.ScheduleTime = "9:5"

	got, err := scheduledAt(raw, time.UTC)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %s, got %s", want, got)
	}

	raw.ScheduleDate = ""
	if _, err := scheduledAt(raw, time.UTC); err == nil {
		t.Error("Expected error for missing date")
	}
}
