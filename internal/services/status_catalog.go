package services

import (
	"fmt"

	"schiphol-live/flightboard/internal/models/entities"
)

type statusEntry struct {
	text      string
	sentiment entities.Sentiment
}

// Public flight states per direction. SCH and CNX exist in both tables; codes
// are only ever looked up in the table of the flight's own direction.
var (
	departingStatuses = map[string]statusEntry{
		"SCH": {"Scheduled", entities.Neutral},
		"DEL": {"Delayed", entities.Negative},
		"WIL": {"Wait in lounge", entities.Neutral},
		"GTO": {"Gate open", entities.Positive},
		"BRD": {"Boarding", entities.Positive},
		"GCL": {"Gate closing", entities.Negative},
		"GTD": {"Gate closed", entities.Negative},
		"DEP": {"Departed", entities.Positive},
		"CNX": {"Cancelled", entities.Negative},
		"GCH": {"Gate change", entities.Negative},
		"TOM": {"Tomorrow", entities.Neutral},
	}

	arrivingStatuses = map[string]statusEntry{
		"SCH": {"Scheduled", entities.Neutral},
		"AIR": {"Airborne", entities.Neutral},
		"EXP": {"Expected landing", entities.Neutral},
		"FIR": {"In Dutch airspace", entities.Neutral},
		"LND": {"Landed", entities.Positive},
		"FIB": {"First bag on belt", entities.Positive},
		"ARR": {"Arrived", entities.Positive},
		"DIV": {"Diverted", entities.Negative},
		"CNX": {"Cancelled", entities.Negative},
		"TOM": {"Tomorrow", entities.Neutral},
	}
)

// Classify turns a raw status code into display text and sentiment
func Classify(direction entities.Direction, code string) (entities.FlightStatus, error) {
	var table map[string]statusEntry
	switch direction {
	case entities.Departing:
		table = departingStatuses
	case entities.Arriving:
		table = arrivingStatuses
	default:
		return entities.FlightStatus{}, fmt.Errorf("%w: %q", ErrUnknownDirection, string(direction))
	}

	entry, ok := table[code]
	if !ok {
		return entities.FlightStatus{}, fmt.Errorf("%w: %q for direction %s", ErrUnknownStatusCode, code, string(direction))
	}

	return entities.FlightStatus{
		Code:      code,
		Text:      entry.text,
		Sentiment: entry.sentiment,
	}, nil
}
