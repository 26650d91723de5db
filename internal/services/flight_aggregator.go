package services

import (
	"sync"

	"schiphol-live/flightboard/internal/constants"
	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/models/entities"
)

// OutcomeKind tells what Ingest did with a payload
type OutcomeKind int

const (
	OutcomeAccepted OutcomeKind = iota
	OutcomeRejectedCodeshare
	OutcomeRejectedServiceType
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAccepted:
		return string(constants.IngestAccepted)
	case OutcomeRejectedCodeshare:
		return string(constants.IngestRejectedCodeshare)
	case OutcomeRejectedServiceType:
		return string(constants.IngestRejectedServiceType)
	default:
		return "unknown"
	}
}

// IngestOutcome is the result of one Ingest call. Record is set only when accepted.
type IngestOutcome struct {
	Kind   OutcomeKind
	Record *entities.FlightRecord
}

// FlightAggregator keeps one record per flight number, in first-seen order
type FlightAggregator struct {
	mu      sync.RWMutex
	records map[string]entities.FlightRecord
	order   []string
}

func NewFlightAggregator() *FlightAggregator {
	return &FlightAggregator{
		records: make(map[string]entities.FlightRecord),
	}
}

// Ingest filters codeshares and freight, then inserts or replaces the record.
// A record error leaves the aggregator untouched.
func (a *FlightAggregator) Ingest(raw dtos.RawFlight) (IngestOutcome, error) {
	if raw.MainFlight != raw.FlightName {
		return IngestOutcome{Kind: OutcomeRejectedCodeshare}, nil
	}
	if !entities.ServiceType(raw.ServiceType).IsPassenger() {
		return IngestOutcome{Kind: OutcomeRejectedServiceType}, nil
	}

	record, err := NewFlightRecord(raw)
	if err != nil {
		return IngestOutcome{}, err
	}

	a.mu.Lock()
	if _, exists := a.records[record.Identifier]; !exists {
		a.order = append(a.order, record.Identifier)
	}
	a.records[record.Identifier] = record
	a.mu.Unlock()

	return IngestOutcome{Kind: OutcomeAccepted, Record: &record}, nil
}

// Get returns the record for a flight number
func (a *FlightAggregator) Get(identifier string) (entities.FlightRecord, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rec, ok := a.records[identifier]
	return rec, ok
}

// Records returns a snapshot in insertion order
func (a *FlightAggregator) Records() []entities.FlightRecord {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]entities.FlightRecord, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.records[id])
	}
	return out
}

func (a *FlightAggregator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.records)
}
