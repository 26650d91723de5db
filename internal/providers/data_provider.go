package providers

import (
	"context"
	"fmt"
	"time"

	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/models/entities"
)

// FlightSource is the remote, paginated flight query
type FlightSource interface {
	// FetchFlights fetches one page of flights scheduled from query.Since onwards
	FetchFlights(ctx context.Context, query FlightQuery) (*dtos.FlightsPage, error)
}

// DestinationSource resolves an airport code to its city and country
type DestinationSource interface {
	FetchDestination(ctx context.Context, iata string) (*dtos.Destination, error)
}

// FlightQuery defines one page request
type FlightQuery struct {
	Direction     entities.Direction
	Since         time.Time // local airport time
	Page          int       // zero based
	Sort          string
	IncludeDelays bool
}

// ProviderError represents a provider-specific error
type ProviderError struct {
	Code       string
	Message    string
	Details    string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
