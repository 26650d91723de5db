package entities

import (
	"strings"
	"time"

	"schiphol-live/flightboard/internal/constants"
)

// Direction of a flight relative to the airport
type Direction string

const (
	Departing Direction = "D"
	Arriving  Direction = "A"
)

// String returns the board name used in URLs and logs
func (d Direction) String() string {
	switch d {
	case Departing:
		return string(constants.BoardPathDepartures)
	case Arriving:
		return string(constants.BoardPathArrivals)
	default:
		return "unknown"
	}
}

// ServiceType separates passenger from freight traffic
type ServiceType string

const (
	PassengerLine    ServiceType = "J"
	PassengerCharter ServiceType = "C"
	FreightLine      ServiceType = "F"
	FreightCharter   ServiceType = "H"
)

// IsPassenger reports whether the service type carries passengers
func (s ServiceType) IsPassenger() bool {
	return s == PassengerLine || s == PassengerCharter
}

// Sentiment is how good a status is for the traveller
type Sentiment string

const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Negative Sentiment = "negative"
)

// FlightStatus is one classified public flight state
type FlightStatus struct {
	Code      string    `json:"code"`
	Text      string    `json:"text"`
	Sentiment Sentiment `json:"sentiment"`
}

// FlightRecord is the canonical form of one flight on a board
type FlightRecord struct {
	Identifier     string         `json:"identifier"`
	MainIdentifier string         `json:"main_identifier"`
	Direction      Direction      `json:"direction"`
	ServiceType    ServiceType    `json:"service_type"`
	ScheduledDate  string         `json:"scheduled_date"` // YYYY-MM-DD
	ScheduledTime  string         `json:"scheduled_time"` // HH:MM
	Gate           string         `json:"gate"`
	Terminal       int            `json:"terminal,omitempty"`
	Route          []string       `json:"route"`
	Codeshares     []string       `json:"codeshares,omitempty"`
	Statuses       []FlightStatus `json:"statuses"`
}

// RouteDisplay joins the destinations in API order
func (r FlightRecord) RouteDisplay() string {
	return strings.Join(r.Route, constants.RouteSeparator)
}

// PrimaryStatus is the first, most relevant status
func (r FlightRecord) PrimaryStatus() FlightStatus {
	if len(r.Statuses) == 0 {
		return FlightStatus{}
	}
	return r.Statuses[0]
}

// ScheduledAt combines date and time in loc
func (r FlightRecord) ScheduledAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", r.ScheduledDate+" "+r.ScheduledTime, loc)
}
