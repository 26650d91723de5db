package dtos

import "schiphol-live/flightboard/internal/models/entities"

// RawFlight is one element of the public flights API response
type RawFlight struct {
	ID                string       `json:"id"`
	FlightName        string       `json:"flightName"`
	MainFlight        string       `json:"mainFlight"`
	PrefixIATA        string       `json:"prefixIATA,omitempty"`
	FlightDirection   string       `json:"flightDirection"`
	ServiceType       string       `json:"serviceType"`
	ScheduleDate      string       `json:"scheduleDate"`
	ScheduleTime      string       `json:"scheduleTime"`
	ScheduleDateTime  string       `json:"scheduleDateTime,omitempty"`
	Gate              string       `json:"gate,omitempty"`
	Terminal          int          `json:"terminal,omitempty"`
	Route             Route        `json:"route"`
	PublicFlightState FlightStates `json:"publicFlightState"`
	Codeshares        *Codeshares  `json:"codeshares,omitempty"`
}

type Route struct {
	Destinations []string `json:"destinations"`
}

type FlightStates struct {
	FlightStates []string `json:"flightStates"`
}

type Codeshares struct {
	Codeshares []string `json:"codeshares"`
}

// FlightsResponse is the body of GET /flights
type FlightsResponse struct {
	Flights []RawFlight `json:"flights"`
}

// FlightsPage is one page of flights plus the pagination state it was fetched with
type FlightsPage struct {
	Page     int
	Flights  []RawFlight
	LastPage int // -1 when the API did not say
}

// Destination is the body of GET /destinations/{iata}
type Destination struct {
	IATA       string     `json:"iata"`
	City       string     `json:"city"`
	Country    string     `json:"country"`
	PublicName PublicName `json:"publicName"`
}

type PublicName struct {
	Dutch   string `json:"dutch"`
	English string `json:"english"`
}

// BoardRow is a flight as shown on a board
type BoardRow struct {
	Flight        string                  `json:"flight"`
	Codeshares    []string                `json:"codeshares,omitempty"`
	ScheduledDate string                  `json:"scheduled_date"`
	ScheduledTime string                  `json:"scheduled_time"`
	Route         string                  `json:"route"`
	RouteCodes    []string                `json:"route_codes"`
	Gate          string                  `json:"gate"`
	Terminal      int                     `json:"terminal,omitempty"`
	Statuses      []entities.FlightStatus `json:"statuses"`
}

// BoardResponse is returned by GET /api/v1/flights/{direction}
type BoardResponse struct {
	Board     string                 `json:"board"`
	Rows      []BoardRow             `json:"rows"`
	LastCycle *entities.CycleSummary `json:"last_cycle,omitempty"`
}

// RefreshResponse is returned by POST /api/v1/flights/{direction}/refresh
type RefreshResponse struct {
	Board   string `json:"board"`
	CycleID string `json:"cycle_id"`
}
