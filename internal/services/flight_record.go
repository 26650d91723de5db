package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/models/entities"
)

const scheduleDateLayout = "2006-01-02"

// NewFlightRecord normalizes one API payload into a FlightRecord
func NewFlightRecord(raw dtos.RawFlight) (entities.FlightRecord, error) {
	direction := entities.Direction(raw.FlightDirection)
	if direction != entities.Departing && direction != entities.Arriving {
		return entities.FlightRecord{}, fmt.Errorf("flight %s: %w: %q", raw.FlightName, ErrUnknownDirection, raw.FlightDirection)
	}

	scheduledTime, err := NormalizeScheduleTime(raw.ScheduleTime)
	if err != nil {
		return entities.FlightRecord{}, fmt.Errorf("flight %s: %w", raw.FlightName, err)
	}

	if _, err := time.Parse(scheduleDateLayout, raw.ScheduleDate); err != nil {
		return entities.FlightRecord{}, fmt.Errorf("flight %s: %w: %q", raw.FlightName, ErrInvalidDateFormat, raw.ScheduleDate)
	}

	codes := raw.PublicFlightState.FlightStates
	if len(codes) == 0 {
		return entities.FlightRecord{}, fmt.Errorf("flight %s: %w", raw.FlightName, ErrMissingStatus)
	}
	statuses := make([]entities.FlightStatus, 0, len(codes))
	for _, code := range codes {
		status, err := Classify(direction, code)
		if err != nil {
			return entities.FlightRecord{}, fmt.Errorf("flight %s: %w", raw.FlightName, err)
		}
		statuses = append(statuses, status)
	}

	route := append([]string{}, raw.Route.Destinations...)

	var codeshares []string
	if raw.Codeshares != nil && len(raw.Codeshares.Codeshares) > 0 {
		codeshares = append([]string{}, raw.Codeshares.Codeshares...)
	}

	return entities.FlightRecord{
		Identifier:     raw.FlightName,
		MainIdentifier: raw.MainFlight,
		Direction:      direction,
		ServiceType:    entities.ServiceType(raw.ServiceType),
		ScheduledDate:  raw.ScheduleDate,
		ScheduledTime:  scheduledTime,
		Gate:           strings.TrimSpace(raw.Gate),
		Terminal:       raw.Terminal,
		Route:          route,
		Codeshares:     codeshares,
		Statuses:       statuses,
	}, nil
}

// NormalizeScheduleTime truncates HH:MM[:SS] to a zero padded HH:MM
func NormalizeScheduleTime(raw string) (string, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	limits := [3]int{23, 59, 59}
	var values [3]int
	for i, part := range parts {
		n, ok := parseClockField(part)
		if !ok || n > limits[i] {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
		}
		values[i] = n
	}

	return fmt.Sprintf("%02d:%02d", values[0], values[1]), nil
}

// parseClockField accepts one or two ASCII digits
func parseClockField(s string) (int, bool) {
	if len(s) == 0 || len(s) > 2 {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// scheduledAt reads the schedule of a raw payload in loc
func scheduledAt(raw dtos.RawFlight, loc *time.Location) (time.Time, error) {
	clock, err := NormalizeScheduleTime(raw.ScheduleTime)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(scheduleDateLayout+" 15:04", raw.ScheduleDate+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw.ScheduleDate)
	}
	return t, nil
}
