package services

import (
	"errors"

	"schiphol-live/flightboard/internal/constants"
)

// Record errors. A flight failing with one of these is skipped, the page continues.
var (
	ErrInvalidTimeFormat = errors.New("invalid scheduled time format")
	ErrInvalidDateFormat = errors.New("invalid scheduled date format")
	ErrUnknownStatusCode = errors.New("unknown status code")
	ErrUnknownDirection  = errors.New("unknown flight direction")
	ErrMissingStatus     = errors.New("flight has no status")
)

// ErrFetchFailed aborts a fetch cycle. It wraps the transport or context error.
var ErrFetchFailed = errors.New("fetch failed")

// recordErrorCode maps a record error to its metric label
func recordErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidTimeFormat):
		return constants.ErrCodeInvalidTimeFormat
	case errors.Is(err, ErrInvalidDateFormat):
		return constants.ErrCodeInvalidDateFormat
	case errors.Is(err, ErrUnknownStatusCode):
		return constants.ErrCodeUnknownStatusCode
	case errors.Is(err, ErrUnknownDirection):
		return constants.ErrCodeUnknownDirection
	case errors.Is(err, ErrMissingStatus):
		return constants.ErrCodeMissingStatus
	default:
		return "OTHER"
	}
}

// ErrBoardNotFound is returned for a direction no board was configured for
var ErrBoardNotFound = errors.New("board not found")
