package entities

import (
	"time"

	"schiphol-live/flightboard/internal/constants"
)

// CycleSummary describes one finished fetch cycle
type CycleSummary struct {
	ID                  string               `json:"id"`
	Direction           Direction            `json:"direction"`
	Requests            int                  `json:"requests"`
	Accepted            int                  `json:"accepted"`
	RejectedCodeshare   int                  `json:"rejected_codeshare"`
	RejectedServiceType int                  `json:"rejected_service_type"`
	Skipped             int                  `json:"skipped"`
	StopReason          constants.StopReason `json:"stop_reason"`
	WindowStart         time.Time            `json:"window_start"`
	WindowEnd           time.Time            `json:"window_end"`
	StartedAt           time.Time            `json:"started_at"`
	Duration            time.Duration        `json:"duration_ns"`
	Error               string               `json:"error,omitempty"`
}
