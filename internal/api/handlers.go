package api

import (
	"time"
)

type Handlers struct {
	deps    *Dependencies
	upSince time.Time
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies, upSince time.Time) *Handlers {
	return &Handlers{
		deps:    deps,
		upSince: upSince,
	}
}
