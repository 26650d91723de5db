package responses

import "time"

// APIResponse wraps every JSON body returned by the HTTP API
type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
	Data      *T        `json:"data,omitempty"`
}
