package api

import (
	"encoding/json"
	"net/http"
	"time"

	"schiphol-live/flightboard/internal/constants"
	reqctx "schiphol-live/flightboard/internal/context"
	"schiphol-live/flightboard/internal/models/dtos/responses"
)

func respondWithSuccess[T any](w http.ResponseWriter, r *http.Request, statusCode int, message string, data *T) {
	resp := responses.APIResponse[T]{
		Status:    string(constants.APIStatusOk),
		Message:   message,
		RequestID: reqctx.GetRequestID(r.Context()),
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    string(constants.APIStatusError),
		RequestID: reqctx.GetRequestID(r.Context()),
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}
