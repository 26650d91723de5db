package api

import (
	"errors"
	"net/http"

	"schiphol-live/flightboard/internal/constants"
	"schiphol-live/flightboard/internal/logging"
	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/services"

	"github.com/go-chi/chi/v5"
)

// GetBoard godoc
// @Summary      Get a flight board
// @Description  Returns the display rows of the departures or arrivals board and the last fetch cycle.
// @Tags         Flights
// @Produce      json
// @Param        direction  path  string  true  "departures or arrivals"
// @Success      200  {object}  dtos.BoardResponse
// @Failure      400  {object}  responses.APIResponse
// @Router       /api/v1/flights/{direction} [get]
func (h *Handlers) GetBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir, err := services.ParseDirection(chi.URLParam(r, "direction"))
		if err != nil {
			respondWithError(w, r, http.StatusBadRequest, constants.MsgBoardNotFound)
			return
		}

		snap, err := h.deps.Services.Boards.Board(dir)
		if err != nil {
			respondWithError(w, r, http.StatusNotFound, constants.MsgBoardNotFound)
			return
		}

		rows := snap.Rows
		if rows == nil {
			rows = []dtos.BoardRow{}
		}
		message := constants.MsgBoardFetched
		if snap.LastCycle == nil {
			message = constants.MsgNoCycleCompleted
		}

		respondWithSuccess(w, r, http.StatusOK, message, &dtos.BoardResponse{
			Board:     dir.String(),
			Rows:      rows,
			LastCycle: snap.LastCycle,
		})
	}
}

// RefreshBoard godoc
// @Summary      Refresh a flight board
// @Description  Starts a fetch cycle in the background. A running cycle for the same board is cancelled first.
// @Tags         Flights
// @Produce      json
// @Param        direction  path  string  true  "departures or arrivals"
// @Success      202  {object}  dtos.RefreshResponse
// @Failure      400,429,503  {object}  responses.APIResponse
// @Router       /api/v1/flights/{direction}/refresh [post]
func (h *Handlers) RefreshBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir, err := services.ParseDirection(chi.URLParam(r, "direction"))
		if err != nil {
			respondWithError(w, r, http.StatusBadRequest, constants.MsgBoardNotFound)
			return
		}

		cycleID, err := h.deps.Services.Boards.TriggerRefresh(dir)
		if err != nil {
			if errors.Is(err, services.ErrBoardNotFound) {
				respondWithError(w, r, http.StatusNotFound, constants.MsgBoardNotFound)
				return
			}
			logging.Error("Failed to start refresh", "board", dir.String(), "error", err.Error())
			respondWithError(w, r, http.StatusServiceUnavailable, err.Error())
			return
		}

		respondWithSuccess(w, r, http.StatusAccepted, constants.MsgRefreshStarted, &dtos.RefreshResponse{
			Board:   dir.String(),
			CycleID: cycleID,
		})
	}
}
