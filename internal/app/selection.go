package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/seatmap/api"
)

func (app *Application) GetSelection(w http.ResponseWriter, r *http.Request, showtimeID int) {
	if showtimeID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("showtime ID must be greater than zero"))
		return
	}

	resp := api.SelectionResponse{
		ShowtimeId: showtimeID,
		SeatIds:    nonNil(app.selectionFor(r, showtimeID).IDs()),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ReplaceSelection(w http.ResponseWriter, r *http.Request, showtimeID int) {
	if showtimeID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("showtime ID must be greater than zero"))
		return
	}

	var input api.UpdateSelectionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	controller := app.selectionFor(r, showtimeID)
	controller.SetAll(input.SeatIds)

	resp := api.SelectionResponse{
		ShowtimeId: showtimeID,
		SeatIds:    nonNil(controller.IDs()),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ClearSelection(w http.ResponseWriter, r *http.Request, showtimeID int) {
	if showtimeID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("showtime ID must be greater than zero"))
		return
	}

	app.selectionFor(r, showtimeID).Clear()

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) ToggleSeat(w http.ResponseWriter, r *http.Request, showtimeID int, seatID int) {
	if showtimeID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("showtime ID must be greater than zero"))
		return
	}

	if seatID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("seat ID must be greater than zero"))
		return
	}

	controller := app.selectionFor(r, showtimeID)

	// a toggle that adds a seat must leave a selection ReplaceSelection accepts
	if !controller.IsSelected(seatID) {
		next := api.UpdateSelectionRequest{SeatIds: append(controller.IDs(), seatID)}

		err := app.validator.Struct(next)
		if err != nil {
			app.failedValidationResponse(w, r, err)
			return
		}
	}

	selected := controller.Toggle(seatID)

	resp := api.ToggleSeatResponse{
		ShowtimeId: showtimeID,
		SeatId:     seatID,
		Selected:   selected,
		SeatIds:    nonNil(controller.IDs()),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}

	return ids
}
