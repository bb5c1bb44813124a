package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/seatmap/api"
	"github.com/metinatakli/seatmap/internal/domain"
	"github.com/metinatakli/seatmap/internal/layout"
)

const layoutFingerprintHeader = "X-Layout-Fingerprint"

func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request, showtimeID int, params api.GetSeatMapParams) {
	logger := app.contextGetLogger(r)

	if showtimeID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("showtime ID must be greater than zero"))
		return
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtimeSeats, err := app.loadSeatMap(r.Context(), showtimeID, app.sessionManager.Token(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("seat map requested for unknown showtime", "showtime_id", showtimeID)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	grid, err := layout.Build(showtimeSeats.Seats)
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("seat map of showtime %d cannot be laid out: %w", showtimeID, err))
		return
	}

	presentation := layout.Present(grid,
		layout.WithRowLabeler(rowLabeler(params.RowLabels)),
		layout.WithLabelPosition[domain.ShowtimeSeat](labelPosition(params.LabelPosition)),
	)

	headers := make(http.Header)
	headers.Set(layoutFingerprintHeader, layout.Fingerprint(showtimeSeats.Seats))

	err = app.writeJSON(w, http.StatusOK, toSeatMapResponse(showtimeSeats, presentation), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// loadSeatMap returns the freshest seat map of a showtime: committed
// reservations come from the database, holds of other sessions from Redis.
func (app *Application) loadSeatMap(ctx context.Context, showtimeID int, sessionID string) (*domain.ShowtimeSeats, error) {
	showtimeSeats, err := app.seatRepo.GetSeatsByShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	held, err := app.heldSeatIDs(ctx, showtimeID, sessionID)
	if err != nil {
		return nil, err
	}

	showtimeSeats.MarkUnavailable(held...)

	return showtimeSeats, nil
}

func rowLabeler(style *api.RowLabelStyle) layout.RowLabeler[domain.ShowtimeSeat] {
	if style == nil {
		return layout.NumericLabels[domain.ShowtimeSeat]
	}

	switch *style {
	case api.RowLabelStyleLetters:
		return layout.LetterLabels[domain.ShowtimeSeat]
	case api.RowLabelStyleSeat:
		return seatRowLabels
	default:
		return layout.NumericLabels[domain.ShowtimeSeat]
	}
}

func labelPosition(pos *api.LabelPosition) layout.LabelPosition {
	if pos == nil {
		return layout.LabelLeading
	}

	switch *pos {
	case api.Trailing:
		return layout.LabelTrailing
	case api.Both:
		return layout.LabelBoth
	case api.None:
		return layout.LabelNone
	default:
		return layout.LabelLeading
	}
}

// seatRowLabels uses the row label printed on the seats themselves.
func seatRowLabels(key int, cells []*domain.ShowtimeSeat) string {
	for _, seat := range cells {
		if seat != nil && seat.RowLabel != "" {
			return seat.RowLabel
		}
	}

	return layout.NumericLabels[domain.ShowtimeSeat](key, cells)
}

func toSeatMapResponse(s *domain.ShowtimeSeats, p layout.Presentation[domain.ShowtimeSeat]) api.SeatMapResponse {
	resp := api.SeatMapResponse{
		ShowtimeId:  s.ShowtimeID,
		TheaterId:   s.TheaterID,
		TheaterName: s.TheaterName,
		HallId:      s.HallID,
		HallName:    s.HallName,
		MovieTitle:  s.MovieTitle,
		StartTime:   s.StartTime,
		BasePrice:   s.BasePrice,
		Grid: api.GridTemplate{
			LabelColumns: p.Template.LabelColumns,
			SeatColumns:  p.Template.SeatColumns,
			Columns:      p.Template.String(),
		},
		Rows: make([]api.SeatMapRow, len(p.Rows)),
	}

	for i, row := range p.Rows {
		apiRow := api.SeatMapRow{
			Key:   row.Key,
			Label: row.Label,
			Cells: make([]api.SeatMapCell, len(row.Cells)),
		}

		for j, cell := range row.Cells {
			apiCell := api.SeatMapCell{
				Key:  cell.Key,
				Kind: api.CellKind(cell.Kind),
			}

			switch cell.Kind {
			case layout.CellLabel:
				apiCell.Label = &cell.Label
			case layout.CellSeat:
				apiCell.Seat = toApiSeat(cell.Item)
			}

			apiRow.Cells[j] = apiCell
		}

		resp.Rows[i] = apiRow
	}

	return resp
}

func toApiSeat(seat *domain.ShowtimeSeat) *api.Seat {
	return &api.Seat{
		Id:        seat.ID,
		Row:       seat.RowLabel,
		Number:    seat.Number,
		X:         seat.X,
		Y:         seat.Y,
		Type:      api.SeatType(seat.Type),
		Price:     seat.Price,
		Available: seat.Available,
	}
}
