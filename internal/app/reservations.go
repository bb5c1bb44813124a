package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/seatmap/api"
	"github.com/metinatakli/seatmap/internal/booking"
	"github.com/metinatakli/seatmap/internal/domain"
	"github.com/metinatakli/seatmap/internal/events"
	"github.com/metinatakli/seatmap/internal/mailer"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request, showtimeID int) {
	logger := app.contextGetLogger(r)

	if showtimeID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("showtime ID must be greater than zero"))
		return
	}

	var input api.CreateReservationRequest

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

	sessionID := app.sessionManager.Token(r.Context())
	draft := app.selectionFor(r, showtimeID)

	if input.Seats != nil {
		draft.SetAll(*input.Seats)
	}

	// revalidate against the freshest seat map right before committing
	showtimeSeats, err := app.loadSeatMap(r.Context(), showtimeID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	composition, err := booking.Validate(booking.Draft{
		Type:    domain.ReservationType(input.ReservationType),
		Tickets: toDomainTicketCounts(input.TicketCounts),
		SeatIDs: draft.IDs(),
	}, showtimeSeats.Availability())
	if err != nil {
		var compErr *booking.CompositionError
		if errors.As(err, &compErr) {
			logger.Info("reservation draft rejected", "code", compErr.Code, "seat_ids", compErr.SeatIDs)
			app.metrics.recordRejected(r.Context(), string(compErr.Code))
			app.compositionErrorResponse(w, r, compErr)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	req := domain.CommitRequest{
		ShowtimeID:  showtimeID,
		SessionID:   sessionID,
		Composition: composition,
	}
	if input.ContactEmail != nil {
		req.ContactEmail = string(*input.ContactEmail)
	}

	reservation, err := app.reservationRepo.Commit(r.Context(), req)
	if err != nil {
		var conflict *domain.SeatConflictError

		switch {
		case errors.As(err, &conflict):
			removed := draft.Remove(conflict.SeatIDs...)
			app.metrics.recordConflict(r.Context(), len(conflict.SeatIDs))
			logger.Warn("reservation conflict: seats were taken by another reservation",
				"seat_ids", conflict.SeatIDs,
				"removed_from_selection", removed)
			app.seatConflictResponse(w, r, conflict.SeatIDs)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrSeatNotInShowtime):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("reservation committed",
		"confirmation_code", reservation.ConfirmationCode,
		"reservation_type", reservation.Type,
		"seats", len(reservation.Seats))

	app.metrics.recordCommitted(r.Context(), string(reservation.Type))

	draft.Clear()

	err = app.releaseSessionHolds(r, showtimeID)
	if err != nil {
		logger.Error("failed to release holds after commit", "error", err)
	}

	app.notifyReservationConfirmed(r, reservation, showtimeSeats)

	err = app.writeJSON(w, http.StatusCreated, toApiReservation(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// notifyReservationConfirmed publishes the confirmation event and mails the
// contact address in the background. Failures are logged only; the
// reservation is already committed.
func (app *Application) notifyReservationConfirmed(r *http.Request, reservation *domain.Reservation, showtime *domain.ShowtimeSeats) {
	event := events.NewReservationConfirmedEvent(reservation)
	data := toReservationConfirmedData(reservation, showtime)

	go func(ctx context.Context) {
		// new logger for this goroutine, inheriting context from the request
		gLogger := app.contextGetLogger(r.WithContext(ctx))

		defer func() {
			if err := recover(); err != nil {
				gLogger.Error("panic occurred during reservation notification", "panic", err)
			}
		}()

		app.publishReservationConfirmed(ctx, gLogger, event)

		if reservation.ContactEmail == "" {
			return
		}

		err := app.mailer.Send(reservation.ContactEmail, mailer.ReservationConfirmedTemplate, data)
		if err != nil {
			gLogger.Error("failed to send reservation confirmation email", "error", err)
		} else {
			gLogger.Info("reservation confirmation email sent successfully")
		}
	}(context.WithoutCancel(r.Context()))
}

func (app *Application) publishReservationConfirmed(ctx context.Context, logger *slog.Logger, event events.ReservationConfirmedEvent) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := app.publisher.PublishReservationConfirmed(ctx, event)
	if err != nil {
		logger.Error("failed to publish reservation confirmed event", "error", err)
	}
}

func (app *Application) GetReservation(w http.ResponseWriter, r *http.Request, confirmationCode string) {
	code, err := uuid.Parse(confirmationCode)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("confirmation code must be a valid UUID"))
		return
	}

	reservation, err := app.reservationRepo.GetByConfirmationCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiReservation(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDomainTicketCounts(t api.TicketCounts) domain.TicketCounts {
	return domain.TicketCounts{
		Adult:  t.Adult,
		Minor:  t.Minor,
		Senior: t.Senior,
	}
}

func toApiReservation(reservation *domain.Reservation) api.ReservationResponse {
	resp := api.ReservationResponse{
		ConfirmationCode: reservation.ConfirmationCode,
		ShowtimeId:       reservation.ShowtimeID,
		ReservationType:  api.ReservationType(reservation.Type),
		TicketCounts: api.TicketCounts{
			Adult:  reservation.Tickets.Adult,
			Minor:  reservation.Tickets.Minor,
			Senior: reservation.Tickets.Senior,
		},
		TotalPrice: reservation.TotalPrice,
		Seats:      make([]api.ReservedSeat, len(reservation.Seats)),
		CreatedAt:  reservation.CreatedAt,
	}

	if reservation.ContactEmail != "" {
		email := openapi_types.Email(reservation.ContactEmail)
		resp.ContactEmail = &email
	}

	for i, s := range reservation.Seats {
		resp.Seats[i] = api.ReservedSeat{
			SeatId:     s.SeatID,
			Label:      s.Label(),
			Row:        s.RowLabel,
			Number:     s.SeatNumber,
			Type:       api.SeatType(s.SeatType),
			TicketType: api.TicketType(s.TicketType),
			PricePaid:  s.PricePaid,
		}
	}

	return resp
}

func toReservationConfirmedData(reservation *domain.Reservation, showtime *domain.ShowtimeSeats) mailer.ReservationConfirmedData {
	data := mailer.ReservationConfirmedData{
		ConfirmationCode: reservation.ConfirmationCode.String(),
		MovieTitle:       showtime.MovieTitle,
		TheaterName:      showtime.TheaterName,
		HallName:         showtime.HallName,
		StartTime:        showtime.StartTime.Format(time.RFC1123),
		Tickets:          reservation.Tickets.Total(),
		Seats:            make([]mailer.SeatLine, len(reservation.Seats)),
		TotalPrice:       reservation.TotalPrice.StringFixed(2),
	}

	for i, s := range reservation.Seats {
		data.Seats[i] = mailer.SeatLine{
			Label:      s.Label(),
			Type:       string(s.SeatType),
			TicketType: string(s.TicketType),
			Price:      s.PricePaid.StringFixed(2),
		}
	}

	return data
}
