// Package booking checks that a reservation draft can be submitted.
package booking

import (
	"errors"
	"fmt"

	"github.com/metinatakli/seatmap/internal/domain"
)

type Code string

const (
	CodeUnknownType         Code = "UNKNOWN_TYPE"
	CodeNoTickets           Code = "NO_TICKETS"
	CodeSelectionNotAllowed Code = "SELECTION_NOT_ALLOWED"
	CodeEmptySelection      Code = "EMPTY_SELECTION"
	CodeCountMismatch       Code = "COUNT_MISMATCH"
	CodeSeatUnavailable     Code = "SEAT_UNAVAILABLE"
)

var messages = map[Code]string{
	CodeUnknownType:         "reservation type must be GENERAL_ADMISSION or SEAT_ASSIGNED",
	CodeNoTickets:           "at least one ticket is required",
	CodeSelectionNotAllowed: "general admission reservations cannot include seats",
	CodeEmptySelection:      "select a seat for every ticket",
	CodeCountMismatch:       "the number of selected seats must equal the number of tickets",
	CodeSeatUnavailable:     "some of the selected seats are no longer available",
}

// CompositionError reports why a draft was rejected. SeatIDs lists the
// offending seats for CodeSeatUnavailable.
type CompositionError struct {
	Code    Code
	SeatIDs []int
}

func (e *CompositionError) Error() string {
	if len(e.SeatIDs) > 0 {
		return fmt.Sprintf("%s: %v", e.Message(), e.SeatIDs)
	}

	return e.Message()
}

func (e *CompositionError) Message() string {
	return messages[e.Code]
}

// CodeOf returns the failure code carried by err, if any.
func CodeOf(err error) (Code, bool) {
	var compErr *CompositionError
	if errors.As(err, &compErr) {
		return compErr.Code, true
	}

	return "", false
}

// Draft is the client's reservation in progress.
type Draft struct {
	Type    domain.ReservationType
	Tickets domain.TicketCounts
	SeatIDs []int
}

// Availability answers whether a seat exists in the loaded seat map and is
// free. Seats missing from the map are unavailable.
type Availability map[int]bool

// Validate turns a draft into a composition, or returns a *CompositionError.
//
// For general admission the selection must be empty and at least one ticket
// requested. For seat assignment the selection size must equal the ticket
// total and every seat must be available.
func Validate(d Draft, seats Availability) (domain.Composition, error) {
	if !d.Type.Valid() {
		return nil, &CompositionError{Code: CodeUnknownType}
	}

	total := d.Tickets.Total()
	if total < 1 || d.Tickets.Adult < 0 || d.Tickets.Minor < 0 || d.Tickets.Senior < 0 {
		return nil, &CompositionError{Code: CodeNoTickets}
	}

	if d.Type == domain.ReservationTypeGeneralAdmission {
		if len(d.SeatIDs) > 0 {
			return nil, &CompositionError{Code: CodeSelectionNotAllowed}
		}

		return domain.GeneralAdmission{Counts: d.Tickets}, nil
	}

	seatIDs := dedupe(d.SeatIDs)

	if len(seatIDs) == 0 {
		return nil, &CompositionError{Code: CodeEmptySelection}
	}

	if len(seatIDs) != total {
		return nil, &CompositionError{Code: CodeCountMismatch}
	}

	var unavailable []int
	for _, id := range seatIDs {
		if !seats[id] {
			unavailable = append(unavailable, id)
		}
	}

	if len(unavailable) > 0 {
		return nil, &CompositionError{Code: CodeSeatUnavailable, SeatIDs: unavailable}
	}

	return domain.SeatAssignment{
		Counts:  d.Tickets,
		SeatIDs: seatIDs,
	}, nil
}

func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
