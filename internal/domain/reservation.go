package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationType string

const (
	ReservationTypeGeneralAdmission ReservationType = "GENERAL_ADMISSION"
	ReservationTypeSeatAssigned     ReservationType = "SEAT_ASSIGNED"
)

func (t ReservationType) Valid() bool {
	return t == ReservationTypeGeneralAdmission || t == ReservationTypeSeatAssigned
}

type TicketType string

const (
	TicketTypeAdult  TicketType = "ADULT"
	TicketTypeMinor  TicketType = "MINOR"
	TicketTypeSenior TicketType = "SENIOR"
)

type TicketCounts struct {
	Adult  int
	Minor  int
	Senior int
}

func (t TicketCounts) Total() int {
	return t.Adult + t.Minor + t.Senior
}

// Expand lists one ticket type per ticket: adults first, then minors, then
// seniors.
func (t TicketCounts) Expand() []TicketType {
	tickets := make([]TicketType, 0, max(t.Total(), 0))

	for range t.Adult {
		tickets = append(tickets, TicketTypeAdult)
	}
	for range t.Minor {
		tickets = append(tickets, TicketTypeMinor)
	}
	for range t.Senior {
		tickets = append(tickets, TicketTypeSenior)
	}

	return tickets
}

// Composition is what a reservation holds: either general admission tickets
// or tickets with one assigned seat each. The two variants are
// GeneralAdmission and SeatAssignment.
type Composition interface {
	Type() ReservationType
	Tickets() TicketCounts
	composition()
}

type GeneralAdmission struct {
	Counts TicketCounts
}

func (GeneralAdmission) Type() ReservationType    { return ReservationTypeGeneralAdmission }
func (g GeneralAdmission) Tickets() TicketCounts { return g.Counts }
func (GeneralAdmission) composition()             {}

// SeatAssignment pairs ticket counts with exactly as many seats.
type SeatAssignment struct {
	Counts  TicketCounts
	SeatIDs []int
}

func (SeatAssignment) Type() ReservationType    { return ReservationTypeSeatAssigned }
func (s SeatAssignment) Tickets() TicketCounts { return s.Counts }
func (SeatAssignment) composition()             {}

// ReservedSeatSnapshot records a seat as it was when the reservation was
// committed. Snapshots are never updated afterwards.
type ReservedSeatSnapshot struct {
	SeatID     int
	RowLabel   string
	SeatNumber int
	SeatType   SeatType
	TicketType TicketType
	PricePaid  decimal.Decimal
}

func (s ReservedSeatSnapshot) Label() string {
	return Seat{RowLabel: s.RowLabel, Number: s.SeatNumber}.Label()
}

type Reservation struct {
	ID               int
	ConfirmationCode uuid.UUID
	ShowtimeID       int
	SessionID        string
	ContactEmail     string
	Type             ReservationType
	Tickets          TicketCounts
	TotalPrice       decimal.Decimal
	Seats            []ReservedSeatSnapshot
	CreatedAt        time.Time
}

// CommitRequest asks the commit boundary to turn a validated composition into
// a confirmed reservation.
type CommitRequest struct {
	ShowtimeID   int
	SessionID    string
	ContactEmail string
	Composition  Composition
}

type ReservationRepository interface {
	// Commit reserves every requested seat or none. A seat already held by
	// another reservation yields a *SeatConflictError.
	Commit(ctx context.Context, req CommitRequest) (*Reservation, error)
	GetReservedSeatIDs(ctx context.Context, showtimeID int) ([]int, error)
	GetByConfirmationCode(ctx context.Context, code uuid.UUID) (*Reservation, error)
}
