package domain

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type SeatType string

const (
	SeatTypeStandard   SeatType = "Standard"
	SeatTypeVIP        SeatType = "VIP"
	SeatTypeRecliner   SeatType = "Recliner"
	SeatTypeAccessible SeatType = "Accessible"
)

// Seat is a physical seat of a hall. X and Y place it on the hall's layout
// grid; gaps between coordinates are aisles or structural elements.
type Seat struct {
	ID         int
	HallID     int
	RowLabel   string
	Number     int
	X          int
	Y          int
	Type       SeatType
	ExtraPrice decimal.Decimal
}

func (s Seat) Label() string {
	return s.RowLabel + strconv.Itoa(s.Number)
}

// ShowtimeSeat is the seat map entry of a seat for one showtime.
type ShowtimeSeat struct {
	Seat
	Price     decimal.Decimal
	Available bool
}

func (s ShowtimeSeat) GridKey() string {
	return strconv.Itoa(s.ID)
}

func (s ShowtimeSeat) GridPosition() (int, int) {
	return s.X, s.Y
}

type ShowtimeSeats struct {
	ShowtimeID  int
	TheaterID   int
	TheaterName string
	MovieTitle  string
	HallID      int
	HallName    string
	StartTime   time.Time
	BasePrice   decimal.Decimal
	Seats       []ShowtimeSeat
}

// Availability indexes the seats by ID.
func (s *ShowtimeSeats) Availability() map[int]bool {
	available := make(map[int]bool, len(s.Seats))
	for _, seat := range s.Seats {
		available[seat.ID] = seat.Available
	}

	return available
}

// MarkUnavailable flags the given seats as taken.
func (s *ShowtimeSeats) MarkUnavailable(seatIDs ...int) {
	taken := make(map[int]bool, len(seatIDs))
	for _, id := range seatIDs {
		taken[id] = true
	}

	for i := range s.Seats {
		if taken[s.Seats[i].ID] {
			s.Seats[i].Available = false
		}
	}
}

type SeatRepository interface {
	GetSeatsByShowtime(ctx context.Context, showtimeID int) (*ShowtimeSeats, error)
}
