// Package events publishes domain events of confirmed reservations.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/seatmap/internal/domain"
	"github.com/shopspring/decimal"
)

const ReservationConfirmedQueue = "reservation.confirmed"

type ReservationConfirmedEvent struct {
	ConfirmationCode uuid.UUID              `json:"confirmationCode"`
	ShowtimeID       int                    `json:"showtimeId"`
	ReservationType  domain.ReservationType `json:"reservationType"`
	Tickets          int                    `json:"tickets"`
	SeatIDs          []int                  `json:"seatIds"`
	TotalPrice       decimal.Decimal        `json:"totalPrice"`
	CreatedAt        time.Time              `json:"createdAt"`
}

func NewReservationConfirmedEvent(r *domain.Reservation) ReservationConfirmedEvent {
	seatIDs := make([]int, len(r.Seats))
	for i, s := range r.Seats {
		seatIDs[i] = s.SeatID
	}

	return ReservationConfirmedEvent{
		ConfirmationCode: r.ConfirmationCode,
		ShowtimeID:       r.ShowtimeID,
		ReservationType:  r.Type,
		Tickets:          r.Tickets.Total(),
		SeatIDs:          seatIDs,
		TotalPrice:       r.TotalPrice,
		CreatedAt:        r.CreatedAt,
	}
}

type Publisher interface {
	PublishReservationConfirmed(ctx context.Context, event ReservationConfirmedEvent) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishReservationConfirmed(context.Context, ReservationConfirmedEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
