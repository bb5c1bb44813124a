package mocks

import (
	"context"

	"github.com/metinatakli/seatmap/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatRepo struct {
	mock.Mock
}

var _ domain.SeatRepository = (*MockSeatRepo)(nil)

// GetSeatsByShowtime returns a copy of the configured seat map, handlers mark
// seats unavailable on the value they receive.
func (m *MockSeatRepo) GetSeatsByShowtime(ctx context.Context, showtimeID int) (*domain.ShowtimeSeats, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	seats := *args.Get(0).(*domain.ShowtimeSeats)
	seats.Seats = append([]domain.ShowtimeSeat(nil), seats.Seats...)

	return &seats, args.Error(1)
}
