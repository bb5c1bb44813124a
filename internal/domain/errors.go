package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
	ErrSeatNotInShowtime   = errors.New("seat does not belong to the showtime")
)

// SeatConflictError is returned by a commit when some requested seats are
// already held by a confirmed reservation.
type SeatConflictError struct {
	ShowtimeID int
	SeatIDs    []int
}

func (e *SeatConflictError) Error() string {
	ids := make([]string, len(e.SeatIDs))
	for i, id := range e.SeatIDs {
		ids[i] = strconv.Itoa(id)
	}

	return fmt.Sprintf("seats [%s] of showtime %d are already reserved", strings.Join(ids, ", "), e.ShowtimeID)
}

func (e *SeatConflictError) Is(target error) bool {
	return target == ErrSeatAlreadyReserved
}
