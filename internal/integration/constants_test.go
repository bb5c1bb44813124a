package integration_test

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	seedUpFile   = "testdata/seatmap_up.sql"
	seedDownFile = "testdata/seatmap_down.sql"

	// Showtime related constants
	TestShowtimeID      = 1
	TestEmptyShowtimeID = 2
	TestMovieTitle      = "Test Movie"
	TestTheaterID       = 1
	TestTheaterName     = "Test Theater"
	TestHallID          = 1
	TestHallName        = "Hall 1"

	// Seat related constants, ids follow the insert order of the seed
	TestSeatA1 = 1
	TestSeatA2 = 2
	TestSeatA3 = 3
	TestSeatB1 = 4
	TestSeatB2 = 5

	TestContactEmail = "guest@example.com"
)

var (
	TestStartTime = time.Date(2030, 6, 1, 18, 30, 0, 0, time.UTC)
	TestBasePrice = decimal.RequireFromString("10.00")
)
