package integration_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/metinatakli/seatmap/api"
	"github.com/metinatakli/seatmap/internal/domain"
	"github.com/metinatakli/seatmap/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SeatMapSuite struct {
	BaseSuite
}

func TestSeatMapSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(SeatMapSuite))
}

func (s *SeatMapSuite) SetupTest() {
	executeSQLFile(s.T(), s.app.DB, seedUpFile)
	flushAllCache(s.T(), s.app.RedisClient)
}

func (s *SeatMapSuite) TearDownTest() {
	executeSQLFile(s.T(), s.app.DB, seedDownFile)
}

func (s *SeatMapSuite) seatMap(showtimeID int, cookies ...*http.Cookie) api.SeatMapResponse {
	res := s.serve(http.MethodGet, fmt.Sprintf("/showtimes/%d/seat-map", showtimeID), nil, cookies...)
	defer res.Body.Close()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	return decodeBody[api.SeatMapResponse](s.T(), res)
}

func (s *SeatMapSuite) TestGetSeatMap() {
	res := s.serve(http.MethodGet, "/showtimes/1/seat-map?rowLabels=letters", nil)
	defer res.Body.Close()

	s.Require().Equal(http.StatusOK, res.StatusCode)
	s.NotEmpty(res.Header.Get("X-Layout-Fingerprint"))

	resp := decodeBody[api.SeatMapResponse](s.T(), res)

	s.Equal(TestShowtimeID, resp.ShowtimeId)
	s.Equal(TestTheaterID, resp.TheaterId)
	s.Equal(TestTheaterName, resp.TheaterName)
	s.Equal(TestHallID, resp.HallId)
	s.Equal(TestHallName, resp.HallName)
	s.Equal(TestMovieTitle, resp.MovieTitle)
	s.True(TestStartTime.Equal(resp.StartTime))
	s.True(TestBasePrice.Equal(resp.BasePrice))

	s.Equal(4, resp.Grid.SeatColumns)
	s.Require().Len(resp.Rows, 2)
	s.Equal("A", resp.Rows[0].Label)
	s.Equal("B", resp.Rows[1].Label)

	for _, row := range resp.Rows {
		s.Len(row.Cells, resp.Grid.LabelColumns+resp.Grid.SeatColumns, "every row spans the whole grid")
	}

	seats := seatsByID(resp)
	s.Require().Len(seats, 5)

	wantPrices := map[int]string{
		TestSeatA1: "10",
		TestSeatA2: "15",
		TestSeatA3: "10",
		TestSeatB1: "13",
		TestSeatB2: "10",
	}
	for id, price := range wantPrices {
		s.True(seats[id].Available, "seat %d", id)
		s.True(decimal.RequireFromString(price).Equal(seats[id].Price), "seat %d price %s", id, seats[id].Price)
	}

	s.Equal(api.VIP, seats[TestSeatA2].Type)
	s.Equal(1, seats[TestSeatB1].X)
	s.Equal(1, seats[TestSeatB1].Y)
}

func (s *SeatMapSuite) TestGetSeatMapFingerprintFollowsLayout() {
	res := s.serve(http.MethodGet, "/showtimes/1/seat-map", nil)
	res.Body.Close()
	before := res.Header.Get("X-Layout-Fingerprint")

	_, err := s.app.DB.Exec(context.Background(),
		`UPDATE seats SET pos_x = 2 WHERE id = $1`, TestSeatA3)
	s.Require().NoError(err)

	res = s.serve(http.MethodGet, "/showtimes/1/seat-map", nil)
	res.Body.Close()

	s.NotEqual(before, res.Header.Get("X-Layout-Fingerprint"))
}

func (s *SeatMapSuite) TestGetSeatMapEdgeCases() {
	scenarios := []Scenario{
		{
			Name:             "unknown showtime",
			Method:           http.MethodGet,
			URL:              "/showtimes/99/seat-map",
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: fmt.Sprintf(`{"message": %q}`, "The requested resource not found"),
		},
		{
			Name:           "unsupported row label style",
			Method:         http.MethodGet,
			URL:            "/showtimes/1/seat-map?rowLabels=roman",
			ExpectedStatus: http.StatusUnprocessableEntity,
		},
		{
			Name:           "hall without seats",
			Method:         http.MethodGet,
			URL:            fmt.Sprintf("/showtimes/%d/seat-map", TestEmptyShowtimeID),
			ExpectedStatus: http.StatusOK,
			AfterTestFunc: func(t testing.TB, _ *TestApp, res *http.Response) {
				resp := decodeBody[api.SeatMapResponse](t, res)

				assert.Equal(t, TestEmptyShowtimeID, resp.ShowtimeId)
				assert.Equal(t, "Empty Hall", resp.HallName)
				assert.Empty(t, resp.Rows)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app, s.handler)
	}
}

func (s *SeatMapSuite) TestGetSeatMapMarksReservedSeats() {
	_, err := s.app.DB.Exec(context.Background(), `
		WITH r AS (
			INSERT INTO reservations (confirmation_code, showtime_id, session_id, reservation_type, adult_count, total_price)
			VALUES (gen_random_uuid(), 1, 'other-session', 'SEAT_ASSIGNED', 1, 15.00)
			RETURNING id
		)
		INSERT INTO reservation_seats (reservation_id, showtime_id, seat_id, row_label, seat_number, seat_type, ticket_type, price_paid)
		SELECT id, 1, 2, 'A', 2, 'VIP', 'ADULT', 15.00 FROM r
	`)
	s.Require().NoError(err)

	seats := seatsByID(s.seatMap(TestShowtimeID))

	s.False(seats[TestSeatA2].Available)
	s.True(seats[TestSeatA1].Available)
	s.True(seats[TestSeatB1].Available)
}

func (s *SeatMapSuite) TestGetSeatMapHidesSeatsHeldByOthers() {
	res := s.serve(http.MethodPut, "/showtimes/1/selection", strings.NewReader(`{"seatIds": [1, 4]}`))
	res.Body.Close()
	s.Require().Equal(http.StatusOK, res.StatusCode)
	holder := sessionCookie(s.T(), res)

	res = s.serve(http.MethodPost, "/showtimes/1/holds", nil, holder)
	defer res.Body.Close()
	s.Require().Equal(http.StatusOK, res.StatusCode)

	hold := decodeBody[api.HoldResponse](s.T(), res)
	s.Equal([]int{1, 4}, hold.SeatIds)

	own := seatsByID(s.seatMap(TestShowtimeID, holder))
	s.True(own[TestSeatA1].Available, "a session still sees its own holds as available")
	s.True(own[TestSeatB1].Available)

	others := seatsByID(s.seatMap(TestShowtimeID))
	s.False(others[TestSeatA1].Available)
	s.False(others[TestSeatB1].Available)
	s.True(others[TestSeatA2].Available)

	ttl, err := s.app.RedisClient.TTL(context.Background(), fmt.Sprintf("seat_hold:%d:%d", TestShowtimeID, TestSeatA1)).Result()
	s.Require().NoError(err)
	s.True(ttl > 0, "holds expire")
}

func (s *SeatMapSuite) TestHoldsConflictBetweenSessions() {
	res := s.serve(http.MethodPut, "/showtimes/1/selection", strings.NewReader(`{"seatIds": [2]}`))
	res.Body.Close()
	first := sessionCookie(s.T(), res)

	res = s.serve(http.MethodPost, "/showtimes/1/holds", nil, first)
	res.Body.Close()
	s.Require().Equal(http.StatusOK, res.StatusCode)

	res = s.serve(http.MethodPut, "/showtimes/1/selection", strings.NewReader(`{"seatIds": [3, 2]}`))
	res.Body.Close()
	second := sessionCookie(s.T(), res)

	res = s.serve(http.MethodPost, "/showtimes/1/holds", nil, second)
	defer res.Body.Close()
	s.Require().Equal(http.StatusConflict, res.StatusCode)

	conflict := decodeBody[api.ConflictResponse](s.T(), res)
	s.Equal([]int{TestSeatA2}, conflict.ConflictingSeatIds)

	// releasing the first hold frees the seat for the second session
	res = s.serve(http.MethodDelete, "/showtimes/1/holds", nil, first)
	res.Body.Close()
	s.Require().Equal(http.StatusNoContent, res.StatusCode)

	res = s.serve(http.MethodPost, "/showtimes/1/holds", nil, second)
	res.Body.Close()
	s.Equal(http.StatusOK, res.StatusCode)

	seats := seatsByID(s.seatMap(TestShowtimeID, first))
	s.False(seats[TestSeatA2].Available)
	s.False(seats[TestSeatA3].Available)
}

func (s *SeatMapSuite) TestSeatRepositoryLoadsLayout() {
	repo := repository.NewPostgresSeatRepository(s.app.DB)

	showtimeSeats, err := repo.GetSeatsByShowtime(context.Background(), TestShowtimeID)
	s.Require().NoError(err)

	// ordered by position, row by row
	s.Require().Len(showtimeSeats.Seats, 5)
	s.Equal(TestSeatB1, showtimeSeats.Seats[3].ID)
	s.Equal(domain.SeatTypeRecliner, showtimeSeats.Seats[3].Type)
	s.True(decimal.NewFromInt(3).Equal(showtimeSeats.Seats[3].ExtraPrice))
	s.True(decimal.NewFromInt(13).Equal(showtimeSeats.Seats[3].Price))

	_, err = repo.GetSeatsByShowtime(context.Background(), 99)
	s.ErrorIs(err, domain.ErrRecordNotFound)
}
