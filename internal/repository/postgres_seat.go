package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seatmap/internal/domain"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

// GetSeatsByShowtime loads the seat map of a showtime. Seats held by a
// committed reservation are reported unavailable.
func (p *PostgresSeatRepository) GetSeatsByShowtime(ctx context.Context, showtimeID int) (*domain.ShowtimeSeats, error) {
	showtimeSeats, err := getShowtimeHeader(ctx, p.db, showtimeID, false)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			se.id,
			se.hall_id,
			se.row_label,
			se.seat_number,
			se.pos_x,
			se.pos_y,
			se.seat_type,
			se.extra_price,
			rs.seat_id IS NULL AS available
		FROM showtimes sh
		JOIN seats se
			ON sh.hall_id = se.hall_id
		LEFT JOIN reservation_seats rs
			ON rs.showtime_id = sh.id AND rs.seat_id = se.id
		WHERE sh.id = $1
		ORDER BY se.pos_y, se.pos_x
	`

	rows, err := p.db.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			seat       domain.ShowtimeSeat
			extraPrice pgtype.Numeric
		)

		err = rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.RowLabel,
			&seat.Number,
			&seat.X,
			&seat.Y,
			&seat.Type,
			&extraPrice,
			&seat.Available,
		)
		if err != nil {
			return nil, err
		}

		seat.ExtraPrice = toDecimal(extraPrice)
		seat.Price = showtimeSeats.BasePrice.Add(seat.ExtraPrice)
		showtimeSeats.Seats = append(showtimeSeats.Seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimeSeats, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// getShowtimeHeader reads the showtime with its hall and theater. With
// forUpdate the showtime row stays locked until the surrounding transaction
// ends, which serializes commits of the same showtime.
func getShowtimeHeader(ctx context.Context, q queryRower, showtimeID int, forUpdate bool) (*domain.ShowtimeSeats, error) {
	query := `
		SELECT
			sh.id,
			t.id,
			t.name,
			m.title,
			h.id,
			h.name,
			sh.start_time,
			sh.base_price
		FROM showtimes sh
		JOIN halls h ON sh.hall_id = h.id
		JOIN theaters t ON h.theater_id = t.id
		JOIN movies m ON sh.movie_id = m.id
		WHERE sh.id = $1
	`

	if forUpdate {
		query += " FOR UPDATE OF sh"
	}

	var (
		s         domain.ShowtimeSeats
		basePrice pgtype.Numeric
	)

	err := q.QueryRow(ctx, query, showtimeID).Scan(
		&s.ShowtimeID,
		&s.TheaterID,
		&s.TheaterName,
		&s.MovieTitle,
		&s.HallID,
		&s.HallName,
		&s.StartTime,
		&basePrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	s.BasePrice = toDecimal(basePrice)

	return &s, nil
}
