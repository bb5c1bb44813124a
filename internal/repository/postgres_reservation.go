package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seatmap/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

type seatState struct {
	snapshot  domain.ReservedSeatSnapshot
	available bool
}

// Commit stores the reservation and the snapshots of its seats in one
// transaction. The showtime row is locked first, so concurrent commits of the
// same showtime run one after another and see each other's seats.
func (p *PostgresReservationRepository) Commit(ctx context.Context, req domain.CommitRequest) (*domain.Reservation, error) {
	if req.Composition == nil {
		return nil, errors.New("commit request without composition")
	}

	reservation := &domain.Reservation{
		ConfirmationCode: uuid.New(),
		ShowtimeID:       req.ShowtimeID,
		SessionID:        req.SessionID,
		ContactEmail:     req.ContactEmail,
		Type:             req.Composition.Type(),
		Tickets:          req.Composition.Tickets(),
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		showtime, err := getShowtimeHeader(ctx, tx, req.ShowtimeID, true)
		if err != nil {
			return err
		}

		switch c := req.Composition.(type) {
		case domain.GeneralAdmission:
			reservation.TotalPrice = showtime.BasePrice.Mul(decimal.NewFromInt(int64(c.Counts.Total())))

		case domain.SeatAssignment:
			snapshots, err := p.snapshotSeats(ctx, tx, showtime, c)
			if err != nil {
				return err
			}

			reservation.Seats = snapshots
			reservation.TotalPrice = decimal.Zero
			for _, s := range snapshots {
				reservation.TotalPrice = reservation.TotalPrice.Add(s.PricePaid)
			}

		default:
			return fmt.Errorf("unsupported composition %T", req.Composition)
		}

		query := `
			INSERT INTO reservations (
				confirmation_code, showtime_id, session_id, contact_email, reservation_type,
				adult_count, minor_count, senior_count, total_price
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at
		`

		err = tx.QueryRow(
			ctx,
			query,
			reservation.ConfirmationCode,
			reservation.ShowtimeID,
			reservation.SessionID,
			reservation.ContactEmail,
			reservation.Type,
			reservation.Tickets.Adult,
			reservation.Tickets.Minor,
			reservation.Tickets.Senior,
			toNumeric(reservation.TotalPrice),
		).Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return err
		}

		if len(reservation.Seats) == 0 {
			return nil
		}

		rows := make([][]any, 0, len(reservation.Seats))
		for _, seat := range reservation.Seats {
			rows = append(rows, []any{
				reservation.ID,
				reservation.ShowtimeID,
				seat.SeatID,
				seat.RowLabel,
				seat.SeatNumber,
				string(seat.SeatType),
				string(seat.TicketType),
				toNumeric(seat.PricePaid),
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"reservation_seats"},
			[]string{"reservation_id", "showtime_id", "seat_id", "row_label", "seat_number", "seat_type", "ticket_type", "price_paid"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, p.conflictFromUniqueViolation(ctx, req)
		}

		return nil, err
	}

	return reservation, nil
}

// snapshotSeats freezes the requested seats as they are now. Ticket types are
// handed out in selection order: adults, then minors, then seniors.
func (p *PostgresReservationRepository) snapshotSeats(
	ctx context.Context,
	tx pgx.Tx,
	showtime *domain.ShowtimeSeats,
	assignment domain.SeatAssignment) ([]domain.ReservedSeatSnapshot, error) {

	query := `
		SELECT
			se.id,
			se.row_label,
			se.seat_number,
			se.seat_type,
			se.extra_price,
			rs.seat_id IS NULL AS available
		FROM seats se
		LEFT JOIN reservation_seats rs
			ON rs.showtime_id = $1 AND rs.seat_id = se.id
		WHERE se.hall_id = $2 AND se.id = ANY($3)
	`

	rows, err := tx.Query(ctx, query, showtime.ShowtimeID, showtime.HallID, assignment.SeatIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := make(map[int]seatState, len(assignment.SeatIDs))

	for rows.Next() {
		var (
			state      seatState
			extraPrice pgtype.Numeric
		)

		err = rows.Scan(
			&state.snapshot.SeatID,
			&state.snapshot.RowLabel,
			&state.snapshot.SeatNumber,
			&state.snapshot.SeatType,
			&extraPrice,
			&state.available,
		)
		if err != nil {
			return nil, err
		}

		state.snapshot.PricePaid = showtime.BasePrice.Add(toDecimal(extraPrice))
		states[state.snapshot.SeatID] = state
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	var conflicts []int
	tickets := assignment.Counts.Expand()
	snapshots := make([]domain.ReservedSeatSnapshot, 0, len(assignment.SeatIDs))

	for i, seatID := range assignment.SeatIDs {
		state, ok := states[seatID]
		if !ok {
			return nil, fmt.Errorf("%w: seat %d, showtime %d", domain.ErrSeatNotInShowtime, seatID, showtime.ShowtimeID)
		}

		if !state.available {
			conflicts = append(conflicts, seatID)
			continue
		}

		if i < len(tickets) {
			state.snapshot.TicketType = tickets[i]
		} else {
			state.snapshot.TicketType = domain.TicketTypeAdult
		}

		snapshots = append(snapshots, state.snapshot)
	}

	if len(conflicts) > 0 {
		return nil, &domain.SeatConflictError{ShowtimeID: showtime.ShowtimeID, SeatIDs: conflicts}
	}

	return snapshots, nil
}

// conflictFromUniqueViolation names the requested seats that another
// reservation holds after a unique index rejected the insert.
func (p *PostgresReservationRepository) conflictFromUniqueViolation(ctx context.Context, req domain.CommitRequest) error {
	conflict := &domain.SeatConflictError{ShowtimeID: req.ShowtimeID}

	assignment, ok := req.Composition.(domain.SeatAssignment)
	if !ok {
		return conflict
	}

	reserved, err := p.GetReservedSeatIDs(ctx, req.ShowtimeID)
	if err != nil {
		return errors.Join(conflict, err)
	}

	for _, id := range assignment.SeatIDs {
		if slices.Contains(reserved, id) {
			conflict.SeatIDs = append(conflict.SeatIDs, id)
		}
	}

	return conflict
}

func (p *PostgresReservationRepository) GetReservedSeatIDs(ctx context.Context, showtimeID int) ([]int, error) {
	query := `
		SELECT seat_id
		FROM reservation_seats
		WHERE showtime_id = $1
	`

	rows, err := p.db.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[int])
}

func (p *PostgresReservationRepository) GetByConfirmationCode(ctx context.Context, code uuid.UUID) (*domain.Reservation, error) {
	query := `
		SELECT
			id,
			confirmation_code,
			showtime_id,
			session_id,
			contact_email,
			reservation_type,
			adult_count,
			minor_count,
			senior_count,
			total_price,
			created_at
		FROM reservations
		WHERE confirmation_code = $1
	`

	var (
		r          domain.Reservation
		totalPrice pgtype.Numeric
	)

	err := p.db.QueryRow(ctx, query, code).Scan(
		&r.ID,
		&r.ConfirmationCode,
		&r.ShowtimeID,
		&r.SessionID,
		&r.ContactEmail,
		&r.Type,
		&r.Tickets.Adult,
		&r.Tickets.Minor,
		&r.Tickets.Senior,
		&totalPrice,
		&r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	r.TotalPrice = toDecimal(totalPrice)

	query = `
		SELECT seat_id, row_label, seat_number, seat_type, ticket_type, price_paid
		FROM reservation_seats
		WHERE reservation_id = $1
		ORDER BY seat_id
	`

	rows, err := p.db.Query(ctx, query, r.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s         domain.ReservedSeatSnapshot
			pricePaid pgtype.Numeric
		)

		err := rows.Scan(&s.SeatID, &s.RowLabel, &s.SeatNumber, &s.SeatType, &s.TicketType, &pricePaid)
		if err != nil {
			return nil, err
		}

		s.PricePaid = toDecimal(pricePaid)
		r.Seats = append(r.Seats, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &r, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
