package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/metinatakli/seatmap/api"
	"github.com/metinatakli/seatmap/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultHoldTTL = 10 * time.Minute

// Holds every seat or none. Seats already held by the same session are
// refreshed, seats held by another session are returned and nothing is set.
var holdSeatsScript = redis.NewScript(`
	-- KEYS[1] = seat hold set of the showtime, KEYS[2..] = seat hold keys
	-- ARGV[1] = session ID, ARGV[2] = ttl in seconds, ARGV[3..] = seat IDs

	local conflicts = {}

	for i = 2, #KEYS do
		local owner = redis.call("GET", KEYS[i])
		if owner and owner ~= ARGV[1] then
			table.insert(conflicts, ARGV[i + 1])
		end
	end

	if #conflicts > 0 then
		return conflicts
	end

	for i = 2, #KEYS do
		redis.call("SET", KEYS[i], ARGV[1], "EX", ARGV[2])
		redis.call("SADD", KEYS[1], ARGV[i + 1])
	end

	return {}
`)

// Releases the holds owned by the session and leaves the others untouched.
var releaseSeatsScript = redis.NewScript(`
	-- KEYS[1] = seat hold set of the showtime, KEYS[2..] = seat hold keys
	-- ARGV[1] = session ID, ARGV[2..] = seat IDs

	local released = 0

	for i = 2, #KEYS do
		if redis.call("GET", KEYS[i]) == ARGV[1] then
			redis.call("DEL", KEYS[i])
			redis.call("SREM", KEYS[1], ARGV[i])
			released = released + 1
		end
	end

	return released
`)

// Cleans up expired holds of a showtime and returns the seats currently held
// by sessions other than ARGV[2].
var filterHeldSeatsScript = redis.NewScript(`
	local setKey = KEYS[1]
	local showtimeId = ARGV[1]
	local sessionId = ARGV[2]
	local cursor = "0"
	local batchSize = 100
	local expiredSeats = {}
	local heldSeats = {}

	repeat
		local result = redis.call("SSCAN", setKey, cursor, "COUNT", batchSize)
		cursor = result[1]
		local seatIds = result[2]

		for _, seatId in ipairs(seatIds) do
			local owner = redis.call("GET", "seat_hold:" .. showtimeId .. ":" .. seatId)
			if not owner then
				table.insert(expiredSeats, seatId)
			elseif owner ~= sessionId then
				table.insert(heldSeats, seatId)
			end
		end
	until cursor == "0"

	if #expiredSeats > 0 then
		redis.call("SREM", setKey, unpack(expiredSeats))
	end

	return heldSeats
`)

func seatHoldKey(showtimeID, seatID int) string {
	return fmt.Sprintf("seat_hold:%d:%d", showtimeID, seatID)
}

func seatHoldSetKey(showtimeID int) string {
	return fmt.Sprintf("seat_holds:%d", showtimeID)
}

func holdScriptKeys(showtimeID int, seatIDs []int) ([]string, []any) {
	keys := make([]string, 0, len(seatIDs)+1)
	ids := make([]any, len(seatIDs))

	keys = append(keys, seatHoldSetKey(showtimeID))
	for i, seatID := range seatIDs {
		keys = append(keys, seatHoldKey(showtimeID, seatID))
		ids[i] = strconv.Itoa(seatID)
	}

	return keys, ids
}

// tryHoldSeats holds seatIDs for the session. A seat held by another session
// yields a *domain.SeatConflictError naming the contested seats.
func (app *Application) tryHoldSeats(ctx context.Context, showtimeID int, seatIDs []int, sessionID string) error {
	keys, ids := holdScriptKeys(showtimeID, seatIDs)
	args := append([]any{sessionID, int(app.config.HoldTTL.Seconds())}, ids...)

	conflicts, err := holdSeatsScript.Run(ctx, app.redis, keys, args...).Int64Slice()
	if err != nil {
		return fmt.Errorf("failed to run holdSeats script: %w", err)
	}

	if len(conflicts) > 0 {
		conflict := &domain.SeatConflictError{ShowtimeID: showtimeID}
		for _, id := range conflicts {
			conflict.SeatIDs = append(conflict.SeatIDs, int(id))
		}

		return conflict
	}

	return nil
}

func (app *Application) releaseSeats(ctx context.Context, showtimeID int, seatIDs []int, sessionID string) error {
	if len(seatIDs) == 0 {
		return nil
	}

	keys, ids := holdScriptKeys(showtimeID, seatIDs)
	args := append([]any{sessionID}, ids...)

	err := releaseSeatsScript.Run(ctx, app.redis, keys, args...).Err()
	if err != nil {
		return fmt.Errorf("failed to run releaseSeats script: %w", err)
	}

	return nil
}

// heldSeatIDs returns the seats of the showtime held by other sessions.
func (app *Application) heldSeatIDs(ctx context.Context, showtimeID int, sessionID string) ([]int, error) {
	cmd := filterHeldSeatsScript.Run(ctx, app.redis, []string{seatHoldSetKey(showtimeID)}, showtimeID, sessionID)

	held, err := cmd.Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to run filterHeldSeats script: %w", err)
	}

	seatIDs := make([]int, len(held))
	for i, id := range held {
		seatIDs[i] = int(id)
	}

	return seatIDs, nil
}

func (app *Application) HoldSeats(w http.ResponseWriter, r *http.Request, showtimeID int) {
	logger := app.contextGetLogger(r)

	if showtimeID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("showtime ID must be greater than zero"))
		return
	}

	seatIDs := app.selectionFor(r, showtimeID).IDs()
	if len(seatIDs) == 0 {
		app.badRequestResponse(w, r, fmt.Errorf("select at least one seat before holding"))
		return
	}

	sessionID := app.sessionManager.Token(r.Context())

	showtimeSeats, err := app.seatRepo.GetSeatsByShowtime(r.Context(), showtimeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	availability := showtimeSeats.Availability()

	var reserved []int
	for _, id := range seatIDs {
		available, ok := availability[id]
		if !ok {
			logger.Warn("hold rejected: seat does not belong to the showtime", "seat_id", id)
			app.notFoundResponseWithErr(w, r, fmt.Errorf("seat %d does not belong to the showtime", id))
			return
		}

		if !available {
			reserved = append(reserved, id)
		}
	}

	if len(reserved) > 0 {
		logger.Warn("hold conflict: selected seats are already reserved", "seat_ids", reserved)
		app.seatConflictResponse(w, r, reserved)
		return
	}

	holds := app.sessionInts(r, holdsSessionKey(showtimeID))

	stale := slices.DeleteFunc(slices.Clone(holds.Value()), func(id int) bool {
		return slices.Contains(seatIDs, id)
	})

	err = app.releaseSeats(r.Context(), showtimeID, stale, sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.tryHoldSeats(r.Context(), showtimeID, seatIDs, sessionID)
	if err != nil {
		var conflict *domain.SeatConflictError

		switch {
		case errors.As(err, &conflict):
			holds.Set(nil)
			logger.Warn("hold conflict: seats are held by another session", "seat_ids", conflict.SeatIDs)
			app.seatConflictResponse(w, r, conflict.SeatIDs)
		default:
			app.serverErrorResponse(w, r, fmt.Errorf("seats couldn't be held: %w", err))
		}

		return
	}

	holds.Set(seatIDs)

	resp := api.HoldResponse{
		ShowtimeId: showtimeID,
		SeatIds:    seatIDs,
		HoldTime:   int(app.config.HoldTTL.Seconds()),
		ExpiresAt:  time.Now().Add(app.config.HoldTTL).UTC(),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ReleaseHolds(w http.ResponseWriter, r *http.Request, showtimeID int) {
	if showtimeID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("showtime ID must be greater than zero"))
		return
	}

	err := app.releaseSessionHolds(r, showtimeID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) releaseSessionHolds(r *http.Request, showtimeID int) error {
	holds := app.sessionInts(r, holdsSessionKey(showtimeID))
	sessionID := app.sessionManager.Token(r.Context())

	err := app.releaseSeats(r.Context(), showtimeID, holds.Value(), sessionID)
	if err != nil {
		return err
	}

	holds.Set(nil)

	return nil
}
