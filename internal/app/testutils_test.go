package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/seatmap/api"
	"github.com/metinatakli/seatmap/internal/domain"
	"github.com/metinatakli/seatmap/internal/events"
	"github.com/metinatakli/seatmap/internal/mailer"
	"github.com/metinatakli/seatmap/internal/validator"
	"github.com/shopspring/decimal"
)

const testShowtimeID = 1

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			Env:     "test",
			HoldTTL: defaultHoldTTL,
		},
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		mailer:         mailer.NewMockMailer(),
		publisher:      &events.MockPublisher{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// setupTestSession loads a fresh session into the request and commits it, so
// the session has a token like it would after ensureSession.
func setupTestSession(t *testing.T, app *Application, r *http.Request) (*http.Request, string) {
	t.Helper()

	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyGuest.String(), true)

	token, _, err := app.sessionManager.Commit(ctx)
	if err != nil {
		t.Fatalf("Failed to commit session: %v", err)
	}

	return r.WithContext(ctx), token
}

type requestFunc func(method, url string, body any) (*httptest.ResponseRecorder, *http.Request)

// sessionRequests returns a request factory whose requests all share one
// committed session, along with the session token.
func sessionRequests(t *testing.T, app *Application) (requestFunc, string) {
	t.Helper()

	_, first := executeRequest(t, http.MethodGet, "/", nil)
	first, token := setupTestSession(t, app, first)
	ctx := first.Context()

	return func(method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
		w, r := executeRequest(t, method, url, body)
		return w, r.WithContext(ctx)
	}, token
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

// testShowtimeSeats is a hall with an aisle between x=1 and x=3 and a missing
// seat at (0, 1):
//
//	A1 A2 .. A3
//	.. B1 .. B2
func testShowtimeSeats() *domain.ShowtimeSeats {
	seat := func(id int, row string, number, x, y int, seatType domain.SeatType, extra int64) domain.ShowtimeSeat {
		extraPrice := decimal.NewFromInt(extra)

		return domain.ShowtimeSeat{
			Seat: domain.Seat{
				ID:         id,
				HallID:     2,
				RowLabel:   row,
				Number:     number,
				X:          x,
				Y:          y,
				Type:       seatType,
				ExtraPrice: extraPrice,
			},
			Price:     decimal.NewFromInt(10).Add(extraPrice),
			Available: true,
		}
	}

	return &domain.ShowtimeSeats{
		ShowtimeID:  testShowtimeID,
		TheaterID:   1,
		TheaterName: "Test Theater",
		MovieTitle:  "Test Movie",
		HallID:      2,
		HallName:    "Hall 2",
		StartTime:   time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC),
		BasePrice:   decimal.NewFromInt(10),
		Seats: []domain.ShowtimeSeat{
			seat(1, "A", 1, 0, 0, domain.SeatTypeStandard, 0),
			seat(2, "A", 2, 1, 0, domain.SeatTypeVIP, 5),
			seat(3, "A", 3, 3, 0, domain.SeatTypeStandard, 0),
			seat(4, "B", 1, 1, 1, domain.SeatTypeRecliner, 3),
			seat(5, "B", 2, 3, 1, domain.SeatTypeAccessible, 0),
		},
	}
}
