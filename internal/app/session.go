package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/seatmap/internal/selection"
)

type sessionKey string

const (
	SessionKeyGuest = sessionKey("guest")
)

func (s sessionKey) String() string {
	return string(s)
}

func selectionSessionKey(showtimeID int) sessionKey {
	return sessionKey(fmt.Sprintf("selection:%d", showtimeID))
}

func holdsSessionKey(showtimeID int) sessionKey {
	return sessionKey(fmt.Sprintf("holds:%d", showtimeID))
}

type contextKey string

const loggerContextKey = contextKey("logger")

func (app *Application) contextSetLogger(r *http.Request, logger *slog.Logger) *http.Request {
	ctx := context.WithValue(r.Context(), loggerContextKey, logger)
	return r.WithContext(ctx)
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}

// sessionInts stores a list of IDs under one session key. It backs the
// selection controller, so every change of the selection lands in the session.
type sessionInts struct {
	ctx            context.Context
	sessionManager *scs.SessionManager
	key            sessionKey
}

func (s sessionInts) Value() []int {
	ids, _ := s.sessionManager.Get(s.ctx, s.key.String()).([]int)
	return ids
}

func (s sessionInts) Set(ids []int) {
	if len(ids) == 0 {
		s.sessionManager.Remove(s.ctx, s.key.String())
		return
	}

	s.sessionManager.Put(s.ctx, s.key.String(), ids)
}

func (app *Application) sessionInts(r *http.Request, key sessionKey) sessionInts {
	return sessionInts{
		ctx:            r.Context(),
		sessionManager: app.sessionManager,
		key:            key,
	}
}

func (app *Application) selectionFor(r *http.Request, showtimeID int) *selection.Controller[int] {
	return selection.New[int](app.sessionInts(r, selectionSessionKey(showtimeID)))
}
