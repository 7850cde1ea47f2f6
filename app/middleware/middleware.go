package appMiddleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/FACorreiaa/go-trip-itinerary/internal/api"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/session"
)

type contextKey string

const SessionKey contextKey = "session"

// SessionLookup finds a session by id.
type SessionLookup interface {
	Get(id string) (*session.Session, error)
}

// SessionCtx resolves the {sessionID} URL parameter and stores the session in the
// request context. Unknown ids get a 404 before the handler runs.
func SessionCtx(store SessionLookup) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := store.Get(chi.URLParam(r, "sessionID"))
			if err != nil {
				api.WriteError(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	return sess, ok
}

// RateLimit limits requests per client IP. A non-positive limit disables it.
func RateLimit(requests int, window time.Duration) func(next http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			api.ErrorResponse(w, r, http.StatusTooManyRequests, "Too many requests, slow down")
		}),
	)
}
