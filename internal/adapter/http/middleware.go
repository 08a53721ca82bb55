package adapthttp

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"amped/internal/app"
	"amped/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// authMiddleware validates the session cookie and stores the user on the
// request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.disableAuth {
			ctx := context.WithValue(r.Context(), userContextKey, &domain.User{ID: 1, Username: "dev"})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		cookie, err := r.Cookie("session")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := s.authSvc.ValidateSession(r.Context(), cookie.Value, r.UserAgent())
		if errors.Is(err, app.ErrSessionNotFound) || errors.Is(err, app.ErrSessionExpired) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFrom returns the authenticated user attached by authMiddleware.
func userFrom(r *http.Request) (*domain.User, bool) {
	u, ok := r.Context().Value(userContextKey).(*domain.User)
	return u, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs method, path, status and duration per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
