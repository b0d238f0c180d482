package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ze-Austin/ze-blog/internal/auth"
	"github.com/Ze-Austin/ze-blog/internal/repository"
	"github.com/Ze-Austin/ze-blog/internal/service"
	"github.com/Ze-Austin/ze-blog/internal/session"
)

// CurrentUser resolves the session cookie to a full user record and
// stores it on the request context. Requests without a valid session
// continue as anonymous; resolution failures are logged, never fatal,
// so a flaky session store degrades to logged-out rather than a 500.
func CurrentUser(sessions *session.Manager, accounts *service.AccountService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.UserID(r)
			if err != nil {
				if !errors.Is(err, session.ErrNoSession) {
					logger.Warn("session lookup failed",
						slog.String("request_id", GetRequestID(r.Context())),
						slog.String("error", err.Error()),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			user, err := accounts.GetUser(r.Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					// Stale session pointing at a user that no
					// longer exists. Drop it and continue anonymous.
					logger.Warn("stale session",
						slog.String("request_id", GetRequestID(r.Context())),
						slog.Int64("user_id", userID),
					)
					if err := sessions.Logout(w, r); err != nil {
						logger.Warn("stale session cleanup failed",
							slog.String("error", err.Error()),
						)
					}
				} else {
					// Transient store failure. Keep the session so
					// the user is still logged in once the store
					// recovers; only this request runs anonymous.
					logger.Warn("user lookup failed",
						slog.String("request_id", GetRequestID(r.Context())),
						slog.Int64("user_id", userID),
						slog.String("error", err.Error()),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin redirects anonymous requests to the login page.
// Must run after CurrentUser.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.UserFromContext(r.Context()) == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
