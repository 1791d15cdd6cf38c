package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sunflix/backend/internal/auth"
	"github.com/sunflix/backend/internal/http/respond"
	"github.com/sunflix/backend/internal/storage"
)

type contextKey int

const userIDKey contextKey = iota

// UserID returns the authenticated user's ID placed in the context by
// RequireAuth, or "" when the request is unauthenticated.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// RequireAuth verifies the bearer token and stores the embedded user ID
// in the request context. It does not re-check the user record; handlers
// needing freshness fetch it themselves.
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := tokens.Verify(bearerToken(r))
			if err != nil {
				if errors.Is(err, auth.ErrNoToken) {
					respond.Error(w, http.StatusUnauthorized, "No token provided")
					return
				}
				respond.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the caller's stored role. The user record
// is re-read on every request so a role change takes effect immediately.
// An absent user and a wrong role produce the same response.
func RequireRole(users storage.UserStore, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := users.FindUserByID(r.Context(), UserID(r.Context()))
			if err != nil {
				if !errors.Is(err, storage.ErrNotFound) {
					log.Error().Err(err).Msg("role check: fetch user")
				}
				respond.Error(w, http.StatusForbidden, "Unauthorized")
				return
			}
			if user.Role != role {
				respond.Error(w, http.StatusForbidden, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
