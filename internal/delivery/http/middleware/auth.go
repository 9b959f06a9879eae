package middleware

import (
	"context"
	"net/http"
	"strings"

	"communitycalendar/internal/delivery/http/helpers"
	"communitycalendar/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// user ID in the request context. A missing or invalid token gets a 401 before
// the wrapped handler runs, so no side effect can precede the auth check.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			r = r.WithContext(SetUserID(r.Context(), userID))
			next(w, r)
		}
	}
}
