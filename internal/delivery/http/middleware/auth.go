package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// SetAdminID returns a context with the admin ID set. Used by auth middleware.
func SetAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDKey, adminID)
}

// AdminIDFromContext returns the authenticated admin ID from the context, if present.
func AdminIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the admin ID in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			adminID, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetAdminID(r.Context(), adminID))
			next(w, r)
		}
	}
}
