package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Aditya4234/LMS-project/internal/auth"
	"github.com/Aditya4234/LMS-project/internal/httperr"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
	RoleKey   contextKey = "role"
)

// UserID returns the authenticated user id put in the context by Auth, or ""
// on an unauthenticated request.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(UserIDKey).(string)
	return id
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
	return parts[1]
}

// Auth rejects requests without a valid bearer token and attaches the decoded
// identity to the request context.
func Auth(mgr *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				httperr.Write(w, httperr.NewAuth("Authorization token required"))
				return
			}

			claims, err := mgr.Verify(token)
			if err != nil {
				httperr.Write(w, httperr.NewAuth("Invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole is Auth plus a role gate; a valid token with the wrong role
// gets a 403.
func RequireRole(mgr *auth.Manager, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return Auth(mgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ := r.Context().Value(RoleKey).(string)
			if got != role {
				httperr.JSON(w, http.StatusForbidden, map[string]any{"message": "Forbidden"})
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
