package api

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/lilhale/sitestore/pkg/domain"
)

type contextKey string

// SessionUserKey is the request-context key the middleware stores the
// authenticated user under.
const SessionUserKey contextKey = "sessionUser"

// RequireAuth wraps a handler and rejects requests without a valid
// "Bearer <token>" Authorization header.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Printf("WARN: Missing Authorization header for %s %s", r.Method, r.URL.Path)
			WriteJSONError(w, http.StatusUnauthorized, "missing token")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			log.Printf("WARN: Invalid Authorization header format for %s %s", r.Method, r.URL.Path)
			WriteJSONError(w, http.StatusUnauthorized, "invalid token format")
			return
		}

		user, err := h.sessions.ValidateToken(parts[1])
		if err != nil {
			log.Printf("WARN: Invalid session token for %s %s: %v", r.Method, r.URL.Path, err)
			WriteJSONError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), SessionUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionUserFrom returns the authenticated user placed in the context by
// RequireAuth, or nil.
func sessionUserFrom(r *http.Request) *domain.SessionUser {
	user, _ := r.Context().Value(SessionUserKey).(*domain.SessionUser)
	return user
}
