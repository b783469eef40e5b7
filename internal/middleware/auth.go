package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jobsethiopia/jobsethiopia-go/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

// Gate returns middleware that resolves the session cookie once per
// request, stores the payload in the request context, and enforces
// admin-area access:
//
//   - /api/admin paths without a valid session get 401 JSON;
//   - other /admin paths without a valid session redirect to /login;
//   - /login with a valid session redirects to /admin;
//   - everything else passes through unmodified.
//
// Expired tokens are detected lazily here on the next request.
func Gate(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload := store.Read(r)
			path := r.URL.Path

			switch {
			case payload == nil && strings.HasPrefix(path, "/api/admin"):
				writeJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			case payload == nil && strings.HasPrefix(path, "/admin"):
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			case payload != nil && path == "/login":
				http.Redirect(w, r, "/admin", http.StatusFound)
				return
			}

			if payload != nil {
				r = r.WithContext(context.WithValue(r.Context(), sessionKey, payload))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromContext extracts the session payload resolved by Gate, or
// nil for an anonymous request.
func SessionFromContext(ctx context.Context) *session.Payload {
	payload, _ := ctx.Value(sessionKey).(*session.Payload)
	return payload
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
