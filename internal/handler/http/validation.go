package http

import (
	"net/http"
)

// InputValidation rejects oversized request inputs before any handler
// runs. Browse requests carry at most a genre name and a user ID, so
// anything near these limits is garbage or abuse:
//
//   - Authorization header over 8KB (JWTs are well under 1KB)
//   - URI path over 2KB
//   - request body over 10MB (the per-route body limit is far smaller)
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if len(authHeader) > 8192 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"authorization header too large"}`))
				return
			}

			if len(r.URL.Path) > 2048 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestURITooLong)
				_, _ = w.Write([]byte(`{"error":"URI too long"}`))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, 10<<20)

			next.ServeHTTP(w, r)
		})
	}
}
