// Package requestid assigns each request an ID that follows it through
// logs and response headers. The chat frontend passes its own IDs so a
// user report can be matched to server logs.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDKey is the context key under which the ID is stored.
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader is the header used for inbound and outbound IDs.
	RequestIDHeader = "X-Request-ID"
)

// FromContext returns the request ID, or "" when none was set.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRequestID stores a request ID on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Middleware keeps a caller-provided X-Request-ID or mints a UUID when
// the header is absent, then puts the ID on the context and echoes it
// in the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
