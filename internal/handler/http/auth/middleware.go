package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
	authservice "github.com/kirillmaiorovf-lgtm/movie-bot/internal/service/auth"
)

type ctxKey string

const ctxClient ctxKey = "client"

// Authz requires a valid bearer token on every route that is not configured
// as public. All methods are protected equally; there is no read-only bypass.
func Authz(svc *authservice.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if svc.IsPublicEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			client, err := verifyBearer(svc, r.Header.Get("Authorization"))
			RecordAuthzCheckDuration(time.Since(start).Seconds())
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxClient, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyBearer(svc *authservice.Service, authz string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errors.New("missing bearer token")
	}
	return svc.VerifyToken(strings.TrimPrefix(authz, prefix))
}

// ClientFromContext returns the authenticated client id, if any.
func ClientFromContext(ctx context.Context) string {
	client, _ := ctx.Value(ctxClient).(string)
	return client
}
