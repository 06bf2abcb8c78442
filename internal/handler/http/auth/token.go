// Package auth exposes the token endpoint and the Authz middleware that
// protects the gateway's browse and history routes.
package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/requestid"
	authservice "github.com/kirillmaiorovf-lgtm/movie-bot/internal/service/auth"
)

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// TokenHandler authenticates the service client and issues a bearer token.
func TokenHandler(svc *authservice.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		var req tokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("token request rejected",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			RecordAuthDuration(time.Since(start).Seconds())
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		creds := authservice.Credentials{
			ClientID:     req.ClientID,
			ClientSecret: req.ClientSecret,
		}
		if err := svc.ValidateCredentials(creds); err != nil {
			logger.Warn("token request rejected",
				slog.String("reason", "invalid_credentials"),
				slog.String("client_id", req.ClientID),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			RecordAuthDuration(time.Since(start).Seconds())
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		signed, err := svc.IssueToken(req.ClientID)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			RecordAuthDuration(time.Since(start).Seconds())
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("token issued",
			slog.String("client_id", req.ClientID),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest("success")
		RecordAuthDuration(time.Since(start).Seconds())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed}); err != nil {
			logger.Error("failed to encode token response", slog.String("error", err.Error()))
		}
	}
}
