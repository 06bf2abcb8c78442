// Package auth implements service-to-service authentication for the gateway
// API. The chat front-end authenticates once with its client credentials and
// receives a short-lived JWT for subsequent calls.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/config"
)

// Credentials are the client id and secret presented on /auth/token.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

var (
	// ErrInvalidCredentials is returned when the presented client id or
	// secret does not match the configured service client.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for malformed, expired, or forged tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// Service validates service-client credentials and issues and verifies the
// gateway's bearer tokens.
type Service struct {
	clientID        string
	clientSecret    string
	jwtSecret       []byte
	expiry          time.Duration
	publicEndpoints []string
}

// NewService builds the auth service from the security config. The referenced
// environment variables must be set; a missing or short secret is a startup
// error rather than a runtime 401.
func NewService(cfg *config.SecurityConfig) (*Service, error) {
	clientID := os.Getenv(cfg.Security.Auth.ClientIDEnv)
	if clientID == "" {
		return nil, fmt.Errorf("NewService: %s is not set", cfg.Security.Auth.ClientIDEnv)
	}

	clientSecret := os.Getenv(cfg.Security.Auth.ClientSecretEnv)
	if len(clientSecret) < cfg.Security.Auth.MinSecretLength {
		return nil, fmt.Errorf("NewService: %s must be at least %d characters",
			cfg.Security.Auth.ClientSecretEnv, cfg.Security.Auth.MinSecretLength)
	}

	jwtSecret := os.Getenv(cfg.GetJWTSecretEnv())
	if len(jwtSecret) < 32 {
		return nil, fmt.Errorf("NewService: %s must be at least 32 characters", cfg.GetJWTSecretEnv())
	}

	return &Service{
		clientID:        clientID,
		clientSecret:    clientSecret,
		jwtSecret:       []byte(jwtSecret),
		expiry:          time.Duration(cfg.GetJWTExpiryHours()) * time.Hour,
		publicEndpoints: cfg.GetPublicEndpoints(),
	}, nil
}

// ValidateCredentials checks the presented credentials against the configured
// service client. Comparison is constant-time.
func (s *Service) ValidateCredentials(creds Credentials) error {
	idOK := subtle.ConstantTimeCompare([]byte(creds.ClientID), []byte(s.clientID))
	secretOK := subtle.ConstantTimeCompare([]byte(creds.ClientSecret), []byte(s.clientSecret))
	if idOK&secretOK != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken signs a new HS256 bearer token for the given client.
func (s *Service) IssueToken(clientID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": clientID,
		"iat": now.Unix(),
		"exp": now.Add(s.expiry).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("IssueToken: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token and returns its subject.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// IsPublicEndpoint reports whether a path skips authentication. Matching is
// by configured prefix.
func (s *Service) IsPublicEndpoint(path string) bool {
	for _, endpoint := range s.publicEndpoints {
		if strings.HasPrefix(path, endpoint) {
			return true
		}
	}
	return false
}
