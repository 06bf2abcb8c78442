package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SecurityConfig holds the gateway's auth settings: the service client the
// chat front-end authenticates as, which paths skip auth, and JWT issuance.
type SecurityConfig struct {
	Security struct {
		Auth struct {
			ClientIDEnv     string `yaml:"client_id_env"`
			ClientSecretEnv string `yaml:"client_secret_env"`
			MinSecretLength int    `yaml:"min_secret_length"`
		} `yaml:"auth"`
		PublicEndpoints []string `yaml:"public_endpoints"`
		JWT             struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"jwt"`
	} `yaml:"security"`
}

// DefaultSecurityConfig returns the built-in security settings used when no
// config file is supplied.
func DefaultSecurityConfig() *SecurityConfig {
	var cfg SecurityConfig
	cfg.Security.Auth.ClientIDEnv = "SERVICE_CLIENT_ID"
	cfg.Security.Auth.ClientSecretEnv = "SERVICE_CLIENT_SECRET"
	cfg.Security.Auth.MinSecretLength = 16
	cfg.Security.PublicEndpoints = []string{"/healthz", "/metrics", "/auth/token"}
	cfg.Security.JWT.SecretEnv = "JWT_SECRET"
	cfg.Security.JWT.ExpiryHours = 1
	return &cfg
}

// LoadSecurityConfig loads security configuration from a YAML file.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Auth.ClientIDEnv == "" {
		return fmt.Errorf("auth client_id_env is required")
	}
	if config.Security.Auth.ClientSecretEnv == "" {
		return fmt.Errorf("auth client_secret_env is required")
	}
	if config.Security.Auth.MinSecretLength < 16 {
		return fmt.Errorf("min_secret_length must be at least 16")
	}

	if config.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if config.Security.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}

	return nil
}

// GetPublicEndpoints returns the list of public endpoint prefixes.
func (c *SecurityConfig) GetPublicEndpoints() []string {
	return c.Security.PublicEndpoints
}

// GetJWTSecretEnv returns the environment variable name for the JWT secret.
func (c *SecurityConfig) GetJWTSecretEnv() string {
	return c.Security.JWT.SecretEnv
}

// GetJWTExpiryHours returns the JWT expiry time in hours.
func (c *SecurityConfig) GetJWTExpiryHours() int {
	return c.Security.JWT.ExpiryHours
}
