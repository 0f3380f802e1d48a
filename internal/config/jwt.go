package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds the shared-secret settings for API token signing and
// validation. There are no user accounts; every token is minted from the
// same secret.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads the token settings from the environment: JWT_SECRET
// (required) and JWT_EXPIRATION_HOURS (default 24, minimum 1).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours := 24
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
		}
		hours = parsed
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", hours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: hours}, nil
}
