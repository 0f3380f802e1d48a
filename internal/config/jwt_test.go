package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "12")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 12, cfg.ExpirationHours)
}

func TestNewJWTConfigDefaultExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfigMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfigInvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Not a number", func(t *testing.T) {
		t.Setenv("JWT_EXPIRATION_HOURS", "abc")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("Below minimum", func(t *testing.T) {
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}
