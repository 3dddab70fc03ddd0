package utils

import (
	"testing"
	"time"

	"github.com/kalyan0128/Humanlike-awarebot/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", TokenTTLHours: 2}

	token, err := GenerateToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "awarebot-backend", claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, time.Hour)
	assert.LessOrEqual(t, ttl, 2*time.Hour)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "first-secret", TokenTTLHours: 1}
	token, err := GenerateToken(7)
	assert.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestGenerateToken_UniqueJTI(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", TokenTTLHours: 1}

	first, err := GenerateToken(1)
	assert.NoError(t, err)
	second, err := GenerateToken(1)
	assert.NoError(t, err)

	a, err := ValidateToken(first)
	assert.NoError(t, err)
	b, err := ValidateToken(second)
	assert.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
