package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "http://localhost:8081", cfg.CORSOrigin)
	assert.Equal(t, 20*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "flightdeck-backend", cfg.JWTIssuer)
	assert.Equal(t, 14*24*time.Hour, cfg.RefreshTokenExpiryDuration)
	assert.Equal(t, "accessToken", cfg.AccessTokenCookieName)
	assert.Equal(t, "refreshToken", cfg.RefreshTokenCookieName)
	assert.Equal(t, "https://api.open-meteo.com", cfg.WeatherAPIBaseURL)
	assert.Equal(t, "https://api.frankfurter.app", cfg.ExchangeAPIBaseURL)
	assert.Equal(t, "https://opensky-network.org", cfg.FlightAPIBaseURL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "override-secret")
	t.Setenv("JWT_EXPIRY_DURATION", "5m")
	t.Setenv("REFRESH_TOKEN_EXPIRY_DURATION", "24h")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "override-secret", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenExpiryDuration)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")
	t.Setenv("REFRESH_TOKEN_EXPIRY_DURATION", "also-bad")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 20*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, 14*24*time.Hour, cfg.RefreshTokenExpiryDuration)
}
