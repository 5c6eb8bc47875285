package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmalhotra23/flightdeck_backend/internal/utils"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
	testIssuer        = "flightdeck-test"
)

func TestGenerateJWT_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := utils.GenerateJWT("user-123", testAccessSecret, 20*time.Minute, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testAccessSecret)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(20*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWT_TokensAreUnique(t *testing.T) {
	t.Parallel()

	first, err := utils.GenerateJWT("user-123", testRefreshSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	second, err := utils.GenerateJWT("user-123", testRefreshSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	// Rotation depends on two refresh tokens minted back to back differing.
	assert.NotEqual(t, first, second)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := utils.GenerateJWT("user-123", testAccessSecret, 20*time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testRefreshSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	t.Parallel()

	token, err := utils.GenerateJWT("user-123", testAccessSecret, -time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testAccessSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	t.Parallel()

	_, err := utils.ParseAndValidateJWT("not-a-token", testAccessSecret)
	require.Error(t, err)
}
