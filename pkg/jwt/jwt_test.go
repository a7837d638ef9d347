package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	util := NewJWTUtil("test-secret", time.Hour)

	token, err := util.GenerateToken("user123", "admin@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "fleet-admin", claims.Issuer)
	assert.Equal(t, "user123", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	util := NewJWTUtil("test-secret", time.Hour)
	other := NewJWTUtil("another-secret", time.Hour)

	token, err := util.GenerateToken("user123", "admin@example.com", "admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	util := NewJWTUtil("test-secret", time.Hour)

	_, err := util.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	util := NewJWTUtil("test-secret", time.Nanosecond)

	token, err := util.GenerateToken("user123", "admin@example.com", "admin")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = util.ValidateToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenKeepsFreshToken(t *testing.T) {
	util := NewJWTUtil("test-secret", 24*time.Hour)

	token, err := util.GenerateToken("user123", "admin@example.com", "admin")
	require.NoError(t, err)

	// More than an hour of validity left, the same token comes back.
	refreshed, err := util.RefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, token, refreshed)
}

func TestRefreshTokenReissuesNearExpiry(t *testing.T) {
	util := NewJWTUtil("test-secret", 30*time.Minute)

	token, err := util.GenerateToken("user123", "admin@example.com", "admin")
	require.NoError(t, err)

	refreshed, err := util.RefreshToken(token)
	require.NoError(t, err)

	claims, err := util.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestNewJWTUtilDefaults(t *testing.T) {
	util := NewJWTUtil("", 0)

	token, err := util.GenerateToken("user123", "admin@example.com", "viewer")
	require.NoError(t, err)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}
