package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flbahai/community/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.SetForTesting(config.AppConfig{
		JWTSecret:      "test-secret",
		AdminUsernames: []string{"site-admin"},
	})

	token, err := GenerateToken(7, "jane", "Jane", "Doe", "jane@example.com", "", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "jane", claims.Username)
	assert.Equal(t, "Jane", claims.FirstName)
	assert.Equal(t, "Doe", claims.LastName)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Empty(t, claims.Role)
}

func TestTokenCarriesRoleClaim(t *testing.T) {
	config.SetForTesting(config.AppConfig{
		JWTSecret:      "test-secret",
		AdminUsernames: []string{"site-admin"},
	})

	role := RoleFor("site-admin")
	require.Equal(t, RoleAdmin, role)

	token, err := GenerateToken(1, "site-admin", "", "", "", role, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	config.SetForTesting(config.AppConfig{JWTSecret: "test-secret"})

	token, err := GenerateToken(1, "jane", "", "", "", "", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	config.SetForTesting(config.AppConfig{JWTSecret: "test-secret"})

	token, err := GenerateToken(1, "jane", "", "", "", "", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestRoleFor(t *testing.T) {
	config.SetForTesting(config.AppConfig{AdminUsernames: []string{"Admin-One", " admin-two "}})

	assert.Equal(t, RoleAdmin, RoleFor("admin-one"))
	assert.Equal(t, RoleAdmin, RoleFor("ADMIN-TWO"))
	assert.Empty(t, RoleFor("jane"))
	assert.Empty(t, RoleFor(""))
}
