package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("secret", 42, "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret", 1, "user", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT("other", token)
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT("secret", 1, "user", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT("secret", token)
	assert.Error(t, err)
}
