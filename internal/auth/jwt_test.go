package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJWTSecretRejectsEmpty(t *testing.T) {
	assert.Error(t, InitJWTSecret(""))
}

func TestJWTRoundTrip(t *testing.T) {
	require.NoError(t, InitJWTSecret("test-secret"))

	tokenString, err := GenerateJWT(42, "alice", "owner")
	require.NoError(t, err)

	token, err := VerifyJWT(tokenString)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)

	assert.EqualValues(t, 42, claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "owner", claims["role"])
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	require.NoError(t, InitJWTSecret("first-secret"))

	tokenString, err := GenerateJWT(42, "alice", "renter")
	require.NoError(t, err)

	require.NoError(t, InitJWTSecret("second-secret"))

	_, err = VerifyJWT(tokenString)
	assert.Error(t, err)
}

func TestVerifyJWTGarbage(t *testing.T) {
	require.NoError(t, InitJWTSecret("test-secret"))

	_, err := VerifyJWT("not-a-token")
	assert.Error(t, err)
}
