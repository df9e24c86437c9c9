package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	key := []byte("test-secret")

	token, err := GenerateJWT(42, "cook@kitchen.test", "user", key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "cook@kitchen.test", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "kitchenops", claims.Issuer)
}

func TestValidateJWTWrongKey(t *testing.T) {
	token, err := GenerateJWT(1, "a@b.test", "admin", []byte("right-key"))
	require.NoError(t, err)

	_, err = ValidateJWT(token, []byte("wrong-key"))
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", []byte("key"))
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret", string(hash)))
	assert.False(t, CheckPasswordHash("wrong", string(hash)))
}
