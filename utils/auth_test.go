package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("senha_forte_123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha_forte_123", hash)

	assert.True(t, CheckPasswordHash("senha_forte_123", hash))
	assert.False(t, CheckPasswordHash("senha_errada", hash))
}

func TestGenerateToken_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(1)
	assert.Error(t, err)
}

func TestGenerateToken_ClaimsAndExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY_HOURS", "")

	tokenString, err := GenerateToken(42)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "42", claims["sub"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	remaining := time.Until(exp.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+5511987654321"))
	assert.True(t, ValidatePhone("(11) 98765-4321"))
	assert.False(t, ValidatePhone("not-a-phone"))
	assert.False(t, ValidatePhone(""))
}
