package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, token, key string) *Claims {
	t.Helper()

	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(key), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	return claims
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("signs with the API token and carries the user id", func(t *testing.T) {
		t.Parallel()

		token, err := GenerateToken("eu1-secret", "user-42")
		require.NoError(t, err)

		claims := parse(t, token, "eu1-secret")
		assert.Equal(t, "user-42", claims.Name)
		require.NotNil(t, claims.IssuedAt)
		require.NotNil(t, claims.ExpiresAt)
		assert.Equal(t, TokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	})

	t.Run("rejects verification with another key", func(t *testing.T) {
		t.Parallel()

		token, err := GenerateToken("eu1-secret", "user-42")
		require.NoError(t, err)

		_, err = jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte("other"), nil
		})
		require.Error(t, err)
	})

	t.Run("requires an API token", func(t *testing.T) {
		t.Parallel()

		token, err := GenerateToken("", "user-42")
		require.ErrorIs(t, err, ErrSigningKeyRequired)
		assert.Empty(t, token)
	})
}

func TestGenerateTokenAt(t *testing.T) {
	t.Parallel()

	now := time.Now().Truncate(time.Second)

	token, err := generateTokenAt("key", "user", now)
	require.NoError(t, err)

	claims := parse(t, token, "key")
	assert.True(t, claims.IssuedAt.Equal(now))
	assert.True(t, claims.ExpiresAt.Equal(now.Add(TokenTTL)))

	again, err := generateTokenAt("key", "user", now)
	require.NoError(t, err)
	assert.Equal(t, token, again)
}
