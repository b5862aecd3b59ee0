package auth

import (
	"testing"
	"time"

	"github.com/rentops/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(accessTTL time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "unit-test-signing-secret",
		AccessTokenExpiration:  accessTTL,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "rentops-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestService(15 * time.Minute)
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(userID, "dispatcher")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	t.Run("access token round trip", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "dispatcher", claims.Username)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)

		parsed, err := claims.GetUserUUID()
		require.NoError(t, err)
		assert.Equal(t, userID, parsed)
	})

	t.Run("refresh token round trip", func(t *testing.T) {
		claims, err := service.ValidateRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		_, err := service.ValidateAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)

		_, err = service.ValidateRefreshToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})
}

func TestJWTService_ValidateAccessToken_Errors(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		service := newTestService(-time.Minute)
		pair, err := service.GenerateTokenPair(uuid.New(), "dispatcher")
		require.NoError(t, err)

		_, err = service.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		service := newTestService(15 * time.Minute)
		pair, err := service.GenerateTokenPair(uuid.New(), "dispatcher")
		require.NoError(t, err)

		other := NewJWTService(config.JWTConfig{
			Secret:                 "a-different-secret",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: 24 * time.Hour,
			Issuer:                 "rentops-test",
		})
		_, err = other.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		service := newTestService(15 * time.Minute)
		_, err := service.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
