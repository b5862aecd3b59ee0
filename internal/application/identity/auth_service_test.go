package identity

import (
	"context"
	"testing"
	"time"

	"github.com/rentops/backend/internal/domain/identity"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/rentops/backend/internal/infrastructure/auth"
	"github.com/rentops/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-signing-tokens",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "rentops-test",
	})
}

func newActiveUser(t *testing.T, username, password string) *identity.User {
	t.Helper()
	u, err := identity.NewUser(username, username+"@example.com", password)
	require.NoError(t, err)
	return u
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("returns token pair on valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, newTestJWTService(), zap.NewNop())

		user := newActiveUser(t, "dispatcher", "s3cret-pass")
		userRepo.On("FindByUsername", ctx, "dispatcher").Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		resp, err := service.Login(ctx, LoginRequest{Username: "dispatcher", Password: "s3cret-pass"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "dispatcher", resp.User.Username)
		require.NotNil(t, user.LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, newTestJWTService(), zap.NewNop())

		user := newActiveUser(t, "dispatcher", "s3cret-pass")
		userRepo.On("FindByUsername", ctx, "dispatcher").Return(user, nil)

		_, err := service.Login(ctx, LoginRequest{Username: "dispatcher", Password: "wrong"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("unknown user maps to invalid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, newTestJWTService(), zap.NewNop())

		userRepo.On("FindByUsername", ctx, "ghost").Return(nil, shared.ErrNotFound)

		_, err := service.Login(ctx, LoginRequest{Username: "ghost", Password: "whatever"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		// Unknown usernames are indistinguishable from bad passwords
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("deactivated user cannot log in", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, newTestJWTService(), zap.NewNop())

		user := newActiveUser(t, "dispatcher", "s3cret-pass")
		require.NoError(t, user.Deactivate())
		userRepo.On("FindByUsername", ctx, "dispatcher").Return(user, nil)

		_, err := service.Login(ctx, LoginRequest{Username: "dispatcher", Password: "s3cret-pass"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "USER_DEACTIVATED", domainErr.Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("issues fresh pair for valid refresh token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		jwtService := newTestJWTService()
		service := NewAuthService(userRepo, jwtService, zap.NewNop())

		user := newActiveUser(t, "dispatcher", "s3cret-pass")
		pair, err := jwtService.GenerateTokenPair(user.ID, user.Username)
		require.NoError(t, err)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		resp, err := service.Refresh(ctx, RefreshRequest{RefreshToken: pair.RefreshToken})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		jwtService := newTestJWTService()
		service := NewAuthService(userRepo, jwtService, zap.NewNop())

		user := newActiveUser(t, "dispatcher", "s3cret-pass")
		pair, err := jwtService.GenerateTokenPair(user.ID, user.Username)
		require.NoError(t, err)

		_, err = service.Refresh(ctx, RefreshRequest{RefreshToken: pair.AccessToken})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_REFRESH_TOKEN", domainErr.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, newTestJWTService(), zap.NewNop())

		_, err := service.Refresh(ctx, RefreshRequest{RefreshToken: "not-a-jwt"})

		require.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("changes password with correct old password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, newTestJWTService(), zap.NewNop())

		user := newActiveUser(t, "dispatcher", "old-pass-123")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		err := service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			OldPassword: "old-pass-123",
			NewPassword: "new-pass-456",
		})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("new-pass-456"))
		assert.False(t, user.VerifyPassword("old-pass-123"))
	})

	t.Run("wrong old password rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, newTestJWTService(), zap.NewNop())

		user := newActiveUser(t, "dispatcher", "old-pass-123")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err := service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			OldPassword: "nope",
			NewPassword: "new-pass-456",
		})

		require.Error(t, err)
		userRepo.AssertNotCalled(t, "Save")
	})
}
