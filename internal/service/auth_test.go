package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutricheck/backend/internal/service"
	"github.com/nutricheck/backend/internal/testhelpers"
	"github.com/nutricheck/backend/internal/types"
)

func setupAuthTest(t *testing.T) *service.AuthService {
	return service.NewAuthService(testhelpers.SetupSQLite(t), "test-secret")
}

func TestAuthService_Signup(t *testing.T) {
	authSvc := setupAuthTest(t)
	ctx := context.Background()

	user, err := authSvc.Signup(ctx, "  Cook@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)

	_, err = authSvc.Signup(ctx, "cook@example.com", "other")
	assert.ErrorIs(t, err, service.ErrUserExists)

	_, err = authSvc.Signup(ctx, "", "password123")
	assert.ErrorIs(t, err, service.ErrMissingCredentials)

	_, err = authSvc.Signup(ctx, "new@example.com", "")
	assert.ErrorIs(t, err, service.ErrMissingCredentials)
}

func TestAuthService_Login(t *testing.T) {
	authSvc := setupAuthTest(t)
	ctx := context.Background()

	created, err := authSvc.Signup(ctx, "cook@example.com", "password123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, user, err := authSvc.Login(ctx, "COOK@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)

		claims, err := authSvc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, claims.UserID)
		assert.Equal(t, "cook@example.com", claims.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := authSvc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := authSvc.Login(ctx, "cook@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidPassword)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := authSvc.Login(ctx, "cook@example.com", "")
		assert.ErrorIs(t, err, service.ErrMissingCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	authSvc := setupAuthTest(t)

	user, err := authSvc.Signup(context.Background(), "cook@example.com", "password123")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := service.NewAuthService(nil, "other-secret")
		token, err := other.GenerateToken(user)
		require.NoError(t, err)

		_, err = authSvc.ValidateToken(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		claims := types.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
			UserID: user.ID,
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = authSvc.ValidateToken(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := authSvc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})
}
