package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avc/payment-risk-gateway/internal/domain"
	"github.com/avc/payment-risk-gateway/internal/domain/mocks"
	"github.com/avc/payment-risk-gateway/internal/utils/jwt"
	"github.com/avc/payment-risk-gateway/internal/utils/password"
)

func newTestAuthService(t *testing.T) (*AuthService, *mocks.UserRepositoryMock) {
	t.Helper()
	userRepo := mocks.NewUserRepositoryMock(t)
	hasher := password.NewBCryptHasher(bcrypt.MinCost)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	return NewAuthService(userRepo, hasher, jwtManager, 8), userRepo
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration returns token", func(t *testing.T) {
		svc, userRepo := newTestAuthService(t)

		userRepo.EXPECT().CreateUser(mock.Anything, "alice", mock.Anything).
			Return(&domain.User{ID: 1, Login: "alice"}, nil)

		token, err := svc.Register(ctx, "alice", "longenough")

		require.NoError(t, err)
		assert.NotEmpty(t, token)

		userID, err := jwt.NewManager("test-secret", time.Hour).Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), userID)
	})

	t.Run("empty credentials", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Register(ctx, "", "longenough")
		assert.Error(t, err)

		_, err = svc.Register(ctx, "alice", "")
		assert.Error(t, err)
	})

	t.Run("short password", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Register(ctx, "alice", "short")

		assert.ErrorIs(t, err, ErrPasswordTooWeak)
	})

	t.Run("duplicate user passes sentinel through", func(t *testing.T) {
		svc, userRepo := newTestAuthService(t)

		userRepo.EXPECT().CreateUser(mock.Anything, "alice", mock.Anything).
			Return(nil, domain.ErrUserExists)

		_, err := svc.Register(ctx, "alice", "longenough")

		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		svc, userRepo := newTestAuthService(t)

		userRepo.EXPECT().CreateUser(mock.Anything, "alice", mock.Anything).
			Return(nil, errors.New("db down"))

		_, err := svc.Register(ctx, "alice", "longenough")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "auth service")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hashFor := func(t *testing.T, pwd string) string {
		t.Helper()
		hash, err := password.NewBCryptHasher(bcrypt.MinCost).Hash(pwd)
		require.NoError(t, err)
		return hash
	}

	t.Run("successful login returns token", func(t *testing.T) {
		svc, userRepo := newTestAuthService(t)

		userRepo.EXPECT().GetUserByLogin(mock.Anything, "alice").
			Return(&domain.User{ID: 1, Login: "alice", PasswordHash: hashFor(t, "longenough")}, nil)

		token, err := svc.Login(ctx, "alice", "longenough")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("unknown user maps to invalid credentials", func(t *testing.T) {
		svc, userRepo := newTestAuthService(t)

		userRepo.EXPECT().GetUserByLogin(mock.Anything, "ghost").
			Return(nil, domain.ErrUserNotFound)

		_, err := svc.Login(ctx, "ghost", "whatever123")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password maps to invalid credentials", func(t *testing.T) {
		svc, userRepo := newTestAuthService(t)

		userRepo.EXPECT().GetUserByLogin(mock.Anything, "alice").
			Return(&domain.User{ID: 1, Login: "alice", PasswordHash: hashFor(t, "longenough")}, nil)

		_, err := svc.Login(ctx, "alice", "wrongpassword")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
