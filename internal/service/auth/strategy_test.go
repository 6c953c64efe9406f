package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/mocks"
	"github.com/phrazzld/taskr-api/internal/service/auth"
	"github.com/phrazzld/taskr-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTStrategyValidate(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewMockUserStore()
	alice := &domain.User{ID: uuid.New(), Username: "alice", Password: "pw1"}
	require.NoError(t, users.Create(ctx, alice))

	strategy := auth.NewJWTStrategy(&mocks.MockJWTService{}, users)

	user, err := strategy.Validate(ctx, &auth.Claims{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	_, err = strategy.Validate(ctx, &auth.Claims{Username: "ghost"})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
	assert.Equal(t, "user not found", err.Error())

	_, err = strategy.Validate(ctx, nil)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTStrategyAuthenticate(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewMockUserStore()
	require.NoError(t, users.Create(ctx, &domain.User{ID: uuid.New(), Username: "alice", Password: "pw1"}))

	jwtSvc := newJWTService(t)
	token, err := jwtSvc.GenerateToken(ctx, &domain.User{ID: uuid.New(), Username: "alice"})
	require.NoError(t, err)

	strategy := auth.NewJWTStrategy(jwtSvc, users)

	user, err := strategy.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = strategy.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	orphan, err := jwtSvc.GenerateToken(ctx, &domain.User{ID: uuid.New(), Username: "deleted"})
	require.NoError(t, err)
	_, err = strategy.Authenticate(ctx, orphan)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestJWTStrategyLookupFailure(t *testing.T) {
	users := mocks.NewMockUserStore()
	users.FindByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
		return nil, store.ErrInternal
	}
	strategy := auth.NewJWTStrategy(&mocks.MockJWTService{}, users)

	_, err := strategy.Validate(context.Background(), &auth.Claims{Username: "alice"})
	assert.ErrorIs(t, err, store.ErrInternal)
	assert.False(t, auth.IsUnauthorized(err))
}

func TestIsUnauthorized(t *testing.T) {
	for _, err := range []error{
		auth.ErrInvalidToken,
		auth.ErrExpiredToken,
		auth.ErrTokenNotYetValid,
		auth.ErrMissingToken,
		auth.ErrWrongTokenType,
		auth.ErrInvalidCredentials,
		auth.ErrUserNotFound,
	} {
		assert.True(t, auth.IsUnauthorized(err), err.Error())
	}
	assert.False(t, auth.IsUnauthorized(errors.New("boom")))
	assert.False(t, auth.IsUnauthorized(nil))
}
