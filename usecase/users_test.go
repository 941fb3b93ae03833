package usecase

import (
	"context"
	"testing"

	"main/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUsersRepo())
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw1", user.Password, "password must be stored hashed")

	authed, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, authed.UserID)
	assert.Equal(t, "alice", authed.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUsersRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other-password")
	assert.ErrorIs(t, err, model.ErrDuplicateUser)
}

func TestAuthenticateFailures(t *testing.T) {
	svc := NewUserService(newFakeUsersRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	// Wrong password and unknown user yield the same error so usernames
	// cannot be enumerated.
	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "pw1")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
