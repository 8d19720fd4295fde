package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenai/backend/domain"
	"github.com/zenai/backend/repository/bolt"
)

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), "zenai")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	users := bolt.NewUserRepository(store)
	sessions := bolt.NewSessionRepository(store, time.Hour)
	return New(users, sessions, "test-secret", "zenai-test", time.Hour, nil)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a fresh account with base stats", func(t *testing.T) {
		uc := newTestUseCase(t)
		result, err := uc.Register(ctx, "zen", "hunter2")
		require.NoError(t, err)

		assert.Equal(t, "zen", result.User.Username)
		assert.Equal(t, 0, result.User.XP)
		assert.Equal(t, 1, result.User.Level)
		assert.Equal(t, 0, result.User.Streak)
		assert.Empty(t, result.User.Credential)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.Register(ctx, "zen", "hunter2")
		require.NoError(t, err)

		_, err = uc.Register(ctx, "zen", "other")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.Register(ctx, "", "pw")
		assert.ErrorIs(t, err, domain.ErrEmptyCredentials)
		_, err = uc.Register(ctx, "zen", "")
		assert.ErrorIs(t, err, domain.ErrEmptyCredentials)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid pair starts a session", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.Register(ctx, "zen", "hunter2")
		require.NoError(t, err)

		result, err := uc.Login(ctx, "zen", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "zen", result.User.Username)
		assert.NotEmpty(t, result.Token)

		current, err := uc.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "zen", current.Username)
	})

	t.Run("wrong credential rejected", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.Register(ctx, "zen", "hunter2")
		require.NoError(t, err)

		_, err = uc.Login(ctx, "zen", "wrong")
		assert.ErrorIs(t, err, domain.ErrBadCredentials)

		_, err = uc.Login(ctx, "nobody", "hunter2")
		assert.ErrorIs(t, err, domain.ErrBadCredentials)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	_, err := uc.Register(ctx, "zen", "hunter2")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx))

	_, err = uc.CurrentUser(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
