package bolt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenai/backend/domain"
)

func TestUserRepositoryUpsert(t *testing.T) {
	repo := NewUserRepository(openTestStore(t))
	ctx := context.Background()

	user := &domain.User{ID: "u1", Username: "zen", Level: 1}
	require.NoError(t, repo.Upsert(ctx, user))

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "zen", got.Username)
	})

	t.Run("get by username", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "zen")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.ID)
	})

	t.Run("upsert replaces in place", func(t *testing.T) {
		user.XP = 75
		user.Level = 2
		require.NoError(t, repo.Upsert(ctx, user))

		got, err := repo.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 75, got.XP)
		assert.Equal(t, 2, got.Level)
	})

	t.Run("missing user reports not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		err := repo.Upsert(ctx, &domain.User{})
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})
}

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository(openTestStore(t), 0)
	ctx := context.Background()

	t.Run("empty store has no session", func(t *testing.T) {
		_, err := repo.Get(ctx)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("save and read back", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, &domain.Session{ID: "s1", UserID: "u1"}))

		session, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "u1", session.UserID)
		assert.False(t, session.ExpiresAt.IsZero())
	})

	t.Run("clear removes the pointer", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx))
		_, err := repo.Get(ctx)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}
