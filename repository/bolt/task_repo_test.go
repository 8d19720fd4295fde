package bolt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenai/backend/domain"
)

func newTask(id, userID string, priority domain.TaskPriority, energy domain.EnergyLevel) *domain.Task {
	return &domain.Task{
		ID:          id,
		UserID:      userID,
		Text:        "task " + id,
		Status:      domain.TaskPending,
		Priority:    priority,
		EnergyLevel: energy,
		Category:    domain.CategoryPersonal,
	}
}

func TestTaskRepositoryCreateHeadInsertion(t *testing.T) {
	repo := NewTaskRepository(openTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newTask("t1", "u1", domain.PriorityLow, domain.EnergyLow))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTask("t2", "u1", domain.PriorityHigh, domain.EnergyHigh))
	require.NoError(t, err)

	tasks, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t2", tasks[0].ID, "newest task goes to the head")
	assert.Equal(t, "t1", tasks[1].ID)
	assert.False(t, tasks[0].CreatedAt.IsZero())
}

func TestTaskRepositoryListIsolatedPerUser(t *testing.T) {
	repo := NewTaskRepository(openTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newTask("t1", "u1", domain.PriorityLow, domain.EnergyLow))
	require.NoError(t, err)

	tasks, err := repo.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepositoryToggle(t *testing.T) {
	repo := NewTaskRepository(openTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newTask("t1", "u1", domain.PriorityCritical, domain.EnergyHigh))
	require.NoError(t, err)

	t.Run("completing awards xp and sets completed_at", func(t *testing.T) {
		result, err := repo.Toggle(ctx, "u1", "t1")
		require.NoError(t, err)
		assert.Equal(t, domain.TaskCompleted, result.Task.Status)
		assert.NotNil(t, result.Task.CompletedAt)
		assert.Equal(t, 75, result.XPGained)
	})

	t.Run("reverting clears completed_at and yields zero xp", func(t *testing.T) {
		result, err := repo.Toggle(ctx, "u1", "t1")
		require.NoError(t, err)
		assert.Equal(t, domain.TaskPending, result.Task.Status)
		assert.Nil(t, result.Task.CompletedAt)
		assert.Equal(t, 0, result.XPGained)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, err := repo.Toggle(ctx, "u1", "ghost")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}

func TestTaskRepositoryDelete(t *testing.T) {
	repo := NewTaskRepository(openTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newTask("t1", "u1", domain.PriorityLow, domain.EnergyLow))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "u1", "t1"))
	tasks, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	t.Run("deleting a missing id is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "u1", "ghost"))
		require.NoError(t, repo.Delete(ctx, "nobody", "ghost"))
	})
}
