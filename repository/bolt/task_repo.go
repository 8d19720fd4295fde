package bolt

import (
	"context"
	"time"

	"github.com/zenai/backend/domain"
	"github.com/zenai/backend/repository"
)

const taskKeyPrefix = "tasks:"

type taskRepository struct {
	store *Store
	now   func() time.Time
}

// NewTaskRepository creates a Bolt-backed task repository. Each user's tasks
// are one ordered record under "tasks:<userID>", newest first.
func NewTaskRepository(store *Store) repository.TaskRepository {
	return &taskRepository{store: store, now: time.Now}
}

func (r *taskRepository) List(ctx context.Context, userID string) ([]domain.Task, error) {
	var tasks []domain.Task
	if _, err := r.store.Get(taskKey(userID), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil || task.UserID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if task.Status == "" {
		task.Status = domain.TaskPending
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = r.now()
	}

	var tasks []domain.Task
	err := r.store.Update(taskKey(task.UserID), &tasks, func(found bool) (interface{}, error) {
		return append([]domain.Task{*task}, tasks...), nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Toggle(ctx context.Context, userID, taskID string) (*repository.ToggleResult, error) {
	var result *repository.ToggleResult
	var tasks []domain.Task
	err := r.store.Update(taskKey(userID), &tasks, func(found bool) (interface{}, error) {
		for i := range tasks {
			if tasks[i].ID != taskID {
				continue
			}
			xpGained := 0
			if tasks[i].Status == domain.TaskPending {
				completedAt := r.now()
				tasks[i].Status = domain.TaskCompleted
				tasks[i].CompletedAt = &completedAt
				xpGained = domain.XPForCompletion(tasks[i].Priority, tasks[i].EnergyLevel)
			} else {
				tasks[i].Status = domain.TaskPending
				tasks[i].CompletedAt = nil
			}
			result = &repository.ToggleResult{Task: tasks[i], XPGained: xpGained}
			return tasks, nil
		}
		return nil, domain.ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *taskRepository) Delete(ctx context.Context, userID, taskID string) error {
	var tasks []domain.Task
	return r.store.Update(taskKey(userID), &tasks, func(found bool) (interface{}, error) {
		if !found {
			return nil, nil
		}
		kept := tasks[:0]
		for _, t := range tasks {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		return kept, nil
	})
}

func taskKey(userID string) string {
	return taskKeyPrefix + userID
}
