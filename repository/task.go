package repository

import (
	"context"

	"github.com/zenai/backend/domain"
)

// ToggleResult carries the flipped task together with the XP the flip earned.
// Reverting a task to pending always earns zero.
type ToggleResult struct {
	Task     domain.Task
	XPGained int
}

type TaskRepository interface {
	// List returns the user's tasks in stored insertion order, newest first.
	List(ctx context.Context, userID string) ([]domain.Task, error)
	// Create inserts the task at the head of the user's list.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Toggle flips a task between pending and completed.
	Toggle(ctx context.Context, userID, taskID string) (*ToggleResult, error)
	// Delete removes a task; a missing id is a no-op.
	Delete(ctx context.Context, userID, taskID string) error
}
