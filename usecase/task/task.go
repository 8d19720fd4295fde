package task

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zenai/backend/domain"
	"github.com/zenai/backend/repository"
	"github.com/zenai/backend/usecase"
)

type UseCase struct {
	tasks  repository.TaskRepository
	stats  usecase.StatsUpdater
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, stats usecase.StatsUpdater, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		stats:  stats,
		logger: logger,
	}
}

// List returns the stored task list; with displayOrder it applies the
// presentation sort (pending first, then priority) instead.
func (uc *UseCase) List(ctx context.Context, userID string, displayOrder bool) ([]domain.Task, error) {
	tasks, err := uc.tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if displayOrder {
		return domain.SortForDisplay(tasks), nil
	}
	return tasks, nil
}

type AddParams struct {
	Text          string
	Priority      domain.TaskPriority
	EnergyLevel   domain.EnergyLevel
	Category      domain.TaskCategory
	EstimatedTime string
	AISuggested   bool
}

// Add validates and creates a new pending task at the head of the list.
// Unset attributes fall back to medium/medium/personal/15m defaults.
func (uc *UseCase) Add(ctx context.Context, userID string, params AddParams) (*domain.Task, error) {
	text := strings.TrimSpace(params.Text)
	if text == "" {
		return nil, domain.ErrEmptyTaskText
	}

	if params.Priority == "" {
		params.Priority = domain.PriorityMedium
	}
	if params.EnergyLevel == "" {
		params.EnergyLevel = domain.EnergyMedium
	}
	if params.Category == "" {
		params.Category = domain.CategoryPersonal
	}
	if params.EstimatedTime == "" {
		params.EstimatedTime = "15m"
	}
	if !domain.IsValidPriority(params.Priority) || !domain.IsValidEnergy(params.EnergyLevel) || !domain.IsValidCategory(params.Category) {
		return nil, domain.ErrInvalidPayload
	}

	task := &domain.Task{
		ID:            uuid.NewString(),
		UserID:        userID,
		Text:          text,
		Status:        domain.TaskPending,
		Priority:      params.Priority,
		EnergyLevel:   params.EnergyLevel,
		Category:      params.Category,
		EstimatedTime: params.EstimatedTime,
		AISuggested:   params.AISuggested,
	}
	return uc.tasks.Create(ctx, task)
}

// ToggleOutcome reports a toggled task, the XP it earned and the refreshed
// user record when the toggle completed a task.
type ToggleOutcome struct {
	Task     domain.Task  `json:"task"`
	XPGained int          `json:"xp_gained"`
	User     *domain.User `json:"user,omitempty"`
}

// Toggle flips a task's status. Completing a task awards XP and runs the
// stats update; reverting to pending only flips the task back. Previously
// granted XP and completion counts are never revoked.
func (uc *UseCase) Toggle(ctx context.Context, userID, taskID string) (*ToggleOutcome, error) {
	result, err := uc.tasks.Toggle(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	outcome := &ToggleOutcome{Task: result.Task, XPGained: result.XPGained}
	if result.Task.Status != domain.TaskCompleted {
		return outcome, nil
	}

	user, err := uc.stats.UpdateStats(ctx, userID, result.XPGained, true)
	if err != nil {
		// The task flip already persisted; surface the stats failure.
		uc.logger.Error("stats update failed after completion",
			zap.String("user_id", userID),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
		return nil, err
	}
	outcome.User = user
	return outcome, nil
}

// Delete removes a task. Deleting an id that does not exist is a no-op.
func (uc *UseCase) Delete(ctx context.Context, userID, taskID string) error {
	return uc.tasks.Delete(ctx, userID, taskID)
}
