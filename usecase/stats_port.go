package usecase

import (
	"context"

	"github.com/zenai/backend/domain"
)

// StatsUpdater abstracts the progression entry point so the task use case
// stays decoupled from user storage.
type StatsUpdater interface {
	UpdateStats(ctx context.Context, userID string, xpToAdd int, taskCompleted bool) (*domain.User, error)
}
