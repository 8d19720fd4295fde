package profile

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zenai/backend/domain"
	applog "github.com/zenai/backend/pkg/logger"
	"github.com/zenai/backend/repository"
)

type UseCase struct {
	users  repository.UserRepository
	tasks  repository.TaskRepository
	logger *zap.Logger
	now    func() time.Time
}

func New(users repository.UserRepository, tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		tasks:  tasks,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *UseCase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

// UpdateUsername renames the user, rejecting blanks and collisions.
func (uc *UseCase) UpdateUsername(ctx context.Context, userID, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrEmptyCredentials
	}

	if existing, err := uc.users.GetByUsername(ctx, username); err == nil && existing.ID != userID {
		return nil, domain.ErrUsernameTaken
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Username = username
	if err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateStats is the single progression entry point: it reads the user
// record, folds in the activity event and writes the record back. Both the
// dashboard session tick (xpToAdd 0) and task completions flow through here;
// the streak branch fires at most once per calendar day either way.
func (uc *UseCase) UpdateStats(ctx context.Context, userID string, xpToAdd int, taskCompleted bool) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	domain.ApplyActivity(user, xpToAdd, taskCompleted, uc.now())

	if err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Debug("user stats updated",
		zap.String("request_id", applog.RequestIDFromContext(ctx)),
		zap.String("user_id", userID),
		zap.Int("xp_added", xpToAdd),
		zap.Int("level", user.Level),
		zap.Int("streak", user.Streak),
	)
	return user, nil
}

// ExportPayload is the downloadable snapshot of one user's data.
type ExportPayload struct {
	User       domain.User   `json:"user"`
	Tasks      []domain.Task `json:"tasks"`
	ExportedAt time.Time     `json:"exported_at"`
}

// Export assembles the user record and task list for download. Export only;
// there is no import path.
func (uc *UseCase) Export(ctx context.Context, userID string) (*ExportPayload, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ExportPayload{
		User:       user.Sanitized(),
		Tasks:      tasks,
		ExportedAt: uc.now(),
	}, nil
}
