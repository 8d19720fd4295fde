package insight

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zenai/backend/domain"
	"github.com/zenai/backend/repository"
)

// staleAfter is how long a pending task may sit before it is considered
// procrastinated on.
const staleAfter = 48 * time.Hour

// Generator abstracts the external text-generation service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Insight is what the analysis produces. Suggestion is always set; SplitTask
// carries the generated sub-steps when a stale task was analyzed.
type Insight struct {
	Suggestion string `json:"suggestion"`
	SplitTask  string `json:"split_task,omitempty"`
}

type UseCase struct {
	tasks     repository.TaskRepository
	generator Generator
	timeout   time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func New(tasks repository.TaskRepository, generator Generator, timeout time.Duration, logger *zap.Logger) *UseCase {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:     tasks,
		generator: generator,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

// Analyze inspects the user's pending tasks and, when one has been pending
// for over 48 hours, asks the generator to split the oldest of them into
// sub-steps. Every failure path degrades to a canned suggestion; the caller
// never sees an error from the external service.
func (uc *UseCase) Analyze(ctx context.Context, userID string) (*Insight, error) {
	tasks, err := uc.tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.analyze(tasks), nil
}

func (uc *UseCase) analyze(tasks []domain.Task) *Insight {
	var pending []domain.Task
	for _, t := range tasks {
		if t.Status == domain.TaskPending {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		return &Insight{Suggestion: "All tasks done. Great work!"}
	}

	target, ok := oldestStale(pending, uc.now())
	if !ok {
		return &Insight{Suggestion: "Nothing is overdue. Keep it up!"}
	}

	// The external call runs on its own clock, detached from the request
	// deadline, so a slow generation never shortens to the API timeout.
	genCtx, cancel := context.WithTimeout(context.Background(), uc.timeout)
	defer cancel()

	text, err := uc.generator.Generate(genCtx, splitPrompt(target.Text))
	if err != nil {
		uc.logger.Warn("insight generation failed", zap.String("task_id", target.ID), zap.Error(err))
		return &Insight{Suggestion: "Try breaking your oldest task into smaller steps."}
	}

	return &Insight{
		Suggestion: fmt.Sprintf("%q has been waiting a while. Here is a way to break it down:", target.Text),
		SplitTask:  text,
	}
}

// oldestStale picks the earliest-created pending task older than the
// staleness threshold.
func oldestStale(pending []domain.Task, now time.Time) (domain.Task, bool) {
	var target domain.Task
	var found bool
	cutoff := now.Add(-staleAfter)
	for _, t := range pending {
		if !t.CreatedAt.Before(cutoff) {
			continue
		}
		if !found || t.CreatedAt.Before(target.CreatedAt) {
			target = t
			found = true
		}
	}
	return target, found
}

func splitPrompt(taskText string) string {
	return fmt.Sprintf(
		"Task: %q. This task has been pending for over two days. Split it into 3 small sub-steps. Reply with only the sub-steps as a list.",
		taskText,
	)
}
