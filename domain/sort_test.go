package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortForDisplay(t *testing.T) {
	tasks := []Task{
		{ID: "a", Status: TaskCompleted, Priority: PriorityCritical},
		{ID: "b", Status: TaskPending, Priority: PriorityLow},
		{ID: "c", Status: TaskPending, Priority: PriorityCritical},
		{ID: "d", Status: TaskPending, Priority: PriorityHigh},
		{ID: "e", Status: TaskCompleted, Priority: PriorityLow},
		{ID: "f", Status: TaskPending, Priority: PriorityHigh},
	}

	sorted := SortForDisplay(tasks)

	ids := make([]string, len(sorted))
	for i, task := range sorted {
		ids[i] = task.ID
	}
	// Pending before completed, priority rank within status, ties stable.
	assert.Equal(t, []string{"c", "d", "f", "b", "a", "e"}, ids)

	t.Run("input order untouched", func(t *testing.T) {
		assert.Equal(t, "a", tasks[0].ID)
		assert.Equal(t, "f", tasks[5].ID)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Empty(t, SortForDisplay(nil))
	})
}
