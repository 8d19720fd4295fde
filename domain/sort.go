package domain

import "sort"

// priorityRank orders priorities for display, most urgent first.
func priorityRank(p TaskPriority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// SortForDisplay returns a copy of tasks in presentation order: pending
// before completed, then by priority rank, ties keeping their stored
// relative order. The stored list itself stays in insertion order.
func SortForDisplay(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Status != out[j].Status {
			return out[i].Status == TaskPending
		}
		return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
	})
	return out
}
