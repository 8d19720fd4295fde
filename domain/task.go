package domain

import "time"

// TaskStatus is the binary task state machine.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

// EnergyLevel estimates the effort a task demands.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// TaskCategory tags a task with a life area.
type TaskCategory string

const (
	CategoryWork     TaskCategory = "work"
	CategoryStudy    TaskCategory = "study"
	CategoryHealth   TaskCategory = "health"
	CategoryPersonal TaskCategory = "personal"
	CategoryFinance  TaskCategory = "finance"
)

// Task represents a user-owned activity item.
type Task struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	Text          string       `json:"text"`
	Status        TaskStatus   `json:"status"`
	Priority      TaskPriority `json:"priority"`
	EnergyLevel   EnergyLevel  `json:"energy_level"`
	Category      TaskCategory `json:"category"`
	EstimatedTime string       `json:"estimated_time"`
	CreatedAt     time.Time    `json:"created_at"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
	AISuggested   bool         `json:"ai_suggested,omitempty"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == TaskCompleted
}

// IsValidPriority reports whether p is one of the closed priority variants.
func IsValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// IsValidEnergy reports whether e is one of the closed energy variants.
func IsValidEnergy(e EnergyLevel) bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

// IsValidCategory reports whether c is one of the closed category variants.
func IsValidCategory(c TaskCategory) bool {
	switch c {
	case CategoryWork, CategoryStudy, CategoryHealth, CategoryPersonal, CategoryFinance:
		return true
	}
	return false
}
